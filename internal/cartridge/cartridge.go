// Package cartridge provides header parsing and the family of memory
// bank controllers (MBCs) that sit behind the 0x0000-0x7FFF and
// 0xA000-0xBFFF address windows.
package cartridge

import (
	"fmt"

	"github.com/ardentgb/gbcore/pkg/log"
	"github.com/cespare/xxhash"
)

// Controller is the interface the MMU drives a cartridge through. ROM
// reads/writes and external-RAM reads/writes both pass through it; the
// controller alone decides what bank backs a given address.
type Controller interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// RAMPersister is implemented by controllers with battery-backed
// external RAM.
type RAMPersister interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// Cartridge pairs a parsed header with the bank controller that
// actually services reads and writes.
type Cartridge struct {
	Controller
	header Header
}

// Header returns the cartridge's parsed header.
func (c *Cartridge) Header() *Header {
	return &c.header
}

// Title returns the cartridge's title as declared in its header.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Filename returns a stable, filesystem-safe identifier for the
// cartridge's save data, derived from an xxhash of its title.
func (c *Cartridge) Filename() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(c.header.Title))
}

// New parses rom's header and constructs the appropriate bank
// controller, returning an error if the header names an unrecognized
// cartridge, ROM-size, or RAM-size byte, or if rom is too short to
// contain a header. An optional logger receives an informational
// message when the
// cartridge type is recognized but backed by the inert passthrough
// rather than real banking; omit it to run silently.
func New(rom []byte, loggers ...log.Logger) (*Cartridge, error) {
	logger := log.NewNullLogger()
	if len(loggers) > 0 {
		logger = loggers[0]
	}

	if len(rom) < 0x150 {
		return nil, fmt.Errorf("cartridge: rom too short to contain a header: %d bytes", len(rom))
	}

	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}

	cart := &Cartridge{header: header}
	switch header.CartridgeType {
	case ROM:
		cart.Controller = newROMOnly(rom)
	case MBC1, MBC1RAM, MBC1RAMBATT:
		cart.Controller = newMBC1(rom, &cart.header)
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		cart.Controller = newMBC5(rom, &cart.header)
	default:
		// Recognized but not required to function: construct an inert
		// passthrough so construction never fails on a genuine
		// cartridge the specification doesn't require banking for.
		logger.Infof("cartridge: type %#02x has no banking support, running inert passthrough", header.CartridgeType)
		cart.Controller = newInert(rom, header.RAMSize)
	}

	return cart, nil
}
