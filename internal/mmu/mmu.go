// Package mmu provides the memory-management unit that arbitrates the
// Game Boy's unified 16-bit address space. It owns every fixed-region
// byte store (VRAM, OAM, WRAM, HRAM, the IO catch-all) and the
// dedicated MMIO registers, and is the single point every other
// subsystem (CPU, PPU, timer, joypad, OAM DMA) reads and writes
// through each tick.
package mmu

import (
	"fmt"

	"github.com/ardentgb/gbcore/internal/cartridge"
	"github.com/ardentgb/gbcore/internal/interrupts"
	gbpalette "github.com/ardentgb/gbcore/internal/ppu/palette"
	"github.com/ardentgb/gbcore/internal/ram"
	"github.com/sirupsen/logrus"
)

// JoypadPort is the interface the MMU drives the joypad through for
// reads/writes of 0xFF00.
type JoypadPort interface {
	Read() uint8
	Write(value uint8)
}

const (
	vramBankSize = 0x2000
	wramBankSize = 0x1000
	oamSize      = 0xA0
	hramSize     = 0x7F
	ioSize       = 0x80
)

// Dedicated MMIO register addresses the MMU intercepts itself, rather
// than leaving to the IO catch-all array.
const (
	regLCDC uint16 = 0xFF40
	regSTAT uint16 = 0xFF41
	regSCY  uint16 = 0xFF42
	regSCX  uint16 = 0xFF43
	regLY   uint16 = 0xFF44
	regLYC  uint16 = 0xFF45
	regDMA  uint16 = 0xFF46
	regBGP  uint16 = 0xFF47
	regOBP0 uint16 = 0xFF48
	regOBP1 uint16 = 0xFF49
	regWY   uint16 = 0xFF4A
	regWX   uint16 = 0xFF4B
	regVBK  uint16 = 0xFF4F
	regBCPS uint16 = 0xFF68
	regBCPD uint16 = 0xFF69
	regOCPS uint16 = 0xFF6A
	regOCPD uint16 = 0xFF6B
	regIF   uint16 = 0xFF0F
	regIE   uint16 = 0xFFFF
)

// MMU is the unified 16-bit address decoder.
type MMU struct {
	Cart *cartridge.Cartridge
	IRQ  *interrupts.Service

	CGB bool

	joypad JoypadPort

	vram [2]*ram.Block // bank 1 only exists on CGB
	vbk  uint8

	oam *ram.Block

	wram0, wram1 *ram.Block

	hram *ram.Block

	// io is the catch-all backing store for any FF00-FF7F address
	// without a dedicated handler below; this is what lets unknown
	// APU/IO addresses behave as plain RAM.
	io [ioSize]byte

	lcdc, stat, scy, scx, ly, lyc uint8
	bgp, obp0, obp1               uint8
	wy, wx                        uint8

	bgPalette, objPalette [64]uint8
	bcps, ocps            uint8

	dmaPending bool
	dmaSource  uint8

	Log *logrus.Logger
}

// New returns an MMU wired to cart and irq. The joypad port must be
// attached separately with AttachJoypad before 0xFF00 is touched.
func New(cart *cartridge.Cartridge, irq *interrupts.Service) *MMU {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.Formatter = &logrus.TextFormatter{DisableColors: true, DisableTimestamp: true}

	cgb := cart.Header().GameboyColor()

	m := &MMU{
		Cart:  cart,
		IRQ:   irq,
		CGB:   cgb,
		vram:  [2]*ram.Block{ram.New(vramBankSize)},
		oam:   ram.New(oamSize),
		wram0: ram.New(wramBankSize),
		wram1: ram.New(wramBankSize),
		hram:  ram.New(hramSize),
		Log:   l,
		lcdc:  0x91,
		stat:  0x80,
	}
	if cgb {
		m.vram[1] = ram.New(vramBankSize)
	}
	for i := range m.bgPalette {
		m.bgPalette[i] = 0xFF
		m.objPalette[i] = 0xFF
	}
	return m
}

// AttachJoypad wires the joypad port that backs 0xFF00.
func (m *MMU) AttachJoypad(pad JoypadPort) {
	m.joypad = pad
}

// SetColorMode overrides the CGB mode otherwise detected from the
// cartridge header, allocating the second VRAM bank on demand if the
// caller is forcing color mode on a DMG-flagged cartridge.
func (m *MMU) SetColorMode(cgb bool) {
	if cgb == m.CGB {
		return
	}
	m.CGB = cgb
	if cgb && m.vram[1] == nil {
		m.vram[1] = ram.New(vramBankSize)
	}
}

// Read returns the byte at address, decoded per the address-space
// partition in the specification.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		return m.Cart.Read(address)
	case address <= 0x9FFF:
		return m.vram[m.vbk].Read(address - 0x8000)
	case address <= 0xBFFF:
		return m.Cart.Read(address)
	case address <= 0xCFFF:
		return m.wram0.Read(address - 0xC000)
	case address <= 0xDFFF:
		return m.wram1.Read(address - 0xD000)
	case address <= 0xFDFF:
		return m.readEcho(address)
	case address <= 0xFE9F:
		return m.oam.Read(address - 0xFE00)
	case address <= 0xFEFF:
		return 0x00
	case address <= 0xFF7F:
		return m.readIO(address)
	case address <= 0xFFFE:
		return m.hram.Read(address - 0xFF80)
	default: // 0xFFFF
		return m.IRQ.Read(regIE)
	}
}

// Write stores value at address, decoded per the address-space
// partition in the specification.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF:
		m.Cart.Write(address, value)
	case address <= 0x9FFF:
		m.vram[m.vbk].Write(address-0x8000, value)
	case address <= 0xBFFF:
		m.Cart.Write(address, value)
	case address <= 0xCFFF:
		m.wram0.Write(address-0xC000, value)
	case address <= 0xDFFF:
		m.wram1.Write(address-0xD000, value)
	case address <= 0xFDFF:
		m.writeEcho(address, value)
	case address <= 0xFE9F:
		m.oam.Write(address-0xFE00, value)
	case address <= 0xFEFF:
		// unusable range; writes are dropped and nothing is stored
		// (reads of this range return 0x00)
	case address <= 0xFF7F:
		m.writeIO(address, value)
	case address <= 0xFFFE:
		m.hram.Write(address-0xFF80, value)
	default: // 0xFFFF
		m.IRQ.Write(regIE, value)
	}
}

func (m *MMU) readEcho(address uint16) uint8 {
	// E000-FDFF aliases C000-DDFF
	if address < 0xF000 {
		return m.wram0.Read(address - 0xE000)
	}
	return m.wram1.Read(address - 0xF000)
}

func (m *MMU) writeEcho(address uint16, value uint8) {
	if address < 0xF000 {
		m.wram0.Write(address-0xE000, value)
		return
	}
	m.wram1.Write(address-0xF000, value)
}

func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case 0xFF00:
		if m.joypad != nil {
			return m.joypad.Read()
		}
		return 0xFF
	case regIF:
		return m.IRQ.Read(regIF)
	case regLCDC:
		return m.lcdc
	case regSTAT:
		return m.stat | 0x80
	case regSCY:
		return m.scy
	case regSCX:
		return m.scx
	case regLY:
		return m.ly
	case regLYC:
		return m.lyc
	case regDMA:
		return m.dmaSource
	case regBGP:
		return m.bgp
	case regOBP0:
		return m.obp0
	case regOBP1:
		return m.obp1
	case regWY:
		return m.wy
	case regWX:
		return m.wx
	case regVBK:
		if m.CGB {
			return m.vbk | 0xFE
		}
		return 0xFF
	case regBCPS:
		return m.bcps
	case regBCPD:
		return m.bgPalette[m.bcps&0x3F]
	case regOCPS:
		return m.ocps
	case regOCPD:
		return m.objPalette[m.ocps&0x3F]
	}
	m.Log.Debugf("readIO: unmapped register %#04x", address)
	return m.io[address-0xFF00]
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch address {
	case 0xFF00:
		if m.joypad != nil {
			m.joypad.Write(value)
		}
	case regIF:
		m.IRQ.Write(regIF, value)
	case regLCDC:
		m.lcdc = value
	case regSTAT:
		m.stat = (m.stat & 0x07) | (value & 0x78)
	case regSCY:
		m.scy = value
	case regSCX:
		m.scx = value
	case regLY:
		// Writing LY from software is stored as-is; real hardware
		// resets the counter to 0 on any write, a documented
		// deviation preserved from the specification.
		m.ly = value
	case regLYC:
		m.lyc = value
	case regDMA:
		m.dmaSource = value
		m.dmaPending = true
	case regBGP:
		m.bgp = value
	case regOBP0:
		m.obp0 = value
	case regOBP1:
		m.obp1 = value
	case regWY:
		m.wy = value
	case regWX:
		m.wx = value
	case regVBK:
		if m.CGB {
			m.vbk = value & 0x01
		}
	case regBCPS:
		m.bcps = value & 0xBF
	case regBCPD:
		m.bgPalette[m.bcps&0x3F] = value
		if m.bcps&0x80 != 0 {
			m.bcps = (m.bcps & 0x80) | ((m.bcps + 1) & 0x3F)
		}
	case regOCPS:
		m.ocps = value & 0xBF
	case regOCPD:
		m.objPalette[m.ocps&0x3F] = value
		if m.ocps&0x80 != 0 {
			m.ocps = (m.ocps & 0x80) | ((m.ocps + 1) & 0x3F)
		}
	default:
		m.Log.Debugf("writeIO: unmapped register %#04x = %#02x", address, value)
		m.io[address-0xFF00] = value
	}
}

// --- accessors used by the PPU and OAM-DMA unit ---

// LCDC, STAT, SCY, SCX, LY, LYC, BGP, OBP0, OBP1, WY, WX return the
// current value of their respective dedicated register, for
// subsystems that poll the register rather than go through Read.
func (m *MMU) LCDC() uint8 { return m.lcdc }
func (m *MMU) STAT() uint8 { return m.stat }
func (m *MMU) SCY() uint8  { return m.scy }
func (m *MMU) SCX() uint8  { return m.scx }
func (m *MMU) LY() uint8   { return m.ly }
func (m *MMU) LYC() uint8  { return m.lyc }
func (m *MMU) BGP() uint8  { return m.bgp }
func (m *MMU) OBP0() uint8 { return m.obp0 }
func (m *MMU) OBP1() uint8 { return m.obp1 }
func (m *MMU) WY() uint8   { return m.wy }
func (m *MMU) WX() uint8   { return m.wx }

// SetLY sets LY directly, bypassing the software-write special case;
// used by the PPU, which is the source of truth for LY.
func (m *MMU) SetLY(v uint8) { m.ly = v }

// SetSTATBits sets STAT's mode bits (1:0) and coincidence bit (2) without
// disturbing the interrupt-enable bits (6:3), which only software
// writes.
func (m *MMU) SetSTATBits(mode uint8, coincidence bool) {
	m.stat = (m.stat &^ 0x07) | (mode & 0x03)
	if coincidence {
		m.stat |= 0x04
	}
}


// VRAMBank returns bank's raw 8 KiB contents, bank 0 or 1.
func (m *MMU) VRAMBank(bank uint8) []byte {
	if bank == 1 && !m.CGB {
		return m.vram[0].Raw()
	}
	return m.vram[bank&1].Raw()
}

// OAMBytes returns the 40x4 raw OAM bytes.
func (m *MMU) OAMBytes() []byte {
	return m.oam.Raw()
}

// BGColor and ObjColor return the 8-bit RGB components of a CGB
// palette entry, decoding the RGB555-little-endian pair and widening
// each 5-bit channel by a left shift of 3 per the specification.
func (m *MMU) BGColor(palette, color uint8) (r, g, b uint8) {
	return decodeColor(m.bgPalette, palette, color)
}

func (m *MMU) ObjColor(palette, color uint8) (r, g, b uint8) {
	return decodeColor(m.objPalette, palette, color)
}

func decodeColor(table [64]uint8, palette, color uint8) (r, g, b uint8) {
	idx := int(palette)*8 + int(color)*2
	lo, hi := table[idx], table[idx+1]
	word := uint16(lo) | uint16(hi)<<8
	r = uint8(word&0x1F) << 3
	g = uint8((word>>5)&0x1F) << 3
	b = uint8((word>>10)&0x1F) << 3
	if r == 0 && g == 0 && b == 0 {
		// A computed black is replaced with the sentinel white so the
		// PPU's sprite-priority test still holds in CGB mode.
		w := gbpalette.SentinelWhite
		r, g, b = w[0], w[1], w[2]
	}
	return
}

// DMAArmed reports the source page latched by a write to 0xFF46, if
// one is pending since the last ClearDMA.
func (m *MMU) DMAArmed() (page uint8, pending bool) {
	return m.dmaSource, m.dmaPending
}

// ClearDMA lowers the OAM-DMA pending flag.
func (m *MMU) ClearDMA() {
	m.dmaPending = false
}

// WriteOAMRaw writes directly into OAM, used by the DMA unit to copy
// without re-decoding the address through Write.
func (m *MMU) WriteOAMRaw(index uint8, value uint8) {
	m.oam.Write(uint16(index), value)
}

func (m *MMU) String() string {
	return fmt.Sprintf("MMU{cgb=%v}", m.CGB)
}
