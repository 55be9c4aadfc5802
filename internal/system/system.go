// Package system wires the cartridge, MMU, CPU, PPU, timer, OAM-DMA and
// joypad subsystems together behind the single host-facing operation
// this core exposes: advance emulation until one new frame is ready,
// copy it into the caller's framebuffer, and return.
package system

import (
	"fmt"

	"github.com/ardentgb/gbcore/internal/cartridge"
	"github.com/ardentgb/gbcore/internal/cpu"
	"github.com/ardentgb/gbcore/internal/dma"
	"github.com/ardentgb/gbcore/internal/interrupts"
	"github.com/ardentgb/gbcore/internal/joypad"
	"github.com/ardentgb/gbcore/internal/mmu"
	"github.com/ardentgb/gbcore/internal/ppu"
	"github.com/ardentgb/gbcore/internal/timer"
	"github.com/ardentgb/gbcore/pkg/log"
)

// Screen dimensions and the host framebuffer contract: row-major,
// top-down, RGB888, stride = ScreenWidth*3.
const (
	ScreenWidth  = ppu.ScreenWidth
	ScreenHeight = ppu.ScreenHeight
	FrameBytes   = ScreenWidth * ScreenHeight * 3
)

// Key is a bit in the host's per-frame key snapshot passed to Tick.
// Pressed = 1. Aliased from joypad.Button so callers needn't import
// that package directly.
type Key = joypad.Button

const (
	KeyA      = joypad.ButtonA
	KeyB      = joypad.ButtonB
	KeySelect = joypad.ButtonSelect
	KeyStart  = joypad.ButtonStart
	KeyRight  = joypad.ButtonRight
	KeyLeft   = joypad.ButtonLeft
	KeyUp     = joypad.ButtonUp
	KeyDown   = joypad.ButtonDown
)

// System holds every subsystem and is the sole owner of simulated
// machine state for one running cartridge's lifetime.
type System struct {
	cart *cartridge.Cartridge

	irq   *interrupts.Service
	mmu   *mmu.MMU
	cpu   *cpu.CPU
	ppu   *ppu.PPU
	timer *timer.Controller
	dma   *dma.Unit
	pad   *joypad.State

	log log.Logger
}

// New parses cartridgeROM's header, allocates external RAM, and
// initializes every subsystem to its fixed post-boot state (no boot
// ROM runs). It returns an error if the header names an unrecognized
// cartridge, ROM-size, or RAM-size byte.
func New(cartridgeROM []byte, opts ...Option) (*System, error) {
	o := newOptions(opts)

	cart, err := cartridge.New(cartridgeROM, o.logger)
	if err != nil {
		return nil, err
	}

	cgb := resolveColorMode(cart.Header().GameboyColor(), o.model)

	irq := interrupts.NewService()
	mem := mmu.New(cart, irq)
	mem.SetColorMode(cgb)

	pad := joypad.New()
	mem.AttachJoypad(pad)

	s := &System{
		cart:  cart,
		irq:   irq,
		mmu:   mem,
		cpu:   cpu.NewCPU(mem, irq, cgb, o.logger),
		ppu:   ppu.New(irq, cgb, o.logger),
		timer: timer.NewController(irq),
		dma:   dma.New(),
		pad:   pad,
		log:   o.logger,
	}
	s.log.Infof("system: loaded %q (cgb=%v)", cart.Title(), cgb)
	return s, nil
}

// Cartridge exposes the parsed header and, for battery-backed carts,
// the RAMPersister the host can use to save/load external RAM; that
// persistence is the host's responsibility, out of scope for the core.
func (s *System) Cartridge() *cartridge.Cartridge {
	return s.cart
}

// Tick advances emulation — CPU, then PPU, then timers, then OAM DMA,
// in that fixed order — until the PPU reports a complete frame, then
// copies it into screen. keys is the host's key-state snapshot for
// this frame (bit0 A .. bit7 DOWN, pressed = 1); a press edge raises
// the joypad interrupt before the tick loop runs.
//
// screen must be at least FrameBytes long; the system never keeps a
// reference to it past this call.
func (s *System) Tick(screen []byte, keys uint8) {
	if len(screen) < FrameBytes {
		panic(fmt.Sprintf("system: screen buffer too small: got %d bytes, want %d", len(screen), FrameBytes))
	}

	if s.pad.HandleKeys(keys) {
		s.irq.Request(interrupts.JoypadFlag)
	}

	for {
		n := s.cpu.Tick()
		frame := s.ppu.Tick(s.mmu, n)
		s.timer.Tick(s.mmu, n)
		s.dma.Tick(s.mmu)
		if frame {
			break
		}
	}

	s.copyFrame(screen)
}

func (s *System) copyFrame(screen []byte) {
	var buf [ScreenHeight][ScreenWidth][3]uint8
	s.ppu.Frame(&buf)

	i := 0
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			px := buf[y][x]
			screen[i], screen[i+1], screen[i+2] = px[0], px[1], px[2]
			i += 3
		}
	}
}
