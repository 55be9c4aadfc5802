// Package ppu implements the pixel-processing unit: the mode state
// machine that advances scanline-by-scanline in step with the T-cycles
// the CPU reports, and the background/window/sprite rasterizer that runs
// once per scanline at the Pixel-Transfer to HBlank boundary.
package ppu

import (
	"github.com/ardentgb/gbcore/internal/interrupts"
	"github.com/ardentgb/gbcore/internal/ppu/palette"
	"github.com/ardentgb/gbcore/pkg/log"
)

// Mode is the PPU's current scan mode, mirrored into STAT bits 0-1.
type Mode uint8

const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	PixelTransfer
)

// T-cycle durations from the specification. LineDuration is derived as
// the sum of the three visible-line modes (80 + 172 + 204 = 456).
const (
	OAMSearchDuration     = 80
	PixelTransferDuration = 172
	HBlankDuration        = 204
	LineDuration          = OAMSearchDuration + PixelTransferDuration + HBlankDuration
	VBlankDuration        = 4560

	// FullFrame is the T-cycle period the PPU free-runs on while the LCD
	// is disabled (LCDC bit 7 = 0): 144 visible lines plus one VBlank.
	FullFrame = LineDuration*144 + VBlankDuration

	ScreenWidth  = 160
	ScreenHeight = 144
)

const (
	lcdcBGEnable       = 1 << 0
	lcdcObjEnable      = 1 << 1
	lcdcObjSize        = 1 << 2
	lcdcBGTileMap      = 1 << 3
	lcdcTileData       = 1 << 4
	lcdcWindowEnable   = 1 << 5
	lcdcWindowTileMap  = 1 << 6
	lcdcDisplayEnable  = 1 << 7
	statLYCInterrupt   = 1 << 6
	statOAMInterrupt   = 1 << 5
	statVBlankInt      = 1 << 4
	statHBlankInt      = 1 << 3
	statCoincidence    = 1 << 2
)

// Bus is the MMU surface the PPU reads video state from and writes LY/STAT
// back through; see mmu.MMU, which implements it.
type Bus interface {
	LCDC() uint8
	STAT() uint8
	SCY() uint8
	SCX() uint8
	LY() uint8
	LYC() uint8
	BGP() uint8
	OBP0() uint8
	OBP1() uint8
	WY() uint8
	WX() uint8
	SetLY(uint8)
	SetSTATBits(mode uint8, coincidence bool)
	VRAMBank(bank uint8) []byte
	OAMBytes() []byte
	BGColor(pal, color uint8) (r, g, b uint8)
	ObjColor(pal, color uint8) (r, g, b uint8)
}

// PPU holds the mode state machine and the two framebuffers traded with
// the caller at frame boundaries.
type PPU struct {
	irq *interrupts.Service
	cgb bool
	log log.Logger

	mode      Mode
	modeTicks uint32
	disabled  uint32

	back, front [ScreenHeight][ScreenWidth][3]uint8

	lastCoincidence bool
}

// New returns a PPU in OAM-Search mode at line 0. logger receives
// optional mode-transition tracing; pass log.NewNullLogger() to
// disable it.
func New(irq *interrupts.Service, cgb bool, logger log.Logger) *PPU {
	return &PPU{irq: irq, cgb: cgb, log: logger, mode: OAMSearch}
}

// Frame copies the most recently completed frame into dst.
func (p *PPU) Frame(dst *[ScreenHeight][ScreenWidth][3]uint8) {
	*dst = p.front
}

// Tick advances the PPU by ticks T-cycles, returns true exactly once a
// frame has been completed.
func (p *PPU) Tick(bus Bus, ticks uint8) bool {
	if bus.LCDC()&lcdcDisplayEnable == 0 {
		p.disabled += uint32(ticks)
		if p.disabled >= FullFrame {
			p.disabled -= FullFrame
			p.log.Debugf("ppu: lcd disabled, free-running a blank frame")
			bus.SetLY(0)
			p.mode = OAMSearch
			p.modeTicks = 0
			p.front = p.back
			return true
		}
		return false
	}
	p.disabled = 0

	frame := false
	p.modeTicks += uint32(ticks)

	switch p.mode {
	case OAMSearch:
		if p.modeTicks > OAMSearchDuration {
			p.modeTicks -= OAMSearchDuration
			p.mode = PixelTransfer
			bus.SetSTATBits(uint8(PixelTransfer), p.lastCoincidence)
		}
	case PixelTransfer:
		if p.modeTicks > PixelTransferDuration {
			p.modeTicks -= PixelTransferDuration
			p.renderLine(bus)
			p.mode = HBlank
			bus.SetSTATBits(uint8(HBlank), p.lastCoincidence)
			if bus.STAT()&statHBlankInt != 0 {
				p.irq.Request(interrupts.LCDFlag)
			}
		}
	case HBlank:
		if p.modeTicks > HBlankDuration {
			p.modeTicks -= HBlankDuration
			ly := bus.LY() + 1
			bus.SetLY(ly)
			p.checkCoincidence(bus)
			if ly >= 144 {
				p.mode = VBlank
				bus.SetSTATBits(uint8(VBlank), p.lastCoincidence)
				p.irq.Request(interrupts.VBlankFlag)
				if bus.STAT()&statVBlankInt != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
				p.front = p.back
				frame = true
			} else {
				p.mode = OAMSearch
				bus.SetSTATBits(uint8(OAMSearch), p.lastCoincidence)
				if bus.STAT()&statOAMInterrupt != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
			}
		}
	case VBlank:
		if p.modeTicks > VBlankDuration {
			p.modeTicks -= VBlankDuration
			bus.SetLY(0)
			p.checkCoincidence(bus)
			p.mode = OAMSearch
			bus.SetSTATBits(uint8(OAMSearch), p.lastCoincidence)
			if bus.STAT()&statOAMInterrupt != 0 {
				p.irq.Request(interrupts.LCDFlag)
			}
		} else {
			// LY increments every 456 T-cycles while in VBlank, topping
			// out at 153.
			want := p.modeTicks / LineDuration
			for uint32(bus.LY())-144 < want && bus.LY() < 153 {
				bus.SetLY(bus.LY() + 1)
				p.checkCoincidence(bus)
			}
		}
	}

	return frame
}

func (p *PPU) checkCoincidence(bus Bus) {
	coincidence := bus.LY() == bus.LYC()
	bus.SetSTATBits(uint8(p.mode), coincidence)
	if coincidence && !p.lastCoincidence && bus.STAT()&statLYCInterrupt != 0 {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.lastCoincidence = coincidence
}

// renderLine draws background, window and sprites for the line that just
// finished Pixel-Transfer (bus.LY() at time of call).
func (p *PPU) renderLine(bus Bus) {
	ly := bus.LY()
	lcdc := bus.LCDC()

	if lcdc&lcdcBGEnable != 0 {
		p.renderBackground(bus, ly, lcdc)
	} else {
		for x := 0; x < ScreenWidth; x++ {
			p.back[ly][x] = palette.Shades[0]
		}
	}

	if lcdc&lcdcWindowEnable != 0 {
		p.renderWindow(bus, ly, lcdc)
	}

	if lcdc&lcdcObjEnable != 0 {
		p.renderSprites(bus, ly, lcdc)
	}
}

func (p *PPU) tileRow(bus Bus, lcdc uint8, tileMapBase uint16, mapX, mapY int, line int) ([8]uint8, paletteAttr) {
	vram0 := bus.VRAMBank(0)

	mapIndex := uint16(mapY%32)*32 + uint16(mapX%32)
	tileIndex := vram0[tileMapBase+mapIndex-0x8000]

	var attrByte uint8
	if p.cgb {
		attrByte = bus.VRAMBank(1)[tileMapBase+mapIndex-0x8000]
	}
	attr := paletteAttr(attrByte)

	row := line
	if attr.yFlip() {
		row = 7 - row
	}

	var addr uint16
	if lcdc&lcdcTileData != 0 {
		addr = 0x8000 + uint16(tileIndex)*16
	} else {
		addr = 0x9000 + uint16(int16(int8(tileIndex)))*16
	}
	bank := bus.VRAMBank(attr.bank())
	off := addr - 0x8000 + uint16(row)*2
	lo, hi := bank[off], bank[off+1]
	decoded := decodeRow(lo, hi)
	if attr.xFlip() {
		for i, j := 0, 7; i < j; i, j = i+1, j-1 {
			decoded[i], decoded[j] = decoded[j], decoded[i]
		}
	}
	return decoded, attr
}

// paletteAttr is the raw CGB tile-map attribute byte.
type paletteAttr uint8

func (a paletteAttr) priority() bool { return a&0x80 != 0 }
func (a paletteAttr) yFlip() bool    { return a&0x40 != 0 }
func (a paletteAttr) xFlip() bool    { return a&0x20 != 0 }
func (a paletteAttr) bank() uint8    { return uint8(a>>3) & 0x01 }
func (a paletteAttr) number() uint8  { return uint8(a) & 0x07 }

func (p *PPU) renderBackground(bus Bus, ly uint8, lcdc uint8) {
	scy, scx := bus.SCY(), bus.SCX()
	var tileMapBase uint16 = 0x9800
	if lcdc&lcdcBGTileMap != 0 {
		tileMapBase = 0x9C00
	}

	srcY := int(ly) + int(scy)
	mapY := srcY / 8
	line := srcY % 8

	for x := 0; x < ScreenWidth; x++ {
		srcX := x + int(scx)
		mapX := srcX / 8
		row, attr := p.tileRow(bus, lcdc, tileMapBase, mapX, mapY, line)
		colorIdx := row[srcX%8]

		if p.cgb {
			r, g, b := bus.BGColor(attr.number(), colorIdx)
			p.back[ly][x] = [3]uint8{r, g, b}
		} else {
			p.back[ly][x] = palette.Shade(bus.BGP(), colorIdx)
		}
	}
}

func (p *PPU) renderWindow(bus Bus, ly uint8, lcdc uint8) {
	wy, wx := bus.WY(), bus.WX()
	if ly < wy || wx > 166 || wy > 143 {
		return
	}

	var tileMapBase uint16 = 0x9800
	if lcdc&lcdcWindowTileMap != 0 {
		tileMapBase = 0x9C00
	}

	srcY := int(ly) - int(wy)
	mapY := srcY / 8
	line := srcY % 8

	startX := int(wx) - 7
	for x := 0; x < ScreenWidth; x++ {
		if x < startX {
			continue
		}
		srcX := x - startX
		mapX := srcX / 8
		row, attr := p.tileRow(bus, lcdc, tileMapBase, mapX, mapY, line)
		colorIdx := row[srcX%8]

		if p.cgb {
			r, g, b := bus.BGColor(attr.number(), colorIdx)
			p.back[ly][x] = [3]uint8{r, g, b}
		} else {
			p.back[ly][x] = palette.Shade(bus.BGP(), colorIdx)
		}
	}
}

func (p *PPU) renderSprites(bus Bus, ly uint8, lcdc uint8) {
	height := 8
	if lcdc&lcdcObjSize != 0 {
		height = 16
	}

	oam := bus.OAMBytes()
	for i := 0; i < 40; i++ {
		var raw [4]uint8
		copy(raw[:], oam[i*4:i*4+4])
		spr := decodeSprite(raw)
		if spr.offscreen() {
			continue
		}

		row := int(ly) - spr.ScreenY()
		if row < 0 || row >= height {
			continue
		}
		if spr.FlipY {
			row = height - 1 - row
		}

		tile := spr.Tile
		if height == 16 {
			tile &^= 0x01
			if row >= 8 {
				tile |= 0x01
				row -= 8
			}
		}

		bank := bus.VRAMBank(spr.CGBBank)
		addr := uint16(tile)*16 + uint16(row)*2
		lo, hi := bank[addr], bank[addr+1]
		decoded := decodeRow(lo, hi)
		if spr.FlipX {
			for a, b := 0, 7; a < b; a, b = a+1, b-1 {
				decoded[a], decoded[b] = decoded[b], decoded[a]
			}
		}

		for dx := 0; dx < 8; dx++ {
			x := spr.ScreenX() + dx
			if x < 0 || x >= ScreenWidth {
				continue
			}
			colorIdx := decoded[dx]
			if colorIdx == 0 {
				continue
			}
			if spr.Priority && p.back[ly][x] != palette.SentinelWhite {
				continue
			}

			if p.cgb {
				r, g, b := bus.ObjColor(spr.CGBPalette, colorIdx)
				p.back[ly][x] = [3]uint8{r, g, b}
			} else {
				reg := bus.OBP0()
				if spr.DMGPalette == 1 {
					reg = bus.OBP1()
				}
				p.back[ly][x] = palette.Shade(reg, colorIdx)
			}
		}
	}
}
