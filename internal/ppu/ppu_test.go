package ppu

import (
	"testing"

	"github.com/ardentgb/gbcore/internal/interrupts"
	"github.com/ardentgb/gbcore/pkg/log"
)

// fakeBus is a minimal Bus backing the handful of registers the PPU
// touches, standing in for the MMU.
type fakeBus struct {
	lcdc, stat, scy, scx, ly, lyc uint8
	bgp, obp0, obp1, wy, wx       uint8

	vram [2][0x2000]byte
	oam  [0xA0]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{lcdc: lcdcDisplayEnable}
}

func (b *fakeBus) LCDC() uint8 { return b.lcdc }
func (b *fakeBus) STAT() uint8 { return b.stat }
func (b *fakeBus) SCY() uint8  { return b.scy }
func (b *fakeBus) SCX() uint8  { return b.scx }
func (b *fakeBus) LY() uint8   { return b.ly }
func (b *fakeBus) LYC() uint8  { return b.lyc }
func (b *fakeBus) BGP() uint8  { return b.bgp }
func (b *fakeBus) OBP0() uint8 { return b.obp0 }
func (b *fakeBus) OBP1() uint8 { return b.obp1 }
func (b *fakeBus) WY() uint8   { return b.wy }
func (b *fakeBus) WX() uint8   { return b.wx }

func (b *fakeBus) SetLY(v uint8) { b.ly = v }
func (b *fakeBus) SetSTATBits(mode uint8, coincidence bool) {
	b.stat = (b.stat &^ 0x07) | (mode & 0x03)
	if coincidence {
		b.stat |= 0x04
	}
}

func (b *fakeBus) VRAMBank(bank uint8) []byte { return b.vram[bank&1][:] }
func (b *fakeBus) OAMBytes() []byte           { return b.oam[:] }
func (b *fakeBus) BGColor(pal, color uint8) (uint8, uint8, uint8)  { return 0, 0, 0 }
func (b *fakeBus) ObjColor(pal, color uint8) (uint8, uint8, uint8) { return 0, 0, 0 }

// tickN advances p by total T-cycles in chunks small enough to fit the
// uint8 parameter Tick takes.
func tickN(p *PPU, bus Bus, total int) (frames int) {
	for total > 0 {
		chunk := 24
		if total < chunk {
			chunk = total
		}
		if p.Tick(bus, uint8(chunk)) {
			frames++
		}
		total -= chunk
	}
	return
}

func TestModeDurationsSumToOneScanline(t *testing.T) {
	if LineDuration != 456 {
		t.Fatalf("LineDuration = %d, want 456", LineDuration)
	}
	if OAMSearchDuration+PixelTransferDuration+HBlankDuration != 456 {
		t.Fatal("mode durations do not sum to 456")
	}
}

func TestOneFullFrameSignalsExactlyOnce(t *testing.T) {
	bus := newFakeBus()
	p := New(interrupts.NewService(), false, log.NewNullLogger())

	// One T-cycle past the frame: VBlank ends once its count exceeds
	// VBlankDuration.
	frames := tickN(p, bus, LineDuration*144+VBlankDuration+1)
	if frames != 1 {
		t.Fatalf("frames signaled = %d, want 1", frames)
	}
	if bus.ly != 0 {
		t.Fatalf("LY after one frame = %d, want 0", bus.ly)
	}
}

func TestLYCyclesThroughAllScanlinesPerFrame(t *testing.T) {
	bus := newFakeBus()
	p := New(interrupts.NewService(), false, log.NewNullLogger())

	seen := map[uint8]bool{}
	total := LineDuration*144 + VBlankDuration
	step := 24
	for done := 0; done < total; done += step {
		p.Tick(bus, uint8(step))
		seen[bus.ly] = true
	}
	for ly := uint8(0); ly < 154; ly++ {
		if !seen[ly] {
			t.Errorf("LY=%d never observed in one frame", ly)
		}
	}
}

func TestDisabledLCDFreeRunsAndSignalsFrame(t *testing.T) {
	bus := newFakeBus()
	bus.lcdc = 0 // display disabled
	p := New(interrupts.NewService(), false, log.NewNullLogger())

	frames := tickN(p, bus, FullFrame)
	if frames != 1 {
		t.Fatalf("frames signaled while disabled = %d, want 1", frames)
	}
}

func TestLYCCoincidenceRaisesLCDStat(t *testing.T) {
	bus := newFakeBus()
	bus.lyc = 1
	bus.stat = statLYCInterrupt
	irq := interrupts.NewService()
	p := New(irq, false, log.NewNullLogger())

	// advance past line 0 into line 1; HBlank ends once its count
	// exceeds HBlankDuration
	tickN(p, bus, LineDuration+1)

	if bus.stat&statCoincidence == 0 {
		t.Fatal("coincidence bit not set when LY == LYC")
	}
	if irq.Flag&(1<<interrupts.LCDFlag) == 0 {
		t.Fatal("LCD-STAT interrupt not requested on LYC coincidence")
	}
}
