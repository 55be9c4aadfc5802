package timer

import (
	"testing"

	"github.com/ardentgb/gbcore/internal/interrupts"
)

// fakeBus is a minimal Registers implementation backing the four timer
// addresses, for tests that don't need a full MMU.
type fakeBus struct {
	regs map[uint16]uint8
}

func newFakeBus() *fakeBus {
	return &fakeBus{regs: map[uint16]uint8{DIV: 0, TIMA: 0, TMA: 0, TAC: 0}}
}

func (b *fakeBus) Read(address uint16) uint8         { return b.regs[address] }
func (b *fakeBus) Write(address uint16, value uint8) { b.regs[address] = value }

// tickN advances c by total T-cycles in chunks small enough to fit the
// uint8 parameter Tick takes, matching how the orchestrator feeds it one
// instruction's cost at a time.
func tickN(c *Controller, bus *fakeBus, total int) {
	for total > 0 {
		chunk := 4
		if total < chunk {
			chunk = total
		}
		c.Tick(bus, uint8(chunk))
		total -= chunk
	}
}

func TestDIVIncrementsAndWraps(t *testing.T) {
	bus := newFakeBus()
	c := NewController(interrupts.NewService())

	tickN(c, bus, divClock*256)
	if got := bus.Read(DIV); got != 0 {
		t.Fatalf("DIV after 256 increments = %d, want 0 (wrapped)", got)
	}

	tickN(c, bus, divClock)
	if got := bus.Read(DIV); got != 1 {
		t.Fatalf("DIV = %d, want 1", got)
	}
}

func TestTIMADisabledByDefault(t *testing.T) {
	bus := newFakeBus()
	c := NewController(interrupts.NewService())

	tickN(c, bus, tacClock0*10)
	if got := bus.Read(TIMA); got != 0 {
		t.Fatalf("TIMA = %d, want 0 (timer disabled)", got)
	}
}

func TestTIMAOverflowReloadsFromTMAAndRaisesInterrupt(t *testing.T) {
	bus := newFakeBus()
	irq := interrupts.NewService()
	c := NewController(irq)

	bus.Write(TAC, 0x05) // enabled, clock select 01 (CPUCLOCK/262144)
	bus.Write(TMA, 0x10)
	bus.Write(TIMA, 0xFF)

	tickN(c, bus, tacClock1)

	if got := bus.Read(TIMA); got != 0x10 {
		t.Fatalf("TIMA after overflow = %#02x, want 0x10 (reloaded from TMA)", got)
	}
	if irq.Flag&(1<<interrupts.TimerFlag) == 0 {
		t.Fatal("timer interrupt not requested on TIMA overflow")
	}
}

func TestTIMAIncrementsAtSelectedRate(t *testing.T) {
	tests := []struct {
		name  string
		tac   uint8
		clock int
	}{
		{"4096Hz", 0x04, tacClock0},
		{"262144Hz", 0x05, tacClock1},
		{"65536Hz", 0x06, tacClock2},
		{"16384Hz", 0x07, tacClock3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := newFakeBus()
			c := NewController(interrupts.NewService())
			bus.Write(TAC, tt.tac)

			tickN(c, bus, tt.clock)
			if got := bus.Read(TIMA); got != 1 {
				t.Fatalf("TIMA = %d, want 1 after one full period", got)
			}
		})
	}
}
