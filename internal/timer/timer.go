// Package timer emulates the DIV/TIMA/TMA/TAC timer registers.
package timer

import "github.com/ardentgb/gbcore/internal/interrupts"

const cpuClock = 4194304

const (
	divClock  = cpuClock / 16384
	tacClock0 = cpuClock / 4096
	tacClock1 = cpuClock / 262144
	tacClock2 = cpuClock / 65536
	tacClock3 = cpuClock / 16384
)

const (
	DIV  uint16 = 0xFF04
	TIMA uint16 = 0xFF05
	TMA  uint16 = 0xFF06
	TAC  uint16 = 0xFF07
)

// Registers is the minimal surface the timer needs of the MMU.
type Registers interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Controller advances DIV and TIMA by accumulating elapsed T-cycles
// against two free-running counters, an accumulator-modulo scheme
// rather than absolute-cycle scheduling.
type Controller struct {
	divCount  int
	timaCount int

	irq *interrupts.Service
}

// NewController returns a timer controller bound to the given
// interrupt service, used to request the timer interrupt on TIMA
// overflow.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Tick advances the timer by the given number of elapsed T-cycles.
func (c *Controller) Tick(mmu Registers, ticks uint8) {
	c.divCount += int(ticks)
	if c.divCount >= divClock {
		mmu.Write(DIV, mmu.Read(DIV)+1)
		c.divCount %= divClock
	}

	tac := mmu.Read(TAC)
	if tac&0x04 == 0 {
		return
	}

	c.timaCount += int(ticks)
	clock := timaClock(tac)
	if c.timaCount >= clock {
		tima := mmu.Read(TIMA)
		if tima == 0xFF {
			mmu.Write(TIMA, mmu.Read(TMA))
			c.irq.Request(interrupts.TimerFlag)
		} else {
			mmu.Write(TIMA, tima+1)
		}
		c.timaCount %= clock
	}
}

func timaClock(tac uint8) int {
	switch tac & 0x03 {
	case 0:
		return tacClock0
	case 1:
		return tacClock1
	case 2:
		return tacClock2
	default:
		return tacClock3
	}
}
