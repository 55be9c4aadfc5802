package system

import (
	"testing"

	"github.com/ardentgb/gbcore/internal/joypad"
)

// buildROM returns a blank ROM-only cartridge image with program placed
// at 0x0100, the conventional CPU entry point.
func buildROM(program []byte) []byte {
	rom := make([]byte, 32*1024)
	copy(rom[0x0100:], program)
	return rom
}

func newTestSystem(t *testing.T, program []byte) *System {
	t.Helper()
	s, err := New(buildROM(program))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// TestNewPostBootState exercises the post-reset state a fresh System
// starts in: no boot ROM runs, so the CPU begins at 0x0100.
func TestNewPostBootState(t *testing.T) {
	s := newTestSystem(t, nil)
	if s.cpu.PC != 0x0100 {
		t.Fatalf("PC = %#04x, want 0x0100", s.cpu.PC)
	}
	if s.cpu.SP != 0xFFFE {
		t.Fatalf("SP = %#04x, want 0xFFFE", s.cpu.SP)
	}
}

// TestTickFillsScreenBuffer checks the host-facing contract: after one
// Tick, screen holds a rendered RGB888 frame rather than the all-zero
// buffer it started as.
func TestTickFillsScreenBuffer(t *testing.T) {
	s := newTestSystem(t, []byte{0x00, 0x18, 0xFD}) // NOP; JR -3
	screen := make([]byte, FrameBytes)
	s.Tick(screen, 0)

	allZero := true
	for _, b := range screen {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("expected screen to be filled with a rendered frame, got all zero bytes")
	}
}

func TestTickRejectsUndersizedBuffer(t *testing.T) {
	s := newTestSystem(t, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected Tick to panic on an undersized screen buffer")
		}
	}()
	s.Tick(make([]byte, 10), 0)
}

// TestScenarioNopJumpLoop is end-to-end scenario 1: NOP; JR -3 loops
// forever between the two instruction boundaries (0x0100, about to
// execute NOP, and 0x0101, about to execute JR), and never raises an
// interrupt since nothing touches IE/IF.
func TestScenarioNopJumpLoop(t *testing.T) {
	s := newTestSystem(t, []byte{0x00, 0x18, 0xFD})

	var elapsed int
	for elapsed < 1_000_000 {
		elapsed += int(s.cpu.Tick())
		if s.cpu.PC != 0x0100 && s.cpu.PC != 0x0101 {
			t.Fatalf("PC escaped the loop: %#04x", s.cpu.PC)
		}
	}
	if s.irq.Flag != 0 {
		t.Fatalf("IF = %#02x, want 0 (no interrupt should ever fire)", s.irq.Flag)
	}
}

// TestScenarioHaltParksCPU is end-to-end scenario 2: LD A,5; ADD A,3;
// HALT leaves A=8 with all flags clear, and further ticks leave PC
// parked on the HALT opcode.
func TestScenarioHaltParksCPU(t *testing.T) {
	s := newTestSystem(t, []byte{0x3E, 0x05, 0xC6, 0x03, 0x76})

	s.cpu.Tick() // LD A,5
	s.cpu.Tick() // ADD A,3
	s.cpu.Tick() // HALT

	if s.cpu.A != 8 {
		t.Fatalf("A = %d, want 8", s.cpu.A)
	}
	if s.cpu.F != 0 {
		t.Fatalf("F = %#02x, want 0 (Z=N=H=C=0)", s.cpu.F)
	}

	pc := s.cpu.PC
	for i := 0; i < 10; i++ {
		s.cpu.Tick()
	}
	if s.cpu.PC != pc {
		t.Fatalf("PC moved while halted: %#04x -> %#04x", pc, s.cpu.PC)
	}
}

// TestScenarioDecZeroFlagFalseOnWrap is end-to-end scenario 3: XOR A;
// DEC A; JR Z,-3 wraps A to 0xFF on the first decrement, so Z is never
// set and the conditional jump is never taken.
func TestScenarioDecZeroFlagFalseOnWrap(t *testing.T) {
	s := newTestSystem(t, []byte{0xAF, 0x3D, 0x28, 0xFD})

	s.cpu.Tick() // XOR A
	s.cpu.Tick() // DEC A
	s.cpu.Tick() // JR Z,-3 (not taken)

	if s.cpu.A != 0xFF {
		t.Fatalf("A = %#02x, want 0xFF", s.cpu.A)
	}
	if s.cpu.F&0x80 != 0 {
		t.Fatal("Z flag set, want clear")
	}
	if s.cpu.F&0x40 == 0 {
		t.Fatal("N flag clear, want set")
	}
	if s.cpu.F&0x20 == 0 {
		t.Fatal("H flag clear, want set")
	}
	if s.cpu.PC != 0x0104 {
		t.Fatalf("PC = %#04x, want 0x0104 (loop not taken)", s.cpu.PC)
	}
}

// TestScenarioOAMDMACopy is end-to-end scenario 5: writing the source
// page to 0xFF46 arms a copy that lands on the next DMA tick.
func TestScenarioOAMDMACopy(t *testing.T) {
	s := newTestSystem(t, nil)

	for i := uint16(0); i < 0xA0; i++ {
		s.mmu.Write(0xC000+i, uint8(i))
	}
	s.mmu.Write(0xFF46, 0xC0)
	s.dma.Tick(s.mmu)

	for i := uint16(0); i < 0xA0; i++ {
		want := uint8(i)
		if got := s.mmu.Read(0xFE00 + i); got != want {
			t.Fatalf("OAM[%#02x] = %#02x, want %#02x", i, got, want)
		}
	}
}

// TestScenarioJoypadPressRaisesInterrupt is end-to-end scenario 6: a
// press edge raises the joypad interrupt, and selecting the button row
// multiplexes the cached button nibble onto P1's low bits.
func TestScenarioJoypadPressRaisesInterrupt(t *testing.T) {
	s := newTestSystem(t, nil)

	s.Tick(make([]byte, FrameBytes), 0)
	if s.irq.Flag&(1<<4) != 0 {
		t.Fatal("joypad interrupt raised with no keys pressed")
	}

	s.Tick(make([]byte, FrameBytes), joypad.ButtonStart)
	if s.irq.Flag&(1<<4) == 0 {
		t.Fatal("joypad interrupt not raised on press edge")
	}

	s.mmu.Write(0xFF00, 0x10) // select the button row
	got := s.mmu.Read(0xFF00)
	if got != 0xD7 {
		t.Fatalf("P1 = %#02x, want 0xD7 (START held, button row selected)", got)
	}
}

func TestNewRejectsUnknownCartridgeType(t *testing.T) {
	rom := make([]byte, 32*1024)
	rom[0x147] = 0x21 // not in the recognized-type table
	if _, err := New(rom); err == nil {
		t.Fatal("expected an error for an unrecognized cartridge type")
	}
}
