package cartridge

// inert backs any recognized cartridge type the specification doesn't
// require to actually bank-switch (MBC2, MBC3, MMM01, MBC6, MBC7,
// Pocket Camera, Bandai TAMA5, HuC1/HuC3). It maps the first 32 KiB of
// ROM (banks 0 and 1) at 0x0000-0x7FFF and backs 0xA000-0xBFFF with a flat RAM block sized
// from the header, so construction and plain reads/writes never fail
// even though no bank switching occurs.
type inert struct {
	rom []byte
	ram []byte
}

func newInert(rom []byte, ramSize int) *inert {
	return &inert{rom: rom, ram: make([]byte, ramSize)}
}

func (i *inert) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		if int(address) < len(i.rom) {
			return i.rom[address]
		}
		return 0xFF
	case address >= 0xA000 && address < 0xC000:
		offset := int(address - 0xA000)
		if offset < len(i.ram) {
			return i.ram[offset]
		}
		return 0xFF
	}
	return 0xFF
}

func (i *inert) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		offset := int(address - 0xA000)
		if offset < len(i.ram) {
			i.ram[offset] = value
		}
	}
}

func (i *inert) SaveRAM() []byte  { return i.ram }
func (i *inert) LoadRAM(d []byte) { copy(i.ram, d) }
