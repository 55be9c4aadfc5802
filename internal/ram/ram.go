// Package ram provides a fixed-size byte store used for the internal
// WRAM, HRAM, VRAM, and OAM scratch regions.
package ram

import "fmt"

// RAM represents an addressable block of memory, offset from zero.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Block is a flat, fixed-size RAM region backed by a slice.
type Block struct {
	data []byte
}

// New returns a new Block of the given size, zero-filled.
func New(size int) *Block {
	return &Block{data: make([]byte, size)}
}

func (b *Block) Read(address uint16) uint8 {
	if int(address) >= len(b.data) {
		panic(fmt.Sprintf("ram: read out of bounds: %#04x (size %d)", address, len(b.data)))
	}
	return b.data[address]
}

func (b *Block) Write(address uint16, value uint8) {
	if int(address) >= len(b.data) {
		panic(fmt.Sprintf("ram: write out of bounds: %#04x (size %d)", address, len(b.data)))
	}
	b.data[address] = value
}

// Len returns the size of the block in bytes.
func (b *Block) Len() int {
	return len(b.data)
}

// Raw exposes the backing slice, for components (e.g. the PPU tile
// fetch path) that need direct byte-range access rather than single
// addressed reads.
func (b *Block) Raw() []byte {
	return b.data
}
