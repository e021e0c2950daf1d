// Package mmu provides the address space of the emulator core. Every
// 16-bit address is routed to exactly one backing region, or to the
// unmapped handler which reads as zero and ignores writes.
package mmu

import (
	"github.com/cespare/xxhash"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// MMU is the memory management unit. It handles all memory reads and
// writes to the 64kB address space.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0x0000 - 0x00FF - BOOT ROM (256B), while bootActive
	bootRAM    ram.RAM
	bootActive bool

	// 0x0100 - 0x3FFF - ROM (16kB - 256B)
	cart ram.RAM

	// 0x8000 - 0x9FFF - Video RAM (stub)

	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM ram.RAM

	// 0xFE00 - 0xFF7F - OAM, unusable & I/O registers (unmapped)

	// 0xFF80 - 0xFFFF - Zero Page RAM (128B)
	zRAM ram.RAM

	Log log.Logger
}

// Opt is a function that modifies an MMU instance.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithBootROM maps the given boot ROM in at 0x0000 - 0x00FF.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		m.SetBootROM(rom)
	}
}

// WithCartridge loads the given ROM image into the cartridge region.
func WithCartridge(rom []byte) Opt {
	return func(m *MMU) {
		m.LoadCartridge(rom)
	}
}

// New returns a new MMU with all regions zeroed.
func New(opts ...Opt) *MMU {
	m := &MMU{
		bootRAM: ram.NewRAM(uint32(types.BootEnd - types.BootStart)),
		cart:    ram.NewRAM(uint32(types.CartEnd - types.CartStart)),
		eRAM:    ram.NewRAM(uint32(types.ERAMEnd - types.ERAMStart)),
		wRAM:    ram.NewRAM(uint32(types.WRAMEnd - types.WRAMStart)),
		zRAM:    ram.NewRAM(0x80), // 128 bytes
		Log:     log.WithLevel(logrus.InfoLevel),
	}
	m.init()

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *MMU) init() {
	// setup raw memory
	addresses := []types.Address{
		{Read: m.readBoot, Write: m.writeBoot},
		{Read: readOffset(m.cart.Read, types.CartStart), Write: writeOffset(m.cart.Write, types.CartStart)},
		{Read: readOffset(m.eRAM.Read, types.ERAMStart), Write: writeOffset(m.eRAM.Write, types.ERAMStart)},
		{Read: readOffset(m.wRAM.Read, types.WRAMStart), Write: writeOffset(m.wRAM.Write, types.WRAMStart)},
		{Read: readOffset(m.zRAM.Read, types.HRAMStart), Write: writeOffset(m.zRAM.Write, types.HRAMStart)},
		{Read: unmappedRead, Write: unmappedWrite},
	}

	for i := 0; i < len(m.raw); i++ {
		addr := uint16(i)
		switch {
		case addr < types.BootEnd:
			m.raw[i] = &addresses[0]
		case addr >= types.CartStart && addr < types.CartEnd:
			m.raw[i] = &addresses[1]
		case addr >= types.ERAMStart && addr < types.ERAMEnd:
			m.raw[i] = &addresses[2]
		case addr >= types.WRAMStart && addr < types.EchoEnd: // echo wraps onto WRAM
			m.raw[i] = &addresses[3]
		case addr >= types.HRAMStart:
			m.raw[i] = &addresses[4]
		default: // 0x4000 - 0x9FFF (incl. VRAM stub), 0xFE00 - 0xFF7F
			m.raw[i] = &addresses[5]
		}
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func unmappedRead(uint16) uint8 { return 0 }

func unmappedWrite(uint16, uint8) {}

// readBoot reads the boot region, which is unmapped once the boot
// ROM has been disabled.
func (m *MMU) readBoot(addr uint16) uint8 {
	if !m.bootActive {
		return 0
	}
	return m.bootRAM.Read(addr)
}

func (m *MMU) writeBoot(addr uint16, v uint8) {
	if !m.bootActive {
		return
	}
	m.bootRAM.Write(addr, v)
}

// Read returns the value at the given address. Unmapped addresses
// read as 0.
func (m *MMU) Read(addr uint16) uint8 {
	return m.raw[addr].Read(addr)
}

// Write writes the value to the given address. Writes to unmapped
// addresses are dropped.
func (m *MMU) Write(addr uint16, value uint8) {
	m.raw[addr].Write(addr, value)
}

// Read16 returns the word at the given address, with the high byte
// at addr and the low byte at addr+1.
func (m *MMU) Read16(addr uint16) uint16 {
	return utils.BytesToUint16(m.Read(addr), m.Read(addr+1))
}

// Write16 writes the word to the given address, high byte first.
func (m *MMU) Write16(addr uint16, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	m.Write(addr, high)
	m.Write(addr+1, low)
}

// Update performs a read-modify-write of the byte at addr, resolving
// the address once. It returns the byte before and after fn was applied.
func (m *MMU) Update(addr uint16, fn func(uint8) uint8) (before, after uint8) {
	a := m.raw[addr]
	before = a.Read(addr)
	after = fn(before)
	a.Write(addr, after)
	return before, after
}

// LoadCartridge copies rom into the cartridge region. Offsets in rom
// are addresses, so the first 256 bytes (which the boot region covers)
// are skipped. Banking is not emulated, so anything past the first
// 16kB is discarded.
func (m *MMU) LoadCartridge(rom []byte) {
	size := int(types.CartEnd)
	if len(rom) > size {
		m.Log.Warnf("mmu: cartridge is %d bytes, only the first %d are mapped", len(rom), size)
		rom = rom[:size]
	}
	if len(rom) > int(types.CartStart) {
		copy(m.cart.Bytes(), rom[types.CartStart:])
	}
	m.Log.Debugf("mmu: loaded %d byte cartridge", len(rom))
}

// SetBootROM copies rom into 0x0000 - 0x00FF and maps the region in.
// A nil rom unmaps it.
func (m *MMU) SetBootROM(rom *boot.ROM) {
	m.bootActive = rom != nil
	if rom == nil {
		return
	}
	for i := uint16(0); i < boot.Size; i++ {
		m.bootRAM.Write(i, rom.Read(i))
	}
	m.Log.Debugf("mmu: mapped %s boot rom (%s)", rom.Model(), rom.Checksum())
}

// BootActive returns true while the boot ROM is mapped in.
func (m *MMU) BootActive() bool {
	return m.bootActive
}

// DisableBootROM unmaps the boot ROM. The boot region reads as 0 from
// then on.
func (m *MMU) DisableBootROM() {
	if m.bootActive {
		m.Log.Debugf("mmu: boot rom unmapped")
	}
	m.bootActive = false
}

// Hash returns a fingerprint of every backing region and the boot
// overlay state.
func (m *MMU) Hash() uint64 {
	d := xxhash.New()
	d.Write(m.bootRAM.Bytes())
	d.Write(m.cart.Bytes())
	d.Write(m.eRAM.Bytes())
	d.Write(m.wRAM.Bytes())
	d.Write(m.zRAM.Bytes())
	if m.bootActive {
		d.Write([]byte{1})
	} else {
		d.Write([]byte{0})
	}
	return d.Sum64()
}
