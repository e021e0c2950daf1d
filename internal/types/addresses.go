package types

// Address represents a single entry of the address space routing table.
// Each of the 65536 addresses resolves to exactly one Address, which
// decides where reads and writes to that address end up.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}

// Region boundaries of the address space. Ranges are inclusive of the
// start and exclusive of the end.
const (
	// BootStart to BootEnd holds the boot ROM while it is mapped in,
	// and is unmapped once it is disabled.
	BootStart uint16 = 0x0000
	BootEnd   uint16 = 0x0100

	// CartStart to CartEnd is the fixed cartridge ROM bank.
	CartStart uint16 = 0x0100
	CartEnd   uint16 = 0x4000

	// VRAMStart to VRAMEnd is video RAM. Video is an external
	// collaborator so the region is a stub.
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0xA000

	// ERAMStart to ERAMEnd is external (cartridge) RAM.
	ERAMStart uint16 = 0xA000
	ERAMEnd   uint16 = 0xC000

	// WRAMStart to WRAMEnd is working RAM.
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xE000

	// EchoStart to EchoEnd mirrors WRAMStart to WRAMStart+0x1E00.
	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFE00

	// HRAMStart to the top of the address space is high RAM, which
	// includes the interrupt enable register at 0xFFFF.
	HRAMStart uint16 = 0xFF80
)
