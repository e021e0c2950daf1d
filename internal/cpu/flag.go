package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags an ALU operation latches.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into the layout of the F register.
func (f Flags) Byte() uint8 {
	var b uint8
	b = bits.Assign(b, FlagZero, f.Zero)
	b = bits.Assign(b, FlagSubtract, f.Subtract)
	b = bits.Assign(b, FlagHalfCarry, f.HalfCarry)
	b = bits.Assign(b, FlagCarry, f.Carry)
	return b
}

// FlagsFromByte unpacks the top nibble of an F register value.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, FlagZero),
		Subtract:  bits.Test(b, FlagSubtract),
		HalfCarry: bits.Test(b, FlagHalfCarry),
		Carry:     bits.Test(b, FlagCarry),
	}
}

// SetFlag sets or clears a single flag. The low nibble of F does not
// exist in hardware, so it is cleared on every write.
func (c *CPU) SetFlag(flag Flag, value bool) {
	c.F = bits.Assign(c.F, flag, value) & 0xF0
}

// IsFlagSet returns true if the given flag is set.
func (c *CPU) IsFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// Flags returns the current state of the flags.
func (c *CPU) Flags() Flags {
	return FlagsFromByte(c.F)
}

// setFlags latches all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.latch(Flags{zero, subtract, halfCarry, carry})
}

func (c *CPU) latch(f Flags) {
	c.F = f.Byte()
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.IsFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags are set.
func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if c.IsFlagSet(flag) {
			return false
		}
	}
	return true
}
