package cpu

// The accumulator rotates share their arithmetic with the CB prefixed
// forms, but always reset the zero flag.

// rotateA applies fn to the A register, latching its flags with Z reset.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out.
func (c *CPU) rotateA(fn func(uint8) (uint8, Flags)) {
	result, flags := fn(c.A)
	flags.Zero = false
	c.A = result
	c.latch(flags)
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU, _ []byte) {
		c.rotateA(RotateLeftCircular)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU, _ []byte) {
		c.rotateA(RotateRightCircular)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU, _ []byte) {
		carry := c.IsFlagSet(FlagCarry)
		c.rotateA(func(n uint8) (uint8, Flags) { return RotateLeftThroughCarry(n, carry) })
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU, _ []byte) {
		carry := c.IsFlagSet(FlagCarry)
		c.rotateA(func(n uint8) (uint8, Flags) { return RotateRightThroughCarry(n, carry) })
	})
}
