package cpu

import "fmt"

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) and(n uint8) {
	result, flags := And(c.A, n)
	c.A = result
	c.latch(flags)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) or(n uint8) {
	result, flags := Or(c.A, n)
	c.A = result
	c.latch(flags)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) xor(n uint8) {
	result, flags := Xor(c.A, n)
	c.A = result
	c.latch(flags)
}

// compare compares n to the A Register, without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) compare(n uint8) {
	_, flags := Sub8(c.A, n, false)
	c.latch(flags)
}

func init() {
	// 0xA0 - 0xBF - AND/XOR/OR/CP r
	for r := RegB; r <= RegA; r++ {
		reg := r
		cycles := uint8(1)
		if reg == RegHLIndirect {
			cycles = 2
		}

		DefineInstruction(0xA0+uint8(reg), fmt.Sprintf("AND %s", reg), func(c *CPU, _ []byte) {
			c.and(c.Register(reg))
		}, Target(reg), Cycles(cycles))
		DefineInstruction(0xA8+uint8(reg), fmt.Sprintf("XOR %s", reg), func(c *CPU, _ []byte) {
			c.xor(c.Register(reg))
		}, Target(reg), Cycles(cycles))
		DefineInstruction(0xB0+uint8(reg), fmt.Sprintf("OR %s", reg), func(c *CPU, _ []byte) {
			c.or(c.Register(reg))
		}, Target(reg), Cycles(cycles))
		DefineInstruction(0xB8+uint8(reg), fmt.Sprintf("CP %s", reg), func(c *CPU, _ []byte) {
			c.compare(c.Register(reg))
		}, Target(reg), Cycles(cycles))
	}

	DefineInstruction(0xE6, "AND d8", func(c *CPU, operands []byte) { c.and(operands[0]) }, Immediate8(), Cycles(2))
	DefineInstruction(0xEE, "XOR d8", func(c *CPU, operands []byte) { c.xor(operands[0]) }, Immediate8(), Cycles(2))
	DefineInstruction(0xF6, "OR d8", func(c *CPU, operands []byte) { c.or(operands[0]) }, Immediate8(), Cycles(2))
	DefineInstruction(0xFE, "CP d8", func(c *CPU, operands []byte) { c.compare(operands[0]) }, Immediate8(), Cycles(2))
}
