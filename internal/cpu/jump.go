package cpu

import "fmt"

// jumpRelative adds the signed displacement e to PC, which already
// points past the operand.
//
//	JR e
func (c *CPU) jumpRelative(e uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(e)))
}

// call pushes the address of the next instruction and jumps to addr.
//
//	CALL nn
func (c *CPU) call(addr uint16) {
	c.Push(c.PC)
	c.PC = addr
}

// ret pops the return address into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.Pop()
}

// rst pushes the current PC and jumps to the fixed vector n*8.
//
//	RST n
func (c *CPU) rst(vector uint16) {
	c.Push(c.PC)
	c.PC = vector
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []byte) {
		c.jumpRelative(operands[0])
	}, Immediate8(), Cycles(3))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []byte) {
		c.PC = word(operands)
	}, Immediate16(), Cycles(4))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ []byte) {
		c.PC = c.HL.Uint16()
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []byte) {
		c.call(word(operands))
	}, Immediate16(), Cycles(6))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []byte) {
		c.ret()
	}, Cycles(4))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []byte) {
		c.ret()
		c.IME = true
	}, Cycles(4))

	for cc := uint8(0); cc < 4; cc++ {
		cond := cc
		name := conditionNames[cond]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20|cond<<3, fmt.Sprintf("JR %s, r8", name), func(c *CPU, operands []byte) {
			if c.condition(cond) {
				c.jumpRelative(operands[0])
			}
		}, Immediate8(), Cycles(2), Branch(3))
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2|cond<<3, fmt.Sprintf("JP %s, a16", name), func(c *CPU, operands []byte) {
			if c.condition(cond) {
				c.PC = word(operands)
			}
		}, Immediate16(), Cycles(3), Branch(4))
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4|cond<<3, fmt.Sprintf("CALL %s, a16", name), func(c *CPU, operands []byte) {
			if c.condition(cond) {
				c.call(word(operands))
			}
		}, Immediate16(), Cycles(3), Branch(6))
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0|cond<<3, fmt.Sprintf("RET %s", name), func(c *CPU, _ []byte) {
			if c.condition(cond) {
				c.ret()
			}
		}, Cycles(2), Branch(5))
	}

	// 0xC7, 0xCF, ... 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU, _ []byte) {
			c.rst(vector)
		}, Cycles(4))
	}
}
