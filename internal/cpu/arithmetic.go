package cpu

import "fmt"

// addA adds n, plus the carry flag if withCarry, to the A Register.
//
//	ADD A, n
//	ADC A, n
func (c *CPU) addA(n uint8, withCarry bool) {
	result, flags := Add8(c.A, n, withCarry && c.IsFlagSet(FlagCarry))
	c.A = result
	c.latch(flags)
}

// subA subtracts n, plus the carry flag if withCarry, from the A Register.
//
//	SUB A, n
//	SBC A, n
func (c *CPU) subA(n uint8, withCarry bool) {
	result, flags := Sub8(c.A, n, withCarry && c.IsFlagSet(FlagCarry))
	c.A = result
	c.latch(flags)
}

// increment the given operand and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) increment(r Reg8) {
	c.modify(r, func(v uint8) uint8 {
		result, flags := Inc8(v, c.IsFlagSet(FlagCarry))
		c.latch(flags)
		return result
	})
}

// decrement the given operand and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) decrement(r Reg8) {
	c.modify(r, func(v uint8) uint8 {
		result, flags := Dec8(v, c.IsFlagSet(FlagCarry))
		c.latch(flags)
		return result
	})
}

// addHLRR adds the given register pair to HL.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
func (c *CPU) addHLRR(p Pair) {
	result, flags := Add16(c.HL.Uint16(), c.Pair(p), c.IsFlagSet(FlagZero))
	c.HL.SetUint16(result)
	c.latch(flags)
}

// decimalAdjust corrects A to hold a BCD result.
//
//	DAA
func (c *CPU) decimalAdjust() {
	result, flags := DAA(c.A, c.Flags())
	c.A = result
	c.latch(flags)
}

func init() {
	for r := RegB; r <= RegA; r++ {
		reg := r
		cycles := uint8(1)
		if reg == RegHLIndirect {
			cycles = 3
		}

		// 0x04, 0x0C, ... 0x3C - INC r
		DefineInstruction(0x04|uint8(reg)<<3, fmt.Sprintf("INC %s", reg), func(c *CPU, _ []byte) {
			c.increment(reg)
		}, Target(reg), Cycles(cycles))
		// 0x05, 0x0D, ... 0x3D - DEC r
		DefineInstruction(0x05|uint8(reg)<<3, fmt.Sprintf("DEC %s", reg), func(c *CPU, _ []byte) {
			c.decrement(reg)
		}, Target(reg), Cycles(cycles))
	}

	for p := PairBC; p <= PairSP; p++ {
		pair := p

		// 0x03, 0x13, 0x23, 0x33 - INC rr
		DefineInstruction(0x03|uint8(pair)<<4, fmt.Sprintf("INC %s", pair), func(c *CPU, _ []byte) {
			c.SetPair(pair, c.Pair(pair)+1)
		}, Cycles(2))
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
		DefineInstruction(0x0B|uint8(pair)<<4, fmt.Sprintf("DEC %s", pair), func(c *CPU, _ []byte) {
			c.SetPair(pair, c.Pair(pair)-1)
		}, Cycles(2))
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, rr
		DefineInstruction(0x09|uint8(pair)<<4, fmt.Sprintf("ADD HL, %s", pair), func(c *CPU, _ []byte) {
			c.addHLRR(pair)
		}, Cycles(2))
	}

	// 0x80 - 0x9F - ADD/ADC/SUB/SBC A, r
	for r := RegB; r <= RegA; r++ {
		reg := r
		cycles := uint8(1)
		if reg == RegHLIndirect {
			cycles = 2
		}

		DefineInstruction(0x80+uint8(reg), fmt.Sprintf("ADD A, %s", reg), func(c *CPU, _ []byte) {
			c.addA(c.Register(reg), false)
		}, Target(reg), Cycles(cycles))
		DefineInstruction(0x88+uint8(reg), fmt.Sprintf("ADC A, %s", reg), func(c *CPU, _ []byte) {
			c.addA(c.Register(reg), true)
		}, Target(reg), Cycles(cycles))
		DefineInstruction(0x90+uint8(reg), fmt.Sprintf("SUB A, %s", reg), func(c *CPU, _ []byte) {
			c.subA(c.Register(reg), false)
		}, Target(reg), Cycles(cycles))
		DefineInstruction(0x98+uint8(reg), fmt.Sprintf("SBC A, %s", reg), func(c *CPU, _ []byte) {
			c.subA(c.Register(reg), true)
		}, Target(reg), Cycles(cycles))
	}

	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU, operands []byte) { c.addA(operands[0], false) }, Immediate8(), Cycles(2))
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU, operands []byte) { c.addA(operands[0], true) }, Immediate8(), Cycles(2))
	DefineInstruction(0xD6, "SUB A, d8", func(c *CPU, operands []byte) { c.subA(operands[0], false) }, Immediate8(), Cycles(2))
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU, operands []byte) { c.subA(operands[0], true) }, Immediate8(), Cycles(2))

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, operands []byte) {
		result, flags := AddSigned(c.SP, operands[0])
		c.SP = result
		c.latch(flags)
	}, Immediate8(), Cycles(4))

	DefineInstruction(0x27, "DAA", func(c *CPU, _ []byte) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []byte) {
		c.A = 0xFF ^ c.A
		c.SetFlag(FlagSubtract, true)
		c.SetFlag(FlagHalfCarry, true)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []byte) {
		c.setFlags(c.IsFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []byte) {
		c.setFlags(c.IsFlagSet(FlagZero), false, false, !c.IsFlagSet(FlagCarry))
	})
}
