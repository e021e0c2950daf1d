package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// word assembles the little endian immediate operand of a 16-bit
// instruction.
func word(operands []byte) uint16 {
	return utils.BytesToUint16(operands[1], operands[0])
}

// storeIndirect stores A at the address held by the pair, then adjusts
// HL by delta for the (HL+) and (HL-) forms.
//
//	LD (rr), A
func (c *CPU) storeIndirect(p Pair, delta int) {
	addr := c.Pair(p)
	c.bus.Write(addr, c.A)
	if delta != 0 {
		c.HL.SetUint16(uint16(int(addr) + delta))
	}
}

// loadIndirect loads A from the address held by the pair, then adjusts
// HL by delta for the (HL+) and (HL-) forms.
//
//	LD A, (rr)
func (c *CPU) loadIndirect(p Pair, delta int) {
	addr := c.Pair(p)
	c.A = c.bus.Read(addr)
	if delta != 0 {
		c.HL.SetUint16(uint16(int(addr) + delta))
	}
}

func init() {
	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for d := RegB; d <= RegA; d++ {
		for s := RegB; s <= RegA; s++ {
			if d == RegHLIndirect && s == RegHLIndirect {
				continue
			}
			dst, src := d, s

			cycles := uint8(1)
			target := dst
			if dst == RegHLIndirect || src == RegHLIndirect {
				cycles = 2
				target = RegHLIndirect
			}

			DefineInstruction(0x40|uint8(dst)<<3|uint8(src), fmt.Sprintf("LD %s, %s", dst, src), func(c *CPU, _ []byte) {
				c.SetRegister(dst, c.Register(src))
			}, Target(target), Cycles(cycles))
		}
	}

	// 0x06, 0x0E, ... 0x3E - LD r, d8
	for r := RegB; r <= RegA; r++ {
		reg := r
		cycles := uint8(2)
		if reg == RegHLIndirect {
			cycles = 3
		}
		DefineInstruction(0x06|uint8(reg)<<3, fmt.Sprintf("LD %s, d8", reg), func(c *CPU, operands []byte) {
			c.SetRegister(reg, operands[0])
		}, Immediate8(), Cycles(cycles))
	}

	// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
	for p := PairBC; p <= PairSP; p++ {
		pair := p
		DefineInstruction(0x01|uint8(pair)<<4, fmt.Sprintf("LD %s, d16", pair), func(c *CPU, operands []byte) {
			c.SetPair(pair, word(operands))
		}, Immediate16(), Cycles(3))
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, _ []byte) { c.storeIndirect(PairBC, 0) }, Indirect(), Cycles(2))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, _ []byte) { c.storeIndirect(PairDE, 0) }, Indirect(), Cycles(2))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, _ []byte) { c.storeIndirect(PairHL, 1) }, Indirect(), Cycles(2))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, _ []byte) { c.storeIndirect(PairHL, -1) }, Indirect(), Cycles(2))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, _ []byte) { c.loadIndirect(PairBC, 0) }, Indirect(), Cycles(2))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, _ []byte) { c.loadIndirect(PairDE, 0) }, Indirect(), Cycles(2))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, _ []byte) { c.loadIndirect(PairHL, 1) }, Indirect(), Cycles(2))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, _ []byte) { c.loadIndirect(PairHL, -1) }, Indirect(), Cycles(2))

	// the stack pointer is stored low byte first, like every other
	// little endian operand
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []byte) {
		addr := word(operands)
		upper, lower := utils.Uint16ToBytes(c.SP)
		c.bus.Write(addr, lower)
		c.bus.Write(addr+1, upper)
	}, Immediate16(), Cycles(5))

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []byte) {
		c.bus.Write(0xFF00|uint16(operands[0]), c.A)
	}, Immediate8(), Cycles(3))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []byte) {
		c.A = c.bus.Read(0xFF00 | uint16(operands[0]))
	}, Immediate8(), Cycles(3))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []byte) {
		c.bus.Write(0xFF00|uint16(c.C), c.A)
	}, Indirect(), Cycles(2))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []byte) {
		c.A = c.bus.Read(0xFF00 | uint16(c.C))
	}, Indirect(), Cycles(2))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []byte) {
		c.bus.Write(word(operands), c.A)
	}, Immediate16(), Cycles(4))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []byte) {
		c.A = c.bus.Read(word(operands))
	}, Immediate16(), Cycles(4))

	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, operands []byte) {
		result, flags := AddSigned(c.SP, operands[0])
		c.HL.SetUint16(result)
		c.latch(flags)
	}, Immediate8(), Cycles(3))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []byte) {
		c.SP = c.HL.Uint16()
	}, Cycles(2))
}
