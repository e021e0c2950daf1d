package cpu

import "fmt"

// shiftOps are the eight rotate and shift operations of 0xCB 0x00-0x3F,
// in opcode order.
var shiftOps = [8]struct {
	name string
	fn   func(n uint8, carry bool) (uint8, Flags)
}{
	{"RLC", func(n uint8, _ bool) (uint8, Flags) { return RotateLeftCircular(n) }},
	{"RRC", func(n uint8, _ bool) (uint8, Flags) { return RotateRightCircular(n) }},
	{"RL", RotateLeftThroughCarry},
	{"RR", RotateRightThroughCarry},
	{"SLA", func(n uint8, _ bool) (uint8, Flags) { return ShiftLeftArithmetic(n) }},
	{"SRA", func(n uint8, _ bool) (uint8, Flags) { return ShiftRightArithmetic(n) }},
	{"SWAP", func(n uint8, _ bool) (uint8, Flags) { return Swap(n) }},
	{"SRL", func(n uint8, _ bool) (uint8, Flags) { return ShiftRightLogical(n) }},
}

// shift applies a rotate or shift operation to the given operand and
// latches its flags.
func (c *CPU) shift(r Reg8, fn func(n uint8, carry bool) (uint8, Flags)) {
	carry := c.IsFlagSet(FlagCarry)
	c.modify(r, func(v uint8) uint8 {
		result, flags := fn(v, carry)
		c.latch(flags)
		return result
	})
}

// testBit tests bit b of the given operand.
//
//	BIT b, r
func (c *CPU) testBit(r Reg8, b uint8) {
	c.latch(TestBit(c.Register(r), b, c.IsFlagSet(FlagCarry)))
}

func generateShiftInstructions() {
	for op, shiftOp := range shiftOps {
		fn := shiftOp.fn
		for r := RegB; r <= RegA; r++ {
			reg := r
			cycles := uint8(2)
			if reg == RegHLIndirect {
				cycles = 4
			}

			DefineInstructionCB(uint8(op)<<3|uint8(reg), fmt.Sprintf("%s %s", shiftOp.name, reg), func(c *CPU, _ []byte) {
				c.shift(reg, fn)
			}, Target(reg), Cycles(cycles))
		}
	}
}

func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		bit := b
		for r := RegB; r <= RegA; r++ {
			reg := r
			cycles, testCycles := uint8(2), uint8(2)
			if reg == RegHLIndirect {
				cycles, testCycles = 4, 3
			}

			// 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40|bit<<3|uint8(reg), fmt.Sprintf("BIT %d, %s", bit, reg), func(c *CPU, _ []byte) {
				c.testBit(reg, bit)
			}, Target(reg), Cycles(testCycles))
			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80|bit<<3|uint8(reg), fmt.Sprintf("RES %d, %s", bit, reg), func(c *CPU, _ []byte) {
				c.modify(reg, func(v uint8) uint8 { return ResetBit(v, bit) })
			}, Target(reg), Cycles(cycles))
			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0|bit<<3|uint8(reg), fmt.Sprintf("SET %d, %s", bit, reg), func(c *CPU, _ []byte) {
				c.modify(reg, func(v uint8) uint8 { return SetBit(v, bit) })
			}, Target(reg), Cycles(cycles))
		}
	}
}

func init() {
	generateShiftInstructions()
	generateBitInstructions()
}
