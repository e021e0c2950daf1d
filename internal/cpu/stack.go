package cpu

import "fmt"

// Push decrements SP by 2 and writes value to the new top of the stack.
func (c *CPU) Push(value uint16) {
	c.SP -= 2
	c.bus.Write16(c.SP, value)
}

// Pop reads the word at the top of the stack and increments SP by 2.
func (c *CPU) Pop() uint16 {
	value := c.bus.Read16(c.SP)
	c.SP += 2
	return value
}

// PushPair pushes the value of the given register pair onto the stack.
//
//	PUSH rr
//	rr = BC, DE, HL, AF
func (c *CPU) PushPair(p Pair) {
	c.Push(c.Pair(p))
}

// PopPair pops the top of the stack into the given register pair. SP is
// the stack itself and cannot be popped into: nothing is popped, the
// CPU faults as it would on an unimplemented opcode, and an error
// wrapping ErrInvalidOperand is returned.
//
//	POP rr
//	rr = BC, DE, HL, AF
func (c *CPU) PopPair(p Pair) error {
	if p == PairSP {
		err := fmt.Errorf("%w: POP %s", ErrInvalidOperand, p)
		if c.fault == nil {
			c.fault = err
			c.Log.Errorf("%v", err)
		}
		return err
	}
	c.SetPair(p, c.Pop())
	return nil
}

func init() {
	// PUSH and POP encode AF where the other groups encode SP
	for i, p := range [4]Pair{PairBC, PairDE, PairHL, PairAF} {
		pair := p
		DefineInstruction(0xC5|uint8(i)<<4, fmt.Sprintf("PUSH %s", pair), func(c *CPU, _ []byte) {
			c.PushPair(pair)
		}, Cycles(4))
		DefineInstruction(0xC1|uint8(i)<<4, fmt.Sprintf("POP %s", pair), func(c *CPU, _ []byte) {
			// never SP, so never fails
			_ = c.PopPair(pair)
		}, Cycles(3))
	}
}
