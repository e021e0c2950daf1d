package cpu

import "fmt"

// Reg8 selects an 8-bit operand. The order matches the 3-bit register
// field of the opcode encoding, with (HL) standing in for the byte in
// memory addressed by the HL pair.
type Reg8 uint8

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r Reg8) String() string {
	if int(r) < len(reg8Names) {
		return reg8Names[r]
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

// Pair selects a 16-bit register. The first four match the 2-bit pair
// field of the opcode encoding used by loads and arithmetic.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var pairNames = [5]string{"BC", "DE", "HL", "SP", "AF"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Register returns the value of the given 8-bit operand.
func (c *CPU) Register(r Reg8) uint8 {
	switch r {
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	case RegHLIndirect:
		return c.bus.Read(c.HL.Uint16())
	case RegA:
		return c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", r))
}

// SetRegister sets the value of the given 8-bit operand.
func (c *CPU) SetRegister(r Reg8, value uint8) {
	switch r {
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	case RegHLIndirect:
		c.bus.Write(c.HL.Uint16(), value)
	case RegA:
		c.A = value
	default:
		panic(fmt.Sprintf("invalid register index: %d", r))
	}
}

// modify applies fn to the given 8-bit operand in place. For (HL) the
// address is resolved once, and the read and write happen back to back.
func (c *CPU) modify(r Reg8, fn func(uint8) uint8) {
	if r == RegHLIndirect {
		c.bus.Update(c.HL.Uint16(), fn)
		return
	}
	c.SetRegister(r, fn(c.Register(r)))
}

// Pair returns the value of the given 16-bit register.
func (c *CPU) Pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return c.BC.Uint16()
	case PairDE:
		return c.DE.Uint16()
	case PairHL:
		return c.HL.Uint16()
	case PairSP:
		return c.SP
	case PairAF:
		return c.AF.Uint16()
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// SetPair sets the value of the given 16-bit register, decomposing it
// high byte first. All 16 bits are stored, F included.
func (c *CPU) SetPair(p Pair, value uint16) {
	switch p {
	case PairBC:
		c.BC.SetUint16(value)
	case PairDE:
		c.DE.SetUint16(value)
	case PairHL:
		c.HL.SetUint16(value)
	case PairSP:
		c.SP = value
	case PairAF:
		c.AF.SetUint16(value)
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}
