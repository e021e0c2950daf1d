package types

import "github.com/thelolagemann/gomeboy-core/pkg/utils"

// Register represents an SM83 Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of Registers viewed as a single 16-bit
// value. The pair is not stored separately, it is composed from the two
// Registers it points to, high byte first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return utils.BytesToUint16(*r.High, *r.Low)
}

// SetUint16 decomposes the given value into the two Registers of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = utils.Uint16ToBytes(value)
}

// Registers represents the SM83 CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters returns zeroed Registers with the BC, DE, HL and AF
// pairs wired to their 8-bit halves. A pair write stores all 16 bits,
// F included; only flag writes mask the low nibble of F.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F}
	return r
}
