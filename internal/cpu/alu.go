package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// The functions in this file are the ALU. None of them touch CPU state;
// each returns its result along with the flags the instruction latches.

func carryBit(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}

// Add8 adds b and, if carry is set, 1 to a.
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add8(a, b uint8, carry bool) (uint8, Flags) {
	cy := carryBit(carry)
	sum := uint16(a) + uint16(b) + uint16(cy)
	return uint8(sum), Flags{
		Zero:      uint8(sum) == 0,
		HalfCarry: (a&0xF)+(b&0xF)+cy > 0xF,
		Carry:     sum > 0xFF,
	}
}

// Sub8 subtracts b and, if carry is set, 1 from a.
//
//	SUB A, n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sub8(a, b uint8, carry bool) (uint8, Flags) {
	cy := carryBit(carry)
	result := a - b - cy
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: uint16(a&0xF) < uint16(b&0xF)+uint16(cy),
		Carry:     uint16(a) < uint16(b)+uint16(cy),
	}
}

// Add16 adds two 16-bit values. The zero flag is passed through as the
// operation leaves it untouched.
//
//	ADD HL, rr
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 10.
//	C - Set if carry from bit 15.
func Add16(a, b uint16, zero bool) (uint16, Flags) {
	return a + b, Flags{
		Zero:      zero,
		HalfCarry: (a&0x7FF)+(b&0x7FF) > 0x7FF,
		Carry:     a > 0xFFFF-b,
	}
}

// AddSigned adds the two's complement displacement e to a. The flags
// are derived from the unsigned addition of the low bytes.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func AddSigned(a uint16, e uint8) (uint16, Flags) {
	result := uint16(int32(a) + int32(int8(e)))
	return result, Flags{
		HalfCarry: (a&0xF)+uint16(e&0xF) > 0xF,
		Carry:     (a&0xFF)+uint16(e) > 0xFF,
	}
}

// Inc8 increments n by 1. The carry flag is passed through.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func Inc8(n uint8, carry bool) (uint8, Flags) {
	incremented := n + 1
	return incremented, Flags{
		Zero:      incremented == 0,
		HalfCarry: n&0xF == 0xF,
		Carry:     carry,
	}
}

// Dec8 decrements n by 1. The carry flag is passed through.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if the low nibble of the result is zero.
//	C - Not affected.
func Dec8(n uint8, carry bool) (uint8, Flags) {
	decremented := n - 1
	return decremented, Flags{
		Zero:      decremented == 0,
		Subtract:  true,
		HalfCarry: decremented&0xF == 0x0,
		Carry:     carry,
	}
}

// DAA adjusts a so that it holds the BCD result of the previous
// addition or subtraction, as described by f. The correction is the
// same in both directions, it is subtracted when N is set.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the upper digit was corrected.
func DAA(a uint8, f Flags) (uint8, Flags) {
	var correction uint8
	carry := false
	if f.HalfCarry || a&0xF > 0x9 {
		correction |= 0x06
	}
	if f.Carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}

	if f.Subtract {
		a -= correction
	} else {
		a += correction
	}

	return a, Flags{
		Zero:     a == 0,
		Subtract: f.Subtract,
		Carry:    carry,
	}
}

// And performs a bitwise AND of a and n.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func And(a, n uint8) (uint8, Flags) {
	result := a & n
	return result, Flags{Zero: result == 0, HalfCarry: true}
}

// Or performs a bitwise OR of a and n.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Or(a, n uint8) (uint8, Flags) {
	result := a | n
	return result, Flags{Zero: result == 0}
}

// Xor performs a bitwise XOR of a and n.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Xor(a, n uint8) (uint8, Flags) {
	result := a ^ n
	return result, Flags{Zero: result == 0}
}

// shifted builds the flags shared by the rotate and shift family.
func shifted(result uint8, carry bool) Flags {
	return Flags{Zero: result == 0, Carry: carry}
}

// RotateLeftCircular rotates n left by 1 bit. The old bit 7 is copied
// to both the carry flag and bit 0.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func RotateLeftCircular(n uint8) (uint8, Flags) {
	carry := bits.Test(n, 7)
	computed := n<<1 | n>>7
	return computed, shifted(computed, carry)
}

// RotateRightCircular rotates n right by 1 bit. The old bit 0 is copied
// to both the carry flag and bit 7.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func RotateRightCircular(n uint8) (uint8, Flags) {
	carry := bits.Test(n, 0)
	computed := n>>1 | n<<7
	return computed, shifted(computed, carry)
}

// RotateLeftThroughCarry rotates n left by 1 bit through the carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func RotateLeftThroughCarry(n uint8, carry bool) (uint8, Flags) {
	computed := n<<1 | carryBit(carry)
	return computed, shifted(computed, bits.Test(n, 7))
}

// RotateRightThroughCarry rotates n right by 1 bit through the carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func RotateRightThroughCarry(n uint8, carry bool) (uint8, Flags) {
	computed := n>>1 | carryBit(carry)<<7
	return computed, shifted(computed, bits.Test(n, 0))
}

// ShiftLeftArithmetic shifts n left by 1 bit into the carry flag.
// Bit 0 is reset.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func ShiftLeftArithmetic(n uint8) (uint8, Flags) {
	computed := n << 1
	return computed, shifted(computed, bits.Test(n, 7))
}

// ShiftRightArithmetic shifts n right by 1 bit into the carry flag.
// Bit 7 does not change.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func ShiftRightArithmetic(n uint8) (uint8, Flags) {
	computed := n>>1 | n&0x80
	return computed, shifted(computed, bits.Test(n, 0))
}

// ShiftRightLogical shifts n right by 1 bit into the carry flag.
// Bit 7 is reset.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func ShiftRightLogical(n uint8) (uint8, Flags) {
	computed := n >> 1
	return computed, shifted(computed, bits.Test(n, 0))
}

// Swap exchanges the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Swap(n uint8) (uint8, Flags) {
	computed := n<<4 | n>>4
	return computed, shifted(computed, false)
}

// TestBit tests bit b of n. The carry flag is passed through.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func TestBit(n, b uint8, carry bool) Flags {
	return Flags{
		Zero:      !bits.Test(n, b),
		HalfCarry: true,
		Carry:     carry,
	}
}

// SetBit sets bit b of n. No flags are affected.
//
//	SET b, n
func SetBit(n, b uint8) uint8 {
	return bits.Set(n, b)
}

// ResetBit clears bit b of n, leaving every other bit unchanged. No
// flags are affected.
//
//	RES b, n
func ResetBit(n, b uint8) uint8 {
	return bits.Reset(n, b)
}
