// Package bits provides helpers for manipulating individual bits of
// 8 and 16-bit values.
package bits

import "golang.org/x/exp/constraints"

// Reset resets the bit at the given index, leaving all other bits
// unchanged.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets the bit at the given index when v is true, and resets
// it otherwise.
func Assign[T constraints.Unsigned](b T, i uint8, v bool) T {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}
