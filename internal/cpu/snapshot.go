package cpu

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// Snapshot is a copy of the architectural state of the CPU at the end
// of an instruction.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	PC, SP                 uint16
	IME                    bool
	Mode                   Mode
	Cycles                 uint64
}

// Snapshot returns a copy of the current state of the CPU.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F,
		B: c.B, C: c.C,
		D: c.D, E: c.E,
		H: c.H, L: c.L,
		PC:     c.PC,
		SP:     c.SP,
		IME:    c.IME,
		Mode:   c.mode,
		Cycles: c.clock.M(),
	}
}

// Flags returns the flags held in F.
func (s Snapshot) Flags() Flags {
	return FlagsFromByte(s.F)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x PC: %04x",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC)
}

// Hash returns a fingerprint of the snapshot, equal for equal states.
func (s Snapshot) Hash() uint64 {
	b := make([]byte, 0, 22)
	b = append(b, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L)
	b = binary.LittleEndian.AppendUint16(b, s.PC)
	b = binary.LittleEndian.AppendUint16(b, s.SP)
	if s.IME {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = append(b, s.Mode)
	b = binary.LittleEndian.AppendUint64(b, s.Cycles)
	return xxhash.Sum64(b)
}
