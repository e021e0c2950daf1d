package cpu

import "testing"

func TestInstruction_Rotate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		opcode uint8
		a      uint8
		carry  bool
		want   uint8
		wantF  uint8
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, 0x10},
		{"RLCA zero", 0x07, 0x00, false, 0x00, 0x00},
		{"RRCA", 0x0F, 0x01, false, 0x80, 0x10},
		{"RLA", 0x17, 0x80, false, 0x00, 0x10},
		{"RLA carry", 0x17, 0x00, true, 0x01, 0x00},
		{"RRA", 0x1F, 0x01, true, 0x80, 0x10},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(tt.opcode)
			c.A = tt.a
			c.SetFlag(FlagCarry, tt.carry)

			step(t, c, 1)
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02x, got 0x%02x", tt.want, c.A)
			}
			// Z is always reset
			if c.F != tt.wantF {
				t.Errorf("expected F to be 0x%02x, got 0x%02x", tt.wantF, c.F)
			}
		})
	}
}
