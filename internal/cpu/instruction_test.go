package cpu

import "testing"

func testInstruction(t *testing.T, name string, opcode uint8, f func(*testing.T, Instruction)) {
	t.Run(name, func(t *testing.T) {
		f(t, InstructionSet[opcode])
	})
}

func testInstructionCB(t *testing.T, name string, opcode uint8, f func(*testing.T, Instruction)) {
	t.Run(name, func(t *testing.T) {
		f(t, InstructionSetCB[opcode])
	})
}

func TestInstruction_Timing(t *testing.T) {
	// 0 marks opcodes without a fixed cost, or without an instruction
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
		2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
		3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
		3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
	}
	for i, timing := range timings {
		if timing == 0 {
			continue
		}

		testInstruction(t, InstructionSet[uint8(i)].Name(), uint8(i), func(t *testing.T, i Instruction) {
			if i.Cycles() != timing {
				t.Errorf("expected %d cycles, got %d", timing, i.Cycles())
			}
		})
	}

	cbTiming := []uint8{
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	}

	for i, timing := range cbTiming {
		testInstructionCB(t, InstructionSetCB[uint8(i)].Name(), uint8(i), func(t *testing.T, i Instruction) {
			if i.Cycles() != timing {
				t.Errorf("expected %d cycles, got %d", timing, i.Cycles())
			}
		})
	}
}

func TestInstruction_BranchTiming(t *testing.T) {
	for cc := uint8(0); cc < 4; cc++ {
		for _, tt := range []struct {
			opcode   uint8
			notTaken uint8
			taken    uint8
		}{
			{0x20 | cc<<3, 2, 3}, // JR cc
			{0xC2 | cc<<3, 3, 4}, // JP cc
			{0xC4 | cc<<3, 3, 6}, // CALL cc
			{0xC0 | cc<<3, 2, 5}, // RET cc
		} {
			tt := tt
			testInstruction(t, InstructionSet[tt.opcode].Name(), tt.opcode, func(t *testing.T, i Instruction) {
				if !i.Conditional() {
					t.Errorf("expected instruction to be conditional")
				}
				if i.Cycles() != tt.notTaken {
					t.Errorf("expected %d cycles when not taken, got %d", tt.notTaken, i.Cycles())
				}
				if i.TakenCycles() != tt.taken {
					t.Errorf("expected %d cycles when taken, got %d", tt.taken, i.TakenCycles())
				}
			})
		}
	}
}

func TestInstruction_Undefined(t *testing.T) {
	undefined := map[uint8]bool{
		0xD3: true, 0xDB: true, 0xDD: true,
		0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true, 0xED: true,
		0xF4: true, 0xFC: true, 0xFD: true,
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		if got := Lookup(opcode).Defined(); got == undefined[opcode] {
			t.Errorf("opcode 0x%02X: expected defined %v, got %v", opcode, !undefined[opcode], got)
		}
		if !LookupCB(opcode).Defined() {
			t.Errorf("opcode 0xCB 0x%02X: expected to be defined", opcode)
		}
	}
}

func TestInstruction_Decoding(t *testing.T) {
	for _, tt := range []struct {
		instruction Instruction
		name        string
		operand     Operand
		length      uint8
	}{
		{Lookup(0x00), "NOP", OperandNone, 1},
		{Lookup(0x31), "LD SP, d16", OperandImmediate16, 3},
		{Lookup(0x3E), "LD A, d8", OperandImmediate8, 2},
		{Lookup(0x78), "LD A, B", OperandRegister, 1},
		{Lookup(0x7E), "LD A, (HL)", OperandIndirect, 1},
		{Lookup(0x10), "STOP", OperandImmediate8, 2},
		{Lookup(0xCD), "CALL a16", OperandImmediate16, 3},
		{Lookup(0xEF), "RST 28H", OperandNone, 1},
		{LookupCB(0x7C), "BIT 7, H", OperandRegister, 1},
		{LookupCB(0x37), "SWAP A", OperandRegister, 1},
		{LookupCB(0xFE), "SET 7, (HL)", OperandIndirect, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if tt.instruction.Name() != tt.name {
				t.Errorf("expected name %s, got %s", tt.name, tt.instruction.Name())
			}
			if tt.instruction.Operand() != tt.operand {
				t.Errorf("expected operand %d, got %d", tt.operand, tt.instruction.Operand())
			}
			if tt.instruction.Length() != tt.length {
				t.Errorf("expected length %d, got %d", tt.length, tt.instruction.Length())
			}
		})
	}
}
