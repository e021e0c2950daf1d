package cpu

// Operand describes how an instruction decodes its operand.
type Operand uint8

const (
	// OperandNone takes no operand.
	OperandNone Operand = iota
	// OperandImmediate8 reads one byte following the opcode.
	OperandImmediate8
	// OperandImmediate16 reads a little endian word following the opcode.
	OperandImmediate16
	// OperandRegister operates on a register selected by the opcode.
	OperandRegister
	// OperandIndirect operates on memory addressed by a register pair.
	OperandIndirect
)

// size returns the number of bytes that follow the opcode.
func (o Operand) size() uint8 {
	switch o {
	case OperandImmediate8:
		return 1
	case OperandImmediate16:
		return 2
	}
	return 0
}

// Instruction describes a single opcode: how to decode its operand,
// what it does, and how many M-cycles it takes.
type Instruction struct {
	name    string
	operand Operand
	cycles  uint8 // cost, or the cost when a condition does not hold
	taken   uint8 // cost when a condition holds, 0 if unconditional
	prefix  bool  // dispatches into the extended table
	fn      func(c *CPU, operands []byte)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Operand returns how the instruction decodes its operand.
func (i Instruction) Operand() Operand {
	return i.operand
}

// Cycles returns the M-cycles the instruction takes, or for conditional
// instructions, the M-cycles taken when the condition does not hold.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// TakenCycles returns the M-cycles a conditional instruction takes when
// its condition holds. It is 0 for unconditional instructions.
func (i Instruction) TakenCycles() uint8 {
	return i.taken
}

// Conditional returns true if the cost of the instruction depends on
// a condition.
func (i Instruction) Conditional() bool {
	return i.taken != 0
}

// Length returns the size of the instruction in bytes, excluding the
// 0xCB prefix of extended instructions.
func (i Instruction) Length() uint8 {
	return 1 + i.operand.size()
}

// Defined returns true if the instruction can be executed.
func (i Instruction) Defined() bool {
	return i.fn != nil || i.prefix
}

// InstructionOpt configures an Instruction when it is defined.
type InstructionOpt func(*Instruction)

// Cycles sets the M-cycles of an instruction. Instructions default
// to 1 M-cycle.
func Cycles(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = n
	}
}

// Branch marks an instruction as conditional, costing taken M-cycles
// when its condition holds.
func Branch(taken uint8) InstructionOpt {
	return func(i *Instruction) {
		i.taken = taken
	}
}

// Immediate8 marks an instruction as reading a byte operand.
func Immediate8() InstructionOpt {
	return func(i *Instruction) {
		i.operand = OperandImmediate8
	}
}

// Immediate16 marks an instruction as reading a word operand.
func Immediate16() InstructionOpt {
	return func(i *Instruction) {
		i.operand = OperandImmediate16
	}
}

// Target marks an instruction as operating on r, which may be (HL).
func Target(r Reg8) InstructionOpt {
	return func(i *Instruction) {
		if r == RegHLIndirect {
			i.operand = OperandIndirect
		} else {
			i.operand = OperandRegister
		}
	}
}

// Indirect marks an instruction as operating on memory.
func Indirect() InstructionOpt {
	return func(i *Instruction) {
		i.operand = OperandIndirect
	}
}

func newInstruction(name string, fn func(*CPU, []byte), opts []InstructionOpt) Instruction {
	instruction := Instruction{
		name:   name,
		cycles: 1,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, []byte), opts ...InstructionOpt) {
	InstructionSet[opcode] = newInstruction(name, fn, opts)
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode. The cost includes fetching the prefix.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU, []byte), opts ...InstructionOpt) {
	InstructionSetCB[opcode] = newInstruction(name, fn, opts)
}

// InstructionSet is the primary instruction table. Opcodes without a
// definition are left zero and fail to dispatch.
var InstructionSet [256]Instruction

// InstructionSetCB is the extended instruction table, reached through
// the 0xCB prefix.
var InstructionSetCB [256]Instruction

// Lookup returns the primary instruction for opcode.
func Lookup(opcode uint8) Instruction {
	return InstructionSet[opcode]
}

// LookupCB returns the extended instruction for opcode.
func LookupCB(opcode uint8) Instruction {
	return InstructionSetCB[opcode]
}

// condition evaluates the 2-bit condition field of a conditional
// opcode (NZ, Z, NC, C), recording whether the branch is taken.
func (c *CPU) condition(cc uint8) bool {
	var holds bool
	switch cc & 0x3 {
	case 0:
		holds = c.isFlagsNotSet(FlagZero)
	case 1:
		holds = c.isFlagsSet(FlagZero)
	case 2:
		holds = c.isFlagsNotSet(FlagCarry)
	case 3:
		holds = c.isFlagsSet(FlagCarry)
	}
	c.branched = holds
	return holds
}

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []byte) {
		c.mode = ModeStop
	}, Immediate8())
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []byte) {
		c.mode = ModeHalt
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []byte) { c.IME = false })
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []byte) { c.IME = true })

	InstructionSet[0xCB] = Instruction{name: "PREFIX CB", cycles: 0, prefix: true}
}
