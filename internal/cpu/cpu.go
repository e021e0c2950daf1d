// Package cpu implements the SM83 (LR35902) instruction core: register
// file, ALU, opcode tables and the fetch-decode-execute loop.
package cpu

import (
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// stackTop is where SP points after reset, the top of high RAM.
const stackTop = 0xFFFE

// Mode is the execution state of the CPU.
type Mode = uint8

const (
	// ModeNormal is the normal CPU mode, an instruction is executed
	// on every Step.
	ModeNormal Mode = iota
	// ModeHalt is entered by HALT.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
)

// Bus is the address space the CPU executes against.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Read16(addr uint16) uint16
	Write16(addr uint16, value uint16)
	Update(addr uint16, fn func(uint8) uint8) (before, after uint8)
}

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers

	// IME is the interrupt master enable flag.
	IME bool

	Debug bool
	Log   log.Logger

	bus   Bus
	clock Clock
	mode  Mode

	// primary and extended are the instruction tables dispatched from.
	primary  *[256]Instruction
	extended *[256]Instruction

	// operands holds the immediate bytes of the current instruction.
	operands [2]byte
	// branched is set by conditional instructions whose condition held.
	branched bool
	// fault is the fatal error that stopped execution, if any.
	fault error
}

// New creates a new CPU executing against the given bus. All registers
// are zeroed, apart from SP which points at the top of high RAM.
func New(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		SP:        stackTop,
		Registers: types.NewRegisters(),
		bus:       bus,
		primary:   &InstructionSet,
		extended:  &InstructionSetCB,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Log == nil {
		if c.Debug {
			c.Log = log.New()
		} else {
			c.Log = log.WithLevel(logrus.InfoLevel)
		}
	}

	return c
}

// Step executes a single instruction and returns the number of M-cycles
// it took. When halted or stopped, Step idles for a single M-cycle.
//
// An opcode without an instruction is fatal: the error is returned, no
// cycles are committed, and every further call returns the same error.
// The same holds after PopPair has been asked to pop into SP.
func (c *CPU) Step() (uint8, error) {
	if c.fault != nil {
		return 0, c.fault
	}

	if c.mode != ModeNormal {
		c.clock.tick(1)
		return 1, nil
	}

	pc := c.PC
	instruction, err := c.decode(pc)
	if err != nil {
		c.fault = err
		c.Log.Errorf("%v", err)
		return 0, err
	}

	cycles := c.execute(instruction)

	if c.Debug {
		c.Log.Debugf("%04X %s (%d cycles) %s", pc, instruction.name, cycles, c.Snapshot())
	}

	return cycles, nil
}

// decode fetches the opcode at PC, following the 0xCB prefix into the
// extended table, and then fetches the instruction's immediate operands.
func (c *CPU) decode(pc uint16) (*Instruction, error) {
	opcode := c.fetch()
	instruction := &c.primary[opcode]
	extended := false

	// do we need to run a CB instruction?
	if instruction.prefix {
		opcode = c.fetch()
		instruction = &c.extended[opcode]
		extended = true
	}

	if instruction.fn == nil {
		return nil, &OpcodeError{Opcode: opcode, Extended: extended, PC: pc}
	}

	for i := uint8(0); i < instruction.operand.size(); i++ {
		c.operands[i] = c.fetch()
	}

	return instruction, nil
}

// execute runs a decoded instruction and commits its cycle cost.
func (c *CPU) execute(instruction *Instruction) uint8 {
	c.branched = false
	instruction.fn(c, c.operands[:instruction.operand.size()])

	cycles := instruction.cycles
	if c.branched {
		cycles = instruction.taken
	}
	c.clock.tick(cycles)

	return cycles
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// Cycles returns the number of M-cycles executed so far.
func (c *CPU) Cycles() uint64 {
	return c.clock.M()
}

// Clock returns a copy of the cycle accumulator.
func (c *CPU) Clock() Clock {
	return c.clock
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Halted returns true if the CPU has stopped executing instructions,
// either through HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Err returns the fatal error that stopped execution, if any.
func (c *CPU) Err() error {
	return c.fault
}

// Bus returns the address space the CPU executes against.
func (c *CPU) Bus() Bus {
	return c.bus
}
