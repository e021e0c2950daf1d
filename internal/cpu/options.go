package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug enables tracing of every executed instruction. Unless a logger
// is given with WithLogger, a debug level logrus logger is used.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.Log = l
	}
}

// WithStackPointer overrides the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(c *CPU) {
		c.SP = sp
	}
}

// WithProgramCounter overrides the initial program counter, e.g. to
// start at the cartridge entry point 0x0100 when no boot ROM is mapped.
func WithProgramCounter(pc uint16) Opt {
	return func(c *CPU) {
		c.PC = pc
	}
}

// NoBios skips the boot ROM, starting execution at the cartridge entry
// point 0x0100 with the registers the boot ROM of model leaves behind.
func NoBios(model types.Model) Opt {
	return func(c *CPU) {
		c.Registers.Load(model)
		c.PC = 0x0100
	}
}
