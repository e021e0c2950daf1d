package cpu

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// newTestBus returns an MMU with program mapped in as the boot rom,
// so that it starts at 0x0000.
func newTestBus(program ...byte) *mmu.MMU {
	raw := make([]byte, boot.Size)
	copy(raw, program)
	rom, err := boot.LoadBootROM(raw)
	if err != nil {
		panic(err)
	}
	return mmu.New(mmu.WithLogger(log.NewNullLogger()), mmu.WithBootROM(rom))
}

// newTestCPU returns a CPU with program loaded at 0x0000.
func newTestCPU(program ...byte) *CPU {
	return New(newTestBus(program...), WithLogger(log.NewNullLogger()))
}

// step executes n instructions, failing the test on any error, and
// returns the M-cycles they took.
func step(t *testing.T, c *CPU, n int) uint64 {
	t.Helper()
	var total uint64
	for i := 0; i < n; i++ {
		cycles, err := c.Step()
		require.NoErrorf(t, err, "step %d", i)
		total += uint64(cycles)
	}
	return total
}

func bufferedLogger(buf *bytes.Buffer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableQuote:     true,
	}
	return l
}

func TestCPU_New(t *testing.T) {
	c := newTestCPU()

	assert.Equal(t, uint16(0x0000), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	for r := RegB; r <= RegA; r++ {
		if r == RegHLIndirect {
			continue
		}
		assert.Equalf(t, uint8(0), c.Register(r), "register %s", r)
	}
	assert.Equal(t, uint8(0), c.F)
	assert.False(t, c.IME)
	assert.Equal(t, ModeNormal, c.Mode())
	assert.Equal(t, uint64(0), c.Cycles())
	assert.NoError(t, c.Err())

	t.Run("options", func(t *testing.T) {
		c := New(mmu.New(), WithStackPointer(0xDFFF), WithProgramCounter(0x0100))
		assert.Equal(t, uint16(0xDFFF), c.SP)
		assert.Equal(t, uint16(0x0100), c.PC)
	})
	t.Run("no bios", func(t *testing.T) {
		c := New(mmu.New(), NoBios(types.DMGABC))
		assert.Equal(t, uint16(0x0100), c.PC)
		assert.Equal(t, uint16(0x01B0), c.Pair(PairAF))
		assert.Equal(t, uint16(0x0013), c.Pair(PairBC))
		assert.Equal(t, uint16(0x00D8), c.Pair(PairDE))
		assert.Equal(t, uint16(0x014D), c.Pair(PairHL))
		assert.Equal(t, uint16(0xFFFE), c.SP)
	})
	t.Run("default logger", func(t *testing.T) {
		l, ok := New(mmu.New()).Log.(*logrus.Logger)
		require.True(t, ok)
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	})
	t.Run("debug logger", func(t *testing.T) {
		l, ok := New(mmu.New(), Debug()).Log.(*logrus.Logger)
		require.True(t, ok)
		assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	})
}

func TestCPU_Step(t *testing.T) {
	c := newTestCPU(
		0x00,       // NOP
		0x3E, 0x42, // LD A, 0x42
		0x06, 0x10, // LD B, 0x10
		0x80, // ADD A, B
	)

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), cycles)
	assert.Equal(t, uint16(0x0001), c.PC)

	assert.Equal(t, uint64(5), step(t, c, 3))
	assert.Equal(t, uint8(0x52), c.A)
	assert.Equal(t, uint16(0x0006), c.PC)

	assert.Equal(t, uint64(6), c.Clock().M())
	assert.Equal(t, uint64(24), c.Clock().T())
}

func TestCPU_Step_Unimplemented(t *testing.T) {
	t.Run("primary", func(t *testing.T) {
		c := newTestCPU(0x00, 0xD3)
		step(t, c, 1)

		cycles, err := c.Step()
		assert.Equal(t, uint8(0), cycles)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnimplementedOpcode))

		var opErr *OpcodeError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, uint8(0xD3), opErr.Opcode)
		assert.Equal(t, uint16(0x0001), opErr.PC)
		assert.False(t, opErr.Extended)

		// no cycles are committed for the failed instruction
		assert.Equal(t, uint64(1), c.Cycles())

		// the fault is sticky
		cycles, again := c.Step()
		assert.Equal(t, uint8(0), cycles)
		assert.Equal(t, err, again)
		assert.Equal(t, err, c.Err())
		assert.Equal(t, uint64(1), c.Cycles())
	})
	t.Run("extended", func(t *testing.T) {
		c := newTestCPU(0xCB, 0x11)
		c.extended = &[256]Instruction{}

		_, err := c.Step()
		var opErr *OpcodeError
		require.True(t, errors.As(err, &opErr))
		assert.True(t, opErr.Extended)
		assert.Equal(t, uint8(0x11), opErr.Opcode)
		assert.Contains(t, err.Error(), "0xCB 0x11")
		assert.Equal(t, uint64(0), c.Cycles())
	})
	t.Run("logged", func(t *testing.T) {
		var buf bytes.Buffer
		c := New(newTestBus(0xFD), WithLogger(bufferedLogger(&buf, logrus.ErrorLevel)))

		_, err := c.Step()
		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=error")
		assert.Contains(t, buf.String(), "unimplemented opcode: 0xFD at 0x0000")
	})
}

func TestCPU_Fetch(t *testing.T) {
	c := newTestCPU(0x12, 0x34)

	for i, want := range []uint8{0x12, 0x34, 0x00} {
		if got := c.fetch(); got != want {
			t.Errorf("fetch %d: expected 0x%02x, got 0x%02x", i, want, got)
		}
		if c.PC != uint16(i+1) {
			t.Errorf("fetch %d: expected PC to be 0x%04x, got 0x%04x", i, i+1, c.PC)
		}
	}

	// PC wraps at the top of the address space
	c.PC = 0xFFFF
	c.Bus().Write(0xFFFF, 0x56)
	if got := c.fetch(); got != 0x56 || c.PC != 0x0000 {
		t.Errorf("expected 0x56 and PC 0x0000, got 0x%02x and PC 0x%04x", got, c.PC)
	}
}

func TestCPU_Step_Halt(t *testing.T) {
	c := newTestCPU(0x76, 0x00)

	assert.Equal(t, uint64(1), step(t, c, 1))
	assert.True(t, c.Halted())
	assert.Equal(t, ModeHalt, c.Mode())

	// halted steps idle without fetching
	assert.Equal(t, uint64(3), step(t, c, 3))
	assert.Equal(t, uint16(0x0001), c.PC)
	assert.Equal(t, uint64(4), c.Cycles())
}

func TestCPU_Step_Stop(t *testing.T) {
	c := newTestCPU(0x10, 0x00, 0x00)

	assert.Equal(t, uint64(1), step(t, c, 1))
	assert.Equal(t, ModeStop, c.Mode())
	assert.Equal(t, uint16(0x0002), c.PC)

	assert.Equal(t, uint64(1), step(t, c, 1))
	assert.Equal(t, uint16(0x0002), c.PC)
}

func TestCPU_Step_Interrupts(t *testing.T) {
	c := newTestCPU(0xFB, 0xF3)

	step(t, c, 1)
	assert.True(t, c.IME, "EI")
	step(t, c, 1)
	assert.False(t, c.IME, "DI")
}

func TestCPU_Step_Debug(t *testing.T) {
	var buf bytes.Buffer
	c := New(newTestBus(0x3E, 0x42), Debug(), WithLogger(bufferedLogger(&buf, logrus.DebugLevel)))

	step(t, c, 1)
	assert.Contains(t, buf.String(), "0000 LD A, d8 (2 cycles) A: 42 F: 00 B: 00 C: 00 D: 00 E: 00 H: 00 L: 00 SP: fffe PC: 0002")
}

func TestCPU_FlagLowNibble(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	run := func(t *testing.T, program ...byte) {
		c := newTestCPU(program...)
		for reg := RegB; reg <= RegA; reg++ {
			if reg != RegHLIndirect {
				c.SetRegister(reg, uint8(r.Intn(256)))
			}
		}
		c.F = uint8(r.Intn(256)) & 0xF0
		c.SP = 0xFFF0

		step(t, c, 1)
		if c.F&0x0F != 0 {
			t.Errorf("%s: expected low nibble of F to be 0, got 0x%02x", c.primary[program[0]].Name(), c.F)
		}
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		// POP AF loads F from the stack as is
		if !Lookup(opcode).Defined() || opcode == 0xF1 {
			continue
		}
		if opcode == 0xCB {
			for j := 0; j < 256; j++ {
				run(t, 0xCB, uint8(j))
			}
			continue
		}
		run(t, opcode, uint8(r.Intn(256)), uint8(r.Intn(256)))
	}
}

func TestCPU_BootROM(t *testing.T) {
	raw := make([]byte, boot.Size)
	copy(raw, []byte{
		0x3E, 0x42, // LD A, 0x42
		0xC3, 0x00, 0x01, // JP 0x0100
	})
	rom, err := boot.LoadBootROM(raw)
	require.NoError(t, err)

	cart := make([]byte, 0x0101)
	cart[0x0100] = 0x3C // INC A
	bus := mmu.New(mmu.WithLogger(log.NewNullLogger()), mmu.WithCartridge(cart), mmu.WithBootROM(rom))
	c := New(bus, WithLogger(log.NewNullLogger()))

	step(t, c, 2)
	assert.Equal(t, uint16(0x0100), c.PC)

	bus.DisableBootROM()
	assert.Zero(t, bus.Read(0x0000), "boot region is unmapped")
	step(t, c, 1)
	assert.Equal(t, uint8(0x43), c.A)
	assert.Equal(t, ModeNormal, c.Mode())
}
