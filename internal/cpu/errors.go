package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplementedOpcode is returned by Step when the fetched opcode
	// has no entry in the instruction set. Execution cannot continue.
	ErrUnimplementedOpcode = errors.New("cpu: unimplemented opcode")
	// ErrInvalidOperand is returned when an operation is asked to act
	// on an operand it does not support, such as popping into SP.
	ErrInvalidOperand = errors.New("cpu: invalid operand")
)

// OpcodeError describes an opcode that could not be dispatched.
type OpcodeError struct {
	Opcode   uint8
	Extended bool   // true if the opcode followed the 0xCB prefix
	PC       uint16 // address the opcode was fetched from
}

func (e *OpcodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("%v: 0xCB 0x%02X at 0x%04X", ErrUnimplementedOpcode, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%v: 0x%02X at 0x%04X", ErrUnimplementedOpcode, e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnimplementedOpcode
}
