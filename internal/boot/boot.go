// Package boot provides a boot ROM implementation. Whilst this package
// is not strictly required for the CPU to function, it can be used to
// run the boot process of a DMG class machine.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Size is the size of a DMG class boot ROM.
const Size = 256

// ErrInvalidLength is returned when a boot ROM image is not Size bytes.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM. When the machine first powers on, the boot
// ROM is overlaid on memory addresses 0x0000 - 0x00FF.
//
// Once the boot ROM has completed its tasks it jumps to the cartridge
// at 0x0100 and is unmapped from memory, preventing it from being
// executed again.
type ROM struct {
	raw      [Size]byte // the raw boot rom
	checksum string     // the MD5 checksum of the boot rom
}

// LoadBootROM copies b into a new ROM. An error wrapping
// ErrInvalidLength is returned if b is not exactly Size bytes.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	// calculate checksum
	bootChecksum := md5.Sum(b)

	r := &ROM{
		checksum: hex.EncodeToString(bootChecksum[:]),
	}
	copy(r.raw[:], b)
	return r, nil
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr&(Size-1)]
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom, unknown
// or missing boot roms are types.Unset.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return types.Unset
}

// knownBootROMChecksums maps the checksums of known DMG class
// boot ROMs to the model they were dumped from.
var knownBootROMChecksums = map[string]types.Model{
	DMG0: types.DMG0,
	DMG:  types.DMGABC,
	MGB:  types.MGB,
	SGB:  types.SGB,
	SGB2: types.SGB2,
}

const (
	// DMG0 is the checksum of the early DMG boot ROM, only ever
	// found in very early Japanese units. On a boot failure it
	// flashes the screen rather than hanging after the logo.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the boot ROM found in the DMG-01.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into
	// the A register rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES rather than
	// showing the logo animation.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB as MGB does from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
