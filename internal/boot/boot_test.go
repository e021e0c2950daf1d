package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestLoadBootROM(t *testing.T) {
	t.Run("invalid length", func(t *testing.T) {
		for _, n := range []int{0, 255, 257, 2304} {
			if _, err := LoadBootROM(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
				t.Errorf("expected ErrInvalidLength for %d bytes, got %v", n, err)
			}
		}
	})
	t.Run("valid", func(t *testing.T) {
		raw := make([]byte, Size)
		for i := range raw {
			raw[i] = byte(i)
		}
		rom, err := LoadBootROM(raw)
		if err != nil {
			t.Fatal(err)
		}

		// mutating the source must not affect the loaded rom
		raw[0x10] = 0xFF
		if rom.Read(0x10) != 0x10 {
			t.Errorf("expected 0x10, got 0x%02X", rom.Read(0x10))
		}

		sum := md5.Sum(func() []byte {
			b := make([]byte, Size)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}())
		if rom.Checksum() != hex.EncodeToString(sum[:]) {
			t.Errorf("unexpected checksum %s", rom.Checksum())
		}
		if rom.Model() != types.Unset {
			t.Errorf("expected unset model, got %s", rom.Model())
		}
	})
	t.Run("nil", func(t *testing.T) {
		var rom *ROM
		if rom.Model() != types.Unset || rom.Checksum() != "" {
			t.Errorf("expected empty nil rom, got %q %q", rom.Model(), rom.Checksum())
		}
	})
}
