package types

type Model int // The Model whose boot state is reproduced.

const (
	Unset  Model = iota // Unset - Model hasn't been set - behaves as DMGABC
	DMG0                // DMG0 - early Game Boy, only released in Japan
	DMGABC              // DMGABC - Standard Game Boy
	MGB                 // MGB - Pocket Game Boy
	SGB                 // SGB - Super Game Boy
	SGB2                // SGB2 - Super Game Boy 2
)

var modelNames = map[Model]string{
	DMG0:   "DMG0",
	DMGABC: "DMG",
	MGB:    "MGB",
	SGB:    "SGB",
	SGB2:   "SGB2",
	Unset:  "Unset",
}

func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ModelRegisters - model specific CPU registers once the boot ROM has
// finished, in the order A, F, B, C, D, E, H, L.
var ModelRegisters = map[Model][8]uint8{
	Unset:  {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D}, // default to DMG registers
	DMG0:   {0x01, 0x00, 0xFF, 0x13, 0x00, 0xC1, 0x84, 0x03},
	DMGABC: {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	MGB:    {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB:    {0x01, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	SGB2:   {0xFF, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
}

// Load copies the boot state of model into r. Unknown models load the
// Unset state.
func (r *Registers) Load(model Model) {
	values, ok := ModelRegisters[model]
	if !ok {
		values = ModelRegisters[Unset]
	}
	r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L = values[0], values[1], values[2], values[3], values[4], values[5], values[6], values[7]
}
