package constdecode

import "fmt"

const (
	invalidValue = 0xFF

	// StdPadding is the padding byte used by the base64 presets.
	StdPadding rune = '='

	// NoPadding disables padding recognition.
	NoPadding rune = -1
)

// Alphabet maps every possible input byte to either a symbol value in
// [0, radix) or invalid.
//
// The zero value is not usable; build one with Custom or start from a
// preset. An Alphabet is an immutable value and safe to share.
type Alphabet struct {
	name    string
	symbols string
	table   [256]byte
	bits    uint8
	pad     byte
	padded  bool
}

// Custom builds a case sensitive, unpadded alphabet where symbols[i] has
// value i.
//
// The radix is len(symbols) and must be 16, 32 or 64. Every symbol must be
// a distinct printable, non-space ASCII byte.
func Custom(symbols string) (Alphabet, error) {
	var bits uint8
	switch len(symbols) {
	case 16:
		bits = 4
	case 32:
		bits = 5
	case 64:
		bits = 6
	default:
		return Alphabet{}, fmt.Errorf("%w: radix %d is not one of 16, 32, 64", ErrInvalidAlphabet, len(symbols))
	}

	a := Alphabet{
		symbols: symbols,
		bits:    bits,
	}

	for i := range a.table {
		a.table[i] = invalidValue
	}

	for i := range len(symbols) {
		c := symbols[i]

		if !isPrintable(c) {
			return Alphabet{}, fmt.Errorf("%w: symbol %q at index %d is not printable", ErrInvalidAlphabet, c, i)
		}

		if a.table[c] != invalidValue {
			return Alphabet{}, fmt.Errorf("%w: symbol %q repeats at index %d", ErrInvalidAlphabet, c, i)
		}

		a.table[c] = byte(i)
	}

	return a, nil
}

// MustCustom is like Custom but panics if the alphabet is invalid.
func MustCustom(symbols string) Alphabet {
	a, err := Custom(symbols)
	if err != nil {
		panic("constdecode: " + err.Error())
	}

	return a
}

// FoldCase returns a copy of the alphabet where the opposite ASCII case of
// each letter symbol decodes to the same value.
//
// Folding is never applied implicitly. It fails when the alphabet already
// uses both cases of a letter for different values, as base64 does.
func (a Alphabet) FoldCase() (Alphabet, error) {
	const upToLow = 'a' - 'A'

	for i := range len(a.symbols) {
		c := a.symbols[i]

		var alt byte
		switch {
		case c >= 'A' && c <= 'Z':
			alt = c + upToLow
		case c >= 'a' && c <= 'z':
			alt = c - upToLow
		default:
			continue
		}

		if a.padded && alt == a.pad {
			return Alphabet{}, fmt.Errorf("%w: folding %q collides with the padding byte", ErrInvalidAlphabet, c)
		}

		if v := a.table[alt]; v != invalidValue && v != byte(i) {
			return Alphabet{}, fmt.Errorf("%w: folding %q collides with symbol %q", ErrInvalidAlphabet, c, alt)
		}

		a.table[alt] = byte(i)
	}

	return a, nil
}

// WithPadding returns a copy of the alphabet that recognizes padding as the
// trailing filler byte. Pass NoPadding to drop padding.
//
// When padding is set it is mandatory: the final group must be padded up
// to BlockSize symbols.
func (a Alphabet) WithPadding(padding rune) (Alphabet, error) {
	if padding == NoPadding {
		a.pad = 0
		a.padded = false
		return a, nil
	}

	if padding < 0 || padding > 0x7F || !isPrintable(byte(padding)) {
		return Alphabet{}, fmt.Errorf("%w: padding %q is not printable ASCII", ErrInvalidAlphabet, padding)
	}

	c := byte(padding)
	if a.table[c] != invalidValue {
		return Alphabet{}, fmt.Errorf("%w: padding %q is also a symbol", ErrInvalidAlphabet, c)
	}

	a.pad = c
	a.padded = true

	return a, nil
}

// WithName returns a copy of the alphabet carrying a display name.
func (a Alphabet) WithName(name string) Alphabet {
	a.name = name
	return a
}

// ValueOf returns the value of c, or false if c is not a symbol.
//
// The padding byte is never a symbol.
func (a Alphabet) ValueOf(c byte) (byte, bool) {
	v := a.table[c]
	if v == invalidValue || a.bits == 0 {
		return 0, false
	}

	return v, true
}

func (a Alphabet) Name() string {
	if a.name == "" {
		return "custom"
	}

	return a.name
}

// Symbols returns the ordered symbol set the alphabet was built from.
func (a Alphabet) Symbols() string {
	return a.symbols
}

func (a Alphabet) Radix() int {
	if a.bits == 0 {
		return 0
	}

	return 1 << a.bits
}

func (a Alphabet) BitsPerSymbol() int {
	return int(a.bits)
}

// BlockSize is the number of symbols in one packing cycle, after which
// the bit stream realigns on a byte boundary: 2 for hex, 8 for base32 and
// 4 for base64.
func (a Alphabet) BlockSize() int {
	switch a.bits {
	case 4:
		return 2
	case 5:
		return 8
	case 6:
		return 4
	}

	return 0
}

func (a Alphabet) Padding() (byte, bool) {
	return a.pad, a.padded
}

func (a Alphabet) String() string {
	return a.Name()
}

func (a Alphabet) valid() bool {
	return a.bits != 0
}

func isPrintable(c byte) bool {
	return c >= '!' && c <= '~'
}
