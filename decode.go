// This decoding engine rejects inputs that contain non-canonical tail bits
// that are non-zero, and final groups holding a whole symbol that no
// encoder would have emitted. Other implementations may ignore them as
// useless noise but this engine strictly interprets them as a signal to
// fail decoding. If you are bit packing at a higher level to utilize these
// empty bits you are required to clear them before passing bytes to these
// functions.
//
// Output length is always computed by a dedicated pass before any byte is
// written. Both passes walk the same symbol stream with the same
// validation so they can never disagree on whether an input is valid.

package constdecode

import "slices"

// Decoder pairs an Alphabet with a Filter. It is an immutable value and
// safe for concurrent use.
type Decoder struct {
	alphabet Alphabet
	filter   Filter
}

func NewDecoder(alphabet Alphabet, filter Filter) Decoder {
	return Decoder{
		alphabet: alphabet,
		filter:   filter,
	}
}

func (d Decoder) Alphabet() Alphabet {
	return d.alphabet
}

func (d Decoder) Filter() Filter {
	return d.filter
}

// SkipWhitespace returns a decoder that ignores whitespace between symbols.
// A PEM decoder already does so and is returned unchanged.
func (d Decoder) SkipWhitespace() Decoder {
	if d.filter == FilterNone {
		d.filter = FilterWhitespace
	}

	return d
}

func (d Decoder) WithFilter(filter Filter) Decoder {
	d.filter = filter
	return d
}

func (d Decoder) String() string {
	if d.filter == FilterNone {
		return d.alphabet.Name()
	}

	return d.alphabet.Name() + "+" + d.filter.String()
}

// walk validates src and, when dst is not nil, writes the decoded bytes
// into it. dst must be exactly the length reported by a prior nil-dst walk.
//
// In counting mode the accumulator is never touched: the output length is
// derived from the symbol count and only the last symbol value is kept for
// the trailing bits check.
func (d Decoder) walk(dst, src []byte) (int, error) {
	a := &d.alphabet
	if !a.valid() {
		return 0, errAt(ErrInvalidAlphabet, -1)
	}

	start, end, err := d.filter.payload(src)
	if err != nil {
		return 0, err
	}

	bits := uint(a.bits)
	skip := d.filter != FilterNone

	var (
		acc     uint32
		held    uint
		n       int
		symbols int
		last    byte
		lastPos = -1
		pads    int
		padPos  = -1
	)

	for i := start; i < end; i++ {
		c := src[i]

		if skip && isSpace(c) {
			continue
		}

		if a.padded && c == a.pad {
			if pads == 0 {
				padPos = i
			}
			pads++
			continue
		}

		v := a.table[c]
		if v == invalidValue {
			return n, errAt(ErrInvalidSymbol, i)
		}

		// padding may only trail the symbols
		if pads != 0 {
			return n, errAt(ErrInvalidPadding, padPos)
		}

		symbols++
		last = v
		lastPos = i

		if dst == nil {
			continue
		}

		acc = acc<<bits | uint32(v)
		held += bits
		if held >= 8 {
			held -= 8
			dst[n] = byte(acc >> held)
			n++
			acc &= 1<<held - 1
		}
	}

	if dst == nil {
		n = decodedLen(symbols, bits)
		held = uint((symbols%8)*int(bits)) % 8
	}

	// a final group holding a full symbol of unused bits cannot come from
	// an encoder, and the unused low bits of the last symbol must be zero
	if held >= bits || last&(1<<held-1) != 0 {
		return n, errAt(ErrNonCanonical, lastPos)
	}

	if a.padded {
		block := a.BlockSize()
		if want := (block - symbols%block) % block; pads != want {
			pos := padPos
			if pads == 0 {
				pos = end
			}

			return n, errAt(ErrInvalidPadding, pos)
		}
	}

	return n, nil
}

// decodedLen returns floor(symbols*bits/8) without overflowing for any
// symbol count an int can hold. Eight symbols always decode to exactly
// bits bytes.
func decodedLen(symbols int, bits uint) int {
	return (symbols/8)*int(bits) + ((symbols%8)*int(bits))/8
}

// DecodedLen returns the exact number of bytes src decodes to.
//
// It performs every validation Decode performs, so an input it accepts
// always decodes and an input it rejects always fails to decode.
func (d Decoder) DecodedLen(src []byte) (int, error) {
	n, err := d.walk(nil, src)
	if err != nil {
		return 0, err
	}

	return n, nil
}

// DecodeInto decodes src into dst, which must be exactly DecodedLen(src)
// bytes long. A differently sized dst fails with ErrLengthMismatch before
// anything is written.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
func (d Decoder) DecodeInto(dst, src []byte) error {
	n, err := d.DecodedLen(src)
	if err != nil {
		return err
	}

	if len(dst) != n {
		return errAt(ErrLengthMismatch, -1)
	}

	if n == 0 {
		return nil
	}

	_, err = d.walk(dst, src)
	return err
}

// Decode returns the decoded form of src. If src decodes to zero bytes nil
// is returned.
//
// If an error is returned the caller must not assume the returned slice
// is nil. There is no guarantee about the contents of the slice when a
// non-nil error is returned.
func (d Decoder) Decode(src []byte) ([]byte, error) {
	n, err := d.DecodedLen(src)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, n)

	_, err = d.walk(dst, src)
	return dst, err
}

func (d Decoder) DecodeString(s string) ([]byte, error) {
	return d.Decode([]byte(s))
}

// AppendDecode returns the decoded form of src appended to dst. If src
// decodes to zero bytes dst is returned as-is.
//
// When src fails validation dst is returned unchanged along with the
// error.
func (d Decoder) AppendDecode(dst, src []byte) ([]byte, error) {
	n, err := d.DecodedLen(src)
	if err != nil {
		return dst, err
	}

	if n == 0 {
		return dst, nil
	}

	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	_, err = d.walk(dst[orig:], src)
	return dst, err
}

// MustDecode is like Decode but panics if src is not valid. It allows
// package level variables to be initialized from encoded literals.
func (d Decoder) MustDecode(src []byte) []byte {
	dst, err := d.Decode(src)
	if err != nil {
		panic("constdecode: " + d.String() + ": " + err.Error())
	}

	return dst
}

func (d Decoder) MustDecodeString(s string) []byte {
	return d.MustDecode([]byte(s))
}
