package constdecode

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidPadding    = errors.New("invalid padding")
	ErrNonCanonical      = errors.New("non-canonical trailing bits")
	ErrMalformedEnvelope = errors.New("malformed envelope")
	ErrLengthMismatch    = errors.New("output length mismatch")
	ErrInvalidAlphabet   = errors.New("invalid alphabet")
)

// DecodeError reports where in the input a decode failed.
//
// Err is always one of the package level sentinels so callers can match
// with errors.Is. Pos is the byte offset into the original input, before
// any filtering, or -1 when the failure has no position.
type DecodeError struct {
	Err error
	Pos int
}

func (e *DecodeError) Error() string {
	if e.Pos < 0 {
		return e.Err.Error()
	}

	return e.Err.Error() + " at offset " + strconv.Itoa(e.Pos)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func errAt(err error, pos int) error {
	return &DecodeError{Err: err, Pos: pos}
}
