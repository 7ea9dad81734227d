package constdecode

import (
	"bytes"
	"fmt"
)

// Filter selects which input bytes are ignored before alphabet lookup.
type Filter uint8

const (
	// FilterNone passes every byte to the alphabet.
	FilterNone Filter = iota
	// FilterWhitespace skips space, tab, CR and LF.
	FilterWhitespace
	// FilterPEM strips one BEGIN/END banner pair and skips whitespace
	// between them. Anything after the END line is ignored.
	FilterPEM
)

const (
	pemDashes = "-----"
	pemBegin  = "-----BEGIN"
	pemEnd    = "-----END"
)

var filterNames = [...]string{
	FilterNone:       "none",
	FilterWhitespace: "whitespace",
	FilterPEM:        "pem",
}

func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}

	return fmt.Sprintf("Filter(%d)", uint8(f))
}

// ParseFilter maps a name produced by Filter.String back to its Filter.
func ParseFilter(name string) (Filter, error) {
	for i, v := range filterNames {
		if v == name {
			return Filter(i), nil
		}
	}

	return FilterNone, fmt.Errorf("unknown filter %q", name)
}

// Skip reports whether c is ignorable inside the payload.
func (f Filter) Skip(c byte) bool {
	return f != FilterNone && isSpace(c)
}

// payload returns the half open range of src that carries symbols.
func (f Filter) payload(src []byte) (int, int, error) {
	if f != FilterPEM {
		return 0, len(src), nil
	}

	return pemPayload(src)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}

	return false
}

// pemPayload locates the body between the BEGIN banner line and the
// matching END banner line. Only blank lines may precede the BEGIN banner.
func pemPayload(src []byte) (int, int, error) {
	var label []byte
	start := -1

	for pos := 0; pos < len(src); {
		lineStart := pos
		line, next := nextLine(src, pos)
		pos = next

		line = bytes.Trim(line, " \t\r")
		if len(line) == 0 {
			continue
		}

		v, ok := parseBanner(line, pemBegin)
		if !ok {
			return 0, 0, errAt(ErrMalformedEnvelope, lineStart)
		}

		label = v
		start = next
		break
	}

	if start < 0 {
		return 0, 0, errAt(ErrMalformedEnvelope, len(src))
	}

	for pos := start; pos < len(src); {
		lineStart := pos
		line, next := nextLine(src, pos)
		pos = next

		line = bytes.Trim(line, " \t\r")
		if !bytes.HasPrefix(line, []byte(pemDashes)) {
			continue
		}

		v, ok := parseBanner(line, pemEnd)
		if !ok || !bytes.Equal(v, label) {
			return 0, 0, errAt(ErrMalformedEnvelope, lineStart)
		}

		return start, lineStart, nil
	}

	// unterminated block
	return 0, 0, errAt(ErrMalformedEnvelope, len(src))
}

// nextLine returns the line starting at pos without its LF terminator and
// the offset of the following line.
func nextLine(src []byte, pos int) ([]byte, int) {
	i := bytes.IndexByte(src[pos:], '\n')
	if i < 0 {
		return src[pos:], len(src)
	}

	return src[pos : pos+i], pos + i + 1
}

// parseBanner matches "<kind> LABEL-----" or "<kind>-----" and returns the
// trimmed label.
func parseBanner(line []byte, kind string) ([]byte, bool) {
	rest, ok := bytes.CutPrefix(line, []byte(kind))
	if !ok {
		return nil, false
	}

	rest, ok = bytes.CutSuffix(rest, []byte(pemDashes))
	if !ok {
		return nil, false
	}

	if len(rest) > 0 && rest[0] != ' ' {
		return nil, false
	}

	return bytes.TrimSpace(rest), true
}
