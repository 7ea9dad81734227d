package constdecode

import "slices"

// Preset alphabets. Hex and the base32 family decode case insensitively;
// the base64 family is case sensitive and requires '=' padding.
var (
	Hex = preset("hex", "0123456789abcdef", true, NoPadding)

	Base64    = preset("base64", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", false, StdPadding)
	Base64URL = preset("base64url", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", false, StdPadding)

	// Base32 is the RFC 4648 alphabet without padding.
	Base32 = preset("base32", "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", true, NoPadding)

	// Base32Hex is the RFC 4648 extended hex alphabet without padding.
	Base32Hex = preset("base32hex", "0123456789ABCDEFGHIJKLMNOPQRSTUV", true, NoPadding)

	// Base32DNSSEC is the RFC 5155 lowercase extended hex alphabet.
	Base32DNSSEC = preset("base32-dnssec", "0123456789abcdefghijklmnopqrstuv", true, NoPadding)

	// Base32DNSCurve is the DNSCurve alphabet.
	Base32DNSCurve = preset("base32-dnscurve", "0123456789bcdfghjklmnpqrstuvwxyz", true, NoPadding)
)

// PEM decodes base64 wrapped in a single BEGIN/END envelope.
var PEM = NewDecoder(Base64, FilterPEM)

var presets = []Alphabet{
	Hex,
	Base64,
	Base64URL,
	Base32,
	Base32Hex,
	Base32DNSSEC,
	Base32DNSCurve,
}

// AlphabetByName returns the preset with the given name.
func AlphabetByName(name string) (Alphabet, bool) {
	for _, a := range presets {
		if a.name == name {
			return a, true
		}
	}

	return Alphabet{}, false
}

// AlphabetNames lists the preset names in a stable order.
func AlphabetNames() []string {
	names := make([]string, 0, len(presets))
	for _, a := range presets {
		names = append(names, a.name)
	}

	return slices.Clip(names)
}

func preset(name, symbols string, foldCase bool, padding rune) Alphabet {
	a, err := Custom(symbols)
	if err == nil && foldCase {
		a, err = a.FoldCase()
	}
	if err == nil {
		a, err = a.WithPadding(padding)
	}
	if err != nil {
		panic("constdecode: preset " + name + ": " + err.Error())
	}

	return a.WithName(name)
}
