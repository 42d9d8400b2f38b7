package utf8codec

import "unicode/utf8"

// FromChr encodes a string holding exactly one code point. The empty string,
// strings with more than one code point and strings that are not valid UTF-8
// fail with ErrRange.
func FromChr(s string) ([]byte, error) {
	if s == "" {
		return nil, rangeErr("FromChr", "character must be exactly one code point, got empty string")
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return nil, rangeErr("FromChr", "%q is not a valid character", s)
	}
	if size != len(s) {
		return nil, rangeErr("FromChr", "character must be exactly one code point, got %d", utf8.RuneCountInString(s))
	}
	return Encode(r)
}

// ToChr decodes b and returns the one-character string for it. The result
// always holds the canonical encoding, so a structurally valid overlong
// input such as [c1 81] comes back as "A".
func ToChr(b []byte) (string, error) {
	cp, err := Decode(b)
	if err != nil {
		return "", err
	}
	return string(appendEncoded(make([]byte, 0, UTFMax), cp)), nil
}
