// Package utf8codec converts between Unicode code points and their UTF-8
// byte sequences, one character at a time, and checks whether a candidate
// byte sequence is a well-formed single UTF-8 character.
//
// Core functions (pure, safe for concurrent use):
//   - Validate(b)  structural check of one 1-4 byte sequence; never fails
//   - Encode(cp)   code point -> minimal byte sequence
//   - Decode(b)    byte sequence -> code point (inverse of Encode)
//   - FromChr(s)   one-character string -> byte sequence
//   - ToChr(b)     byte sequence -> one-character string
//   - Parse(s)     string -> Groups, one byte sequence per code point
//   - Stringify(g) Groups -> string
//
// Byte count by code point:
//
//	0x000000-0x00007F  1   0xxxxxxx
//	0x000080-0x0007FF  2   110xxxxx 10xxxxxx
//	0x000800-0x00FFFF  3   1110xxxx 10xxxxxx 10xxxxxx
//	0x010000-0x10FFFF  4   11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
//
// Surrogate code points (U+D800-U+DFFF) are encoded like any other 3-byte
// value; the encoder does not reject them.
//
// Failures are *Error values that unwrap to ErrType, ErrRange or ErrDecode:
//
//	if _, err := utf8codec.Encode(cp); errors.Is(err, utf8codec.ErrRange) { ... }
//
// Subpackages: codec (storage/transport codecs for Groups and text), memo
// (Parse memoized through a byte cache provider), provider (ristretto,
// bigcache, redis backends) and log (zap, logrus, slog adapters).
package utf8codec
