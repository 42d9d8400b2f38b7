package utf8codec

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers can
// discriminate with errors.Is.
var (
	ErrType   = errors.New("utf8codec: invalid argument type")
	ErrRange  = errors.New("utf8codec: value out of range")
	ErrDecode = errors.New("utf8codec: invalid utf8 sequence")
)

// Error describes a failed conversion.
type Error struct {
	Op    string // operation that failed, e.g. "Encode"
	Kind  error  // ErrType, ErrRange or ErrDecode
	Msg   string
	Index int   // position in a batch input (group index or byte offset); -1 if n/a
	Cause error // foreign error this one wraps, e.g. from a Segmenter; may be nil
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("utf8codec.%s: %s (at %d)", e.Op, e.Msg, e.Index)
	}
	return fmt.Sprintf("utf8codec.%s: %s", e.Op, e.Msg)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func typeErr(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: ErrType, Msg: fmt.Sprintf(format, args...), Index: -1}
}

func rangeErr(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: ErrRange, Msg: fmt.Sprintf(format, args...), Index: -1}
}

func decodeErr(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: ErrDecode, Msg: fmt.Sprintf(format, args...), Index: -1}
}

// at re-labels err for a batch operation, keeping its kind and recording
// the position of the offending element. Errors from outside the package
// become ErrDecode and stay reachable through Cause.
func at(op string, i int, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Op: op, Kind: e.Kind, Msg: e.Msg, Index: i, Cause: e.Cause}
	}
	return &Error{Op: op, Kind: ErrDecode, Msg: err.Error(), Index: i, Cause: err}
}

// relabel is like at but keeps the position err already carries.
func relabel(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return at(op, e.Index, err)
	}
	return at(op, -1, err)
}
