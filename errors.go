package nescookie

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// KindIO means the file could not be opened or read.
	KindIO ErrorKind = 1
	// KindDecode means the input bytes are not valid UTF-8 text.
	KindDecode ErrorKind = 2
	// KindMalformedLine means a non-blank, non-comment line did not split
	// into exactly 7 tab-separated fields.
	KindMalformedLine ErrorKind = 3
	// KindInvalidFlag means the include-subdomains or secure field was not
	// the literal TRUE or FALSE.
	KindInvalidFlag ErrorKind = 4
	// KindInvalidExpiry means the expiry field was not a base-10 integer.
	KindInvalidExpiry ErrorKind = 5
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindDecode:
		return "decode error"
	case KindMalformedLine:
		return "malformed line"
	case KindInvalidFlag:
		return "invalid flag"
	case KindInvalidExpiry:
		return "invalid expiry"
	}
	return "unknown error"
}

var errNotUTF8 = errors.New("input is not valid UTF-8 text")

// ParseError is the error type returned by every parse entry point.
// Line is 1-based and zero for errors that are not line-local (I/O and
// decode failures). Raw holds the offending line verbatim for line-local
// kinds. Err wraps the underlying cause where one exists.
type ParseError struct {
	Kind ErrorKind
	Line int
	Raw  string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindIO, KindDecode:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case KindMalformedLine:
		return fmt.Sprintf("line %d: %s: want 7 tab-separated fields: %q", e.Line, e.Kind, e.Raw)
	default:
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Kind, e.Raw)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func ioError(err error) *ParseError {
	return &ParseError{Kind: KindIO, Err: err}
}

func decodeError() *ParseError {
	return &ParseError{Kind: KindDecode, Err: errNotUTF8}
}

func lineError(kind ErrorKind, line int, raw string) *ParseError {
	return &ParseError{Kind: kind, Line: line, Raw: raw}
}
