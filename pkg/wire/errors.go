package wire

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/fressian/pkg/codes"
	"github.com/rawbytedev/fressian/pkg/rawio"
)

var (
	// ErrEOF is returned when the stream ends before a value is complete.
	ErrEOF = rawio.ErrEOF
	// ErrSyntax is returned for structurally invalid input: zero-length
	// raw reads, negative counts, stray end-of-collection codes, odd map
	// element counts and nesting beyond the configured depth.
	ErrSyntax = rawio.ErrSyntax
	// ErrUnmatchedCode is returned for a code byte no decode rule accepts,
	// including a bad continuation code inside a chunked value.
	ErrUnmatchedCode = errors.New("unmatched code")

	ErrExpectedInteger = errors.New("expected integer code")
	ErrExpectedFloat   = errors.New("expected float code")
	ErrExpectedDouble  = errors.New("expected double code")
	ErrExpectedBoolean = errors.New("expected boolean code")
	ErrExpectedBytes   = errors.New("expected bytes code")
	ErrExpectedString  = errors.New("expected string code")
	ErrExpectedNull    = errors.New("expected null code")
	ErrExpectedList    = errors.New("expected list code")

	// ErrInvalidUTF8 is returned when a string payload is not valid
	// modified UTF-8.
	ErrInvalidUTF8 = errors.New("invalid modified utf-8")

	// ErrMessage marks errors raised by layers built on top of the codec;
	// see Errorf.
	ErrMessage = errors.New("codec message")
)

// A mismatched collection code is a syntax error as well as a code error.
var (
	errWrongList    = fmt.Errorf("%w: %w", ErrSyntax, ErrExpectedList)
	errWrongWrapper = fmt.Errorf("%w: %w", ErrSyntax, ErrUnmatchedCode)
)

// CodeError reports a failure tied to a specific code byte.
type CodeError struct {
	Code   byte
	Offset int // offset of the code byte
	Err    error
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("code 0x%02x (%s) at offset %d: %v", e.Code, codes.Classify(e.Code), e.Offset, e.Err)
}

func (e *CodeError) Unwrap() error { return e.Err }

func codeErr(code byte, off int, err error) error {
	return &CodeError{Code: code, Offset: off, Err: err}
}

type messageError struct {
	err error
}

func (e *messageError) Error() string { return e.err.Error() }

func (e *messageError) Unwrap() []error { return []error{ErrMessage, e.err} }

// Errorf formats an error that matches ErrMessage under errors.Is, as well
// as anything wrapped with %w.
func Errorf(format string, args ...any) error {
	return &messageError{err: fmt.Errorf(format, args...)}
}
