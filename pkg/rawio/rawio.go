// Package rawio provides the byte cursors the wire codec is built on: a
// bounds-checked Reader over an immutable byte region and a Writer over a
// reusable buffer that tracks its logical length separately from the
// backing storage.
//
// Neither cursor is safe for concurrent use.
package rawio

import "errors"

var (
	// ErrEOF is returned when a read needs more bytes than remain.
	ErrEOF = errors.New("unexpected end of input")
	// ErrSyntax is returned for structurally invalid requests such as a
	// zero-length read.
	ErrSyntax = errors.New("syntax error")
)
