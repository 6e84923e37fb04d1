package wire

import (
	"github.com/rawbytedev/fressian/pkg/codes"
	"github.com/rawbytedev/fressian/pkg/rawio"
)

// DefaultMaxDepth bounds collection nesting when ReaderOptions.MaxDepth is
// zero.
const DefaultMaxDepth = 1000

// ExtensionFunc decodes a value whose code the core does not handle
// (cache references, typed arrays, tagged extensions, structs). The code
// byte has already been consumed.
type ExtensionFunc func(code byte, r *Reader) (any, error)

type ReaderOptions struct {
	// ZeroCopy makes byte arrays alias the input instead of copying.
	ZeroCopy  bool
	MaxDepth  int
	Extension ExtensionFunc
}

// Reader decodes values from an in-memory region.
type Reader struct {
	raw   *rawio.Reader
	opts  ReaderOptions
	depth int
	chunk []byte
}

func NewReader(p []byte) *Reader {
	return NewReaderOptions(p, ReaderOptions{})
}

func NewReaderOptions(p []byte, opts ReaderOptions) *Reader {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Reader{raw: rawio.NewReader(p), opts: opts}
}

// Reset points the reader at a new region.
func (r *Reader) Reset(p []byte) {
	r.raw.ResetBytes(p)
	r.depth = 0
}

// Offset reports the position of the next unread byte.
func (r *Reader) Offset() int { return r.raw.Offset() }

// Len reports the number of unread bytes.
func (r *Reader) Len() int { return r.raw.Len() }

func (r *Reader) ReadNextCode() (byte, error) { return r.raw.ReadByte() }

func (r *Reader) PeekCode() (byte, error) { return r.raw.PeekByte() }

// ReadRaw reads n bytes with no code. Extension decoders use it for fixed
// payloads such as UUIDs.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	p, err := r.raw.ReadN(n)
	if err != nil {
		return nil, err
	}
	return r.own(p), nil
}

func (r *Reader) ReadBoolean() (bool, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return false, err
	}
	switch code {
	case codes.True:
		return true, nil
	case codes.False:
		return false, nil
	}
	return false, codeErr(code, off, ErrExpectedBoolean)
}

func (r *Reader) ReadNull() error {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return err
	}
	if code != codes.Null {
		return codeErr(code, off, ErrExpectedNull)
	}
	return nil
}

func (r *Reader) enter(code byte, off int) error {
	if r.depth >= r.opts.MaxDepth {
		return codeErr(code, off, ErrSyntax)
	}
	r.depth++
	return nil
}

func (r *Reader) leave() { r.depth-- }
