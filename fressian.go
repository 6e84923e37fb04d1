// Package fressian encodes Go values to the tagged byte stream and decodes
// the stream back to a generic value tree.
//
// The decoded model is nil, bool, int64, float32, float64, []byte, string,
// []any, wire.Map and wire.Set.
package fressian

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rawbytedev/fressian/pkg/footer"
	"github.com/rawbytedev/fressian/pkg/wire"
)

var (
	ErrUnsupported   = errors.New("unsupported type")
	ErrTrailingBytes = errors.New("trailing bytes after value")
)

type Options struct {
	// ZeroCopy makes decoded byte arrays alias the input.
	ZeroCopy bool
	// MaxDepth bounds collection nesting on encode and decode. On encode,
	// each pointer or interface followed also counts as a level.
	MaxDepth        int
	InitialCapacity int
	// Extension decodes codes outside the core value set.
	Extension wire.ExtensionFunc
	Logger    *slog.Logger
}

// Fressian is an encode/decode session. It reuses its buffers across calls
// and is not safe for concurrent use.
type Fressian struct {
	Opts Options
	w    *wire.Writer
	r    *wire.Reader
	log  *slog.Logger
}

func New(opts Options) *Fressian {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = wire.DefaultMaxDepth
	}
	if opts.InitialCapacity <= 0 {
		opts.InitialCapacity = 64
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Fressian{
		Opts: opts,
		w:    wire.NewWriter(make([]byte, 0, opts.InitialCapacity)),
		r: wire.NewReaderOptions(nil, wire.ReaderOptions{
			ZeroCopy:  opts.ZeroCopy,
			MaxDepth:  opts.MaxDepth,
			Extension: opts.Extension,
		}),
		log: log,
	}
}

// Reset discards everything written so far.
func (f *Fressian) Reset() { f.w.Reset() }

// Write appends one value to the session's output. On failure the output
// is rolled back to where it was before the call.
func (f *Fressian) Write(v any) error {
	mark := f.w.Len()
	e := encoder{w: f.w, maxDepth: f.Opts.MaxDepth}
	if err := e.encode(v, 0); err != nil {
		f.w.Truncate(mark)
		f.log.Debug("encode failed", "offset", mark, "type", fmt.Sprintf("%T", v), "err", err)
		return err
	}
	return nil
}

// WriteFooter seals the output written so far with a length and checksum
// trailer. See footer.Split.
func (f *Fressian) WriteFooter() { footer.Append(f.w) }

// Bytes returns the output written since the last Reset. It is valid until
// the next call on f.
func (f *Fressian) Bytes() []byte { return f.w.Bytes() }

// Encode encodes v alone. The result is valid until the next call on f.
func (f *Fressian) Encode(v any) ([]byte, error) {
	f.w.Reset()
	if err := f.Write(v); err != nil {
		return nil, err
	}
	return f.w.Bytes(), nil
}

// Decode decodes exactly one value from p.
func (f *Fressian) Decode(p []byte) (any, error) {
	f.r.Reset(p)
	v, err := f.r.ReadObject()
	if err != nil {
		f.logDecodeError(err)
		return nil, err
	}
	if n := f.r.Len(); n > 0 {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingBytes, n, f.r.Offset())
	}
	return v, nil
}

// DecodeAll decodes a sequence of top-level values.
func (f *Fressian) DecodeAll(p []byte) ([]any, error) {
	f.r.Reset(p)
	var out []any
	for f.r.Len() > 0 {
		v, err := f.r.ReadObject()
		if err != nil {
			f.logDecodeError(err)
			return nil, fmt.Errorf("value %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *Fressian) logDecodeError(err error) {
	var ce *wire.CodeError
	if errors.As(err, &ce) {
		f.log.Debug("decode failed", "offset", ce.Offset, "code", fmt.Sprintf("0x%02x", ce.Code), "err", err)
		return
	}
	f.log.Debug("decode failed", "offset", f.r.Offset(), "err", err)
}

// Marshal encodes v into a new slice.
func Marshal(v any) ([]byte, error) {
	return New(Options{}).Encode(v)
}

// Unmarshal decodes the single value in p.
func Unmarshal(p []byte) (any, error) {
	return New(Options{}).Decode(p)
}
