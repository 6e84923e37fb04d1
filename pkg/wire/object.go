package wire

import (
	"fmt"

	"github.com/rawbytedev/fressian/pkg/codes"
)

// MapEntry is one key/value pair of a decoded map.
type MapEntry struct {
	Key, Value any
}

// Map is a decoded map in wire order. Keys may be any decoded value,
// including ones Go cannot use as map keys.
type Map []MapEntry

// Set is a decoded set in wire order.
type Set []any

// ReadObject decodes the next value of any core type: nil, bool, int64,
// float32, float64, []byte, string, []any, Map or Set. Other codes go to
// the registered ExtensionFunc.
func (r *Reader) ReadObject() (any, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return nil, err
	}
	return r.readObject(code, off)
}

// Skip consumes one value.
func (r *Reader) Skip() error {
	_, err := r.ReadObject()
	return err
}

func (r *Reader) readObject(code byte, off int) (any, error) {
	tag := codes.Classify(code)
	if tag.IsInt() {
		n, err := r.readInt(code, off)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	switch tag {
	case codes.TagNull:
		return nil, nil
	case codes.TagTrue:
		return true, nil
	case codes.TagFalse:
		return false, nil
	case codes.TagFloat:
		f, err := r.readFloat(code, off)
		if err != nil {
			return nil, err
		}
		return f, nil
	case codes.TagDouble, codes.TagDouble0, codes.TagDouble1:
		d, err := r.readDouble(code, off)
		if err != nil {
			return nil, err
		}
		return d, nil
	case codes.TagBytesPacked, codes.TagBytesChunk, codes.TagBytes:
		p, err := r.readBytes(code, off)
		if err != nil {
			return nil, err
		}
		return p, nil
	case codes.TagStringPacked, codes.TagStringChunk, codes.TagString:
		s, err := r.readString(code, off)
		if err != nil {
			return nil, err
		}
		return s, nil
	case codes.TagListPacked, codes.TagList, codes.TagBeginClosedList, codes.TagBeginOpenList:
		l, err := r.readElements(code, off)
		if err != nil {
			return nil, err
		}
		return l, nil
	case codes.TagMap:
		m, err := r.readMapObject(code, off)
		if err != nil {
			return nil, err
		}
		return m, nil
	case codes.TagSet:
		s, err := r.readSetObject()
		if err != nil {
			return nil, err
		}
		return s, nil
	case codes.TagEndCollection:
		return nil, codeErr(code, off, fmt.Errorf("%w: end of collection outside a list", ErrSyntax))
	case codes.TagUnmatched:
		return nil, codeErr(code, off, ErrUnmatchedCode)
	}
	if r.opts.Extension != nil {
		return r.opts.Extension(code, r)
	}
	return nil, codeErr(code, off, ErrUnmatchedCode)
}

// maxPrealloc caps slice preallocation from a declared count, which the
// input controls.
const maxPrealloc = 1024

func (r *Reader) readElements(code byte, off int) ([]any, error) {
	if err := r.enter(code, off); err != nil {
		return nil, err
	}
	defer r.leave()
	f, err := r.readFrame(code, off)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, min(max(f.Len(), 0), maxPrealloc))
	for {
		more, err := f.Next()
		if err != nil {
			return nil, fmt.Errorf("list at offset %d: %w", off, err)
		}
		if !more {
			return out, nil
		}
		v, err := r.ReadObject()
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}

func (r *Reader) readMapObject(code byte, off int) (Map, error) {
	elems, err := r.readWrappedElements()
	if err != nil {
		return nil, err
	}
	if len(elems)%2 != 0 {
		return nil, codeErr(code, off, fmt.Errorf("%w: map with odd element count %d", ErrSyntax, len(elems)))
	}
	m := make(Map, 0, len(elems)/2)
	for i := 0; i < len(elems); i += 2 {
		m = append(m, MapEntry{Key: elems[i], Value: elems[i+1]})
	}
	return m, nil
}

func (r *Reader) readSetObject() (Set, error) {
	elems, err := r.readWrappedElements()
	if err != nil {
		return nil, err
	}
	return Set(elems), nil
}

// readWrappedElements reads the list that follows a MAP or SET code.
func (r *Reader) readWrappedElements() ([]any, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return nil, err
	}
	return r.readElements(code, off)
}
