package wire

import (
	"github.com/rawbytedev/fressian/pkg/codes"
)

// WriteListHeader opens a list of n elements. The caller writes the
// elements.
func (w *Writer) WriteListHeader(n int) {
	if n < codes.PackedLengthLimit {
		w.raw.WriteUint8(codes.ListPackedLengthStart + byte(n))
		return
	}
	w.raw.WriteUint8(codes.List)
	w.WriteCount(n)
}

// BeginClosedList opens a list whose end is marked by EndList.
func (w *Writer) BeginClosedList() { w.raw.WriteUint8(codes.BeginClosedList) }

// BeginOpenList opens a list whose end is marked by EndList.
func (w *Writer) BeginOpenList() { w.raw.WriteUint8(codes.BeginOpenList) }

func (w *Writer) EndList() { w.raw.WriteUint8(codes.EndCollection) }

// WriteMapHeader opens a map of n entries; keys and values follow
// interleaved.
func (w *Writer) WriteMapHeader(n int) {
	w.raw.WriteUint8(codes.Map)
	w.WriteListHeader(2 * n)
}

func (w *Writer) WriteSetHeader(n int) {
	w.raw.WriteUint8(codes.Set)
	w.WriteListHeader(n)
}

// Frame iterates the elements of one list. Call Next before reading each
// element.
type Frame struct {
	r         *Reader
	n         int
	remaining int
	streaming bool
	done      bool
}

// Len is the declared element count, or -1 for a streaming list.
func (f *Frame) Len() int {
	if f.streaming {
		return -1
	}
	return f.n
}

// Next reports whether another element follows. For streaming lists it
// consumes the closing END_COLLECTION.
func (f *Frame) Next() (bool, error) {
	if f.done {
		return false, nil
	}
	if !f.streaming {
		if f.remaining == 0 {
			f.done = true
			return false, nil
		}
		f.remaining--
		return true, nil
	}
	code, err := f.r.raw.PeekByte()
	if err != nil {
		return false, err
	}
	if code == codes.EndCollection {
		_, _ = f.r.raw.ReadByte()
		f.done = true
		return false, nil
	}
	return true, nil
}

// ReadList reads a list header.
func (r *Reader) ReadList() (*Frame, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return nil, err
	}
	return r.readFrame(code, off)
}

// ReadMap reads the MAP code and the list header that follows. The frame
// yields keys and values interleaved.
func (r *Reader) ReadMap() (*Frame, error) {
	return r.readWrapped(codes.Map)
}

// ReadSet reads the SET code and the list header that follows.
func (r *Reader) ReadSet() (*Frame, error) {
	return r.readWrapped(codes.Set)
}

func (r *Reader) readWrapped(want byte) (*Frame, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return nil, err
	}
	if code != want {
		return nil, codeErr(code, off, errWrongWrapper)
	}
	return r.ReadList()
}

func (r *Reader) readFrame(code byte, off int) (*Frame, error) {
	f := &Frame{r: r}
	switch codes.Classify(code) {
	case codes.TagListPacked:
		f.n = int(code - codes.ListPackedLengthStart)
	case codes.TagList:
		n, err := r.ReadCount()
		if err != nil {
			return nil, codeErr(code, off, err)
		}
		f.n = n
	case codes.TagBeginClosedList, codes.TagBeginOpenList:
		f.streaming = true
	default:
		return nil, codeErr(code, off, errWrongList)
	}
	f.remaining = f.n
	return f, nil
}
