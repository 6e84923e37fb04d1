package wire

import "github.com/rawbytedev/fressian/pkg/codes"

// WriteBytes writes p packed when short, otherwise as a run of BYTES_CHUNK
// segments of ByteChunkSize bytes followed by a final BYTES segment.
func (w *Writer) WriteBytes(p []byte) {
	if len(p) < codes.PackedLengthLimit {
		w.raw.WriteUint8(codes.BytesPackedLengthStart + byte(len(p)))
		w.raw.WriteRaw(p)
		return
	}
	for len(p) > codes.ByteChunkSize {
		w.raw.WriteUint8(codes.BytesChunk)
		w.WriteCount(codes.ByteChunkSize)
		w.raw.WriteRaw(p[:codes.ByteChunkSize])
		p = p[codes.ByteChunkSize:]
	}
	w.raw.WriteUint8(codes.Bytes)
	w.WriteCount(len(p))
	w.raw.WriteRaw(p)
}

// ReadBytes decodes a byte array. Unless the reader was opened with
// ZeroCopy, the result is owned by the caller; chunked arrays are always
// owned.
func (r *Reader) ReadBytes() ([]byte, error) {
	off := r.raw.Offset()
	code, err := r.raw.ReadByte()
	if err != nil {
		return nil, err
	}
	return r.readBytes(code, off)
}

func (r *Reader) readBytes(code byte, off int) ([]byte, error) {
	switch codes.Classify(code) {
	case codes.TagBytesPacked:
		n := int(code - codes.BytesPackedLengthStart)
		if n == 0 {
			return []byte{}, nil
		}
		p, err := r.raw.ReadN(n)
		if err != nil {
			return nil, codeErr(code, off, err)
		}
		return r.own(p), nil
	case codes.TagBytes:
		p, err := r.readCounted()
		if err != nil {
			return nil, codeErr(code, off, err)
		}
		return r.own(p), nil
	case codes.TagBytesChunk:
		return r.readChunkedBytes(code, off)
	}
	return nil, codeErr(code, off, ErrExpectedBytes)
}

func (r *Reader) readChunkedBytes(code byte, off int) ([]byte, error) {
	var out []byte
	for {
		p, err := r.readCounted()
		if err != nil {
			return nil, codeErr(code, off, err)
		}
		out = append(out, p...)
		if code == codes.Bytes {
			return out, nil
		}
		off = r.raw.Offset()
		if code, err = r.raw.ReadByte(); err != nil {
			return nil, err
		}
		if code != codes.BytesChunk && code != codes.Bytes {
			return nil, codeErr(code, off, ErrUnmatchedCode)
		}
	}
}

// readCounted reads a count followed by that many raw bytes. A zero count
// is rejected by the cursor as a syntax error.
func (r *Reader) readCounted() ([]byte, error) {
	n, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	return r.raw.ReadN(n)
}

func (r *Reader) own(p []byte) []byte {
	if r.opts.ZeroCopy {
		return p
	}
	return append([]byte(nil), p...)
}
