// Package footer seals an encoded stream with a trailer carrying its
// length and Adler-32 checksum.
//
// Layout, big-endian: FOOTER code repeated four times (the magic), uint32
// length of the bytes before the footer, uint32 checksum of those bytes.
package footer

import (
	"encoding/binary"
	"hash/adler32"

	"github.com/rawbytedev/fressian/pkg/codes"
	"github.com/rawbytedev/fressian/pkg/wire"
)

const (
	Magic = uint32(codes.Footer)<<24 | uint32(codes.Footer)<<16 | uint32(codes.Footer)<<8 | uint32(codes.Footer)
	Size  = 12
)

// Append seals everything w holds so far.
func Append(w *wire.Writer) {
	body := w.Bytes()
	var trailer [Size]byte
	binary.BigEndian.PutUint32(trailer[0:], Magic)
	binary.BigEndian.PutUint32(trailer[4:], uint32(len(body)))
	binary.BigEndian.PutUint32(trailer[8:], adler32.Checksum(body))
	w.WriteRaw(trailer[:])
}
