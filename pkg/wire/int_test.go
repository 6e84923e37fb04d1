package wire

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIntTiers(t *testing.T) {
	cases := map[string]struct {
		n    int64
		want []byte
	}{
		"zero":        {0, []byte{0x00}},
		"max single":  {63, []byte{0x3F}},
		"minus one":   {-1, []byte{0xFF}},
		"min two":     {-2, []byte{0x4F, 0xFE}},
		"first two":   {64, []byte{0x50, 0x40}},
		"max two":     {4095, []byte{0x5F, 0xFF}},
		"min two neg": {-4096, []byte{0x40, 0x00}},
		"first three": {4096, []byte{0x68, 0x10, 0x00}},
		"max three":   {524287, []byte{0x6F, 0xFF, 0xFF}},
		"min three":   {-524288, []byte{0x60, 0x00, 0x00}},
		"first four":  {524288, []byte{0x72, 0x08, 0x00, 0x00}},
		"max four":    {1<<25 - 1, []byte{0x73, 0xFF, 0xFF, 0xFF}},
		"min four":    {-1 << 25, []byte{0x70, 0x00, 0x00, 0x00}},
		"first five":  {1 << 25, []byte{0x76, 0x02, 0x00, 0x00, 0x00}},
		"max five":    {1<<33 - 1, []byte{0x77, 0xFF, 0xFF, 0xFF, 0xFF}},
		"first six":   {1 << 33, []byte{0x7A, 0x02, 0x00, 0x00, 0x00, 0x00}},
		"first seven": {1 << 41, []byte{0x7E, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00}},
		"max seven":   {1<<49 - 1, []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		"first nine":  {1 << 49, []byte{0xF8, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		"max int64":   {math.MaxInt64, []byte{0xF8, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		"min int64":   {math.MinInt64, []byte{0xF8, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got := encode(t, func(w *Writer) { w.WriteInt(c.n) })
			assert.Equal(t, c.want, got)
			assert.Equal(t, len(c.want), IntSize(c.n))

			n, err := NewReader(got).ReadInt()
			require.NoError(t, err)
			assert.Equal(t, c.n, n)
		})
	}
}

func TestIntRoundTripQuick(t *testing.T) {
	w := NewWriter(nil)
	f := func(n int64) bool {
		w.Reset()
		w.WriteInt(n)
		if w.Len() != IntSize(n) {
			return false
		}
		got, err := NewReader(w.Bytes()).ReadInt()
		return err == nil && got == n
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 5000}))
}

func TestIntRoundTripAllShifts(t *testing.T) {
	w := NewWriter(nil)
	for i := 0; i < 64; i++ {
		for _, n := range []int64{1 << i, 1<<i - 1, -(1 << i), -(1 << i) - 1} {
			w.Reset()
			w.WriteInt(n)
			got, err := NewReader(w.Bytes()).ReadInt()
			require.NoError(t, err)
			require.Equal(t, n, got, "shift %d", i)
		}
	}
}

func TestReadIntErrors(t *testing.T) {
	_, err := NewReader(nil).ReadInt()
	assert.ErrorIs(t, err, ErrEOF)

	for _, code := range []byte{0x50, 0x68, 0x72, 0x76, 0x7A, 0x7E, 0xF8} {
		_, err := NewReader([]byte{code}).ReadInt()
		assert.ErrorIs(t, err, ErrEOF, "code 0x%02x", code)
	}

	_, err = NewReader([]byte{0xF7}).ReadInt()
	assert.ErrorIs(t, err, ErrExpectedInteger)
	var ce *CodeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, byte(0xF7), ce.Code)
	assert.Equal(t, 0, ce.Offset)
}

func TestReadCount(t *testing.T) {
	n, err := NewReader([]byte{0x09}).ReadCount()
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = NewReader([]byte{0xFF}).ReadCount()
	assert.ErrorIs(t, err, ErrSyntax)
}
