package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHeaders(t *testing.T) {
	p := encode(t, func(w *Writer) {
		w.WriteListHeader(4)
		for i := range 4 {
			w.WriteInt(int64(i))
		}
	})
	assert.Equal(t, []byte{232, 0, 1, 2, 3}, p)

	assert.Equal(t, []byte{0xE4}, encode(t, func(w *Writer) { w.WriteListHeader(0) }))
	assert.Equal(t, []byte{0xEB}, encode(t, func(w *Writer) { w.WriteListHeader(7) }))
	assert.Equal(t, []byte{0xEC, 0x09}, encode(t, func(w *Writer) { w.WriteListHeader(9) }))
	assert.Equal(t, []byte{0xFD}, encode(t, func(w *Writer) { w.EndList() }))
	assert.Equal(t, []byte{0xC0, 0xE6}, encode(t, func(w *Writer) { w.WriteMapHeader(1) }))
	assert.Equal(t, []byte{0xC1, 0xEC, 0x08}, encode(t, func(w *Writer) { w.WriteSetHeader(8) }))
}

func TestFrameFixed(t *testing.T) {
	r := NewReader([]byte{232, 0, 1, 2, 3})
	f, err := r.ReadList()
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())

	var got []int64
	for {
		more, err := f.Next()
		require.NoError(t, err)
		if !more {
			break
		}
		n, err := r.ReadInt()
		require.NoError(t, err)
		got = append(got, n)
	}
	assert.Equal(t, []int64{0, 1, 2, 3}, got)
	more, err := f.Next()
	require.NoError(t, err)
	assert.False(t, more)
}

func TestFrameStreaming(t *testing.T) {
	p := encode(t, func(w *Writer) {
		w.BeginOpenList()
		w.WriteString("a")
		w.WriteString("b")
		w.EndList()
		w.WriteNull()
	})
	r := NewReader(p)
	f, err := r.ReadList()
	require.NoError(t, err)
	assert.Equal(t, -1, f.Len())

	var got []string
	for {
		more, err := f.Next()
		require.NoError(t, err)
		if !more {
			break
		}
		s, err := r.ReadString()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b"}, got)
	require.NoError(t, r.ReadNull())
	assert.Zero(t, r.Len())
}

func TestFrameStreamingEOF(t *testing.T) {
	r := NewReader([]byte{0xEE, 0x01})
	f, err := r.ReadList()
	require.NoError(t, err)
	more, err := f.Next()
	require.NoError(t, err)
	require.True(t, more)
	_, err = r.ReadInt()
	require.NoError(t, err)
	_, err = f.Next()
	assert.ErrorIs(t, err, ErrEOF)
}

func TestNestedStreamingLists(t *testing.T) {
	p := encode(t, func(w *Writer) {
		w.BeginOpenList()
		w.WriteInt(1)
		w.BeginClosedList()
		w.WriteInt(2)
		w.BeginOpenList()
		w.EndList()
		w.EndList()
		w.WriteInt(3)
		w.EndList()
	})
	assert.Equal(t, []any{int64(1), []any{int64(2), []any{}}, int64(3)}, decodeObject(t, p))
}

func TestFixedListTooShort(t *testing.T) {
	_, err := NewReader([]byte{0xE6, 0x01}).ReadObject()
	assert.ErrorIs(t, err, ErrEOF)
}

func TestReadMapAndSetFrames(t *testing.T) {
	p := encode(t, func(w *Writer) {
		w.WriteMapHeader(2)
		w.WriteString("a")
		w.WriteInt(1)
		w.WriteString("b")
		w.WriteInt(2)
	})
	f, err := NewReader(p).ReadMap()
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())

	p = encode(t, func(w *Writer) {
		w.WriteSetHeader(1)
		w.WriteBoolean(true)
	})
	f, err = NewReader(p).ReadSet()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Len())

	_, err = NewReader(p).ReadMap()
	assert.ErrorIs(t, err, ErrUnmatchedCode)
	_, err = NewReader([]byte{0xF7}).ReadList()
	assert.ErrorIs(t, err, ErrExpectedList)
}

func TestWrongCollectionCode(t *testing.T) {
	cases := map[string]struct {
		in   []byte
		read func(r *Reader) (*Frame, error)
		want error
	}{
		"list from null":  {[]byte{0xF7}, (*Reader).ReadList, ErrExpectedList},
		"list from int":   {[]byte{0x05}, (*Reader).ReadList, ErrExpectedList},
		"map from list":   {[]byte{0xE4}, (*Reader).ReadMap, ErrUnmatchedCode},
		"set from map":    {[]byte{0xC0, 0xE4}, (*Reader).ReadSet, ErrUnmatchedCode},
		"map then string": {[]byte{0xC0, 0xDA}, (*Reader).ReadMap, ErrExpectedList},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.read(NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.ErrorIs(t, err, tc.want)
			var ce *CodeError
			assert.ErrorAs(t, err, &ce)
		})
	}
}
