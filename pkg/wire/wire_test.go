package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func encode(t testing.TB, f func(w *Writer)) []byte {
	t.Helper()
	w := NewWriter(nil)
	f(w)
	return w.Snapshot()
}

func decodeObject(t testing.TB, p []byte) any {
	t.Helper()
	r := NewReader(p)
	v, err := r.ReadObject()
	require.NoError(t, err)
	require.Zero(t, r.Len(), "trailing bytes")
	return v
}
