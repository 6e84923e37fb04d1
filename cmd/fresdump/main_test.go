package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/fressian"
	"github.com/rawbytedev/fressian/pkg/footer"
	"github.com/rawbytedev/fressian/pkg/wire"
)

func encodeAll(t *testing.T, values ...any) []byte {
	t.Helper()
	f := fressian.New(fressian.Options{})
	for _, v := range values {
		require.NoError(t, f.Write(v))
	}
	return bytes.Clone(f.Bytes())
}

func runCmd(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestDiagFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, encodeAll(t, []any{1, "a"}, true), 0o644))

	out, _, err := runCmd(t, nil, path)
	require.NoError(t, err)
	assert.Equal(t, "[1 \"a\"]\ntrue\n", out)
}

func TestDiagHexStdin(t *testing.T) {
	out, _, err := runCmd(t, []byte("e8 00 01\n02 03\n"), "--hex")
	require.NoError(t, err)
	assert.Equal(t, "[0 1 2 3]\n", out)
}

func TestCBOR(t *testing.T) {
	in := encodeAll(t,
		wire.Map{{Key: "a", Value: int64(1)}},
		wire.Set{"x"},
		wire.Map{{Key: []byte{1}, Value: nil}},
	)
	out, _, err := runCmd(t, in, "--format", "cbor")
	require.NoError(t, err)

	dec := cbor.NewDecoder(bytes.NewReader([]byte(out)))
	var first, second, third any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.NoError(t, dec.Decode(&third))
	assert.Equal(t, map[any]any{"a": uint64(1)}, first)
	assert.Equal(t, cbor.Tag{Number: 258, Content: []any{"x"}}, second)
	assert.Equal(t, []any{[]any{[]byte{1}, nil}}, third)
}

func TestDedupStats(t *testing.T) {
	in := encodeAll(t, []any{"x", "x", []any{"x"}})
	for _, hash := range []string{"xxhash", "blake3"} {
		_, stderr, err := runCmd(t, in, "--dedup-stats", "--hash", hash)
		require.NoError(t, err)
		assert.Contains(t, stderr, "values: 4, distinct: 2, repeated: 2, repeated bytes: 4")
	}
}

func TestErrors(t *testing.T) {
	_, _, err := runCmd(t, []byte{0x01}, "--format", "xml")
	assert.ErrorContains(t, err, "unknown --format")

	_, _, err = runCmd(t, []byte{0xE6, 0x01})
	assert.ErrorIs(t, err, wire.ErrEOF)

	_, _, err = runCmd(t, nil, "--log-level", "loud")
	assert.ErrorContains(t, err, "--log-level")

	_, _, err = runCmd(t, []byte("zz"), "--hex")
	assert.ErrorContains(t, err, "decode hex input")

	_, _, err = runCmd(t, []byte{0x01}, "--dedup-stats", "--hash", "md5")
	assert.ErrorContains(t, err, "unknown --hash")

	_, _, err = runCmd(t, nil, "a", "b")
	assert.ErrorContains(t, err, "unexpected argument")

	_, stderr, err := runCmd(t, nil, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.True(t, strings.Contains(stderr, "fresdump [flags] [file]"))
}

func TestFooter(t *testing.T) {
	f := fressian.New(fressian.Options{})
	require.NoError(t, f.Write("sealed"))
	f.WriteFooter()
	in := bytes.Clone(f.Bytes())

	out, _, err := runCmd(t, in, "--footer")
	require.NoError(t, err)
	assert.Equal(t, "\"sealed\"\n", out)

	in[0] ^= 0x01
	_, _, err = runCmd(t, in, "--footer")
	assert.ErrorIs(t, err, footer.ErrChecksumMismatch)

	_, _, err = runCmd(t, []byte{0x01}, "--footer")
	assert.ErrorIs(t, err, footer.ErrNoFooter)
}

func TestMaxDepth(t *testing.T) {
	in := encodeAll(t, []any{[]any{[]any{}}})
	_, _, err := runCmd(t, in, "--max-depth", "2")
	assert.ErrorIs(t, err, wire.ErrSyntax)
	_, _, err = runCmd(t, in, "--max-depth", "3")
	assert.NoError(t, err)
}
