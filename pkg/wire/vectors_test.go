package wire

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type vector struct {
	Name   string   `yaml:"name"`
	Int    *int64   `yaml:"int"`
	Bool   *bool    `yaml:"bool"`
	Nil    bool     `yaml:"nil"`
	Double *float64 `yaml:"double"`
	String *string  `yaml:"string"`
	Hex    string   `yaml:"hex"`
}

func (v vector) write(w *Writer) (want any) {
	switch {
	case v.Int != nil:
		w.WriteInt(*v.Int)
		return *v.Int
	case v.Bool != nil:
		w.WriteBoolean(*v.Bool)
		return *v.Bool
	case v.Double != nil:
		w.WriteDouble(*v.Double)
		return *v.Double
	case v.String != nil:
		w.WriteString(*v.String)
		return *v.String
	default:
		w.WriteNull()
		return nil
	}
}

func TestGoldenVectors(t *testing.T) {
	raw, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)
	var vectors []vector
	require.NoError(t, yaml.Unmarshal(raw, &vectors))
	require.NotEmpty(t, vectors)

	w := NewWriter(nil)
	for _, v := range vectors {
		t.Run(v.Name, func(t *testing.T) {
			w.Reset()
			want := v.write(w)
			assert.Equal(t, v.Hex, hex.EncodeToString(w.Bytes()))

			p, err := hex.DecodeString(v.Hex)
			require.NoError(t, err)
			assert.Equal(t, want, decodeObject(t, p))
		})
	}
}
