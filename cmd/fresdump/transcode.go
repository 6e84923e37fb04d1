package main

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/rawbytedev/fressian/pkg/wire"
)

// tagSet is the registered CBOR tag for mathematical finite sets.
const tagSet = 258

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("fresdump: CBOR encoder initialization failed: " + err.Error())
	}
	return em
}()

// transcode writes values as a CBOR sequence.
func transcode(values []any) ([]byte, error) {
	var out []byte
	for _, v := range values {
		p, err := encMode.Marshal(toCBOR(v))
		if err != nil {
			return nil, err
		}
		out = append(out, p...)
	}
	return out, nil
}

// toCBOR maps decoded values onto types the CBOR encoder understands.
// Maps whose keys Go cannot hash become arrays of [key, value] pairs.
func toCBOR(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toCBOR(e)
		}
		return out
	case wire.Set:
		return cbor.Tag{Number: tagSet, Content: toCBOR([]any(v))}
	case wire.Map:
		m := make(map[any]any, len(v))
		for _, ent := range v {
			k := toCBOR(ent.Key)
			if k != nil && !reflect.TypeOf(k).Comparable() {
				return pairs(v)
			}
			m[k] = toCBOR(ent.Value)
		}
		return m
	default:
		return v
	}
}

func pairs(m wire.Map) []any {
	out := make([]any, len(m))
	for i, ent := range m {
		out[i] = []any{toCBOR(ent.Key), toCBOR(ent.Value)}
	}
	return out
}
