package fressian

import (
	"bytes"
	"reflect"
)

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// isBytesType reports whether t is a byte slice or byte array, both of
// which encode as a byte array rather than a list.
func isBytesType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() == reflect.Uint8
	default:
		return false
	}
}

// keyLess returns the natural ordering for map keys of kind k, or nil when
// the kind has none and keys are ordered by their encoding instead.
func keyLess(k reflect.Kind) func(a, b reflect.Value) bool {
	switch {
	case isIntKind(k):
		return func(a, b reflect.Value) bool { return a.Int() < b.Int() }
	case isUintKind(k):
		return func(a, b reflect.Value) bool { return a.Uint() < b.Uint() }
	case k == reflect.Float32, k == reflect.Float64:
		return func(a, b reflect.Value) bool { return a.Float() < b.Float() }
	case k == reflect.String:
		return func(a, b reflect.Value) bool { return a.String() < b.String() }
	case k == reflect.Bool:
		return func(a, b reflect.Value) bool { return !a.Bool() && b.Bool() }
	default:
		return nil
	}
}

type encodedKey struct {
	raw []byte
	key reflect.Value
}

func compareEncoded(a, b encodedKey) int {
	return bytes.Compare(a.raw, b.raw)
}
