package fressian

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/rawbytedev/fressian/pkg/wire"
)

type encoderFunc func(e *encoder, v reflect.Value, depth int) error

// typePlan is the resolved encoding for one Go type.
type typePlan struct {
	enc encoderFunc
}

type planCache struct {
	mu   sync.RWMutex
	plan map[reflect.Type]*typePlan
}

// plans is shared by every session.
var plans = &planCache{plan: make(map[reflect.Type]*typePlan)}

func (c *planCache) get(t reflect.Type) *typePlan {
	c.mu.RLock()
	if p, ok := c.plan[t]; ok {
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check
	if p, ok := c.plan[t]; ok {
		return p
	}
	p := newPlan(t)
	c.plan[t] = p
	return p
}

var (
	marshalerType = reflect.TypeFor[wire.Marshaler]()
	mapType       = reflect.TypeFor[wire.Map]()
	setType       = reflect.TypeFor[wire.Set]()
)

func newPlan(t reflect.Type) *typePlan {
	k := t.Kind()
	switch {
	case t.Implements(marshalerType):
		return &typePlan{enc: encodeMarshaler}
	case t == mapType || t == setType:
		return &typePlan{enc: encodeBoxed}
	case k == reflect.Bool:
		return &typePlan{enc: encodeBool}
	case isIntKind(k):
		return &typePlan{enc: encodeInt}
	case isUintKind(k):
		return &typePlan{enc: encodeUint}
	case k == reflect.Float32:
		return &typePlan{enc: encodeFloat}
	case k == reflect.Float64:
		return &typePlan{enc: encodeDouble}
	case k == reflect.String:
		return &typePlan{enc: encodeString}
	case isBytesType(t):
		return &typePlan{enc: encodeByteSeq}
	case k == reflect.Slice, k == reflect.Array:
		return &typePlan{enc: encodeSeq}
	case k == reflect.Map:
		less := keyLess(t.Key().Kind())
		return &typePlan{enc: func(e *encoder, v reflect.Value, depth int) error {
			return encodeMap(e, v, depth, less)
		}}
	case k == reflect.Pointer, k == reflect.Interface:
		return &typePlan{enc: encodeIndirect}
	default:
		return &typePlan{enc: encodeUnsupported}
	}
}

type encoder struct {
	w        *wire.Writer
	maxDepth int
}

// descend fails once depth reaches the nesting limit.
func (e *encoder) descend(depth int) error {
	if depth >= e.maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", wire.ErrSyntax, e.maxDepth)
	}
	return nil
}

// encode writes x, taking a direct path for the types the decoder
// produces and falling back to reflection for everything else.
func (e *encoder) encode(x any, depth int) error {
	switch v := x.(type) {
	case nil:
		e.w.WriteNull()
	case wire.Marshaler:
		return e.encodeValue(reflect.ValueOf(x), depth)
	case bool:
		e.w.WriteBoolean(v)
	case int:
		e.w.WriteInt(int64(v))
	case int64:
		e.w.WriteInt(v)
	case int32:
		e.w.WriteInt(int64(v))
	case float64:
		e.w.WriteDouble(v)
	case float32:
		e.w.WriteFloat(v)
	case string:
		e.w.WriteString(v)
	case []byte:
		if v == nil {
			e.w.WriteNull()
			return nil
		}
		e.w.WriteBytes(v)
	case []any:
		if v == nil {
			e.w.WriteNull()
			return nil
		}
		if err := e.descend(depth); err != nil {
			return err
		}
		e.w.WriteListHeader(len(v))
		return e.encodeAll(v, depth+1)
	case wire.Set:
		if err := e.descend(depth); err != nil {
			return err
		}
		e.w.WriteSetHeader(len(v))
		return e.encodeAll(v, depth+1)
	case wire.Map:
		if err := e.descend(depth); err != nil {
			return err
		}
		e.w.WriteMapHeader(len(v))
		for i, ent := range v {
			if err := e.encode(ent.Key, depth+1); err != nil {
				return fmt.Errorf("map key %d: %w", i, err)
			}
			if err := e.encode(ent.Value, depth+1); err != nil {
				return fmt.Errorf("map value %d: %w", i, err)
			}
		}
	case map[string]any:
		if v == nil {
			e.w.WriteNull()
			return nil
		}
		if err := e.descend(depth); err != nil {
			return err
		}
		e.w.WriteMapHeader(len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			e.w.WriteString(k)
			if err := e.encode(v[k], depth+1); err != nil {
				return fmt.Errorf("map value %q: %w", k, err)
			}
		}
	default:
		return e.encodeValue(reflect.ValueOf(x), depth)
	}
	return nil
}

func (e *encoder) encodeAll(elems []any, depth int) error {
	for i, x := range elems {
		if err := e.encode(x, depth); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (e *encoder) encodeValue(v reflect.Value, depth int) error {
	if !v.IsValid() {
		e.w.WriteNull()
		return nil
	}
	return plans.get(v.Type()).enc(e, v, depth)
}

func encodeMarshaler(e *encoder, v reflect.Value, _ int) error {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		e.w.WriteNull()
		return nil
	}
	return v.Interface().(wire.Marshaler).MarshalFressian(e.w)
}

// encodeBoxed routes wire.Map and wire.Set reached through reflection back
// to the direct path.
func encodeBoxed(e *encoder, v reflect.Value, depth int) error {
	return e.encode(v.Interface(), depth)
}

func encodeBool(e *encoder, v reflect.Value, _ int) error {
	e.w.WriteBoolean(v.Bool())
	return nil
}

func encodeInt(e *encoder, v reflect.Value, _ int) error {
	e.w.WriteInt(v.Int())
	return nil
}

func encodeUint(e *encoder, v reflect.Value, _ int) error {
	u := v.Uint()
	if u > math.MaxInt64 {
		return wire.Errorf("%w: %s value %d overflows int64", ErrUnsupported, v.Type(), u)
	}
	e.w.WriteInt(int64(u))
	return nil
}

func encodeFloat(e *encoder, v reflect.Value, _ int) error {
	e.w.WriteFloat(float32(v.Float()))
	return nil
}

func encodeDouble(e *encoder, v reflect.Value, _ int) error {
	e.w.WriteDouble(v.Float())
	return nil
}

func encodeString(e *encoder, v reflect.Value, _ int) error {
	e.w.WriteString(v.String())
	return nil
}

func encodeByteSeq(e *encoder, v reflect.Value, _ int) error {
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			e.w.WriteNull()
			return nil
		}
		e.w.WriteBytes(v.Bytes())
		return nil
	}
	b := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(b), v)
	e.w.WriteBytes(b)
	return nil
}

func encodeSeq(e *encoder, v reflect.Value, depth int) error {
	if v.Kind() == reflect.Slice && v.IsNil() {
		e.w.WriteNull()
		return nil
	}
	if err := e.descend(depth); err != nil {
		return err
	}
	n := v.Len()
	e.w.WriteListHeader(n)
	for i := 0; i < n; i++ {
		if err := e.encodeValue(v.Index(i), depth+1); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func encodeMap(e *encoder, v reflect.Value, depth int, less func(a, b reflect.Value) bool) error {
	if v.IsNil() {
		e.w.WriteNull()
		return nil
	}
	if err := e.descend(depth); err != nil {
		return err
	}
	keys := v.MapKeys()
	e.w.WriteMapHeader(len(keys))

	if less != nil {
		sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
		for _, k := range keys {
			if err := e.encodeValue(k, depth+1); err != nil {
				return fmt.Errorf("map key: %w", err)
			}
			if err := e.encodeValue(v.MapIndex(k), depth+1); err != nil {
				return fmt.Errorf("map value: %w", err)
			}
		}
		return nil
	}

	// No natural order: sort by encoded key.
	sub := &encoder{w: wire.NewWriter(nil), maxDepth: e.maxDepth}
	encoded := make([]encodedKey, len(keys))
	for i, k := range keys {
		sub.w.Reset()
		if err := sub.encodeValue(k, depth+1); err != nil {
			return fmt.Errorf("map key: %w", err)
		}
		encoded[i] = encodedKey{raw: sub.w.Snapshot(), key: k}
	}
	slices.SortFunc(encoded, compareEncoded)
	for _, k := range encoded {
		e.w.WriteRaw(k.raw)
		if err := e.encodeValue(v.MapIndex(k.key), depth+1); err != nil {
			return fmt.Errorf("map value: %w", err)
		}
	}
	return nil
}

func encodeIndirect(e *encoder, v reflect.Value, depth int) error {
	if v.IsNil() {
		e.w.WriteNull()
		return nil
	}
	if err := e.descend(depth); err != nil {
		return err
	}
	return e.encodeValue(v.Elem(), depth+1)
}

func encodeUnsupported(_ *encoder, v reflect.Value, _ int) error {
	return wire.Errorf("%w: %s", ErrUnsupported, v.Type())
}
