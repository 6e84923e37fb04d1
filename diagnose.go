package fressian

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/rawbytedev/fressian/pkg/wire"
)

// Diagnose renders every top-level value in p in an EDN-like notation,
// one value per line.
func Diagnose(p []byte) (string, error) {
	return New(Options{}).Diagnose(p)
}

func (f *Fressian) Diagnose(p []byte) (string, error) {
	values, err := f.DecodeAll(p)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeDiag(&sb, v)
	}
	return sb.String(), nil
}

// FormatValue renders one decoded value.
func FormatValue(v any) string {
	var sb strings.Builder
	writeDiag(&sb, v)
	return sb.String()
}

func writeDiag(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case int64:
		sb.WriteString(strconv.FormatInt(v, 10))
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		sb.WriteByte('f')
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		sb.WriteString(s)
		if !strings.ContainsAny(s, ".eEnN") {
			sb.WriteString(".0")
		}
	case []byte:
		sb.WriteString("h'")
		sb.WriteString(hex.EncodeToString(v))
		sb.WriteByte('\'')
	case string:
		sb.WriteString(strconv.Quote(v))
	case []any:
		writeSeq(sb, "[", v, "]")
	case wire.Set:
		writeSeq(sb, "#{", v, "}")
	case wire.Map:
		sb.WriteByte('{')
		for i, ent := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDiag(sb, ent.Key)
			sb.WriteByte(' ')
			writeDiag(sb, ent.Value)
		}
		sb.WriteByte('}')
	default:
		fmt.Fprintf(sb, "#%T %v", v, v)
	}
}

func writeSeq(sb *strings.Builder, open string, elems []any, close string) {
	sb.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeDiag(sb, e)
	}
	sb.WriteString(close)
}
