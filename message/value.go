package message

import (
	"bytes"
	"fmt"
	"math"
	"reflect"

	"github.com/anirudhraja/osdwire/schema"
)

// checkValue converts v to the canonical Go type for a singular value of t.
// Integers of any Go kind are accepted when the conversion is lossless.
// A nil result with a nil error means "unset".
func checkValue(t *schema.FieldType, v any) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: missing type", ErrTypeMismatch)
	}
	switch t.Kind {
	case schema.KindEnum:
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d for enum %s", ErrOutOfRange, n, t.EnumType)
		}
		return int32(n), nil
	case schema.KindMessage:
		switch mv := v.(type) {
		case *Message:
			if mv == nil {
				return nil, nil
			}
			if t.Message != nil && !SameType(t.Message, mv.desc) {
				return nil, fmt.Errorf("%w: %s for field of type %s", ErrTypeMismatch, mv.desc.FullName, t.MessageType)
			}
			return mv, nil
		default:
			return nil, fmt.Errorf("%w: %T for message field %s", ErrTypeMismatch, v, t.MessageType)
		}
	case schema.KindPrimitive:
		return checkPrimitive(t.PrimitiveType, v)
	}
	return nil, fmt.Errorf("%w: kind %s", ErrTypeMismatch, t.Kind)
}

func checkPrimitive(pt schema.PrimitiveType, v any) (any, error) {
	switch pt {
	case schema.TypeInt32, schema.TypeSint32, schema.TypeSfixed32:
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d for %s", ErrOutOfRange, n, pt)
		}
		return int32(n), nil
	case schema.TypeInt64, schema.TypeSint64, schema.TypeSfixed64:
		return toInt64(v)
	case schema.TypeUint32, schema.TypeFixed32:
		n, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		if n > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d for %s", ErrOutOfRange, n, pt)
		}
		return uint32(n), nil
	case schema.TypeUint64, schema.TypeFixed64:
		return toUint64(v)
	case schema.TypeFloat:
		switch f := v.(type) {
		case float32:
			return f, nil
		case float64:
			return float32(f), nil
		}
	case schema.TypeDouble:
		switch f := v.(type) {
		case float64:
			return f, nil
		case float32:
			return float64(f), nil
		}
	case schema.TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case schema.TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case schema.TypeBytes:
		if b, ok := v.([]byte); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %T for %s", ErrTypeMismatch, v, pt)
}

func toInt64(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d", ErrOutOfRange, u)
		}
		return int64(u), nil
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrTypeMismatch, v)
}

func toUint64(v any) (uint64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return 0, fmt.Errorf("%w: %d for unsigned field", ErrOutOfRange, n)
		}
		return uint64(n), nil
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrTypeMismatch, v)
}

// checkList accepts []any or any typed slice and returns a checked []any.
// An empty slice yields nil.
func checkList(f *schema.Field, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %T for repeated field", ErrTypeMismatch, v)
	}
	if rv.Len() == 0 {
		return nil, nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		e, err := checkValue(&f.Type, rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if e == nil {
			return nil, fmt.Errorf("element %d: %w: nil", i, ErrTypeMismatch)
		}
		out[i] = e
	}
	return out, nil
}

// checkMap accepts map[any]any or any typed Go map and returns a checked
// map[any]any. An empty map yields nil.
func checkMap(f *schema.Field, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %T for map field", ErrTypeMismatch, v)
	}
	if rv.Len() == 0 {
		return nil, nil
	}
	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := checkKey(f.Type.MapKey, iter.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		val, err := checkValue(f.Type.MapValue, iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("value for key %v: %w", k, err)
		}
		if val == nil {
			val = Zero(f.Type.MapValue)
		}
		out[k] = val
	}
	return out, nil
}

func checkKey(t *schema.FieldType, v any) (any, error) {
	if !schema.IsValidMapKey(t) {
		return nil, fmt.Errorf("%w: invalid map key type", ErrTypeMismatch)
	}
	k, err := checkValue(t, v)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, fmt.Errorf("%w: nil map key", ErrTypeMismatch)
	}
	return k, nil
}

// zeroValue returns what GetField reports for an unset field.
func zeroValue(f *schema.Field) any {
	switch {
	case f.IsMap():
		return map[any]any(nil)
	case f.IsList():
		return []any(nil)
	case f.Type.Kind == schema.KindMessage:
		return nil
	}
	return Zero(&f.Type)
}

// Zero returns the zero value of a singular value of t. Message types get
// an empty instance, which is what a map entry without a value decodes to.
func Zero(t *schema.FieldType) any {
	switch t.Kind {
	case schema.KindEnum:
		return int32(0)
	case schema.KindMessage:
		if t.Message != nil {
			return New(t.Message)
		}
		return nil
	}
	switch t.PrimitiveType {
	case schema.TypeInt32, schema.TypeSint32, schema.TypeSfixed32:
		return int32(0)
	case schema.TypeInt64, schema.TypeSint64, schema.TypeSfixed64:
		return int64(0)
	case schema.TypeUint32, schema.TypeFixed32:
		return uint32(0)
	case schema.TypeUint64, schema.TypeFixed64:
		return uint64(0)
	case schema.TypeFloat:
		return float32(0)
	case schema.TypeDouble:
		return float64(0)
	case schema.TypeBool:
		return false
	case schema.TypeString:
		return ""
	case schema.TypeBytes:
		return []byte(nil)
	}
	return nil
}

// isEmpty reports whether a canonical value is the proto3 default.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return x == 0 && !math.Signbit(float64(x))
	case float64:
		return x == 0 && !math.Signbit(x)
	case bool:
		return !x
	case string:
		return x == ""
	case []byte:
		return len(x) == 0
	case []any:
		return len(x) == 0
	case map[any]any:
		return len(x) == 0
	}
	return false
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Message:
		return x.Clone()
	case []byte:
		return append([]byte(nil), x...)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	}
	return v
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case *Message:
		y, ok := b.(*Message)
		return ok && Equal(x, y)
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[any]any:
		y, ok := b.(map[any]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !valueEqual(xv, yv) {
				return false
			}
		}
		return true
	}
	return a == b
}
