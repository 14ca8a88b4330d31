package message

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/schema"
)

const (
	timestampName = "google.protobuf.Timestamp"
	durationName  = "google.protobuf.Duration"
)

// ToObject projects m into a plain map keyed by proto field names. Enums are
// rendered by name (the number when undeclared), Timestamp and Duration as
// RFC 3339 and Go duration strings, wrapper types as their inner value and
// map keys as strings. Unset fields are omitted.
func ToObject(m *Message) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{})
	m.Range(func(f *schema.Field, v any) bool {
		if !m.HasField(f) {
			return true
		}
		switch {
		case f.IsMap():
			mv := v.(map[any]any)
			obj := make(map[string]interface{}, len(mv))
			for k, e := range mv {
				obj[fmt.Sprint(k)] = projectValue(f.Type.MapValue, e)
			}
			out[f.Name] = obj
		case f.IsList():
			l := v.([]any)
			arr := make([]interface{}, len(l))
			for i, e := range l {
				arr[i] = projectValue(&f.Type, e)
			}
			out[f.Name] = arr
		default:
			out[f.Name] = projectValue(&f.Type, v)
		}
		return true
	})
	return out
}

func projectValue(t *schema.FieldType, v any) interface{} {
	switch t.Kind {
	case schema.KindEnum:
		n, _ := v.(int32)
		if t.Enum != nil {
			if ev := t.Enum.ValueByNumber(n); ev != nil {
				return ev.Name
			}
		}
		return n
	case schema.KindMessage:
		nm, ok := v.(*Message)
		if !ok || nm == nil {
			return nil
		}
		switch {
		case nm.desc.FullName == timestampName:
			ts := &timestamppb.Timestamp{Seconds: nm.GetInt64("seconds"), Nanos: nm.GetInt32("nanos")}
			return ts.AsTime().UTC().Format(time.RFC3339Nano)
		case nm.desc.FullName == durationName:
			d := &durationpb.Duration{Seconds: nm.GetInt64("seconds"), Nanos: nm.GetInt32("nanos")}
			return d.AsDuration().String()
		case nm.desc.IsWrapper:
			if vf := nm.desc.FieldByName("value"); vf != nil {
				return projectValue(&vf.Type, nm.GetField(vf))
			}
		}
		return ToObject(nm)
	}
	return v
}

// FromObject builds a message of type desc from a plain map as produced by
// ToObject or by decoding JSON or YAML. Keys may be proto names or
// lowerCamelCase JSON names; keys that match no field are ignored.
func FromObject(desc *schema.Message, obj map[string]interface{}) (*Message, error) {
	m := New(desc)
	if err := m.fill(obj); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message) fill(obj map[string]interface{}) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := obj[k]
		f := lookupObjectKey(m.desc, k)
		if f == nil || v == nil {
			continue
		}
		if err := m.fillField(f, v); err != nil {
			return fmt.Errorf("%s.%s: %w", m.desc.Name, f.Name, err)
		}
	}
	return nil
}

func lookupObjectKey(desc *schema.Message, key string) *schema.Field {
	if f := desc.FieldByName(key); f != nil {
		return f
	}
	for _, f := range desc.Fields {
		if f.JsonName == key || toLowerCamel(f.Name) == key {
			return f
		}
	}
	return nil
}

func (m *Message) fillField(f *schema.Field, v interface{}) error {
	switch {
	case f.IsMap():
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map {
			return fmt.Errorf("%w: %T for map field", ErrTypeMismatch, v)
		}
		iter := rv.MapRange()
		for iter.Next() {
			k, err := objectKey(f.Type.MapKey, iter.Key().Interface())
			if err != nil {
				return err
			}
			val, err := objectValue(f.Type.MapValue, iter.Value().Interface())
			if err != nil {
				return fmt.Errorf("[%v]: %w", k, err)
			}
			if err := m.PutEntry(f, k, val); err != nil {
				return err
			}
		}
		return nil
	case f.IsList():
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return fmt.Errorf("%w: %T for repeated field", ErrTypeMismatch, v)
		}
		for i := 0; i < rv.Len(); i++ {
			e, err := objectValue(&f.Type, rv.Index(i).Interface())
			if err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
			if err := m.AppendField(f, e); err != nil {
				return err
			}
		}
		return nil
	}
	val, err := objectValue(&f.Type, v)
	if err != nil {
		return err
	}
	return m.SetField(f, val)
}

// objectKey parses a map key that arrived as text.
func objectKey(t *schema.FieldType, k interface{}) (any, error) {
	s, ok := k.(string)
	if !ok {
		return objectValue(t, k)
	}
	switch t.PrimitiveType {
	case schema.TypeString:
		return s, nil
	case schema.TypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: map key %q", ErrTypeMismatch, s)
		}
		return b, nil
	case schema.TypeUint32, schema.TypeUint64, schema.TypeFixed32, schema.TypeFixed64:
		return coerceToUint64(s)
	default:
		return coerceToInt64(s)
	}
}

// objectValue converts a loosely typed singular value to what SetField
// accepts for t.
func objectValue(t *schema.FieldType, v interface{}) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch t.Kind {
	case schema.KindEnum:
		if s, ok := v.(string); ok {
			if t.Enum != nil {
				if ev := t.Enum.ValueByName(s); ev != nil {
					return ev.Number, nil
				}
			}
			if n, err := strconv.ParseInt(s, 10, 32); err == nil {
				return int32(n), nil
			}
			return nil, fmt.Errorf("%w: %q is not a value of %s", ErrTypeMismatch, s, t.EnumType)
		}
		return coerceToInt64(v)
	case schema.KindMessage:
		return objectMessage(t, v)
	}

	switch t.PrimitiveType {
	case schema.TypeInt32, schema.TypeInt64, schema.TypeSint32, schema.TypeSint64,
		schema.TypeSfixed32, schema.TypeSfixed64:
		return coerceToInt64(v)
	case schema.TypeUint32, schema.TypeUint64, schema.TypeFixed32, schema.TypeFixed64:
		return coerceToUint64(v)
	case schema.TypeFloat, schema.TypeDouble:
		return coerceToFloat64(v)
	case schema.TypeBool:
		if s, ok := v.(string); ok {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q for bool", ErrTypeMismatch, s)
			}
			return b, nil
		}
		return v, nil
	case schema.TypeBytes:
		if s, ok := v.(string); ok {
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				if b, err = base64.URLEncoding.DecodeString(s); err != nil {
					return nil, fmt.Errorf("%w: bytes value is not base64", ErrTypeMismatch)
				}
			}
			return b, nil
		}
		return v, nil
	}
	return v, nil
}

func objectMessage(t *schema.FieldType, v interface{}) (any, error) {
	if nm, ok := v.(*Message); ok {
		return nm, nil
	}
	desc := t.Message
	if desc == nil {
		return nil, fmt.Errorf("%w: unresolved message type %s", ErrTypeMismatch, t.MessageType)
	}

	switch desc.FullName {
	case timestampName:
		var ts *timestamppb.Timestamp
		switch x := v.(type) {
		case string:
			parsed, err := time.Parse(time.RFC3339Nano, x)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid timestamp: %v", ErrTypeMismatch, err)
			}
			ts = timestamppb.New(parsed)
		case time.Time:
			ts = timestamppb.New(x)
		}
		if ts != nil {
			if err := ts.CheckValid(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrOutOfRange, err)
			}
			return secondsNanos(desc, ts.GetSeconds(), ts.GetNanos())
		}
	case durationName:
		var d *durationpb.Duration
		switch x := v.(type) {
		case string:
			parsed, err := time.ParseDuration(x)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid duration: %v", ErrTypeMismatch, err)
			}
			d = durationpb.New(parsed)
		case time.Duration:
			d = durationpb.New(x)
		}
		if d != nil {
			return secondsNanos(desc, d.GetSeconds(), d.GetNanos())
		}
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		if desc.IsWrapper {
			vf := desc.FieldByName("value")
			inner, err := objectValue(&vf.Type, v)
			if err != nil {
				return nil, err
			}
			w := New(desc)
			if err := w.SetField(vf, inner); err != nil {
				return nil, err
			}
			return w, nil
		}
		return nil, fmt.Errorf("%w: %T for message %s", ErrTypeMismatch, v, desc.FullName)
	}
	return FromObject(desc, obj)
}

func secondsNanos(desc *schema.Message, seconds int64, nanos int32) (*Message, error) {
	m := New(desc)
	if err := m.Set("seconds", seconds); err != nil {
		return nil, err
	}
	if err := m.Set("nanos", nanos); err != nil {
		return nil, err
	}
	return m, nil
}
