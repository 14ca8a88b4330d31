package api

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/wire"
)

// Binding is implemented by every typed wrapper in this package.
type Binding interface {
	// Dynamic returns the message backing the wrapper. Changes made through
	// it are visible through the wrapper and the other way round.
	Dynamic() *message.Message
}

// ErrNilBinding is returned when Unmarshal is given a wrapper that was not
// created with its New function.
var ErrNilBinding = errors.New("api: nil binding")

// Marshal encodes b with the default wire options.
func Marshal(b Binding) ([]byte, error) {
	return MarshalOptions(b, wire.DefaultOptions())
}

// MarshalOptions encodes b with opts.
func MarshalOptions(b Binding, opts wire.Options) ([]byte, error) {
	m := b.Dynamic()
	if m == nil {
		return nil, nil
	}
	return wire.Marshal(m, opts)
}

// Unmarshal decodes data into b, replacing its contents. b is left as it
// was when decoding fails.
func Unmarshal(data []byte, b Binding) error {
	return UnmarshalOptions(data, b, wire.DefaultOptions())
}

// UnmarshalOptions is Unmarshal with explicit wire options.
func UnmarshalOptions(data []byte, b Binding, opts wire.Options) error {
	m := b.Dynamic()
	if m == nil {
		return ErrNilBinding
	}
	return wire.UnmarshalInto(data, m, Registry(), opts)
}

// set stores a value whose Go type is fixed by the wrapper's signature. A
// failure means the wrapper and api.proto disagree.
func set(m *message.Message, name string, v any) {
	if err := m.Set(name, v); err != nil {
		panic(fmt.Sprintf("api: %s.%s: %v", m.Descriptor().Name, name, err))
	}
}

func setMessage(m *message.Message, name string, b Binding) {
	if b == nil || b.Dynamic() == nil {
		m.Clear(name)
		return
	}
	set(m, name, b.Dynamic())
}

func setStringMap(m *message.Message, name string, v map[string]string) {
	if len(v) == 0 {
		m.Clear(name)
		return
	}
	set(m, name, v)
}

func setStrings(m *message.Message, name string, v []string) {
	if len(v) == 0 {
		m.Clear(name)
		return
	}
	set(m, name, v)
}

func getTimestamp(m *message.Message, name string) *timestamppb.Timestamp {
	ts := m.GetMessage(name)
	if ts == nil {
		return nil
	}
	return &timestamppb.Timestamp{Seconds: ts.GetInt64("seconds"), Nanos: ts.GetInt32("nanos")}
}

func setTimestamp(m *message.Message, name string, ts *timestamppb.Timestamp) {
	if ts == nil {
		m.Clear(name)
		return
	}
	m.Clear(name)
	dst := m.Mutable(name)
	set(dst, "seconds", ts.GetSeconds())
	set(dst, "nanos", ts.GetNanos())
}

// wrapList converts the elements of a repeated message field.
func wrapList[T any](msgs []*message.Message, wrap func(*message.Message) T) []T {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]T, len(msgs))
	for i, m := range msgs {
		out[i] = wrap(m)
	}
	return out
}

// setList replaces a repeated message field with the given wrappers.
func setList[T Binding](m *message.Message, name string, items []T) {
	if len(items) == 0 {
		m.Clear(name)
		return
	}
	l := make([]*message.Message, 0, len(items))
	for _, it := range items {
		if d := it.Dynamic(); d != nil {
			l = append(l, d)
		}
	}
	set(m, name, l)
}
