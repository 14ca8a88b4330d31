// Package message provides a dynamic protobuf message bound to a schema
// descriptor. Values are held in their Go-native form:
//
//	int32, sint32, sfixed32, enum  -> int32
//	int64, sint64, sfixed64        -> int64
//	uint32, fixed32                -> uint32
//	uint64, fixed64                -> uint64
//	float / double                 -> float32 / float64
//	bool, string, bytes            -> bool, string, []byte
//	message                        -> *Message
//	repeated                       -> []any
//	map                            -> map[any]any
//
// A Message is not safe for concurrent mutation.
package message

import (
	"errors"
	"fmt"

	"github.com/anirudhraja/osdwire/schema"
)

var (
	// ErrUnknownField is returned when a field name is not declared on the message.
	ErrUnknownField = errors.New("unknown field")
	// ErrTypeMismatch is returned when a value cannot be stored in a field.
	ErrTypeMismatch = errors.New("value type mismatch")
	// ErrOutOfRange is returned when an integer does not fit the field type.
	ErrOutOfRange = errors.New("value out of range")
)

// Message is a dynamic message instance.
type Message struct {
	desc *schema.Message

	// fields holds every populated field outside a oneof, keyed by number.
	fields map[int32]any
	// oneofs holds one slot per oneof group, keyed by group name.
	oneofs map[string]oneofSlot

	unknown []byte
}

type oneofSlot struct {
	field *schema.Field
	value any
}

// New returns an empty message of the given type.
func New(desc *schema.Message) *Message {
	desc.BuildIndex()
	return &Message{desc: desc}
}

// Descriptor returns the schema the message is bound to.
func (m *Message) Descriptor() *schema.Message {
	return m.desc
}

func (m *Message) field(name string) (*schema.Field, error) {
	f := m.desc.FieldByName(name)
	if f == nil {
		return nil, fmt.Errorf("%w %q on %s", ErrUnknownField, name, m.desc.Name)
	}
	return f, nil
}

// Get returns the value of the named field, or its zero value when unset.
// An absent message field reads as nil. Unknown names read as nil.
func (m *Message) Get(name string) any {
	f := m.desc.FieldByName(name)
	if f == nil {
		return nil
	}
	return m.GetField(f)
}

// Set stores v in the named field after checking it against the field type.
func (m *Message) Set(name string, v any) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	return m.SetField(f, v)
}

// Has reports whether the named field is populated.
func (m *Message) Has(name string) bool {
	f := m.desc.FieldByName(name)
	if f == nil {
		return false
	}
	return m.HasField(f)
}

// Clear unsets the named field.
func (m *Message) Clear(name string) {
	if f := m.desc.FieldByName(name); f != nil {
		m.ClearField(f)
	}
}

// WhichOneof returns the active member of the named oneof group, or nil.
func (m *Message) WhichOneof(group string) *schema.Field {
	slot, ok := m.oneofs[group]
	if !ok {
		return nil
	}
	return slot.field
}

// List returns the elements of a repeated field. The slice is shared with
// the message.
func (m *Message) List(name string) []any {
	f := m.desc.FieldByName(name)
	if f == nil || !f.IsList() {
		return nil
	}
	l, _ := m.fields[f.Number].([]any)
	return l
}

// Append adds v to the end of a repeated field.
func (m *Message) Append(name string, v any) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	return m.AppendField(f, v)
}

// Map returns the container of a map field. With create false an absent map
// yields nil and the message is left untouched; with create true the map is
// allocated on demand. Entries put directly into the container are not
// checked until the message is encoded.
func (m *Message) Map(name string, create bool) map[any]any {
	f := m.desc.FieldByName(name)
	if f == nil || !f.IsMap() {
		return nil
	}
	return m.MapField(f, create)
}

// Mutable returns the nested message stored in the named field, allocating
// an empty one when the field is unset. It returns nil for non-message fields.
func (m *Message) Mutable(name string) *Message {
	f := m.desc.FieldByName(name)
	if f == nil {
		return nil
	}
	return m.MutableField(f)
}

// GetField returns the value stored for f, or its zero value.
func (m *Message) GetField(f *schema.Field) any {
	if v, ok := m.lookup(f); ok {
		return v
	}
	return zeroValue(f)
}

func (m *Message) lookup(f *schema.Field) (any, bool) {
	if f.InOneof() {
		slot, ok := m.oneofs[f.Oneof]
		if ok && slot.field.Number == f.Number {
			return slot.value, true
		}
		return nil, false
	}
	v, ok := m.fields[f.Number]
	return v, ok
}

// HasField reports whether f is populated. Implicit-presence scalars are
// never stored at their zero value, so presence and non-zero coincide.
func (m *Message) HasField(f *schema.Field) bool {
	v, ok := m.lookup(f)
	if !ok {
		return false
	}
	switch c := v.(type) {
	case []any:
		return len(c) > 0
	case map[any]any:
		return len(c) > 0
	}
	return true
}

// SetField stores v in f. A nil v clears the field. Setting an
// implicit-presence scalar to its zero value also clears it, and setting a
// oneof member replaces whichever member of the group was set before.
func (m *Message) SetField(f *schema.Field, v any) error {
	if v == nil {
		m.ClearField(f)
		return nil
	}

	var (
		nv  any
		err error
	)
	switch {
	case f.IsMap():
		nv, err = checkMap(f, v)
	case f.IsList():
		nv, err = checkList(f, v)
	default:
		nv, err = checkValue(&f.Type, v)
	}
	if err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	if nv == nil {
		m.ClearField(f)
		return nil
	}

	if !f.HasPresence() && isEmpty(nv) {
		m.ClearField(f)
		return nil
	}
	m.store(f, nv)
	return nil
}

func (m *Message) store(f *schema.Field, v any) {
	if f.InOneof() {
		if m.oneofs == nil {
			m.oneofs = make(map[string]oneofSlot)
		}
		m.oneofs[f.Oneof] = oneofSlot{field: f, value: v}
		return
	}
	if m.fields == nil {
		m.fields = make(map[int32]any)
	}
	m.fields[f.Number] = v
}

// ClearField unsets f. Clearing a oneof member that is not the active one
// leaves the group alone.
func (m *Message) ClearField(f *schema.Field) {
	if f.InOneof() {
		if slot, ok := m.oneofs[f.Oneof]; ok && slot.field.Number == f.Number {
			delete(m.oneofs, f.Oneof)
		}
		return
	}
	delete(m.fields, f.Number)
}

// AppendField adds v to the repeated field f.
func (m *Message) AppendField(f *schema.Field, v any) error {
	if !f.IsList() {
		return fmt.Errorf("field %s: %w: not a repeated field", f.Name, ErrTypeMismatch)
	}
	nv, err := checkValue(&f.Type, v)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	if nv == nil {
		return fmt.Errorf("field %s: %w: nil list element", f.Name, ErrTypeMismatch)
	}
	l, _ := m.fields[f.Number].([]any)
	m.store(f, append(l, nv))
	return nil
}

// MapField is the field-pointer form of Map.
func (m *Message) MapField(f *schema.Field, create bool) map[any]any {
	if mv, ok := m.fields[f.Number].(map[any]any); ok {
		return mv
	}
	if !create {
		return nil
	}
	mv := make(map[any]any)
	m.store(f, mv)
	return mv
}

// PutEntry checks key and value against the map field f and stores the pair.
// An existing entry with the same key is replaced.
func (m *Message) PutEntry(f *schema.Field, key, value any) error {
	if !f.IsMap() {
		return fmt.Errorf("field %s: %w: not a map field", f.Name, ErrTypeMismatch)
	}
	k, err := checkKey(f.Type.MapKey, key)
	if err != nil {
		return fmt.Errorf("field %s key: %w", f.Name, err)
	}
	v, err := checkValue(f.Type.MapValue, value)
	if err != nil {
		return fmt.Errorf("field %s value: %w", f.Name, err)
	}
	if v == nil {
		v = Zero(f.Type.MapValue)
	}
	m.MapField(f, true)[k] = v
	return nil
}

// MutableField is the field-pointer form of Mutable.
func (m *Message) MutableField(f *schema.Field) *Message {
	if f.Type.Kind != schema.KindMessage || f.IsList() {
		return nil
	}
	if v, ok := m.lookup(f); ok {
		return v.(*Message)
	}
	if f.Type.Message == nil {
		return nil
	}
	nm := New(f.Type.Message)
	m.store(f, nm)
	return nm
}

// Range calls fn for every populated field in field-number order until fn
// returns false.
func (m *Message) Range(fn func(f *schema.Field, v any) bool) {
	for _, f := range m.desc.Fields {
		v, ok := m.lookup(f)
		if !ok {
			continue
		}
		if !fn(f, v) {
			return
		}
	}
}

// Unknown returns the raw bytes of fields that were not recognised on decode.
func (m *Message) Unknown() []byte {
	return m.unknown
}

// SetUnknown replaces the retained unknown bytes.
func (m *Message) SetUnknown(b []byte) {
	m.unknown = b
}

// AppendUnknown adds raw field bytes to the retained unknown bytes.
func (m *Message) AppendUnknown(b []byte) {
	m.unknown = append(m.unknown, b...)
}

// Reset clears every field and the unknown bytes.
func (m *Message) Reset() {
	m.fields = nil
	m.oneofs = nil
	m.unknown = nil
}

// ReplaceWith makes m hold the contents of src. src must not be used
// afterwards.
func (m *Message) ReplaceWith(src *Message) {
	m.desc = src.desc
	m.fields = src.fields
	m.oneofs = src.oneofs
	m.unknown = src.unknown
}

// Clone returns a deep copy of m.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	c := &Message{desc: m.desc}
	if len(m.fields) > 0 {
		c.fields = make(map[int32]any, len(m.fields))
		for n, v := range m.fields {
			c.fields[n] = cloneValue(v)
		}
	}
	if len(m.oneofs) > 0 {
		c.oneofs = make(map[string]oneofSlot, len(m.oneofs))
		for g, slot := range m.oneofs {
			c.oneofs[g] = oneofSlot{field: slot.field, value: cloneValue(slot.value)}
		}
	}
	if m.unknown != nil {
		c.unknown = append([]byte(nil), m.unknown...)
	}
	return c
}

// Equal reports whether a and b are of the same type and hold the same
// field values. Unknown bytes are not compared.
func Equal(a, b *Message) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !SameType(a.desc, b.desc) {
		return false
	}
	for _, f := range a.desc.Fields {
		if a.HasField(f) != b.HasField(f) {
			return false
		}
		if !a.HasField(f) {
			continue
		}
		if !valueEqual(a.GetField(f), b.GetField(f)) {
			return false
		}
	}
	return true
}

// SameType reports whether two descriptors describe the same message type.
func SameType(a, b *schema.Message) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.FullName != "" || b.FullName != "" {
		return a.FullName == b.FullName
	}
	return a.Name == b.Name
}

// String renders the message as its object projection.
func (m *Message) String() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v", m.desc.Name, ToObject(m))
}
