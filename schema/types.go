package schema

import (
	"sort"
	"sync"
)

// ProtoFile represents a single .proto file
type ProtoFile struct {
	Name     string     `json:"name"`     // file.proto
	Package  string     `json:"package"`  // package name
	Syntax   string     `json:"syntax"`   // proto2 or proto3
	Imports  []*Import  `json:"imports"`  // imported files
	Messages []*Message `json:"messages"` // message definitions
	Enums    []*Enum    `json:"enums"`    // enum definitions
	Services []*Service `json:"services"` // service definitions
}

// Import represents an import statement
type Import struct {
	Path   string `json:"path"`   // "google/protobuf/timestamp.proto"
	Public bool   `json:"public"` // public import
	Weak   bool   `json:"weak"`   // weak import
}

// Message represents a protobuf message definition.
//
// Fields holds every field of the message, oneof members included, in
// ascending field-number order once the message has been indexed.
type Message struct {
	Name        string     `json:"name"`         // "VolumeSpec"
	FullName    string     `json:"full_name"`    // "openstorage.api.VolumeSpec"
	Syntax      string     `json:"syntax"`       // syntax of the declaring file
	Fields      []*Field   `json:"fields"`       // message fields
	NestedTypes []*Message `json:"nested_types"` // nested messages
	NestedEnums []*Enum    `json:"nested_enums"` // nested enums
	OneofGroups []*Oneof   `json:"oneof_groups"` // oneof groups
	MapEntry    bool       `json:"map_entry"`    // is this a map entry?
	IsWrapper   bool       `json:"is_wrapper"`   // google.protobuf.*Value wrapper

	indexOnce sync.Once
	byNumber  map[int32]*Field
	byName    map[string]*Field
}

// BuildIndex normalizes the message and builds the lookup tables used by
// FieldByNumber and FieldByName. Oneof members listed only under OneofGroups
// are added to Fields, every member is tagged with its group name, and Fields
// is sorted by number. Only the first call has any effect.
func (m *Message) BuildIndex() {
	m.indexOnce.Do(m.buildIndex)
}

func (m *Message) buildIndex() {
	seen := make(map[*Field]bool, len(m.Fields))
	for _, f := range m.Fields {
		seen[f] = true
	}
	for _, o := range m.OneofGroups {
		for _, f := range o.Fields {
			f.Oneof = o.Name
			if !seen[f] {
				m.Fields = append(m.Fields, f)
				seen[f] = true
			}
		}
	}
	sort.SliceStable(m.Fields, func(i, j int) bool {
		return m.Fields[i].Number < m.Fields[j].Number
	})
	m.byNumber = make(map[int32]*Field, len(m.Fields))
	m.byName = make(map[string]*Field, len(m.Fields))
	for _, f := range m.Fields {
		m.byNumber[f.Number] = f
		m.byName[f.Name] = f
	}
}

// FieldByNumber returns the field with the given number or nil.
func (m *Message) FieldByNumber(number int32) *Field {
	m.BuildIndex()
	return m.byNumber[number]
}

// FieldByName returns the field with the given proto name or nil.
func (m *Message) FieldByName(name string) *Field {
	m.BuildIndex()
	return m.byName[name]
}

// OneofByName returns the oneof group with the given name or nil.
func (m *Message) OneofByName(name string) *Oneof {
	for _, o := range m.OneofGroups {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Field represents a message field
type Field struct {
	Name           string     `json:"name"`            // "volume_labels"
	Number         int32      `json:"number"`          // 10
	Label          FieldLabel `json:"label"`           // optional, required, repeated
	Type           FieldType  `json:"type"`            // field type information
	DefaultValue   string     `json:"default_value"`   // default value (proto2)
	JsonName       string     `json:"json_name"`       // JSON field name
	Oneof          string     `json:"oneof,omitempty"` // name of the enclosing oneof group, if any
	Proto3Optional bool       `json:"proto3_optional"` // declared with the proto3 `optional` keyword
	Proto2         bool       `json:"proto2"`          // declared in a proto2 file
	Unpacked       bool       `json:"unpacked"`        // repeated scalar written one tag per element
}

// IsMap reports whether the field is a map field.
func (f *Field) IsMap() bool { return f.Type.Kind == KindMap }

// IsList reports whether the field is a repeated, non-map field.
func (f *Field) IsList() bool { return f.Label == LabelRepeated && f.Type.Kind != KindMap }

// InOneof reports whether the field belongs to a oneof group.
func (f *Field) InOneof() bool { return f.Oneof != "" }

// HasPresence reports whether the field tracks "set" independently of its
// value. Repeated and map fields never do.
func (f *Field) HasPresence() bool {
	if f.IsList() || f.IsMap() {
		return false
	}
	return f.InOneof() || f.Proto3Optional || f.Proto2 || f.Type.Kind == KindMessage
}

// IsPackable reports whether a repeated field's element type may use the
// packed encoding. Decoders accept both forms for such fields.
func (f *Field) IsPackable() bool {
	if !f.IsList() {
		return false
	}
	switch f.Type.Kind {
	case KindEnum:
		return true
	case KindPrimitive:
		return IsPackedType(f.Type.PrimitiveType)
	}
	return false
}

// IsPacked reports whether a repeated field is written in packed form.
func (f *Field) IsPacked() bool {
	return f.IsPackable() && !f.Unpacked
}

// Oneof represents a oneof group
type Oneof struct {
	Name   string   `json:"name"`   // "size_opt"
	Fields []*Field `json:"fields"` // fields in this oneof
}

// FieldLabel represents field labels
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRequired FieldLabel = "required"
	LabelRepeated FieldLabel = "repeated"
)

// FieldType represents field type information
type FieldType struct {
	Kind          TypeKind      `json:"kind"`                     // primitive, message, enum, map
	PrimitiveType PrimitiveType `json:"primitive_type,omitempty"` // for primitive types
	MessageType   string        `json:"message_type,omitempty"`   // for message types: "openstorage.api.Volume"
	EnumType      string        `json:"enum_type,omitempty"`      // for enum types
	MapKey        *FieldType    `json:"map_key,omitempty"`        // for map key type
	MapValue      *FieldType    `json:"map_value,omitempty"`      // for map value type

	// Resolved definitions, filled in by the registry.
	Message *Message `json:"-"`
	Enum    *Enum    `json:"-"`
}

// TypeKind represents the kind of field type
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindMessage   TypeKind = "message"
	KindEnum      TypeKind = "enum"
	KindMap       TypeKind = "map"
)

// PrimitiveType represents protobuf primitive types
type PrimitiveType string

const (
	TypeDouble   PrimitiveType = "double"
	TypeFloat    PrimitiveType = "float"
	TypeInt64    PrimitiveType = "int64"
	TypeUint64   PrimitiveType = "uint64"
	TypeInt32    PrimitiveType = "int32"
	TypeFixed64  PrimitiveType = "fixed64"
	TypeFixed32  PrimitiveType = "fixed32"
	TypeBool     PrimitiveType = "bool"
	TypeString   PrimitiveType = "string"
	TypeBytes    PrimitiveType = "bytes"
	TypeUint32   PrimitiveType = "uint32"
	TypeSfixed32 PrimitiveType = "sfixed32"
	TypeSfixed64 PrimitiveType = "sfixed64"
	TypeSint32   PrimitiveType = "sint32"
	TypeSint64   PrimitiveType = "sint64"
)

var primitiveTypes = map[string]PrimitiveType{
	"double":   TypeDouble,
	"float":    TypeFloat,
	"int64":    TypeInt64,
	"uint64":   TypeUint64,
	"int32":    TypeInt32,
	"fixed64":  TypeFixed64,
	"fixed32":  TypeFixed32,
	"bool":     TypeBool,
	"string":   TypeString,
	"bytes":    TypeBytes,
	"uint32":   TypeUint32,
	"sfixed32": TypeSfixed32,
	"sfixed64": TypeSfixed64,
	"sint32":   TypeSint32,
	"sint64":   TypeSint64,
}

// LookupPrimitive returns the primitive type named by a .proto type keyword.
func LookupPrimitive(name string) (PrimitiveType, bool) {
	t, ok := primitiveTypes[name]
	return t, ok
}

var packedEligible = map[PrimitiveType]struct{}{
	TypeDouble:   {},
	TypeFloat:    {},
	TypeInt64:    {},
	TypeUint64:   {},
	TypeInt32:    {},
	TypeFixed64:  {},
	TypeFixed32:  {},
	TypeBool:     {},
	TypeUint32:   {},
	TypeSfixed32: {},
	TypeSfixed64: {},
	TypeSint32:   {},
	TypeSint64:   {},
}

// IsPackedType checks and returns if the Primitive type is packed for repeated label
func IsPackedType(t PrimitiveType) bool {
	_, ok := packedEligible[t]
	return ok
}

// IsValidMapKey reports whether t may be used as a map key.
func IsValidMapKey(t *FieldType) bool {
	if t == nil || t.Kind != KindPrimitive {
		return false
	}
	switch t.PrimitiveType {
	case TypeDouble, TypeFloat, TypeBytes:
		return false
	}
	return true
}

// WrapperType names the google.protobuf wrapper messages.
type WrapperType string

const (
	WrapperDoubleValue WrapperType = "google.protobuf.DoubleValue"
	WrapperFloatValue  WrapperType = "google.protobuf.FloatValue"
	WrapperInt64Value  WrapperType = "google.protobuf.Int64Value"
	WrapperUInt64Value WrapperType = "google.protobuf.UInt64Value"
	WrapperInt32Value  WrapperType = "google.protobuf.Int32Value"
	WrapperUInt32Value WrapperType = "google.protobuf.UInt32Value"
	WrapperBoolValue   WrapperType = "google.protobuf.BoolValue"
	WrapperStringValue WrapperType = "google.protobuf.StringValue"
	WrapperBytesValue  WrapperType = "google.protobuf.BytesValue"
)

// Enum represents an enum definition
type Enum struct {
	Name       string       `json:"name"`        // "FSType"
	FullName   string       `json:"full_name"`   // "openstorage.api.FSType"
	Values     []*EnumValue `json:"values"`      // enum values
	AllowAlias bool         `json:"allow_alias"` // allow_alias option
}

// ValueByNumber returns the first value declared with the number, or nil.
func (e *Enum) ValueByNumber(number int32) *EnumValue {
	for _, v := range e.Values {
		if v.Number == number {
			return v
		}
	}
	return nil
}

// ValueByName returns the value with the given name, or nil.
func (e *Enum) ValueByName(name string) *EnumValue {
	for _, v := range e.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// EnumValue represents an enum value
type EnumValue struct {
	Name     string `json:"name"`      // "FS_TYPE_EXT4"
	Number   int32  `json:"number"`    // 2
	JsonName string `json:"json_name"` // JSON field name
}

// Service represents a service definition
type Service struct {
	Name    string    `json:"name"`    // "OpenStorageVolume"
	Methods []*Method `json:"methods"` // service methods
}

// Method represents a service method
type Method struct {
	Name            string `json:"name"`             // "Create"
	InputType       string `json:"input_type"`       // "SdkVolumeCreateRequest"
	OutputType      string `json:"output_type"`      // "SdkVolumeCreateResponse"
	ClientStreaming bool   `json:"client_streaming"` // stream input
	ServerStreaming bool   `json:"server_streaming"` // stream output
}
