package wire

import "github.com/anirudhraja/osdwire/schema"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated groups, skipped structurally
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// String returns the protoscope-style name of the wire type.
func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "i64"
	case WireBytes:
		return "len"
	case WireStartGroup:
		return "sgroup"
	case WireEndGroup:
		return "egroup"
	case WireFixed32:
		return "i32"
	default:
		return "invalid"
	}
}

// Valid reports whether w is one of the six defined wire types.
func (w WireType) Valid() bool {
	return w >= WireVarint && w <= WireFixed32
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

const (
	// MinFieldNumber is the smallest legal field number.
	MinFieldNumber FieldNumber = 1
	// MaxFieldNumber is the largest legal field number.
	MaxFieldNumber FieldNumber = 1<<29 - 1
)

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// Value represents a field decoded without schema information.
type Value struct {
	FieldNumber FieldNumber
	WireType    WireType
	Data        interface{} // uint64 for varint/fixed, []byte for len
}

// WireTypeOf returns the wire type a singular value of the given type uses.
func WireTypeOf(fieldType *schema.FieldType) WireType {
	switch fieldType.Kind {
	case schema.KindPrimitive:
		switch fieldType.PrimitiveType {
		case schema.TypeString, schema.TypeBytes:
			return WireBytes
		case schema.TypeFloat, schema.TypeFixed32, schema.TypeSfixed32:
			return WireFixed32
		case schema.TypeDouble, schema.TypeFixed64, schema.TypeSfixed64:
			return WireFixed64
		default:
			return WireVarint
		}
	case schema.KindMessage, schema.KindMap:
		return WireBytes
	default:
		return WireVarint
	}
}
