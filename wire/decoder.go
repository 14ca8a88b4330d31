package wire

import (
	"fmt"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/registry"
	"github.com/anirudhraja/osdwire/schema"
)

// Decoder handles low-level protobuf wire format decoding
type Decoder struct {
	buf      []byte
	pos      int
	base     int // offset of buf[0] within the outermost input
	depth    int
	registry *registry.Registry
	opts     Options
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf:  data,
		opts: DefaultOptions(),
	}
}

// NewDecoderWithRegistry creates a decoder with schema registry. The
// registry is only consulted for type references the schema left unresolved.
func NewDecoderWithRegistry(data []byte, registry *registry.Registry) *Decoder {
	d := NewDecoder(data)
	d.registry = registry
	return d
}

// WithOptions sets the decode options and returns d.
func (d *Decoder) WithOptions(opts Options) *Decoder {
	d.opts = opts
	return d
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Unmarshal decodes data as a message of type desc - main entry point.
func Unmarshal(data []byte, desc *schema.Message, registry *registry.Registry, opts Options) (*message.Message, error) {
	if len(data) > opts.maxMessageSize() {
		return nil, newFieldError(0, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrMessageTooLarge, len(data), opts.maxMessageSize()))
	}
	d := NewDecoderWithRegistry(data, registry).WithOptions(opts)
	return d.DecodeMessage(desc)
}

// UnmarshalInto decodes data into m, replacing its contents. m is left
// untouched when decoding fails.
func UnmarshalInto(data []byte, m *message.Message, registry *registry.Registry, opts Options) error {
	decoded, err := Unmarshal(data, m.Descriptor(), registry, opts)
	if err != nil {
		return err
	}
	m.ReplaceWith(decoded)
	return nil
}

// DecodeMessage decodes the rest of the buffer as a message of type desc.
func (d *Decoder) DecodeMessage(desc *schema.Message) (*message.Message, error) {
	m := message.New(desc)
	md := NewMessageDecoder(d)
	if err := md.DecodeInto(m); err != nil {
		return nil, err
	}
	return m, nil
}

// sub returns a decoder one nesting level below d over payload, a slice of
// d.buf starting at payloadStart.
func (d *Decoder) sub(payload []byte, payloadStart int) (*Decoder, error) {
	if d.depth+1 > d.opts.maxDepth() {
		return nil, fmt.Errorf("%w: limit %d", ErrDepthExceeded, d.opts.maxDepth())
	}
	return &Decoder{
		buf:      payload,
		base:     d.base + payloadStart,
		depth:    d.depth + 1,
		registry: d.registry,
		opts:     d.opts,
	}, nil
}

// readPayload consumes a length-delimited value and returns a decoder over it.
func (d *Decoder) readPayload() (*Decoder, error) {
	bd := NewBytesDecoder(d)
	raw, err := bd.DecodeRawBytes()
	if err != nil {
		return nil, err
	}
	return d.sub(raw, d.pos-len(raw))
}

// errAt attaches the absolute offset of start to err unless err already
// carries a position from a nested decoder.
func (d *Decoder) errAt(start int, err error) error {
	if fe, ok := err.(*FieldError); ok {
		return fe
	}
	return newFieldError(d.base+start, err)
}

// readTag reads and validates a field tag.
func (d *Decoder) readTag() (FieldNumber, WireType, error) {
	tag, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, err
	}
	num := tag >> 3
	wireType := WireType(tag & 0x7)
	if num < uint64(MinFieldNumber) || num > uint64(MaxFieldNumber) {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidFieldNumber, num)
	}
	if !wireType.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownWireType, wireType)
	}
	return FieldNumber(num), wireType, nil
}

// DecodeScalar decodes one singular non-message value of the given type.
func (d *Decoder) DecodeScalar(fieldType *schema.FieldType) (any, error) {
	switch fieldType.Kind {
	case schema.KindEnum:
		vd := NewVarintDecoder(d)
		n, err := vd.DecodeEnum()
		if err != nil {
			return nil, err
		}
		if d.opts.StrictEnums {
			if enum := d.resolveEnum(fieldType); enum != nil && enum.ValueByNumber(n) == nil {
				return nil, fmt.Errorf("%w: %d for %s", ErrInvalidEnumValue, n, enum.FullName)
			}
		}
		return n, nil
	case schema.KindPrimitive:
		return d.decodePrimitive(fieldType.PrimitiveType)
	default:
		return nil, fmt.Errorf("%w: %s is not a scalar", ErrInvalidValue, fieldType.Kind)
	}
}

// decodePrimitive decodes a primitive type using the appropriate decoder
func (d *Decoder) decodePrimitive(primitiveType schema.PrimitiveType) (any, error) {
	vd := NewVarintDecoder(d)
	fd := NewFixedDecoder(d)
	bd := NewBytesDecoder(d)

	switch primitiveType {
	case schema.TypeInt32:
		return vd.DecodeInt32()
	case schema.TypeInt64:
		return vd.DecodeInt64()
	case schema.TypeUint32:
		v, err := vd.DecodeVarint()
		return uint32(v), err
	case schema.TypeUint64:
		return vd.DecodeVarint()
	case schema.TypeSint32:
		return vd.DecodeSint32()
	case schema.TypeSint64:
		return vd.DecodeSint64()
	case schema.TypeBool:
		return vd.DecodeBool()
	case schema.TypeFixed32:
		return fd.DecodeFixed32()
	case schema.TypeSfixed32:
		return fd.DecodeSfixed32()
	case schema.TypeFloat:
		return fd.DecodeFloat32()
	case schema.TypeFixed64:
		return fd.DecodeFixed64()
	case schema.TypeSfixed64:
		return fd.DecodeSfixed64()
	case schema.TypeDouble:
		return fd.DecodeFloat64()
	case schema.TypeString:
		return bd.DecodeString()
	case schema.TypeBytes:
		return bd.DecodeBytes()
	default:
		return nil, fmt.Errorf("%w: unsupported primitive %q", ErrInvalidValue, primitiveType)
	}
}

func (d *Decoder) resolveMessage(fieldType *schema.FieldType) (*schema.Message, error) {
	if fieldType.Message != nil {
		return fieldType.Message, nil
	}
	if d.registry == nil {
		return nil, fmt.Errorf("unresolved message type %s", fieldType.MessageType)
	}
	return d.registry.GetMessage(fieldType.MessageType)
}

func (d *Decoder) resolveEnum(fieldType *schema.FieldType) *schema.Enum {
	if fieldType.Enum != nil || d.registry == nil {
		return fieldType.Enum
	}
	enum, err := d.registry.GetEnum(fieldType.EnumType)
	if err != nil {
		return nil
	}
	return enum
}

// skipField skips a field based on wire type
func (d *Decoder) skipField(number FieldNumber, wireType WireType) error {
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		return vd.SkipVarint()
	case WireFixed64:
		if d.pos+8 > len(d.buf) {
			return fmt.Errorf("%w: not enough data to skip fixed64", ErrTruncated)
		}
		d.pos += 8
		return nil
	case WireBytes:
		bd := NewBytesDecoder(d)
		return bd.SkipBytes()
	case WireFixed32:
		if d.pos+4 > len(d.buf) {
			return fmt.Errorf("%w: not enough data to skip fixed32", ErrTruncated)
		}
		d.pos += 4
		return nil
	case WireStartGroup:
		return d.skipGroup(number)
	case WireEndGroup:
		return fmt.Errorf("%w: field %d", ErrUnexpectedEndGroup, number)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownWireType, wireType)
	}
}

// skipGroup consumes fields up to and including the end-group tag matching
// number.
func (d *Decoder) skipGroup(number FieldNumber) error {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.opts.maxDepth() {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, d.opts.maxDepth())
	}

	for {
		if d.pos >= len(d.buf) {
			return fmt.Errorf("%w: group %d not closed", ErrTruncated, number)
		}
		n, wt, err := d.readTag()
		if err != nil {
			return err
		}
		if wt == WireEndGroup {
			if n != number {
				return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedEndGroup, n, number)
			}
			return nil
		}
		if err := d.skipField(n, wt); err != nil {
			return err
		}
	}
}

// decodeRawValue decodes without type information
func (d *Decoder) decodeRawValue(number FieldNumber, wireType WireType) (interface{}, error) {
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		return vd.DecodeVarint()
	case WireFixed64:
		fd := NewFixedDecoder(d)
		return fd.DecodeFixed64()
	case WireBytes:
		bd := NewBytesDecoder(d)
		return bd.DecodeBytes()
	case WireFixed32:
		fd := NewFixedDecoder(d)
		return fd.DecodeFixed32()
	case WireStartGroup:
		start := d.pos
		if err := d.skipGroup(number); err != nil {
			return nil, err
		}
		return append([]byte(nil), d.buf[start:d.pos]...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWireType, wireType)
	}
}

// DecodeField decodes a single field from the current position without a
// schema. It returns nil at end of input.
func (d *Decoder) DecodeField() (*Value, error) {
	if d.pos >= len(d.buf) {
		return nil, nil
	}

	start := d.pos
	fieldNumber, wireType, err := d.readTag()
	if err != nil {
		return nil, d.errAt(start, err)
	}
	if wireType == WireEndGroup {
		return nil, d.errAt(start, fmt.Errorf("%w: field %d", ErrUnexpectedEndGroup, fieldNumber))
	}

	data, err := d.decodeRawValue(fieldNumber, wireType)
	if err != nil {
		return nil, d.errAt(start, err)
	}

	return &Value{
		FieldNumber: fieldNumber,
		WireType:    wireType,
		Data:        data,
	}, nil
}
