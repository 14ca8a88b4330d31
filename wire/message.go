package wire

import (
	"fmt"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/schema"
)

// MessageDecoder handles message decoding operations
type MessageDecoder struct {
	decoder *Decoder
}

// MessageEncoder handles message encoding operations
type MessageEncoder struct {
	encoder *Encoder
}

// NewMessageDecoder creates a new message decoder
func NewMessageDecoder(d *Decoder) *MessageDecoder {
	return &MessageDecoder{decoder: d}
}

// NewMessageEncoder creates a new message encoder
func NewMessageEncoder(e *Encoder) *MessageEncoder {
	return &MessageEncoder{encoder: e}
}

// DECODER METHODS

// DecodeInto reads fields until the decoder's buffer is exhausted and merges
// them into m. Fields the schema does not declare, and declared fields that
// arrive with an unexpected wire type, are skipped.
func (md *MessageDecoder) DecodeInto(m *message.Message) error {
	d := md.decoder
	desc := m.Descriptor()

	for d.pos < len(d.buf) {
		start := d.pos
		fieldNumber, wireType, err := d.readTag()
		if err != nil {
			return d.errAt(start, err)
		}
		if wireType == WireEndGroup {
			return d.errAt(start, fmt.Errorf("%w: field %d", ErrUnexpectedEndGroup, fieldNumber))
		}

		field := desc.FieldByNumber(int32(fieldNumber))
		if field != nil && !acceptsWireType(field, wireType) {
			if d.opts.StrictWireType {
				err := fmt.Errorf("%w: got %s, want %s", ErrWireTypeMismatch, wireType, WireTypeOf(&field.Type))
				return wrapWithField(d.errAt(start, err), field.Name)
			}
			field = nil
		}

		if field == nil {
			// Unknown field - skip it
			if err := d.skipField(fieldNumber, wireType); err != nil {
				return d.errAt(start, err)
			}
			if d.opts.PreserveUnknown {
				m.AppendUnknown(d.buf[start:d.pos])
			}
			continue
		}

		if err := md.decodeField(m, field, wireType); err != nil {
			return wrapWithField(d.errAt(start, err), field.Name)
		}
	}

	return nil
}

// acceptsWireType reports whether a value of field may arrive as wireType.
// Packable repeated fields accept both the packed and the unpacked form.
func acceptsWireType(field *schema.Field, wireType WireType) bool {
	if field.IsMap() {
		return wireType == WireBytes
	}
	if wireType == WireBytes && field.IsPackable() {
		return true
	}
	return wireType == WireTypeOf(&field.Type)
}

func (md *MessageDecoder) decodeField(m *message.Message, field *schema.Field, wireType WireType) error {
	d := md.decoder

	switch {
	case field.IsMap():
		mapDecoder := NewMapDecoder(d)
		key, value, err := mapDecoder.DecodeMapEntry(field)
		if err != nil {
			return err
		}
		return m.PutEntry(field, key, value)

	case field.IsList():
		if wireType == WireBytes && field.IsPackable() {
			return md.decodePacked(m, field)
		}
		value, err := md.decodeValue(&field.Type)
		if err != nil {
			return err
		}
		return m.AppendField(field, value)

	case field.Type.Kind == schema.KindMessage:
		// A singular message seen more than once is merged.
		if m.HasField(field) {
			existing := m.GetField(field).(*message.Message)
			sub, err := d.readPayload()
			if err != nil {
				return err
			}
			return NewMessageDecoder(sub).DecodeInto(existing)
		}
		value, err := md.decodeValue(&field.Type)
		if err != nil {
			return err
		}
		return m.SetField(field, value)

	default:
		value, err := d.DecodeScalar(&field.Type)
		if err != nil {
			return err
		}
		return m.SetField(field, value)
	}
}

// decodeValue decodes one singular value, nested messages included.
func (md *MessageDecoder) decodeValue(fieldType *schema.FieldType) (any, error) {
	d := md.decoder
	if fieldType.Kind != schema.KindMessage {
		return d.DecodeScalar(fieldType)
	}

	desc, err := d.resolveMessage(fieldType)
	if err != nil {
		return nil, err
	}
	sub, err := d.readPayload()
	if err != nil {
		return nil, err
	}
	nested := message.New(desc)
	if err := NewMessageDecoder(sub).DecodeInto(nested); err != nil {
		return nil, err
	}
	return nested, nil
}

// decodePacked appends every element of a packed run.
func (md *MessageDecoder) decodePacked(m *message.Message, field *schema.Field) error {
	sub, err := md.decoder.readPayload()
	if err != nil {
		return err
	}
	for sub.pos < len(sub.buf) {
		start := sub.pos
		value, err := sub.DecodeScalar(&field.Type)
		if err != nil {
			return sub.errAt(start, err)
		}
		if err := m.AppendField(field, value); err != nil {
			return err
		}
	}
	return nil
}

// ENCODER METHODS

// EncodeMessage writes every populated field of m in field-number order,
// followed by any retained unknown bytes.
func (me *MessageEncoder) EncodeMessage(m *message.Message) error {
	e := me.encoder
	if e.depth > e.opts.maxDepth() {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, e.opts.maxDepth())
	}

	var err error
	m.Range(func(field *schema.Field, value any) bool {
		if err = me.encodeField(field, value); err != nil {
			err = wrapWithField(err, field.Name)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	e.buf = append(e.buf, m.Unknown()...)
	return nil
}

func (me *MessageEncoder) encodeField(field *schema.Field, value any) error {
	e := me.encoder
	number := FieldNumber(field.Number)

	switch {
	case field.IsMap():
		entries, ok := value.(map[any]any)
		if !ok {
			return fmt.Errorf("%w: %T for map field", ErrInvalidValue, value)
		}
		return NewMapEncoder(e).EncodeMap(number, field, entries)

	case field.IsList():
		elements, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%w: %T for repeated field", ErrInvalidValue, value)
		}
		if len(elements) == 0 {
			return nil
		}
		if field.IsPacked() && !e.opts.DisablePacking {
			packed := e.child()
			for _, element := range elements {
				if err := packed.EncodeValue(&field.Type, element); err != nil {
					return err
				}
			}
			e.EncodeTag(number, WireBytes)
			e.EncodeBytes(packed.buf)
			return nil
		}
		wireType := WireTypeOf(&field.Type)
		for _, element := range elements {
			e.EncodeTag(number, wireType)
			if err := e.EncodeValue(&field.Type, element); err != nil {
				return err
			}
		}
		return nil

	default:
		e.EncodeTag(number, WireTypeOf(&field.Type))
		return e.EncodeValue(&field.Type, value)
	}
}

// EncodeValue writes one singular value without a tag. Nested messages are
// written length-delimited.
func (e *Encoder) EncodeValue(fieldType *schema.FieldType, value any) error {
	switch fieldType.Kind {
	case schema.KindMessage:
		nested, ok := value.(*message.Message)
		if !ok || nested == nil {
			return fmt.Errorf("%w: %T for message %s", ErrInvalidValue, value, fieldType.MessageType)
		}
		child := e.child()
		if err := NewMessageEncoder(child).EncodeMessage(nested); err != nil {
			return err
		}
		e.EncodeBytes(child.buf)
		return nil
	case schema.KindEnum:
		n, ok := value.(int32)
		if !ok {
			return fmt.Errorf("%w: %T for enum %s", ErrInvalidValue, value, fieldType.EnumType)
		}
		NewVarintEncoder(e).EncodeEnum(n)
		return nil
	case schema.KindPrimitive:
		return e.encodePrimitive(fieldType.PrimitiveType, value)
	}
	return fmt.Errorf("%w: kind %s", ErrInvalidValue, fieldType.Kind)
}

// encodePrimitive encodes a primitive value
func (e *Encoder) encodePrimitive(primitiveType schema.PrimitiveType, value any) error {
	ve := NewVarintEncoder(e)
	fe := NewFixedEncoder(e)
	be := NewBytesEncoder(e)
	ok := true

	switch primitiveType {
	case schema.TypeString:
		var v string
		if v, ok = value.(string); ok {
			be.EncodeString(v)
		}
	case schema.TypeBytes:
		var v []byte
		if v, ok = value.([]byte); ok {
			be.EncodeBytes(v)
		}
	case schema.TypeInt32:
		var v int32
		if v, ok = value.(int32); ok {
			ve.EncodeInt32(v)
		}
	case schema.TypeSint32:
		var v int32
		if v, ok = value.(int32); ok {
			ve.EncodeSint32(v)
		}
	case schema.TypeSfixed32:
		var v int32
		if v, ok = value.(int32); ok {
			fe.EncodeSfixed32(v)
		}
	case schema.TypeInt64:
		var v int64
		if v, ok = value.(int64); ok {
			ve.EncodeInt64(v)
		}
	case schema.TypeSint64:
		var v int64
		if v, ok = value.(int64); ok {
			ve.EncodeSint64(v)
		}
	case schema.TypeSfixed64:
		var v int64
		if v, ok = value.(int64); ok {
			fe.EncodeSfixed64(v)
		}
	case schema.TypeUint32:
		var v uint32
		if v, ok = value.(uint32); ok {
			ve.EncodeUint32(v)
		}
	case schema.TypeFixed32:
		var v uint32
		if v, ok = value.(uint32); ok {
			fe.EncodeFixed32(v)
		}
	case schema.TypeUint64:
		var v uint64
		if v, ok = value.(uint64); ok {
			ve.EncodeUint64(v)
		}
	case schema.TypeFixed64:
		var v uint64
		if v, ok = value.(uint64); ok {
			fe.EncodeFixed64(v)
		}
	case schema.TypeBool:
		var v bool
		if v, ok = value.(bool); ok {
			ve.EncodeBool(v)
		}
	case schema.TypeFloat:
		var v float32
		if v, ok = value.(float32); ok {
			fe.EncodeFloat32(v)
		}
	case schema.TypeDouble:
		var v float64
		if v, ok = value.(float64); ok {
			fe.EncodeFloat64(v)
		}
	default:
		return fmt.Errorf("%w: unsupported primitive type %q", ErrInvalidValue, primitiveType)
	}

	if !ok {
		return fmt.Errorf("%w: %T for %s", ErrInvalidValue, value, primitiveType)
	}
	return nil
}
