package wire

import (
	"fmt"
	"sort"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/schema"
)

const (
	mapKeyField   FieldNumber = 1
	mapValueField FieldNumber = 2
)

// MapDecoder handles map decoding operations
type MapDecoder struct {
	decoder *Decoder
}

// MapEncoder handles map encoding operations
type MapEncoder struct {
	encoder *Encoder
}

// NewMapDecoder creates a new map decoder
func NewMapDecoder(d *Decoder) *MapDecoder {
	return &MapDecoder{decoder: d}
}

// NewMapEncoder creates a new map encoder
func NewMapEncoder(e *Encoder) *MapEncoder {
	return &MapEncoder{encoder: e}
}

// DECODER METHODS

// DecodeMapEntry decodes one length-delimited {1: key, 2: value} entry of
// the map field. A missing key or value decodes to its zero value; a missing
// message value decodes to an empty message.
func (md *MapDecoder) DecodeMapEntry(field *schema.Field) (interface{}, interface{}, error) {
	entryDecoder, err := md.decoder.readPayload()
	if err != nil {
		return nil, nil, err
	}
	keyType, valueType := field.Type.MapKey, field.Type.MapValue

	var key, value interface{}

	for entryDecoder.pos < len(entryDecoder.buf) {
		start := entryDecoder.pos
		fieldNumber, wireType, err := entryDecoder.readTag()
		if err != nil {
			return nil, nil, entryDecoder.errAt(start, err)
		}

		switch {
		case fieldNumber == mapKeyField && wireType == WireTypeOf(keyType):
			key, err = entryDecoder.DecodeScalar(keyType)
			if err != nil {
				return nil, nil, wrapWithField(entryDecoder.errAt(start, err), "key")
			}
		case fieldNumber == mapValueField && wireType == WireTypeOf(valueType):
			if existing, ok := value.(*message.Message); ok {
				// A repeated message value within one entry is merged.
				sub, err := entryDecoder.readPayload()
				if err == nil {
					err = NewMessageDecoder(sub).DecodeInto(existing)
				}
				if err != nil {
					return nil, nil, wrapWithField(entryDecoder.errAt(start, err), "value")
				}
				continue
			}
			value, err = NewMessageDecoder(entryDecoder).decodeValue(valueType)
			if err != nil {
				return nil, nil, wrapWithField(entryDecoder.errAt(start, err), "value")
			}
		default:
			if wireType == WireEndGroup {
				return nil, nil, entryDecoder.errAt(start, fmt.Errorf("%w: field %d", ErrUnexpectedEndGroup, fieldNumber))
			}
			if err := entryDecoder.skipField(fieldNumber, wireType); err != nil {
				return nil, nil, entryDecoder.errAt(start, err)
			}
		}
	}

	if key == nil {
		key = message.Zero(keyType)
	}
	if value == nil {
		value = message.Zero(valueType)
		if value == nil {
			desc, err := md.decoder.resolveMessage(valueType)
			if err != nil {
				return nil, nil, err
			}
			value = message.New(desc)
		}
	}
	return key, value, nil
}

// ENCODER METHODS

// EncodeMap writes one entry per pair, in ascending key order.
func (me *MapEncoder) EncodeMap(number FieldNumber, field *schema.Field, entries map[any]any) error {
	e := me.encoder
	keys := make([]any, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sortMapKeys(keys)

	for _, k := range keys {
		entry := e.child()
		if err := me.encodeEntry(entry, field, k, entries[k]); err != nil {
			return fmt.Errorf("map key %v: %w", k, err)
		}
		e.EncodeTag(number, WireBytes)
		e.EncodeBytes(entry.buf)
	}
	return nil
}

func (me *MapEncoder) encodeEntry(entry *Encoder, field *schema.Field, key, value any) error {
	keyType, valueType := field.Type.MapKey, field.Type.MapValue

	entry.EncodeTag(mapKeyField, WireTypeOf(keyType))
	if err := entry.EncodeValue(keyType, key); err != nil {
		return err
	}
	entry.EncodeTag(mapValueField, WireTypeOf(valueType))
	return entry.EncodeValue(valueType, value)
}

// sortMapKeys orders keys of a single Go type: numbers ascending, strings
// lexicographically, false before true.
func sortMapKeys(keys []any) {
	sort.Slice(keys, func(i, j int) bool {
		switch a := keys[i].(type) {
		case string:
			b, _ := keys[j].(string)
			return a < b
		case int32:
			b, _ := keys[j].(int32)
			return a < b
		case int64:
			b, _ := keys[j].(int64)
			return a < b
		case uint32:
			b, _ := keys[j].(uint32)
			return a < b
		case uint64:
			b, _ := keys[j].(uint64)
			return a < b
		case bool:
			b, _ := keys[j].(bool)
			return !a && b
		}
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
}
