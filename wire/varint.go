package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// maxVarintLen is the longest legal encoding of a 64-bit varint.
const maxVarintLen = 10

// VarintDecoder reads base-128 varints and the integer kinds carried in them.
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder appends base-128 varints.
type VarintEncoder struct {
	encoder *Encoder
}

func NewVarintDecoder(d *Decoder) *VarintDecoder { return &VarintDecoder{decoder: d} }

func NewVarintEncoder(e *Encoder) *VarintEncoder { return &VarintEncoder{encoder: e} }

// DecodeVarint reads one varint. Input that ends mid-varint is ErrTruncated;
// an eleventh byte, or a tenth byte above 1, is ErrMalformedVarint.
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	var v uint64
	for i := 0; i < maxVarintLen; i++ {
		if d.pos >= len(d.buf) {
			return 0, fmt.Errorf("%w: input ended inside varint", ErrTruncated)
		}
		b := d.buf[d.pos]
		d.pos++
		if i == maxVarintLen-1 && b > 1 {
			return 0, fmt.Errorf("%w: overflows uint64", ErrMalformedVarint)
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: longer than %d bytes", ErrMalformedVarint, maxVarintLen)
}

// DecodeInt32 keeps the low 32 bits, so sign-extended negatives come back
// intact.
func (vd *VarintDecoder) DecodeInt32() (int32, error) {
	v, err := vd.DecodeVarint()
	return int32(v), err
}

func (vd *VarintDecoder) DecodeInt64() (int64, error) {
	v, err := vd.DecodeVarint()
	return int64(v), err
}

func (vd *VarintDecoder) DecodeSint32() (int32, error) {
	v, err := vd.DecodeVarint()
	return int32(protowire.DecodeZigZag(v & math.MaxUint32)), err
}

func (vd *VarintDecoder) DecodeSint64() (int64, error) {
	v, err := vd.DecodeVarint()
	return protowire.DecodeZigZag(v), err
}

// DecodeBool treats any non-zero varint as true.
func (vd *VarintDecoder) DecodeBool() (bool, error) {
	v, err := vd.DecodeVarint()
	return v != 0, err
}

// DecodeEnum returns the number as written; open enums keep undeclared values.
func (vd *VarintDecoder) DecodeEnum() (int32, error) {
	return vd.DecodeInt32()
}

func (vd *VarintDecoder) SkipVarint() error {
	_, err := vd.DecodeVarint()
	return err
}

func (ve *VarintEncoder) EncodeVarint(v uint64) {
	ve.encoder.buf = protowire.AppendVarint(ve.encoder.buf, v)
}

// EncodeInt32 sign-extends, so negative values take ten bytes.
func (ve *VarintEncoder) EncodeInt32(v int32) { ve.EncodeVarint(uint64(int64(v))) }

func (ve *VarintEncoder) EncodeInt64(v int64) { ve.EncodeVarint(uint64(v)) }

func (ve *VarintEncoder) EncodeUint32(v uint32) { ve.EncodeVarint(uint64(v)) }

func (ve *VarintEncoder) EncodeUint64(v uint64) { ve.EncodeVarint(v) }

func (ve *VarintEncoder) EncodeSint32(v int32) { ve.EncodeVarint(protowire.EncodeZigZag(int64(v))) }

func (ve *VarintEncoder) EncodeSint64(v int64) { ve.EncodeVarint(protowire.EncodeZigZag(v)) }

func (ve *VarintEncoder) EncodeBool(v bool) { ve.EncodeVarint(protowire.EncodeBool(v)) }

func (ve *VarintEncoder) EncodeEnum(v int32) { ve.EncodeInt32(v) }

// DecodeVarint reads a varint at the decoder's position.
func (d *Decoder) DecodeVarint() (uint64, error) {
	return NewVarintDecoder(d).DecodeVarint()
}

// EncodeVarint appends v to the encoder's buffer.
func (e *Encoder) EncodeVarint(v uint64) {
	NewVarintEncoder(e).EncodeVarint(v)
}

// EncodeTag writes the tag for a field number and wire type.
func (e *Encoder) EncodeTag(number FieldNumber, wireType WireType) {
	e.EncodeVarint(uint64(MakeTag(number, wireType)))
}
