package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FixedDecoder reads little-endian 4 and 8 byte values.
type FixedDecoder struct {
	decoder *Decoder
}

// FixedEncoder appends little-endian 4 and 8 byte values.
type FixedEncoder struct {
	encoder *Encoder
}

func NewFixedDecoder(d *Decoder) *FixedDecoder { return &FixedDecoder{decoder: d} }

func NewFixedEncoder(e *Encoder) *FixedEncoder { return &FixedEncoder{encoder: e} }

// take consumes n bytes, or fails with ErrTruncated and consumes nothing.
func (fd *FixedDecoder) take(n int, kind string) ([]byte, error) {
	d := fd.decoder
	if left := len(d.buf) - d.pos; left < n {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d left", ErrTruncated, kind, n, left)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (fd *FixedDecoder) DecodeFixed32() (uint32, error) {
	b, err := fd.take(4, "fixed32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (fd *FixedDecoder) DecodeFixed64() (uint64, error) {
	b, err := fd.take(8, "fixed64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (fd *FixedDecoder) DecodeSfixed32() (int32, error) {
	v, err := fd.DecodeFixed32()
	return int32(v), err
}

func (fd *FixedDecoder) DecodeSfixed64() (int64, error) {
	v, err := fd.DecodeFixed64()
	return int64(v), err
}

func (fd *FixedDecoder) DecodeFloat32() (float32, error) {
	v, err := fd.DecodeFixed32()
	return math.Float32frombits(v), err
}

func (fd *FixedDecoder) DecodeFloat64() (float64, error) {
	v, err := fd.DecodeFixed64()
	return math.Float64frombits(v), err
}

func (fe *FixedEncoder) EncodeFixed32(v uint32) {
	fe.encoder.buf = binary.LittleEndian.AppendUint32(fe.encoder.buf, v)
}

func (fe *FixedEncoder) EncodeFixed64(v uint64) {
	fe.encoder.buf = binary.LittleEndian.AppendUint64(fe.encoder.buf, v)
}

func (fe *FixedEncoder) EncodeSfixed32(v int32) { fe.EncodeFixed32(uint32(v)) }

func (fe *FixedEncoder) EncodeSfixed64(v int64) { fe.EncodeFixed64(uint64(v)) }

// EncodeFloat32 writes the IEEE 754 bits unchanged, NaN payloads included.
func (fe *FixedEncoder) EncodeFloat32(v float32) { fe.EncodeFixed32(math.Float32bits(v)) }

func (fe *FixedEncoder) EncodeFloat64(v float64) { fe.EncodeFixed64(math.Float64bits(v)) }
