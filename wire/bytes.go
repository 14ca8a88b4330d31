package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// BytesDecoder reads length-delimited payloads.
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder appends length-delimited payloads.
type BytesEncoder struct {
	encoder *Encoder
}

func NewBytesDecoder(d *Decoder) *BytesDecoder { return &BytesDecoder{decoder: d} }

func NewBytesEncoder(e *Encoder) *BytesEncoder { return &BytesEncoder{encoder: e} }

// DecodeBytes returns a copy of the payload, safe to keep after the input
// buffer is reused.
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	raw, err := bd.DecodeRawBytes()
	if err != nil {
		return nil, err
	}
	return append([]byte{}, raw...), nil
}

func (bd *BytesDecoder) DecodeString() (string, error) {
	raw, err := bd.DecodeRawBytes()
	return string(raw), err
}

// DecodeRawBytes returns the payload as a subslice of the input.
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, error) {
	d := bd.decoder
	length, err := d.DecodeVarint()
	if err != nil {
		return nil, fmt.Errorf("length prefix: %w", err)
	}
	left := len(d.buf) - d.pos
	if length > uint64(left) {
		return nil, fmt.Errorf("%w: payload of %d bytes, %d left", ErrTruncated, length, left)
	}
	data := d.buf[d.pos : d.pos+int(length)]
	d.pos += int(length)
	return data, nil
}

func (bd *BytesDecoder) SkipBytes() error {
	_, err := bd.DecodeRawBytes()
	return err
}

func (be *BytesEncoder) EncodeBytes(data []byte) {
	be.encoder.buf = protowire.AppendBytes(be.encoder.buf, data)
}

func (be *BytesEncoder) EncodeString(s string) {
	be.encoder.buf = protowire.AppendString(be.encoder.buf, s)
}

// EncodeBytes appends data with its length prefix.
func (e *Encoder) EncodeBytes(data []byte) {
	NewBytesEncoder(e).EncodeBytes(data)
}
