package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestVarint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 21, 1<<35 + 7, math.MaxInt64, math.MaxUint64}

	for _, v := range values {
		e := NewEncoder()
		e.EncodeVarint(v)
		assert.Equal(t, protowire.AppendVarint(nil, v), e.Bytes(), "encoding %d", v)

		d := NewDecoder(e.Bytes())
		got, err := d.DecodeVarint()
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 0, d.Remaining())
	}
}

func TestVarint_ZigZag(t *testing.T) {
	tests := []struct {
		in   int64
		want uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}
	for _, tt := range tests {
		e := NewEncoder()
		NewVarintEncoder(e).EncodeSint64(tt.in)
		assert.Equal(t, protowire.AppendVarint(nil, tt.want), e.Bytes())

		got, err := NewVarintDecoder(NewDecoder(e.Bytes())).DecodeSint64()
		require.NoError(t, err)
		assert.Equal(t, tt.in, got)
	}

	for _, v := range []int32{0, -1, 1, math.MaxInt32, math.MinInt32} {
		e := NewEncoder()
		NewVarintEncoder(e).EncodeSint32(v)
		assert.LessOrEqual(t, len(e.Bytes()), 5, "sint32 %d", v)

		got, err := NewVarintDecoder(NewDecoder(e.Bytes())).DecodeSint32()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVarint_NegativeInt32SignExtends(t *testing.T) {
	e := NewEncoder()
	NewVarintEncoder(e).EncodeInt32(-1)
	assert.Len(t, e.Bytes(), 10)

	got, err := NewVarintDecoder(NewDecoder(e.Bytes())).DecodeInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), got)
}

func TestVarint_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"unterminated", []byte{0x80, 0x80}, ErrTruncated},
		{"eleven bytes", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x81, 0x00}, ErrMalformedVarint},
		{"tenth byte too large", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}, ErrMalformedVarint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(tt.data).DecodeVarint()
			assert.ErrorIs(t, err, tt.want)
		})
	}

	max := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	v, err := NewDecoder(max).DecodeVarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)
}

func TestFixed_LittleEndian(t *testing.T) {
	e := NewEncoder()
	fe := NewFixedEncoder(e)
	fe.EncodeFixed32(0x01020304)
	fe.EncodeFixed64(0x0102030405060708)
	assert.Equal(t, []byte{4, 3, 2, 1, 8, 7, 6, 5, 4, 3, 2, 1}, e.Bytes())

	d := NewDecoder(e.Bytes())
	fd := NewFixedDecoder(d)
	v32, err := fd.DecodeFixed32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v32)
	v64, err := fd.DecodeFixed64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), v64)
	assert.Equal(t, 0, d.Remaining())

	short := NewDecoder([]byte{1, 2, 3})
	_, err = NewFixedDecoder(short).DecodeFixed32()
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 3, short.Remaining())
}

func TestTag_RoundTrip(t *testing.T) {
	for _, n := range []FieldNumber{MinFieldNumber, 15, 16, 2047, MaxFieldNumber} {
		for _, w := range []WireType{WireVarint, WireFixed64, WireBytes, WireFixed32} {
			gotN, gotW := ParseTag(MakeTag(n, w))
			assert.Equal(t, n, gotN)
			assert.Equal(t, w, gotW)
		}
	}
	assert.Equal(t, "len", WireBytes.String())
	assert.False(t, WireType(6).Valid())
}
