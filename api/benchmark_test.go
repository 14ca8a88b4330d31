package api

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/wire"
)

// benchCase is one payload decoded by both this codec and dynamicpb with a
// descriptor compiled at run time.
type benchCase struct {
	payload []byte
	msg     *message.Message
	runtime protoreflect.MessageDescriptor
}

func newBenchCase(b *testing.B, name string, depth int) benchCase {
	b.Helper()
	m, err := New(name)
	require.NoError(b, err)
	populate(b, m, depth)
	payload, err := wire.Marshal(m, wire.DefaultOptions())
	require.NoError(b, err)
	return benchCase{
		payload: payload,
		msg:     m,
		runtime: findMessage(b, compileAPI(b), FullName(name)),
	}
}

func benchOsdwireDecode(b *testing.B, c benchCase) {
	reg, opts := Registry(), wire.DefaultOptions()
	desc := c.msg.Descriptor()
	b.ReportMetric(float64(len(c.payload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wire.Unmarshal(c.payload, desc, reg, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func benchDynamicPBDecode(b *testing.B, c benchCase) {
	b.ReportMetric(float64(len(c.payload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		msg := dynamicpb.NewMessage(c.runtime)
		if err := proto.Unmarshal(c.payload, msg); err != nil {
			b.Fatal(err)
		}
	}
}

// ===== SIMPLE PAYLOAD BENCHMARKS =====

func BenchmarkSimple_Osdwire(b *testing.B) {
	benchOsdwireDecode(b, newBenchCase(b, "VolumeLocator", 1))
}

func BenchmarkSimple_DynamicPB_RuntimeDesc(b *testing.B) {
	benchDynamicPBDecode(b, newBenchCase(b, "VolumeLocator", 1))
}

// ===== COMPLEX PAYLOAD BENCHMARKS =====

func BenchmarkComplex_Osdwire(b *testing.B) {
	benchOsdwireDecode(b, newBenchCase(b, "Volume", 3))
}

func BenchmarkComplex_DynamicPB_RuntimeDesc(b *testing.B) {
	benchDynamicPBDecode(b, newBenchCase(b, "Volume", 3))
}

func BenchmarkComplex_OsdwireEncode(b *testing.B) {
	c := newBenchCase(b, "Volume", 3)
	opts := wire.DefaultOptions()
	b.ReportMetric(float64(len(c.payload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wire.Marshal(c.msg, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComplex_DynamicPBEncode(b *testing.B) {
	c := newBenchCase(b, "Volume", 3)
	msg := dynamicpb.NewMessage(c.runtime)
	require.NoError(b, proto.Unmarshal(c.payload, msg))
	b.ReportMetric(float64(len(c.payload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := proto.Marshal(msg); err != nil {
			b.Fatal(err)
		}
	}
}
