// Package grpccodec lets gRPC carry dynamic openstorage messages.
//
// The codec handles *message.Message values and any type with a
// Dynamic() *message.Message method, which covers every api binding.
package grpccodec

import (
	"fmt"

	"google.golang.org/grpc/encoding"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/registry"
	"github.com/anirudhraja/osdwire/wire"
)

// Name is the gRPC content subtype of the codec.
const Name = "osdwire"

type dynamic interface {
	Dynamic() *message.Message
}

// Codec implements encoding.Codec over the wire package.
type Codec struct {
	registry *registry.Registry
	opts     wire.Options
}

var _ encoding.Codec = (*Codec)(nil)

// New returns a codec that resolves nested types through reg.
func New(reg *registry.Registry, opts wire.Options) *Codec {
	return &Codec{registry: reg, opts: opts}
}

// Register makes the codec available to gRPC under Name. Like
// encoding.RegisterCodec it must be called during initialization.
func Register(reg *registry.Registry, opts wire.Options) *Codec {
	c := New(reg, opts)
	encoding.RegisterCodec(c)
	return c
}

func (c *Codec) Name() string { return Name }

// Marshal encodes v.
func (c *Codec) Marshal(v interface{}) ([]byte, error) {
	m, err := dynamicMessage(v)
	if err != nil {
		return nil, err
	}
	return wire.Marshal(m, c.opts)
}

// Unmarshal decodes data into v, whose message type decides the schema.
func (c *Codec) Unmarshal(data []byte, v interface{}) error {
	m, err := dynamicMessage(v)
	if err != nil {
		return err
	}
	return wire.UnmarshalInto(data, m, c.registry, c.opts)
}

func dynamicMessage(v interface{}) (*message.Message, error) {
	var m *message.Message
	switch x := v.(type) {
	case *message.Message:
		m = x
	case dynamic:
		m = x.Dynamic()
	default:
		return nil, fmt.Errorf("grpccodec: unsupported type %T", v)
	}
	if m == nil {
		return nil, fmt.Errorf("grpccodec: nil message %T", v)
	}
	return m, nil
}
