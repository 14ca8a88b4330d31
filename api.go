// Package osdwire encodes and decodes openstorage API payloads using schemas
// loaded at run time instead of generated code.
package osdwire

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/registry"
	"github.com/anirudhraja/osdwire/wire"
)

// Observer is told about every Encode and Decode a Codec performs.
type Observer interface {
	ObserveDecode(messageType string, size int, elapsed time.Duration, err error)
	ObserveEncode(messageType string, size int, elapsed time.Duration, err error)
}

// ===== SCHEMA-AWARE API =====

// Codec provides schema-aware protobuf operations without generated code.
// It is safe for concurrent use; the messages it returns are not.
type Codec struct {
	registry *registry.Registry
	opts     wire.Options
	observer Observer
	logger   *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithWireOptions sets the options used for every encode and decode.
func WithWireOptions(opts wire.Options) Option {
	return func(c *Codec) { c.opts = opts }
}

// WithObserver reports every encode and decode to o.
func WithObserver(o Observer) Option {
	return func(c *Codec) { c.observer = o }
}

// WithLogger sets the logger for the codec and, for NewCodec, its registry.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCodec creates a codec with an empty registry that resolves imports
// against protoDirectories.
func NewCodec(protoDirectories []string, opts ...Option) *Codec {
	c := newCodec(opts)
	c.registry = registry.NewRegistry(protoDirectories, registry.WithLogger(c.logger))
	return c
}

// NewCodecFromRegistry creates a codec over an already loaded registry.
func NewCodecFromRegistry(reg *registry.Registry, opts ...Option) *Codec {
	c := newCodec(opts)
	c.registry = reg
	return c
}

func newCodec(opts []Option) *Codec {
	c := &Codec{
		opts:   wire.DefaultOptions(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadSchemaFromFile loads a .proto file and its imports.
func (c *Codec) LoadSchemaFromFile(protoFile string) error {
	return c.registry.LoadSchemaFromFile(protoFile)
}

// LoadSchema loads a .proto file or every .proto file under a directory.
func (c *Codec) LoadSchema(protoPath string) error {
	return c.registry.LoadSchema(protoPath)
}

// NewMessage returns an empty message of the named type.
func (c *Codec) NewMessage(messageType string) (*message.Message, error) {
	desc, err := c.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type not found: %s", messageType)
	}
	return message.New(desc), nil
}

// Decode decodes protobuf bytes as the named message type.
func (c *Codec) Decode(data []byte, messageType string) (*message.Message, error) {
	desc, err := c.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type not found: %s", messageType)
	}
	start := time.Now()
	m, err := wire.Unmarshal(data, desc, c.registry, c.opts)
	c.observeDecode(desc.FullName, len(data), start, err)
	return m, err
}

// DecodeInto decodes data into m, replacing its contents only on success.
func (c *Codec) DecodeInto(data []byte, m *message.Message) error {
	start := time.Now()
	err := wire.UnmarshalInto(data, m, c.registry, c.opts)
	c.observeDecode(m.Descriptor().FullName, len(data), start, err)
	return err
}

// Encode encodes m to protobuf bytes.
func (c *Codec) Encode(m *message.Message) ([]byte, error) {
	start := time.Now()
	data, err := wire.Marshal(m, c.opts)
	if c.observer != nil {
		c.observer.ObserveEncode(m.Descriptor().FullName, len(data), time.Since(start), err)
	}
	if err != nil {
		c.logger.Debug("encode failed",
			zap.String("message", m.Descriptor().FullName),
			zap.String("kind", wire.ErrorKind(err)),
			zap.Error(err))
	}
	return data, err
}

func (c *Codec) observeDecode(messageType string, size int, start time.Time, err error) {
	if c.observer != nil {
		c.observer.ObserveDecode(messageType, size, time.Since(start), err)
	}
	if err != nil {
		c.logger.Debug("decode failed",
			zap.String("message", messageType),
			zap.Int("bytes", size),
			zap.String("kind", wire.ErrorKind(err)),
			zap.Error(err))
	}
}

// Parse decodes protobuf bytes into a plain map keyed by proto field names.
func (c *Codec) Parse(data []byte, messageType string) (map[string]interface{}, error) {
	m, err := c.Decode(data, messageType)
	if err != nil {
		return nil, err
	}
	return message.ToObject(m), nil
}

// Marshal encodes a plain map to protobuf bytes using schema information.
func (c *Codec) Marshal(data map[string]interface{}, messageType string) ([]byte, error) {
	desc, err := c.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("message type not found: %s", messageType)
	}
	m, err := message.FromObject(desc, data)
	if err != nil {
		return nil, err
	}
	return c.Encode(m)
}

// Unmarshal decodes protobuf bytes into the struct v points to. The message
// type is the struct's type name. Fields match proto names ignoring case and
// underscores, or a `json` tag; enums decode as their names and timestamps
// into time.Time.
func (c *Codec) Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}

	messageType := rv.Elem().Type().Name()
	result, err := c.Parse(data, messageType)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		TagName:          "json",
		MatchName:        matchFieldName,
		Result:           v,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(result); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", messageType, err)
	}
	return nil
}

// matchFieldName compares a proto field name with a Go field name, ignoring
// case and underscores.
func matchFieldName(mapKey, fieldName string) bool {
	return normalizeName(mapKey) == normalizeName(fieldName)
}

func normalizeName(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_':
			continue
		case ch >= 'A' && ch <= 'Z':
			ch += 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}

// ===== REGISTRY ACCESS =====

func (c *Codec) GetRegistry() *registry.Registry { return c.registry }
func (c *Codec) Options() wire.Options            { return c.opts }
func (c *Codec) ListMessages() []string           { return c.registry.ListMessages() }
func (c *Codec) ListEnums() []string              { return c.registry.ListEnums() }
func (c *Codec) ListServices() []string           { return c.registry.ListServices() }
