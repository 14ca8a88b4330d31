package wire

import (
	"os"
	"strconv"
)

const (
	// DefaultMaxDepth bounds message nesting for encode and decode.
	DefaultMaxDepth = 100
	// DefaultMaxMessageSize bounds the size of a buffer accepted by Unmarshal.
	DefaultMaxMessageSize = 64 << 20
)

// Options controls optional behaviors for compatibility and hardening.
// The zero value is usable; zero limits fall back to the defaults.
type Options struct {
	// StrictWireType: when true, a known field arriving with a wire type that
	// does not match its declaration fails the decode. When false, such a
	// field is treated like an unknown field and skipped.
	StrictWireType bool

	// StrictEnums: when true, enum numbers without a declared value fail the
	// decode with ErrInvalidEnumValue. When false the raw number is kept.
	StrictEnums bool

	// PreserveUnknown: when true, unknown fields are retained as raw bytes on
	// the decoded message and written back out by Marshal.
	PreserveUnknown bool

	// DisablePacking: when true, repeated numeric fields are written one tag
	// per element instead of as a single packed run.
	DisablePacking bool

	// MaxDepth bounds nested messages (decode and encode).
	MaxDepth int

	// MaxMessageSize bounds the input accepted by Unmarshal.
	MaxMessageSize int
}

// DefaultOptions returns the default codec options.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       DefaultMaxDepth,
		MaxMessageSize: DefaultMaxMessageSize,
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) maxMessageSize() int {
	if o.MaxMessageSize <= 0 {
		return DefaultMaxMessageSize
	}
	return o.MaxMessageSize
}

// OptionsFromEnv returns DefaultOptions adjusted by the OSDWIRE_* environment
// toggles. Test harnesses use it to flip behaviors without code changes.
func OptionsFromEnv() Options {
	o := DefaultOptions()
	if envTrue("OSDWIRE_STRICT_WIRE") {
		o.StrictWireType = true
	}
	if envTrue("OSDWIRE_STRICT_ENUMS") {
		o.StrictEnums = true
	}
	if envTrue("OSDWIRE_PRESERVE_UNKNOWN") {
		o.PreserveUnknown = true
	}
	if envTrue("OSDWIRE_DISABLE_PACKING") {
		o.DisablePacking = true
	}
	if v, err := strconv.Atoi(os.Getenv("OSDWIRE_MAX_DEPTH")); err == nil && v > 0 {
		o.MaxDepth = v
	}
	if v, err := strconv.Atoi(os.Getenv("OSDWIRE_MAX_MESSAGE_SIZE")); err == nil && v > 0 {
		o.MaxMessageSize = v
	}
	return o
}

func envTrue(key string) bool {
	v := os.Getenv(key)
	return v == "1" || v == "true"
}
