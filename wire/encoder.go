package wire

import (
	"github.com/anirudhraja/osdwire/message"
)

// Encoder handles low-level protobuf wire format encoding
type Encoder struct {
	buf   []byte
	depth int
	opts  Options
}

// NewEncoder creates a new wire format encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buf:  make([]byte, 0, 64),
		opts: DefaultOptions(),
	}
}

// WithOptions sets the encode options and returns e.
func (e *Encoder) WithOptions(opts Options) *Encoder {
	e.opts = opts
	return e
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// child returns an empty encoder one nesting level below e.
func (e *Encoder) child() *Encoder {
	return &Encoder{depth: e.depth + 1, opts: e.opts}
}

// Marshal encodes m - main entry point.
func Marshal(m *message.Message, opts Options) ([]byte, error) {
	encoder := NewEncoder().WithOptions(opts)
	if err := NewMessageEncoder(encoder).EncodeMessage(m); err != nil {
		return nil, err
	}
	return encoder.Bytes(), nil
}
