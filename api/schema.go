// Package api binds the openstorage.api schema to the osdwire codec. The
// schema is embedded and loaded once on first use; typed wrappers cover the
// messages used most and every other message is reachable through New.
package api

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/anirudhraja/osdwire/message"
	"github.com/anirudhraja/osdwire/registry"
	"github.com/anirudhraja/osdwire/schema"
)

// Package is the protobuf package of every type in api.proto.
const Package = "openstorage.api"

// ProtoFile is the name the schema is registered under.
const ProtoFile = "api.proto"

//go:embed api.proto
var protoFS embed.FS

var (
	loadOnce sync.Once
	reg      *registry.Registry
)

// Registry returns the registry holding the openstorage.api schema. It
// panics if the embedded schema fails to load, which only a broken build
// can cause.
func Registry() *registry.Registry {
	loadOnce.Do(func() {
		r := registry.NewRegistry([]string{"."}, registry.WithFS(protoFS))
		if err := r.LoadSchemaFromFile(ProtoFile); err != nil {
			panic(fmt.Sprintf("api: loading embedded %s: %v", ProtoFile, err))
		}
		reg = r
	})
	return reg
}

// ProtoSource returns the text of api.proto.
func ProtoSource() string {
	b, err := protoFS.ReadFile(ProtoFile)
	if err != nil {
		panic(fmt.Sprintf("api: reading embedded %s: %v", ProtoFile, err))
	}
	return string(b)
}

// FullName qualifies a message or enum name with the package. Names that
// are already qualified are returned unchanged.
func FullName(name string) string {
	name = strings.TrimPrefix(name, ".")
	if strings.HasPrefix(name, Package+".") || strings.HasPrefix(name, "google.protobuf.") {
		return name
	}
	return Package + "." + name
}

// Descriptor returns the schema of the named message.
func Descriptor(name string) (*schema.Message, error) {
	return Registry().GetMessage(FullName(name))
}

// New returns an empty dynamic message of the named type.
func New(name string) (*message.Message, error) {
	desc, err := Descriptor(name)
	if err != nil {
		return nil, err
	}
	return message.New(desc), nil
}

// MessageNames returns the fully qualified name of every message declared
// in api.proto, sorted.
func MessageNames() []string {
	var names []string
	for _, name := range Registry().ListMessages() {
		if strings.HasPrefix(name, Package+".") {
			names = append(names, name)
		}
	}
	return names
}

func mustNew(name string) *message.Message {
	m, err := New(name)
	if err != nil {
		panic(fmt.Sprintf("api: %v", err))
	}
	return m
}
