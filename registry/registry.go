package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"
	"go.uber.org/zap"

	"github.com/anirudhraja/osdwire/schema"
)

const defaultLookupCacheSize = 512

// Registry allows us to store the schema of the protobuf messages. We look this up when we need to parse or marshal a message.
// It is safe for concurrent use.
type Registry struct {
	ProtoDirectories []string

	fsys      fs.FS
	logger    *zap.Logger
	cacheSize int

	mu              sync.RWMutex
	parsedProtoBody map[string]*protoparserparser.Proto // file path -> parsed body
	protoEntities   map[string]*protoFileEntity         // file path -> imports and package
	files           map[string]*schema.ProtoFile        // file path -> built definitions
	names           map[string]struct{}                 // every registered message and enum
	messages        map[string]*schema.Message          // fully qualified name -> message
	enums           map[string]*schema.Enum             // fully qualified name -> enum
	services        map[string]*schema.Service          // fully qualified name -> service

	messageLookups *lru.Cache[string, *schema.Message]
	enumLookups    *lru.Cache[string, *schema.Enum]
}

type protoFileEntity struct {
	imports []string
	pkg     string
	syntax  string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used while loading schemas.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFS reads .proto files from fsys instead of the local filesystem.
// ProtoDirectories are then interpreted as paths inside fsys.
func WithFS(fsys fs.FS) Option {
	return func(r *Registry) { r.fsys = fsys }
}

// WithLookupCacheSize sets how many short-name lookups are remembered.
func WithLookupCacheSize(size int) Option {
	return func(r *Registry) {
		if size > 0 {
			r.cacheSize = size
		}
	}
}

// NewRegistry creates a registry that resolves imports against protoDirectories.
// The google.protobuf well-known types are always available.
func NewRegistry(protoDirectories []string, opts ...Option) *Registry {
	r := &Registry{
		ProtoDirectories: protoDirectories,
		logger:           zap.NewNop(),
		cacheSize:        defaultLookupCacheSize,
		parsedProtoBody:  make(map[string]*protoparserparser.Proto),
		protoEntities:    make(map[string]*protoFileEntity),
		files:            make(map[string]*schema.ProtoFile),
		names:            make(map[string]struct{}),
		messages:         make(map[string]*schema.Message),
		enums:            make(map[string]*schema.Enum),
		services:         make(map[string]*schema.Service),
	}
	for _, opt := range opts {
		opt(r)
	}

	// lru.New only fails for a non-positive size.
	r.messageLookups, _ = lru.New[string, *schema.Message](r.cacheSize)
	r.enumLookups, _ = lru.New[string, *schema.Enum](r.cacheSize)

	r.registerWellKnownTypes()
	return r
}

// LoadSchemaFromFile parses protoFile and everything it imports, then
// registers the definitions. protoFile is looked up in ProtoDirectories
// first and then taken as a path on its own.
func (r *Registry) LoadSchemaFromFile(protoFile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := r.getAllProtoInfo(protoFile)
	if err != nil {
		return err
	}
	if err := r.buildSymbolTable(files); err != nil {
		return fmt.Errorf("failed to build symbol table: %w", err)
	}
	r.messageLookups.Purge()
	r.enumLookups.Purge()
	return nil
}

// LoadSchema recursively scans protoPath and loads every .proto file inside
// it. protoPath may also name a single file.
func (r *Registry) LoadSchema(protoPath string) error {
	info, err := r.stat(protoPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		if !strings.HasSuffix(protoPath, ".proto") {
			return fmt.Errorf("file %s is not a .proto file", protoPath)
		}
		return r.LoadSchemaFromFile(protoPath)
	}

	r.mu.Lock()
	if !containsString(r.ProtoDirectories, protoPath) {
		r.ProtoDirectories = append(r.ProtoDirectories, protoPath)
	}
	r.mu.Unlock()

	var files []string
	walk := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".proto") {
			files = append(files, p)
		}
		return nil
	}
	if r.fsys != nil {
		err = fs.WalkDir(r.fsys, protoPath, walk)
	} else {
		err = filepath.WalkDir(protoPath, walk)
	}
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(files)
	for _, f := range files {
		if err := r.LoadSchemaFromFile(f); err != nil {
			return fmt.Errorf("failed to load proto file %s: %w", f, err)
		}
	}
	return nil
}

func (r *Registry) readFile(name string) ([]byte, error) {
	if r.fsys != nil {
		return fs.ReadFile(r.fsys, name)
	}
	return os.ReadFile(name)
}

func (r *Registry) stat(name string) (fs.FileInfo, error) {
	if r.fsys != nil {
		return fs.Stat(r.fsys, name)
	}
	return os.Stat(name)
}

func (r *Registry) join(dir, name string) string {
	if r.fsys != nil {
		return path.Join(dir, name)
	}
	return filepath.Join(dir, name)
}

func (r *Registry) getFullName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// GetMessage retrieves a message definition by fully qualified name. A
// name without its package prefix is accepted when it is unambiguous
// enough to pick a match; ties resolve to the lexically smallest full name.
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	name = strings.TrimPrefix(name, ".")

	r.mu.RLock()
	defer r.mu.RUnlock()

	if msg, exists := r.messages[name]; exists {
		return msg, nil
	}
	if msg, ok := r.messageLookups.Get(name); ok {
		return msg, nil
	}

	// Try without package prefix
	var matches []string
	for fullName := range r.messages {
		if strings.HasSuffix(fullName, "."+name) {
			matches = append(matches, fullName)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("message not found: %s", name)
	}
	sort.Strings(matches)
	msg := r.messages[matches[0]]
	r.messageLookups.Add(name, msg)
	return msg, nil
}

// GetEnum retrieves an enum definition by name
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	name = strings.TrimPrefix(name, ".")

	r.mu.RLock()
	defer r.mu.RUnlock()

	if enum, exists := r.enums[name]; exists {
		return enum, nil
	}
	if enum, ok := r.enumLookups.Get(name); ok {
		return enum, nil
	}

	var matches []string
	for fullName := range r.enums {
		if strings.HasSuffix(fullName, "."+name) {
			matches = append(matches, fullName)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("enum not found: %s", name)
	}
	sort.Strings(matches)
	enum := r.enums[matches[0]]
	r.enumLookups.Add(name, enum)
	return enum, nil
}

// GetService retrieves a service definition by name
func (r *Registry) GetService(name string) (*schema.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if service, exists := r.services[name]; exists {
		return service, nil
	}

	// Try without package prefix
	for fullName, service := range r.services {
		if strings.HasSuffix(fullName, "."+name) {
			return service, nil
		}
	}

	return nil, fmt.Errorf("service not found: %s", name)
}

// ListMessages returns all registered message names, sorted.
func (r *Registry) ListMessages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.messages)
}

// ListEnums returns all registered enum names, sorted.
func (r *Registry) ListEnums() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.enums)
}

// ListServices returns all registered service names, sorted.
func (r *Registry) ListServices() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.services)
}

// Files returns the loaded .proto files ordered by path.
func (r *Registry) Files() []*schema.ProtoFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*schema.ProtoFile, 0, len(r.files))
	for _, p := range sortedKeys(r.files) {
		out = append(out, r.files[p])
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
