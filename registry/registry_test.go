package registry

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"

	"github.com/anirudhraja/osdwire/schema"
)

const commonProto = `syntax = "proto3";
package test.common;

enum Level {
  LEVEL_NONE = 0;
  LEVEL_HIGH = 1;
  LEVEL_MAX = 7;
}

message Labels {
  map<string, string> values = 1;
}
`

const volumeProto = `syntax = "proto3";
package test.api;

import "common.proto";
import "google/protobuf/timestamp.proto";

message Volume {
  string volume_id = 1;
  test.common.Level level = 2;
  Spec spec = 3;
  google.protobuf.Timestamp ctime = 4;
  oneof size_opt {
    uint64 size = 5;
  }
  map<string, test.common.Labels> groups = 6;
  repeated State history = 7;

  message Spec {
    uint64 size = 1;
    repeated int32 nodes = 2 [packed = false];
    optional bool sticky = 3;
    repeated uint32 ports = 4;
    string display = 5 [json_name = "shownAs"];
  }
}

enum State {
  STATE_NONE = 0;
  STATE_UP = 1;
}

service VolumeService {
  rpc Create(Volume) returns (Volume);
  rpc Watch(Volume) returns (stream Volume);
}
`

func writeProtos(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(nil)
	require.NotNil(t, registry)

	ts, err := registry.GetMessage("google.protobuf.Timestamp")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeInt64, ts.FieldByNumber(1).Type.PrimitiveType)
	assert.Equal(t, schema.TypeInt32, ts.FieldByName("nanos").Type.PrimitiveType)

	for wrapper, valueType := range wrapperValueTypes {
		msg, err := registry.GetMessage(string(wrapper))
		require.NoError(t, err, wrapper)
		assert.True(t, msg.IsWrapper)
		assert.Equal(t, valueType, msg.FieldByName("value").Type.PrimitiveType)
	}

	empty, err := registry.GetMessage("google.protobuf.Empty")
	require.NoError(t, err)
	assert.Empty(t, empty.Fields)

	mask, err := registry.GetMessage("FieldMask")
	require.NoError(t, err)
	assert.True(t, mask.FieldByName("paths").IsList())
}

func TestLoadSchema_NonExistentPath(t *testing.T) {
	registry := NewRegistry(nil)

	err := registry.LoadSchema("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")

	err = registry.LoadSchemaFromFile("missing.proto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")
}

func TestLoadSchema_NonProtoFile(t *testing.T) {
	dir := writeProtos(t, map[string]string{"notes.txt": "hello"})

	registry := NewRegistry([]string{dir})
	err := registry.LoadSchema(filepath.Join(dir, "notes.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a .proto file")

	err = registry.LoadSchemaFromFile("notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a .proto file")
}

func TestLoadSchemaFromFile_ResolvesTypes(t *testing.T) {
	dir := writeProtos(t, map[string]string{
		"common.proto": commonProto,
		"volume.proto": volumeProto,
	})

	registry := NewRegistry([]string{dir}, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, registry.LoadSchemaFromFile("volume.proto"))

	volume, err := registry.GetMessage("test.api.Volume")
	require.NoError(t, err)
	assert.Equal(t, "proto3", volume.Syntax)
	assert.Len(t, volume.Fields, 7)

	level := volume.FieldByName("level")
	require.NotNil(t, level)
	assert.Equal(t, schema.KindEnum, level.Type.Kind)
	assert.Equal(t, "test.common.Level", level.Type.EnumType)
	require.NotNil(t, level.Type.Enum)
	assert.Equal(t, int32(7), level.Type.Enum.ValueByName("LEVEL_MAX").Number)
	assert.False(t, level.HasPresence())

	spec := volume.FieldByNumber(3)
	assert.Equal(t, "test.api.Volume.Spec", spec.Type.MessageType)
	require.NotNil(t, spec.Type.Message)
	assert.True(t, spec.HasPresence())

	ctime := volume.FieldByName("ctime")
	assert.Equal(t, "google.protobuf.Timestamp", ctime.Type.MessageType)
	assert.NotNil(t, ctime.Type.Message)

	size := volume.FieldByName("size")
	assert.Equal(t, "size_opt", size.Oneof)
	assert.True(t, size.HasPresence())
	require.NotNil(t, volume.OneofByName("size_opt"))

	groups := volume.FieldByName("groups")
	assert.True(t, groups.IsMap())
	assert.Equal(t, schema.TypeString, groups.Type.MapKey.PrimitiveType)
	assert.Equal(t, "test.common.Labels", groups.Type.MapValue.MessageType)
	assert.NotNil(t, groups.Type.MapValue.Message)

	history := volume.FieldByName("history")
	assert.Equal(t, "test.api.State", history.Type.EnumType)
	assert.True(t, history.IsPacked())

	inner := spec.Type.Message
	assert.False(t, inner.FieldByName("nodes").IsPacked())
	assert.True(t, inner.FieldByName("nodes").IsPackable())
	assert.True(t, inner.FieldByName("ports").IsPacked())
	assert.True(t, inner.FieldByName("sticky").Proto3Optional)
	assert.True(t, inner.FieldByName("sticky").HasPresence())
	assert.Equal(t, "shownAs", inner.FieldByName("display").JsonName)
	assert.Equal(t, "volumeId", volume.FieldByName("volume_id").JsonName)

	service, err := registry.GetService("test.api.VolumeService")
	require.NoError(t, err)
	require.Len(t, service.Methods, 2)
	assert.Equal(t, "test.api.Volume", service.Methods[0].InputType)
	assert.True(t, service.Methods[1].ServerStreaming)

	files := registry.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "test.common", files[0].Package)
	assert.Equal(t, "test.api", files[1].Package)
	assert.Len(t, files[1].Imports, 1)

	assert.Contains(t, registry.ListMessages(), "test.api.Volume.Spec")
	assert.Contains(t, registry.ListEnums(), "test.common.Level")
	assert.Equal(t, []string{"test.api.VolumeService"}, registry.ListServices())
}

func TestGetMessage_ShortNames(t *testing.T) {
	dir := writeProtos(t, map[string]string{
		"common.proto": commonProto,
		"volume.proto": volumeProto,
	})
	registry := NewRegistry([]string{dir}, WithLookupCacheSize(2))
	require.NoError(t, registry.LoadSchemaFromFile("volume.proto"))

	byShort, err := registry.GetMessage("Volume")
	require.NoError(t, err)
	byFull, err := registry.GetMessage(".test.api.Volume")
	require.NoError(t, err)
	assert.Same(t, byFull, byShort)

	nested, err := registry.GetMessage("Volume.Spec")
	require.NoError(t, err)
	assert.Equal(t, "test.api.Volume.Spec", nested.FullName)

	enum, err := registry.GetEnum("Level")
	require.NoError(t, err)
	assert.Equal(t, "test.common.Level", enum.FullName)

	_, err = registry.GetMessage("Nope")
	assert.ErrorContains(t, err, "message not found")
	_, err = registry.GetEnum("Nope")
	assert.ErrorContains(t, err, "enum not found")
	_, err = registry.GetService("Nope")
	assert.ErrorContains(t, err, "service not found")
}

func TestLoadSchema_Directory(t *testing.T) {
	dir := writeProtos(t, map[string]string{
		"common.proto": commonProto,
		"volume.proto": volumeProto,
	})

	registry := NewRegistry(nil)
	require.NoError(t, registry.LoadSchema(dir))
	assert.Contains(t, registry.ProtoDirectories, dir)
	assert.Len(t, registry.Files(), 2)

	// Loading again is a no-op for files already parsed.
	require.NoError(t, registry.LoadSchema(dir))
	assert.Len(t, registry.Files(), 2)
}

func TestLoadSchema_Proto2(t *testing.T) {
	dir := writeProtos(t, map[string]string{"legacy.proto": `syntax = "proto2";
package legacy;

message Node {
  required string id = 1;
  optional int32 weight = 2 [default = 10];
  repeated int64 counters = 3;
  repeated int64 packed_counters = 4 [packed = true];
}
`})

	registry := NewRegistry([]string{dir})
	require.NoError(t, registry.LoadSchemaFromFile("legacy.proto"))

	node, err := registry.GetMessage("legacy.Node")
	require.NoError(t, err)
	assert.Equal(t, schema.LabelRequired, node.FieldByName("id").Label)

	weight := node.FieldByName("weight")
	assert.True(t, weight.Proto2)
	assert.True(t, weight.HasPresence())
	assert.Equal(t, "10", weight.DefaultValue)

	assert.False(t, node.FieldByName("counters").IsPacked())
	assert.True(t, node.FieldByName("packed_counters").IsPacked())
}

func TestLoadSchema_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "unresolved type",
			content: `syntax = "proto3";
package bad;
message A { Missing m = 1; }
`,
			want: "unable to resolve type name: Missing",
		},
		{
			name: "duplicate field number",
			content: `syntax = "proto3";
package bad;
message A {
  string x = 1;
  string y = 1;
}
`,
			want: "field number 1 used by x and y",
		},
		{
			name: "duplicate message",
			content: `syntax = "proto3";
package bad;
message A {}
message A {}
`,
			want: "duplicate definition: bad.A",
		},
		{
			name: "unknown service input",
			content: `syntax = "proto3";
package bad;
message A {}
service S { rpc Do(B) returns (A); }
`,
			want: "service S method Do input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProtos(t, map[string]string{"bad.proto": tt.content})
			registry := NewRegistry([]string{dir})
			err := registry.LoadSchemaFromFile("bad.proto")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"protos/common.proto": {Data: []byte(commonProto)},
		"protos/volume.proto": {Data: []byte(volumeProto)},
	}

	registry := NewRegistry([]string{"protos"}, WithFS(fsys))
	require.NoError(t, registry.LoadSchemaFromFile("volume.proto"))

	labels, err := registry.GetMessage("test.common.Labels")
	require.NoError(t, err)
	assert.True(t, labels.FieldByName("values").IsMap())
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	dir := writeProtos(t, map[string]string{
		"common.proto": commonProto,
		"volume.proto": volumeProto,
	})
	registry := NewRegistry([]string{dir}, WithLookupCacheSize(1))
	require.NoError(t, registry.LoadSchemaFromFile("volume.proto"))

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		name := []string{"Volume", "Spec", "Labels", "Timestamp"}[i%4]
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				if _, err := registry.GetMessage(name); err != nil {
					return err
				}
				if _, err := registry.GetEnum("State"); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestJSONName(t *testing.T) {
	tests := map[string]string{
		"volume_id":  "volumeId",
		"ha_level":   "haLevel",
		"ID":         "ID",
		"io_profile": "ioProfile",
		"a__b":       "aB",
	}
	for in, want := range tests {
		assert.Equal(t, want, jsonName(in), in)
	}
}
