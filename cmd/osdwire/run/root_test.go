package run

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/osdwire/wire"
)

// volumeSpecHex is size=1GiB, format=FS_TYPE_EXT4, ha_level=3.
const volumeSpecHex = "10808080800418022803"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := a.execute(cmd)
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestEncode_JSONAndYAML(t *testing.T) {
	out, err := execute(t, `{"size": 1073741824, "format": "FS_TYPE_EXT4", "haLevel": 3}`,
		"encode", "--type", "VolumeSpec")
	require.NoError(t, err)
	assert.Equal(t, volumeSpecHex+"\n", out)

	out, err = execute(t, "size: 1073741824\nformat: FS_TYPE_EXT4\nha_level: 3\n",
		"encode", "-t", "openstorage.api.VolumeSpec", "--from", "yaml")
	require.NoError(t, err)
	assert.Equal(t, volumeSpecHex+"\n", out)

	out, err = execute(t, `{"size": 1073741824, "format": "FS_TYPE_EXT4", "ha_level": 3}`,
		"encode", "-t", "VolumeSpec", "-o", "base64")
	require.NoError(t, err)
	assert.Equal(t, "EICAgIAEGAIoAw==\n", out)
}

func TestDecode_Stdin(t *testing.T) {
	out, err := execute(t, volumeSpecHex, "decode", "--type", "VolumeSpec", "--input", "hex")
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":1073741824,"format":"FS_TYPE_EXT4","ha_level":3}`, out)
}

func TestDecode_FilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.bin", []byte{0x10, 0x01})
	second := writeFile(t, dir, "second.bin", []byte{0x10, 0x02, 0x28, 0x03})

	out, err := execute(t, "", "decode", "-t", "VolumeSpec", "-o", "yaml", first, second)
	require.NoError(t, err)

	docs := strings.Split(out, "---\n")
	require.Len(t, docs, 2)
	assert.Equal(t, "size: 1\n", docs[0])
	assert.Equal(t, "ha_level: 3\nsize: 2\n", docs[1])
}

func TestDecode_ErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.bin", []byte{0x10, 0x01})
	bad := writeFile(t, dir, "bad.bin", []byte{0x7a, 0x05, 's'})

	_, err := execute(t, "", "decode", "-t", "VolumeSpec", good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrTruncated)
	assert.Contains(t, err.Error(), "bad.bin")
}

func TestDecode_UnknownType(t *testing.T) {
	_, err := execute(t, "", "decode", "-t", "NoSuchMessage")
	assert.ErrorContains(t, err, "message type not found")

	_, err = execute(t, "", "decode")
	assert.ErrorContains(t, err, `required flag(s) "type" not set`)
}

func TestConfig_StrictEnums(t *testing.T) {
	// format = 99 is not a declared FSType
	const payload = "1863"

	out, err := execute(t, payload, "decode", "-t", "VolumeSpec", "-i", "hex")
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":99}`, out)

	_, err = execute(t, payload, "--strict-enums", "decode", "-t", "VolumeSpec", "-i", "hex")
	assert.ErrorIs(t, err, wire.ErrInvalidEnumValue)

	cfgFile := writeFile(t, t.TempDir(), "osdwire.yaml", []byte("strict-enums: true\n"))
	_, err = execute(t, payload, "--config", cfgFile, "decode", "-t", "VolumeSpec", "-i", "hex")
	assert.ErrorIs(t, err, wire.ErrInvalidEnumValue)

	t.Setenv("OSDWIRE_STRICT_ENUMS", "true")
	_, err = execute(t, payload, "decode", "-t", "VolumeSpec", "-i", "hex")
	assert.ErrorIs(t, err, wire.ErrInvalidEnumValue)
}

func TestConfig_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "osdwire.log")
	_, err := execute(t, volumeSpecHex, "--log-level", "debug", "--log-file", logFile,
		"decode", "-t", "VolumeSpec", "-i", "hex")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "decoded payload")
	assert.Contains(t, string(data), "openstorage.api.VolumeSpec")
}

func TestConfig_LogFileClosedOnFailure(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "osdwire.log")
	cmd, a := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("zz"))
	cmd.SetArgs([]string{"--log-level", "debug", "--log-file", logFile, "decode", "-t", "VolumeSpec", "-i", "hex"})

	require.Error(t, a.execute(cmd))
	assert.Nil(t, a.closeLog)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command failed")
	assert.Contains(t, string(data), "invalid byte")
}

func TestCustomProto(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "node.proto", []byte(`syntax = "proto3";
package test.node;

message Node {
  string name = 1;
  int32 weight = 2;
}
`))

	out, err := execute(t, `{"name": "n1", "weight": 7}`, "--proto", dir, "encode", "-t", "test.node.Node")
	require.NoError(t, err)
	assert.Equal(t, "0a026e311007\n", out)

	out, err = execute(t, "0a026e311007", "--proto", dir, "decode", "-t", "test.node.Node", "-i", "hex")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"n1","weight":7}`, out)

	_, err = execute(t, "", "--proto", dir, "sample", "volume")
	assert.ErrorContains(t, err, "built-in schema")
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "openstorage.api.VolumeSpec\n")
	assert.NotContains(t, out, "google.protobuf.Timestamp")

	out, err = execute(t, "", "schema", "VolumeSpec")
	require.NoError(t, err)
	assert.Contains(t, out, "message openstorage.api.VolumeSpec")
	assert.Regexp(t, `2\s+size\s+uint64`, out)
	assert.Regexp(t, `3\s+format\s+openstorage\.api\.FSType`, out)

	out, err = execute(t, "", "schema", "VolumeSpecUpdate")
	require.NoError(t, err)
	assert.Regexp(t, `scale\s+uint32\s+oneof scale_opt`, out)

	out, err = execute(t, "", "schema", "FSType")
	require.NoError(t, err)
	assert.Contains(t, out, "enum openstorage.api.FSType")
	assert.Regexp(t, `2\s+FS_TYPE_EXT4`, out)

	out, err = execute(t, "", "schema", "--services")
	require.NoError(t, err)
	assert.Contains(t, out, "openstorage.api.OpenStorageVolume\n")

	out, err = execute(t, "", "schema", "OpenStorageVolume")
	require.NoError(t, err)
	assert.Contains(t, out, "rpc Inspect(openstorage.api.SdkVolumeInspectRequest) returns (openstorage.api.SdkVolumeInspectResponse)")

	_, err = execute(t, "", "schema", "Nope")
	assert.ErrorContains(t, err, "no message, enum or service named openstorage.api.Nope")
}

func TestSample(t *testing.T) {
	out, err := execute(t, "", "sample", "volume", "-o", "json")
	require.NoError(t, err)

	var vol map[string]interface{}
	dec := json.NewDecoder(strings.NewReader(out))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&vol))

	_, err = uuid.Parse(vol["id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "VOLUME_STATUS_UP", vol["status"])
	spec := vol["spec"].(map[string]interface{})
	assert.Equal(t, json.Number("10737418240"), spec["size"])
	assert.Equal(t, "FS_TYPE_EXT4", spec["format"])

	hexOut, err := execute(t, "", "sample", "pool")
	require.NoError(t, err)
	decoded, err := execute(t, hexOut, "decode", "-t", "StoragePool", "-i", "hex")
	require.NoError(t, err)
	assert.Contains(t, decoded, `"Cos":"HIGH"`)
	assert.Contains(t, decoded, `"medium":"ssd"`)

	_, err = execute(t, "", "sample", "disk")
	assert.Error(t, err)
}
