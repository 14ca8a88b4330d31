package run

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Payload encodings accepted by --input and --output.
const (
	formatRaw    = "raw"
	formatHex    = "hex"
	formatBase64 = "base64"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// readInput reads a named file, or standard input for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

// decodePayload turns text-armored input back into wire bytes.
func decodePayload(raw []byte, format string) ([]byte, error) {
	switch format {
	case formatRaw:
		return raw, nil
	case formatHex:
		return hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
	case formatBase64:
		return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

func writePayload(w io.Writer, format string, data []byte) error {
	var err error
	switch format {
	case formatRaw:
		_, err = w.Write(data)
	case formatHex:
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
	case formatBase64:
		_, err = fmt.Fprintln(w, base64.StdEncoding.EncodeToString(data))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return err
}

// readObject parses a JSON or YAML document into a plain map. JSON numbers
// are kept as json.Number so 64-bit integers survive.
func readObject(data []byte, format string) (map[string]interface{}, error) {
	obj := map[string]interface{}{}
	switch format {
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	return obj, nil
}

// writeObjects prints one JSON document per line, or a YAML stream.
func writeObjects(w io.Writer, format string, objs []map[string]interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		for _, obj := range objs {
			if err := enc.Encode(obj); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, obj := range objs {
			if err := enc.Encode(obj); err != nil {
				return err
			}
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
