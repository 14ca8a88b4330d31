package run

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(a *app) *cobra.Command {
	var typeName, from, output string

	cmd := &cobra.Command{
		Use:   "encode --type TYPE [FILE]",
		Short: "Encode a JSON or YAML document as a protobuf payload",
		Long: `encode reads a document from FILE or standard input and writes the
protobuf encoding of TYPE. Keys may be proto field names or their
lowerCamelCase JSON names, and enums may be given by name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			raw, err := readInput(cmd, name)
			if err != nil {
				return err
			}
			obj, err := readObject(raw, from)
			if err != nil {
				return err
			}
			messageType := a.messageType(typeName)
			data, err := a.codec.Marshal(obj, messageType)
			if err != nil {
				return err
			}
			a.logger.Debug("encoded payload",
				zap.String("message", messageType),
				zap.Int("bytes", len(data)))
			return writePayload(cmd.OutOrStdout(), output, data)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&typeName, "type", "t", "", "message type, e.g. VolumeSpec")
	fs.StringVarP(&from, "from", "f", formatJSON, "document format: json or yaml")
	fs.StringVarP(&output, "output", "o", formatHex, "output encoding: hex, base64 or raw")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
