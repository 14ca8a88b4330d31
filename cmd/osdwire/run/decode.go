package run

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newDecodeCmd(a *app) *cobra.Command {
	var typeName, input, output string

	cmd := &cobra.Command{
		Use:   "decode --type TYPE [FILE...]",
		Short: "Decode protobuf payloads to JSON or YAML",
		Long: `decode reads each FILE, or standard input when no file or "-" is given,
decodes it as TYPE and prints the result in argument order. Files are
decoded concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			messageType := a.messageType(typeName)
			objs := make([]map[string]interface{}, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.NumCPU())
			for i, name := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					raw, err := readInput(cmd, name)
					if err != nil {
						return err
					}
					data, err := decodePayload(raw, input)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					obj, err := a.codec.Parse(data, messageType)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					a.logger.Debug("decoded payload",
						zap.String("file", name),
						zap.String("message", messageType),
						zap.Int("bytes", len(data)))
					objs[i] = obj
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return writeObjects(cmd.OutOrStdout(), output, objs)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&typeName, "type", "t", "", "message type, e.g. VolumeSpec")
	fs.StringVarP(&input, "input", "i", formatRaw, "input encoding: raw, hex or base64")
	fs.StringVarP(&output, "output", "o", formatJSON, "output format: json or yaml")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
