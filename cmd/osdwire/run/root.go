package run

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anirudhraja/osdwire"
	"github.com/anirudhraja/osdwire/api"
	"github.com/anirudhraja/osdwire/internal/log"
	"github.com/anirudhraja/osdwire/wire"
)

// Version is set at build time.
var Version = "dev"

const envPrefix = "OSDWIRE"

var decodeHook = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToSliceHookFunc(","),
))

// config is assembled from flags, OSDWIRE_* variables and an optional
// config file, in that order of precedence. Keys match the library's
// OptionsFromEnv variables.
type config struct {
	Proto           []string   `mapstructure:"proto"`
	StrictWire      bool       `mapstructure:"strict-wire"`
	StrictEnums     bool       `mapstructure:"strict-enums"`
	PreserveUnknown bool       `mapstructure:"preserve-unknown"`
	DisablePacking  bool       `mapstructure:"disable-packing"`
	MaxDepth        int        `mapstructure:"max-depth"`
	MaxMessageSize  int        `mapstructure:"max-message-size"`
	Log             log.Config `mapstructure:"log"`
}

func (c config) wireOptions() wire.Options {
	return wire.Options{
		StrictWireType:  c.StrictWire,
		StrictEnums:     c.StrictEnums,
		PreserveUnknown: c.PreserveUnknown,
		DisablePacking:  c.DisablePacking,
		MaxDepth:        c.MaxDepth,
		MaxMessageSize:  c.MaxMessageSize,
	}
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	v        *viper.Viper
	cfg      config
	logger   *zap.Logger
	closeLog func() error
	codec    *osdwire.Codec
	custom   bool
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "osdwire",
		Version: Version,
		Short:   "Encode and decode openstorage API payloads",
		Long: `osdwire converts openstorage API messages between the protobuf wire
format and JSON or YAML without generated code.

The built-in openstorage.api schema is used unless --proto names other
.proto files or directories. Short type names such as VolumeSpec are
qualified with the openstorage.api package.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.setup(cmd, cfgFile)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	fs.StringSlice("proto", nil, ".proto files or directories to load instead of the built-in schema")
	fs.Bool("strict-wire", false, "fail on fields whose wire type does not match the schema")
	fs.Bool("strict-enums", false, "fail on undeclared enum numbers")
	fs.Bool("preserve-unknown", false, "keep unknown fields and write them back out")
	fs.Bool("disable-packing", false, "write repeated scalars one tag per element")
	fs.Int("max-depth", wire.DefaultMaxDepth, "maximum message nesting")
	fs.Int("max-message-size", wire.DefaultMaxMessageSize, "maximum payload size in bytes")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-file", "", "also write logs to this file, rotated")

	keys := map[string]string{"log-level": "log.level", "log-file": "log.file"}
	for _, name := range []string{"proto", "strict-wire", "strict-enums", "preserve-unknown",
		"disable-packing", "max-depth", "max-message-size", "log-level", "log-file"} {
		key := name
		if k, ok := keys[name]; ok {
			key = k
		}
		_ = a.v.BindPFlag(key, fs.Lookup(name))
	}

	defaults := log.DefaultConfig()
	a.v.SetDefault("log.max-size", defaults.MaxSize)
	a.v.SetDefault("log.max-backups", defaults.MaxBackups)
	a.v.SetDefault("log.max-age", defaults.MaxAge)
	a.v.SetDefault("log.compress", defaults.Compress)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newSchemaCmd(a),
		newSampleCmd(a),
	)
	return cmd, a
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	cmd, a := newRootCmd()
	if err := a.execute(cmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs cmd and then closes the log, also when cmd failed. Cobra
// skips post-run hooks on error.
func (a *app) execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if a.closeLog == nil {
		return err
	}
	if err != nil {
		a.logger.Debug("command failed", zap.Error(err))
	}
	closeErr := a.closeLog()
	a.logger, a.closeLog = zap.NewNop(), nil
	if err == nil {
		err = closeErr
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg, decodeHook); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	a.cfg.Log.Output = cmd.ErrOrStderr()
	logger, closer, err := log.New(a.cfg.Log)
	if err != nil {
		return err
	}
	a.logger, a.closeLog = logger, closer

	opts := []osdwire.Option{
		osdwire.WithWireOptions(a.cfg.wireOptions()),
		osdwire.WithLogger(logger),
	}
	if len(a.cfg.Proto) == 0 {
		a.codec = osdwire.NewCodecFromRegistry(api.Registry(), opts...)
		return nil
	}

	a.codec = osdwire.NewCodec(nil, opts...)
	a.custom = true
	for _, p := range a.cfg.Proto {
		if err := a.codec.LoadSchema(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	logger.Debug("loaded schemas",
		zap.Strings("proto", a.cfg.Proto),
		zap.Int("messages", len(a.codec.ListMessages())))
	return nil
}

// messageType qualifies short names against the built-in schema.
func (a *app) messageType(name string) string {
	if a.custom {
		return strings.TrimPrefix(name, ".")
	}
	return api.FullName(name)
}
