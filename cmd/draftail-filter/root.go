package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/draftail"
	"github.com/iw2rmb/draftail/behavior"
	"github.com/iw2rmb/draftail/internal/config"
)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool

	log *zap.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "draftail-filter",
		Short:         "Filter rich text content to an editor configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = newLogger(a.errOut, a.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "editor configuration YAML (default $"+config.EnvConfigPath+" or built-in)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		a.filterCmd(),
		a.cssCmd(),
		a.keysCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(a.out, draftail.UserAgent())
				return err
			},
		},
	)
	return root
}

// newLogger logs to w: human-readable at debug level when verbose, JSON at
// warn level otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)
	level := zapcore.WarnLevel
	if verbose {
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(devCfg)
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)).
		With(zap.String("version", draftail.Version()))
}

func (a *app) loadConfig() (behavior.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return behavior.Config{}, fmt.Errorf("load config: %w", err)
	}
	a.log.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.Int("blockTypes", len(cfg.BlockTypes)),
		zap.Int("inlineStyles", len(cfg.InlineStyles)),
		zap.Int("entityTypes", len(cfg.EntityTypes)),
		zap.Int("maxDepth", cfg.MaxDepth()),
	)
	return cfg, nil
}
