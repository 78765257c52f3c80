// Package cli implements the fraction command-line calculator.
package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/govalues/fraction"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// loggerFunc builds the logger for a single command run.
type loggerFunc func(verbose bool) (*zap.SugaredLogger, error)

// app holds the flag values, the resolved configuration and the logger.
type app struct {
	configPath string
	scale      int
	mode       fraction.RoundingMode
	json       bool
	verbose    bool

	cfg       Config
	log       *zap.SugaredLogger
	newLogger loggerFunc
}

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newLogger)
}

func newRootCommand(newLogger loggerFunc) *cobra.Command {
	a := &app{
		cfg:       defaultConfig(),
		log:       zap.NewNop().Sugar(),
		newLogger: newLogger,
	}

	rootCmd := &cobra.Command{
		Use:   "fraction",
		Short: "Exact fraction calculator",
		Long: `Exact fraction calculator.

Operands are fractions such as 7, 3/4 or 1 3/4, or decimals such as 1.75.
Use "--" before negative operands so they are not read as flags.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	defaults := defaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file (default $"+envConfig+")")
	flags.IntVar(&a.scale, "scale", defaults.Scale, "number of digits after the decimal point")
	flags.Var(newModeValue(defaults.Mode, &a.mode), "mode", "rounding mode ("+modeCodes()+")")
	flags.BoolVar(&a.json, "json", defaults.JSON, "print results as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")

	rootCmd.AddCommand(a.parseCommand())
	rootCmd.AddCommand(a.evalCommand())
	rootCmd.AddCommand(a.cmpCommand())
	rootCmd.AddCommand(a.fixedCommand())

	return rootCmd
}

// newLogger returns a production logger at warn level, or a development
// logger at debug level if verbose is set.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// setup resolves the configuration with precedence:
// defaults → YAML → env vars → explicitly set flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	log, err := a.newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = log

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = a.mergeFlags(cfg, cmd.Flags())
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("validate flags: %w", err)
	}

	a.log.Debugw("configuration resolved",
		"scale", a.cfg.Scale,
		"mode", a.cfg.Mode.String(),
		"json", a.cfg.JSON,
	)
	return nil
}

// mergeFlags overrides the configuration with the flags set on the command line.
func (a *app) mergeFlags(cfg Config, flags *pflag.FlagSet) Config {
	if flags.Changed("scale") {
		cfg.Scale = a.scale
	}
	if flags.Changed("mode") {
		cfg.Mode = a.mode
	}
	if flags.Changed("json") {
		cfg.JSON = a.json
	}
	return cfg
}

// operand converts a command-line argument to a fraction.
// Fractions and mixed numbers are tried first, then decimals.
func (a *app) operand(s string) (fraction.Fraction, error) {
	f, err := fraction.Parse(s)
	if err == nil {
		return f, nil
	}
	f, decErr := fraction.ParseDecimal(s)
	if decErr != nil {
		return fraction.Fraction{}, err
	}
	a.log.Debugw("operand parsed as decimal", "input", s, "fraction", f.String())
	return f, nil
}

// print writes v as JSON or text, depending on the configuration.
func (a *app) print(w io.Writer, v any, text string) error {
	if a.cfg.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
