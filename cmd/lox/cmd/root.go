package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/pkg/core/config"
	"github.com/msto63/lox/pkg/core/logging"
)

// Exit codes, following sysexits
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitDataErr  = 65
	ExitSoftware = 70
)

// globalOptions holds the persistent flags
type globalOptions struct {
	cfgFile     string
	verbose     bool
	logLevel    string
	logFormat   string
	logFile     string
	trimStrings bool
	maxDepth    int
	noColor     bool
}

// app is the per-invocation state shared by all subcommands
type app struct {
	cfg       *config.Config
	logger    *loxlog.Logger
	engine    *lox.Engine
	styles    Styles
	sessionID string
}

// Execute runs the command line with os.Args
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		reportError(root.ErrOrStderr(), err)
	}
	logging.CloseGlobalFileWriter()
	return err
}

// NewRootCommand builds the complete command tree
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lox",
		Short: "Lox expression front end",
		Long: `lox scans, parses and evaluates Lox expressions.

Commands:
  tokens   - show the token stream of a source
  parse    - show the expression tree (sexpr, tree, json, yaml)
  eval     - evaluate an expression
  version  - show version information

Source is read from --expr, a file argument, or standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: $LOX_CONFIG or ./lox.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text, json, console, logfmt")
	flags.StringVar(&opts.logFile, "log-file", "", "also append log entries to this file")
	flags.BoolVar(&opts.trimStrings, "trim-strings", false, "strip surrounding whitespace from string literals")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "maximum expression nesting")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTokensCommand(a),
		newParseCommand(a),
		newEvalCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and creates the
// logger and engine
func (a *app) setup(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if opts.logLevel != "" {
		cfg.General.LogLevel = opts.logLevel
	}
	if opts.verbose {
		cfg.General.LogLevel = "debug"
	}
	if opts.logFormat != "" {
		cfg.General.LogFormat = opts.logFormat
	}
	if opts.logFile != "" {
		cfg.General.LogFile = opts.logFile
	}
	if flags.Changed("trim-strings") {
		cfg.Lox.TrimStrings = opts.trimStrings
	}
	if flags.Changed("max-depth") {
		cfg.Lox.MaxDepth = opts.maxDepth
	}
	if opts.noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.sessionID = uuid.New().String()
	a.styles = NewStyles(cfg.Output.Color)

	logger, err := logging.NewLogger(logging.LoggerConfig{
		Name:      cfg.General.Name,
		Level:     cfg.General.LogLevel,
		Format:    cfg.General.LogFormat,
		Output:    cmd.ErrOrStderr(),
		LogFile:   cfg.General.LogFile,
		SessionID: a.sessionID,
	})
	if err != nil {
		logger.WarnWithErr("log file disabled", err)
	}
	a.logger = logger.WithField("command", cmd.Name())

	engineOpts := cfg.EngineOptions()
	engineOpts.Logger = a.logger
	engineOpts.Handler = func(d loxdiag.Diagnostic) {
		a.logger.Debug("diagnostic reported", loxlog.Fields{
			"kind": d.Kind.String(),
			"line": d.Line,
		})
	}
	a.engine = lox.NewEngine(engineOpts)

	a.logger.Debug("session started", loxlog.Fields{
		"config":   cfg.Path(),
		"output":   cfg.Output.Format,
		"maxDepth": cfg.Lox.MaxDepth,
	})
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// errReported marks an error whose diagnostics were already printed
type errReported struct {
	err error
}

func (e *errReported) Error() string { return e.err.Error() }
func (e *errReported) Unwrap() error { return e.err }

func reportError(w io.Writer, err error) {
	var reported *errReported
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// ExitCode maps an error to the process exit status: 65 for lexical and
// syntax errors, 70 for runtime errors and 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch loxerror.GetCode(err) {
	case loxerror.CodeLexical, loxerror.CodeSyntax:
		return ExitDataErr
	case loxerror.CodeRuntime:
		return ExitSoftware
	default:
		return ExitFailure
	}
}
