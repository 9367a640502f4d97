package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/catalog/internal/config"
	"github.com/roach88/catalog/internal/store"
)

// Version is reported by --version.
const Version = "0.1.0"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database   string
	Format     string // "json" | "text"
	Verbose    bool
	ConfigPath string

	// Logger is built by the root command before any subcommand runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the catalog CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   "Inventory catalog of products and shops",
		Long:    "Record products, each belonging to a shop, in a local SQLite file and list them.",
		Version: Version,
		// Errors are reported by the commands themselves or by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsCatalog(cmd) {
				return nil
			}
			return prepare(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", config.DefaultDatabase, "the database file name")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (default $"+config.EnvVar+")")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDisplayCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewShopsCommand(opts))

	return cmd
}

// prepare applies the config file to flags the user did not set, validates
// them, sets up logging and makes sure the catalog file is initialized.
func prepare(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(config.Resolve(opts.ConfigPath))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		opts.Database = cfg.Database
	}
	if !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if !flags.Changed("verbose") {
		opts.Verbose = cfg.Verbose
	}

	// Validate format flag
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose).With("run_id", uuid.Must(uuid.NewV7()).String())

	opts.Logger.Debug("initializing catalog", "path", opts.Database)
	if err := store.Initialize(commandContext(cmd), opts.Database); err != nil {
		opts.Logger.Error("initialize failed", "path", opts.Database, "error", err)
		return reportError(newFormatter(opts, cmd), "failed to initialize catalog", err)
	}

	return nil
}

// needsCatalog reports whether cmd works on the catalog file. Cobra's help
// and shell completion commands do not, and must not create one.
func needsCatalog(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// newLogger returns a text logger on w; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// logger returns the configured logger, or one that discards everything
// when a subcommand runs without the root command.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// commandContext returns the command's context, or Background if none was set.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
