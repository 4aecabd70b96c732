// Package cli provides the Cobra CLI commands for savemsg.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmeurs/savemsg/internal/config"
	"github.com/tmeurs/savemsg/internal/logging"
	"github.com/tmeurs/savemsg/internal/msg"
	"github.com/tmeurs/savemsg/internal/ui"
)

// Version information set at build time
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Global flags
var (
	kindName string
	output   string
	plain    bool
	wait     bool
	verbose  int
)

// showVersion tracks if --version was requested
var showVersion bool

// cfg is resolved once in PersistentPreRun, before logging starts, so the
// configured log file location can feed the logging setup.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "savemsg <path>",
	Short: "Human-readable messages for failed file saves",
	Long: `savemsg - Human-readable messages for failed file saves

Renders the message an application should show when a file could not be
saved, most commonly because it is still open in another program. savemsg
only produces text: whether the save actually failed, and whether to try
again, is up to the caller.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var warnings []string
		cfg, warnings = resolveConfig()

		// Initialize logging with verbosity from command line flags
		// verbose is a count: 0 = default, 1 = -v, 2+ = -vv
		if err := logging.Init(newLoggingConfig(cfg, verbose)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logging: %v\n", err)
		}

		log := logging.Get()
		for _, w := range warnings {
			log.Warn().Msg(w)
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Close the logger to ensure all logs are flushed
		logging.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.Get()

		// Handle --version flag
		if showVersion {
			if IsJSONOutput() {
				PrintJSON(map[string]string{
					"version": Version,
					"commit":  Commit,
					"date":    Date,
				})
			} else {
				fmt.Printf("savemsg %s (commit: %s, built: %s)\n", Version, Commit, Date)
			}
			return
		}

		// An explicit --output wins over the configured default. A missing
		// path argument is an error; an empty one is a valid input.
		format := GetOutputFormat(cfg.Output)

		if len(args) == 0 {
			if format == OutputFormatJSON {
				PrintJSONError(errors.New("a file path argument is required"))
			} else {
				fmt.Fprintln(os.Stderr, "Error: a file path argument is required")
				_ = cmd.Usage()
			}
			os.Exit(2)
		}
		path := args[0]

		kind, err := msg.ParseKind(kindName)
		if err != nil {
			log.Error().Err(err).Msg("Invalid message kind")
			if format == OutputFormatJSON {
				PrintJSONError(err)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(2)
		}

		log.Info().
			Str("kind", kind.String()).
			Str("path", path).
			Str("output", string(format)).
			Msg("Rendering save-failure message")

		if format == OutputFormatJSON {
			PrintJSON(MessageOutput{
				Kind:    kind.String(),
				Path:    path,
				Message: msg.Format(kind, path),
			})
			return
		}

		if wait {
			alert := ui.NewSaveFailureAlert(kind, path)
			outcome, err := ui.RunPrompt(alert, usePlain(cfg))
			if err != nil {
				log.Error().Err(err).Msg("Prompt failed")
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			log.Info().Str("outcome", outcome.String()).Msg("Prompt finished")
			if outcome != ui.OutcomeClosed {
				os.Exit(1)
			}
			return
		}

		// The template carries its own leading and trailing newline.
		fmt.Print(msg.Format(kind, path))
	},
}

// resolveConfig reads the .env file if present, falling back to plain
// environment variables. Config problems are not fatal for a tool whose
// job is printing a message; they surface as warnings.
func resolveConfig() (*config.Config, []string) {
	cfg, warnings, err := config.LoadConfig("")
	if err != nil {
		if !errors.Is(err, config.ErrNoConfigFile) {
			warnings = append(warnings, fmt.Sprintf("ignoring config: %v", err))
		}
		cfg, err = config.LoadConfigFromEnv()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring environment config: %v", err))
			cfg = &config.Config{Output: "text"}
		}
	}
	return cfg, warnings
}

// newLoggingConfig builds the logging setup from the resolved config and
// the -v count.
func newLoggingConfig(cfg *config.Config, verbosity int) logging.Config {
	return logging.Config{
		LogFile:       cfg.LogFile,
		Verbosity:     verbosity,
		ConsoleOutput: verbosity > 0,
	}
}

// usePlain reports whether styled output is disabled, either by the
// --plain flag or by config.
func usePlain(cfg *config.Config) bool {
	return plain || cfg.NoColor
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&kindName, "kind", "locked", "Message template: locked, permission, readonly, diskfull, missingdir")
	rootCmd.Flags().StringVar(&output, "output", "", "Output format: text, json (default from SAVEMSG_OUTPUT)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Disable styled output (also set by NO_COLOR / SAVEMSG_NO_COLOR)")
	rootCmd.Flags().BoolVar(&wait, "wait", false, "Show the message interactively and wait until the user responds")
	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "Verbose logging (-v for info, -vv for debug)")

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}

// SetVersion sets the version information for the version command
func SetVersion(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}
