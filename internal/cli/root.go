// Package cli implements the cobra-based command line for rolldice.
//
// rolldice has a single root command: it asks how many dice to roll,
// validates the answer, rolls, and prints the results diagram. This file
// defines the root command, its flags and the error-to-exit-code mapping.
// roll.go holds the roll pipeline and output.go the result printers.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rolldice/internal/config"
	"github.com/shinji-kodama/rolldice/internal/dice"
	"github.com/shinji-kodama/rolldice/internal/model"
)

// Global state shared between the root command and Execute.
var (
	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// outputFormat is the resolved output format of the current run.
	// Execute uses it to decide how errors are printed.
	outputFormat = config.FormatText
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// sourceFactory builds the roll source for a resolved seed.
type sourceFactory func(seed int64) dice.Source

// newRoller is the production source: a math/rand roller.
func newRoller(seed int64) dice.Source {
	return dice.NewRoller(seed)
}

// rootFlags holds the flag values for the root command.
type rootFlags struct {
	jsonOutput   bool
	format       string
	seed         int64
	color        string
	standardFour bool
	configPath   string
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newRoller)
}

// newRootCommand builds the root command around the given roll source.
// Tests pass a factory returning dice.Fixed to pin the rolled faces.
func newRootCommand(source sourceFactory) *cobra.Command {
	flags := &rootFlags{}
	verbose = false
	outputFormat = config.FormatText

	rootCmd := &cobra.Command{
		Use:   "rolldice [count]",
		Short: "Roll up to six dice and draw the result",
		Long: `rolldice simulates rolling one to six six-sided dice and prints the
faces as an ASCII-art diagram.

Without a count argument it asks interactively. Any answer other than
1 through 6 ends the program with exit code 1.

Examples:
  rolldice
  rolldice 4
  rolldice 3 --seed 42 --json
  rolldice --config ~/.rolldice.yaml`,

		Args: cobra.MaximumNArgs(1),

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Run formats them itself (text, JSON or YAML).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			outputFormat = cfg.Format
			return runRoll(cmd, args, cfg, source)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format (shorthand for --format json)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	f := rootCmd.Flags()
	f.StringVar(&flags.format, "format", string(config.FormatText), "Output format: text, json, yaml")
	f.Int64Var(&flags.seed, "seed", 0, "Seed for reproducible rolls (0 seeds from the clock)")
	f.StringVar(&flags.color, "color", string(config.ColorNever), "Colour the diagram: auto, always, never")
	f.BoolVar(&flags.standardFour, "standard-four", false, "Draw face 4 with four corner pips")
	f.StringVar(&flags.configPath, "config", "", "Path to a .json, .jsonc, .yaml, .yml or .toml config file")

	return rootCmd
}

// resolveConfig layers defaults, the optional config file, ROLLDICE_*
// environment variables and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		VerboseLog("Loaded config from %s", flags.configPath)
	}

	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}

	// Only flags the user actually set override file and environment values.
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = config.Format(flags.format)
	}
	if flags.jsonOutput {
		cfg.Format = config.FormatJSON
	}
	if changed("seed") {
		cfg.Seed = flags.seed
	}
	if changed("color") {
		cfg.Color = config.ColorMode(flags.color)
	}
	if changed("standard-four") {
		cfg.StandardFour = flags.standardFour
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, model.WrapCLIError(model.ExitConfigError, "invalid flag value", err)
	}
	return cfg, nil
}

// Execute runs the root command and exits the process with the mapped
// exit code when the command fails.
func Execute(rootCmd *cobra.Command) {
	if code := Run(rootCmd); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// Run executes the root command, prints any error and returns the exit
// code. It is separated from Execute so the mapping can be tested without
// terminating the test binary.
//
// An invalid die count in text mode prints only the fixed corrective
// message, on stdout. Every other error goes to stderr.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if model.IsInvalidInput(cliErr) && outputFormat == config.FormatText {
			fmt.Fprintln(rootCmd.OutOrStdout(), cliErr.Message)
		} else {
			printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		}
		return cliErr.Code
	}

	// Generic error (e.g. an unknown flag): exit with code 1.
	printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	return model.ExitInvalidInput
}

// printError outputs an error message in the format of the current run.
func printError(w io.Writer, message string, underlying error) {
	switch outputFormat {
	case config.FormatJSON, config.FormatYAML:
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		wrapped := map[string]interface{}{"error": errObj}

		if outputFormat == config.FormatYAML {
			data, _ := yaml.Marshal(wrapped)
			fmt.Fprint(w, string(data))
			return
		}
		data, _ := json.MarshalIndent(wrapped, "", "  ")
		fmt.Fprintln(w, string(data))
	default:
		if underlying != nil {
			fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(w, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
