// =============================================================================
// repnum - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Unlike tools with a
// pipeline of subcommands, repnum does its work directly on the root command:
// the single positional argument is the numeral to convert.
//
// COBRA CLI STRUCTURE:
//   rootCmd (repnum <numeral>)
//   └── versionCmd (repnum version)
//
// COMMAND USAGE:
//   repnum [flags] <numeral>
//
// FLAGS:
//   -b, --base     : Force a base in [2, 36] (default: auto-detect from
//                    the numeral prefix: 0x -> 16, leading 0 -> 8, else 10)
//   --config       : Path to a configuration file (default: repnum.yaml if
//                    present)
//   -v, --verbose  : Print per-step diagnostics to stderr
//
// EXIT CODES:
//   0 on success; 1 on any usage error, invalid numeral, overflow,
//   unsupported base, or configuration error.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/amrayman/repnum/internal/config"
	"github.com/amrayman/repnum/internal/converter"
	"github.com/amrayman/repnum/internal/numparse"
	"github.com/amrayman/repnum/internal/validation"
	"github.com/amrayman/repnum/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the configuration file, set via --config.
var cfgFile string

// verbose enables per-step diagnostics on stderr.
var verbose bool

// forcedBase holds the base requested via --base. Only honored when the flag
// was actually set, so 0 stays distinguishable from "auto".
var forcedBase int

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It performs the conversion itself.
var rootCmd = &cobra.Command{
	Use:   "repnum [flags] <numeral>",
	Short: "Display a number in various base representations",
	Long: `repnum parses a numeral and prints its decimal, hexadecimal, octal, and
binary representations on a single tab-separated line.

The base is auto-detected from the numeral prefix (0x -> hexadecimal,
leading 0 -> octal, otherwise decimal) unless forced with --base.

Example Usage:
  repnum 18            # [dec] 18  =  [hex] 12  [oct] 22  [bin] 10010
  repnum 0xff          # auto-detected hexadecimal
  repnum -b 36 zz      # forced base 36`,

	// Argument count is checked in the run function so that a missing
	// numeral prints the help text before failing, matching the historical
	// behavior of the tool.
	Args: cobra.ArbitraryArgs,

	// Errors already carry a complete diagnostic; suppress cobra's usage
	// dump and duplicate error print so Execute controls the output.
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Any error becomes a
// diagnostic on stderr and exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONVERSION RUN
// =============================================================================

// runConvert wires configuration, base validation, and the converter
// together for a single invocation.
func runConvert(cmd *cobra.Command, args []string) error {
	// The numeral is required. Show the help text on the missing-argument
	// path; the process still exits 1.
	if len(args) == 0 {
		cmd.Help()
		return &validation.UsageError{Reason: "missing required <numeral> argument"}
	}
	if len(args) > 1 {
		return &validation.UsageError{
			Reason: fmt.Sprintf("expected exactly one numeral, got %d arguments", len(args)),
		}
	}

	// Load the configuration (explicit flag, repnum.yaml, or defaults).
	path, _ := utils.ResolveConfigPath(cfgFile)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Resolve the base: --base wins, then the configured default, then
	// prefix auto-detection. Explicit bases are validated before any
	// numeral is parsed with them.
	base := numparse.BaseAuto
	switch {
	case cmd.Flags().Changed("base"):
		base, err = validation.ValidateBase(forcedBase)
	case cfg.DefaultBase != 0:
		base, err = validation.ValidateBase(cfg.DefaultBase)
	}
	if err != nil {
		return err
	}

	opts := []converter.Option{}
	if verbose {
		opts = append(opts, converter.WithDiagnostics(cmd.ErrOrStderr()))
	}
	conv := converter.New(cfg, opts...)

	reps, err := conv.Convert(args[0], base)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), conv.RenderLine(reps))
	return nil
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the configuration file (default is repnum.yaml if present)",
	)

	// --verbose flag: Enables per-step diagnostics on stderr.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose diagnostics on stderr",
	)

	// --base flag: Forces a base instead of auto-detecting it.
	rootCmd.Flags().IntVarP(
		&forcedBase,
		"base",
		"b",
		0,
		"Force a base. Possible values are 2 through 36",
	)
}
