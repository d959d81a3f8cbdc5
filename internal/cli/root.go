package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/normhash/internal/files/filesystem"
	"github.com/vvka-141/normhash/internal/logging"
	"github.com/vvka-141/normhash/internal/services"
	"github.com/vvka-141/normhash/pkg/normhash"
)

var rootCmd = newRootCmd()

// newRootCmd builds the root command and binds its flags to hashFlags.
// Defining the flags resets hashFlags to their defaults.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normhash [OPTIONS] <FILE_IN> [FILE_OUT]",
		Short: "Create cross-platform hashes of text files",
		Long: `normhash hashes a text file with SHA-256 after rewriting every line ending,
so a file saved with Windows line endings (CRLF) hashes the same as its
UNIX twin (LF).

Each line is read without its terminator, optionally stripped of all
whitespace, and joined again with the --eol sequence. The digest is printed
as lowercase hex on stdout.

Arguments:
  FILE_IN     File to be hashed
  FILE_OUT    Optional file path to write the normalized input into

Configuration (lowest to highest priority):
  .normhash.yaml, .normhash.yml or .normhash.toml in the working directory
  (or the file given with --config), keys: eol, no_eof, ignore_whitespaces
  NORMHASH_EOL, NORMHASH_NO_EOF, NORMHASH_IGNORE_WHITESPACES (also from .env)
  command line flags

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration file or environment value
  20 - Input file missing or unreadable
  21 - Output file could not be written`,
		Example: `  # Hash with defaults (LF line endings, trailing LF)
  normhash notes.txt

  # Hash as CRLF without a final line ending and keep the normalized copy
  normhash --eol $'\r\n' --no-eof notes.txt notes.normalized.txt

  # Hash only the visible characters
  normhash --eol '' --ignore-whitespaces --no-eof notes.txt`,
		Args:              RequireInputFile,
		RunE:              runHash,
		SilenceUsage:      true,
		SilenceErrors:     true,
		ValidArgsFunction: completeFiles,
	}

	f := cmd.Flags()
	f.StringVar(&hashFlags.eol, "eol", normhash.DefaultEOL, "End-of-line sequence appended after each line (taken literally)")
	f.BoolVar(&hashFlags.noEOF, "no-eof", false, "Do not append the end-of-line sequence after the last line")
	f.BoolVar(&hashFlags.ignoreWhitespaces, "ignore-whitespaces", false, "Remove all whitespace from lines before hashing")
	f.StringVar(&hashFlags.configPath, "config", "", "Config file to use instead of .normhash.{yaml,yml,toml}")
	f.BoolVarP(&hashFlags.verbose, "verbose", "v", false, "Enable verbose output on stderr")
	f.BoolVarP(&hashFlags.version, "version", "V", false, "Print version")

	_ = cmd.MarkFlagFilename("config", "yaml", "yml", "toml")
	return cmd
}

type hashFlagValues struct {
	eol               string
	noEOF             bool
	ignoreWhitespaces bool
	configPath        string
	verbose           bool
	version           bool
}

var hashFlags hashFlagValues

// Execute runs the root command
func Execute() error {
	return execute(rootCmd)
}

// execute runs cmd and reports a failure on its stderr with the error prefix.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), false).Error("%v", err)
	}
	return err
}

func runHash(cmd *cobra.Command, args []string) error {
	if hashFlags.version {
		printVersionInfo(cmd.OutOrStdout())
		return nil
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), hashFlags.verbose)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := resolveConfig(cmd, wd, logger)
	if err != nil {
		return err
	}

	input := args[0]
	output := ""
	if len(args) > 1 {
		output = args[1]
	}

	hasher := services.NewFileHasher(filesystem.NewOSFileSystem(), logger)
	res, err := hasher.HashFile(input, output, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Digest)

	if logger.IsVerbose() {
		fmt.Fprintln(cmd.ErrOrStderr(), renderSummary(input, cfg, res))
	}
	return nil
}
