/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/genpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/fileops"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_cli"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_err"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_io"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/vault"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RootCmd is the base command for genpass. The tool is single-purpose, so
// generation lives on the root command itself.
var RootCmd = &cobra.Command{
	Use:   "genpass",
	Short: "Generate a random password from a configurable character pool",
	Long: `genpass generates a random password using the platform's
cryptographically secure random source.

Letters (a-z, A-Z) are always part of the pool; digits and symbols are
added with --numbers and --symbols. The password is printed to stdout as a
single line, so it composes cleanly with pipes. All diagnostics go to stderr.

Examples:
  genpass                          # 12 letters
  genpass -l 24 -n -s              # 24 chars from the full pool
  genpass -n --save vault.txt      # also append to vault.txt
  genpass -s --hash                # print a bcrypt hash on a second line
  genpass --vault-path app/db      # store in Vault KV-v2 under secret/app/db`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: genpass_cli.Wrap(func(rc *genpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return runGenerate(rc, cmd.OutOrStdout(), opts)
	}),
}

type generateOptions struct {
	Length     int
	Numbers    bool
	Symbols    bool
	Save       string
	Hash       bool
	HashCost   int
	VaultPath  string
	VaultMount string
}

// optionsFromFlags merges flag values over config-file defaults. An explicit
// flag always wins; otherwise ~/.genpass/config.yaml and GENPASS_* env
// variables fill in.
func optionsFromFlags(cmd *cobra.Command) (generateOptions, error) {
	settings, err := config.Load()
	if err != nil {
		return generateOptions{}, err
	}
	return mergeOptions(settings, cmd), nil
}

func mergeOptions(settings *config.Settings, cmd *cobra.Command) generateOptions {
	opts := generateOptions{
		Length:     settings.Length,
		Numbers:    settings.Numbers,
		Symbols:    settings.Symbols,
		Save:       settings.SaveFile,
		HashCost:   settings.HashCost,
		VaultMount: settings.VaultMount,
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		opts.Length, _ = flags.GetInt("length")
	}
	if flags.Changed("numbers") {
		opts.Numbers, _ = flags.GetBool("numbers")
	}
	if flags.Changed("symbols") {
		opts.Symbols, _ = flags.GetBool("symbols")
	}
	if flags.Changed("save") {
		opts.Save, _ = flags.GetString("save")
	}
	if flags.Changed("hash-cost") {
		opts.HashCost, _ = flags.GetInt("hash-cost")
	}
	opts.Hash, _ = flags.GetBool("hash")
	opts.VaultPath, _ = flags.GetString("vault-path")
	return opts
}

// runGenerate is the whole pipeline: validate, build pool, sample, print,
// then persist to the requested sinks. Sink failures happen after the
// password has already been written to out.
func runGenerate(rc *genpass_io.RuntimeContext, out io.Writer, opts generateOptions) error {
	log := otelzap.Ctx(rc.Ctx)

	if opts.Length < 1 {
		return genpass_err.NewValidationError(
			fmt.Sprintf("invalid length %d: must be >= 1", opts.Length),
			"pass a positive value to --length")
	}
	if opts.Hash && (opts.HashCost < bcrypt.MinCost || opts.HashCost > bcrypt.MaxCost) {
		return genpass_err.NewValidationError(
			fmt.Sprintf("invalid hash cost %d: must be between %d and %d", opts.HashCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	pool := crypto.BuildPool(opts.Numbers, opts.Symbols)
	password, err := crypto.GeneratePassword(opts.Length, pool)
	if err != nil {
		return genpass_err.NewInternalError("password generation failed", err)
	}

	log.Info("Password generated",
		zap.Int("length", opts.Length),
		zap.Bool("numbers", opts.Numbers),
		zap.Bool("symbols", opts.Symbols),
		zap.Int("pool_size", len(pool)),
		zap.String("password", crypto.Redact(password)))

	fmt.Fprintln(out, password)

	if opts.Hash {
		hash, err := crypto.HashPasswordWithCost(password, opts.HashCost)
		if err != nil {
			return genpass_err.NewInternalError("bcrypt hash failed", err)
		}
		fmt.Fprintln(out, hash)
	}

	if opts.Save != "" {
		if err := fileops.AppendLine(opts.Save, password); err != nil {
			log.Error("Failed to save password", zap.String("path", opts.Save), zap.Error(err))
			return genpass_err.NewStorageError(
				fmt.Sprintf("failed to save password to %s", opts.Save), err,
				"check that the path exists and is writable")
		}
		log.Info("Password appended to file", zap.String("path", opts.Save))
	}

	if opts.VaultPath != "" {
		client, err := vault.NewClient(rc)
		if err != nil {
			return genpass_err.NewStorageError("vault unavailable", err,
				"set VAULT_ADDR and VAULT_TOKEN, or drop --vault-path")
		}
		if err := vault.StorePassword(rc, client, opts.VaultMount, opts.VaultPath, password); err != nil {
			return genpass_err.NewStorageError(
				fmt.Sprintf("failed to store password in vault at %s", opts.VaultPath), err)
		}
	}

	return nil
}

// registerGenerateFlags attaches the generation flags. Split out from init()
// so tests can drive the merge logic on a scratch command.
func registerGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("length", "l", config.DefaultLength, "Length of the password")
	cmd.Flags().BoolP("numbers", "n", false, "Include numbers (0-9)")
	cmd.Flags().BoolP("symbols", "s", false, "Include symbols (punctuation)")
	cmd.Flags().String("save", "", "Append generated password to FILE")
	cmd.Flags().Bool("hash", false, "Also print a bcrypt hash of the password")
	cmd.Flags().Int("hash-cost", config.DefaultHashCost, "bcrypt cost used with --hash")
	cmd.Flags().String("vault-path", "", "Store the password in Vault KV-v2 at this path")
}

func init() {
	registerGenerateFlags(RootCmd)
}

// Execute runs the root command and exits with the classified code:
// 0 success, 1 storage failure, 2 invalid input, 3 internal error.
func Execute() {
	err := RootCmd.Execute()

	// Sync on a terminal stderr fails on some platforms; nothing to do about it.
	_ = logger.Sync()
	if shutdownErr := telemetry.Shutdown(context.Background()); shutdownErr != nil {
		fmt.Fprintln(os.Stderr, "telemetry flush failed:", shutdownErr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(genpass_err.GetExitCode(err))
	}
}
