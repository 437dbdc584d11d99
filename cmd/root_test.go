/* cmd/root_test.go */

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/genpass/pkg/config"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_err"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_io"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGenerateCommand builds a scratch command carrying the generation flags,
// so merge tests never touch RootCmd's shared flag state.
func newGenerateCommand() *cobra.Command {
	c := &cobra.Command{Use: "genpass"}
	registerGenerateFlags(c)
	return c
}

func testRuntimeContext(t *testing.T) *genpass_io.RuntimeContext {
	t.Helper()
	rc := genpass_io.NewContext(context.Background(), "test")
	return rc
}

func TestRunGeneratePrintsOneLine(t *testing.T) {
	rc := testRuntimeContext(t)
	var out bytes.Buffer

	err := runGenerate(rc, &out, generateOptions{Length: 12})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 12)

	pool := crypto.BuildPool(false, false)
	for _, c := range lines[0] {
		assert.Contains(t, pool, string(c))
	}
}

func TestRunGenerateRejectsBadLength(t *testing.T) {
	rc := testRuntimeContext(t)
	var out bytes.Buffer

	for _, length := range []int{0, -1, -42} {
		err := runGenerate(rc, &out, generateOptions{Length: length})
		require.Error(t, err)
		assert.True(t, genpass_err.IsExpectedUserError(err))
		assert.Equal(t, 2, genpass_err.GetExitCode(err))
		assert.Empty(t, out.String(), "nothing may be printed before validation passes")
	}
}

func TestRunGenerateSavesToFile(t *testing.T) {
	rc := testRuntimeContext(t)
	path := filepath.Join(t.TempDir(), "passwords.txt")

	var first, second bytes.Buffer
	require.NoError(t, runGenerate(rc, &first, generateOptions{Length: 16, Numbers: true, Save: path}))
	require.NoError(t, runGenerate(rc, &second, generateOptions{Length: 16, Numbers: true, Save: path}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 2, "two runs append two lines")
	assert.Equal(t, strings.TrimRight(first.String(), "\n"), lines[0])
	assert.Equal(t, strings.TrimRight(second.String(), "\n"), lines[1])
}

func TestRunGenerateSaveFailureAfterPrint(t *testing.T) {
	rc := testRuntimeContext(t)
	var out bytes.Buffer

	err := runGenerate(rc, &out, generateOptions{
		Length: 12,
		Save:   filepath.Join(t.TempDir(), "missing", "dir", "pw.txt"),
	})
	require.Error(t, err)
	assert.Equal(t, 1, genpass_err.GetExitCode(err))
	// the password was already printed before the sink failed
	assert.Len(t, strings.TrimRight(out.String(), "\n"), 12)
}

func TestRunGenerateHashLine(t *testing.T) {
	rc := testRuntimeContext(t)
	var out bytes.Buffer

	err := runGenerate(rc, &out, generateOptions{Length: 12, Hash: true, HashCost: 4})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.NoError(t, crypto.ComparePassword(lines[1], lines[0]))
}

func TestRunGenerateRejectsBadHashCost(t *testing.T) {
	rc := testRuntimeContext(t)
	var out bytes.Buffer

	err := runGenerate(rc, &out, generateOptions{Length: 12, Hash: true, HashCost: 99})
	require.Error(t, err)
	assert.Equal(t, 2, genpass_err.GetExitCode(err))
	assert.Empty(t, out.String())
}

func TestMergeOptionsConfigFillsUntouchedFlags(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags().Parse(nil))

	settings := &config.Settings{
		Length:     20,
		Symbols:    true,
		SaveFile:   "/tmp/pw.txt",
		HashCost:   6,
		VaultMount: "kv",
	}

	opts := mergeOptions(settings, cmd)
	assert.Equal(t, 20, opts.Length, "config length wins when --length is absent")
	assert.False(t, opts.Numbers)
	assert.True(t, opts.Symbols)
	assert.Equal(t, "/tmp/pw.txt", opts.Save)
	assert.Equal(t, 6, opts.HashCost)
	assert.Equal(t, "kv", opts.VaultMount)
}

func TestMergeOptionsFlagsWinOverConfig(t *testing.T) {
	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags().Parse([]string{
		"--length", "8", "--symbols=false", "--save", "other.txt", "--hash-cost", "5",
	}))

	settings := &config.Settings{
		Length:     20,
		Symbols:    true,
		SaveFile:   "/tmp/pw.txt",
		HashCost:   6,
		VaultMount: "secret",
	}

	opts := mergeOptions(settings, cmd)
	assert.Equal(t, 8, opts.Length)
	assert.False(t, opts.Symbols, "explicit --symbols=false beats config true")
	assert.Equal(t, "other.txt", opts.Save)
	assert.Equal(t, 5, opts.HashCost)
	assert.Equal(t, "secret", opts.VaultMount)
}

func TestOptionsFromFlagsHonorsConfigLength(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GENPASS_CONFIG", "")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".genpass"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".genpass", "config.yaml"),
		[]byte("length: 20\nnumbers: true\n"), 0o600))

	cmd := newGenerateCommand()
	require.NoError(t, cmd.Flags().Parse(nil))
	opts, err := optionsFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, 20, opts.Length)
	assert.True(t, opts.Numbers)

	flagged := newGenerateCommand()
	require.NoError(t, flagged.Flags().Parse([]string{"-l", "8"}))
	opts, err = optionsFromFlags(flagged)
	require.NoError(t, err)
	assert.Equal(t, 8, opts.Length, "flag beats config file")
	assert.True(t, opts.Numbers, "untouched flag still falls back to config")
}

func TestRootCmdFlagDefaults(t *testing.T) {
	assert.Equal(t, "12", RootCmd.Flags().Lookup("length").DefValue)
	assert.Equal(t, "false", RootCmd.Flags().Lookup("numbers").DefValue)
	assert.Equal(t, "false", RootCmd.Flags().Lookup("symbols").DefValue)
	assert.Equal(t, "", RootCmd.Flags().Lookup("save").DefValue)

	assert.Equal(t, "l", RootCmd.Flags().Lookup("length").Shorthand)
	assert.Equal(t, "n", RootCmd.Flags().Lookup("numbers").Shorthand)
	assert.Equal(t, "s", RootCmd.Flags().Lookup("symbols").Shorthand)
}
