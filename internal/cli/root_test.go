package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/normhash/pkg/normhash"
)

const (
	digestLFLines   = "2751a3a2f303ad21752038085e2b8c5f98ecff61a2e4ebbd43506a941725be80" // "line1\nline2\n"
	digestCRLFNoEOF = "d14a91a6d1c6ee83bf0c774ebecbee6d8b393b395dae29eea839c354d6fba9c0" // "line1\r\nline2"
	digestABCD      = "e12e115acf4552b2568b55e93cbd39394c4ef81c82447fafc997882a02d23677" // "ABCD"
)

// runCLI executes a fresh root command inside dir and returns stdout and stderr.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)
	unsetHashEnv(t)

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := execute(cmd)
	return stdout.String(), stderr.String(), err
}

// unsetHashEnv removes the NORMHASH_* variables for the duration of the test.
// An empty NORMHASH_EOL is a valid setting, so clearing is not enough.
func unsetHashEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NORMHASH_EOL", "NORMHASH_NO_EOF", "NORMHASH_IGNORE_WHITESPACES"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRoot_DefaultsPrintDigestOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "line1\r\nline2")

	stdout, stderr, err := runCLI(t, dir, "in.txt")

	require.NoError(t, err)
	assert.Equal(t, digestLFLines+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRoot_CRLFNoEOFWithOutputFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "line1\nline2\n")

	stdout, _, err := runCLI(t, dir, "--eol", "\r\n", "--no-eof", "in.txt", "out.txt")

	require.NoError(t, err)
	assert.Equal(t, digestCRLFNoEOF+"\n", stdout)

	written, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "line1\r\nline2", string(written))
}

func TestRoot_IgnoreWhitespaces(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "A B\n\tC D \n")

	stdout, _, err := runCLI(t, dir, "--eol", "", "--no-eof", "--ignore-whitespaces", "in.txt")

	require.NoError(t, err)
	assert.Equal(t, digestABCD+"\n", stdout)
}

func TestRoot_MissingArgument(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runCLI(t, dir)

	require.Error(t, err)
	assert.Equal(t, normhash.ExitUsageError, normhash.ExitCodeForError(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[ERROR] usage error: missing required argument")
}

func TestRoot_UnknownFlag(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCLI(t, dir, "--bogus", "in.txt")

	require.Error(t, err)
	assert.Equal(t, normhash.ExitUsageError, normhash.ExitCodeForError(err))
}

func TestRoot_MissingInput(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCLI(t, dir, "nope.txt", "out.txt")

	require.Error(t, err)
	assert.Equal(t, normhash.ExitInputError, normhash.ExitCodeForError(err))
	assert.Empty(t, stdout)
	_, statErr := os.Stat(filepath.Join(dir, "out.txt"))
	assert.True(t, os.IsNotExist(statErr), "output must not be created when input is missing")
}

func TestRoot_OutputIsInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "x\r\ny\r\n")

	stdout, stderr, err := runCLI(t, dir, "in.txt", "in.txt")

	require.Error(t, err)
	assert.Equal(t, normhash.ExitOutputError, normhash.ExitCodeForError(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[ERROR] ")
	assert.Contains(t, stderr, "output is the input file")

	content, err := os.ReadFile(filepath.Join(dir, "in.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x\r\ny\r\n", string(content))
}

func TestRoot_OutputInMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "x\n")

	_, _, err := runCLI(t, dir, "in.txt", filepath.Join("missing", "out.txt"))

	require.Error(t, err)
	assert.Equal(t, normhash.ExitOutputError, normhash.ExitCodeForError(err))
}

func TestRoot_Version(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCLI(t, dir, "--version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "normhash "), "got %q", stdout)
}

func TestRoot_VerbosePrintsSummaryOnStderr(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.txt"), "line1\nline2\n")

	stdout, stderr, err := runCLI(t, dir, "-v", "in.txt")

	require.NoError(t, err)
	assert.Equal(t, digestLFLines+"\n", stdout)
	assert.Contains(t, stderr, "[VERBOSE]")
	assert.Contains(t, stderr, "SHA-256")
	assert.Contains(t, stderr, digestLFLines)
}

func TestRoot_ConfigPrecedence(t *testing.T) {
	t.Run("discovered yaml file applies", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "line1\nline2\n")
		writeFile(t, filepath.Join(dir, ".normhash.yaml"), "eol: \"\\r\\n\"\nno_eof: true\n")

		stdout, _, err := runCLI(t, dir, "in.txt")

		require.NoError(t, err)
		assert.Equal(t, digestCRLFNoEOF+"\n", stdout)
	})

	t.Run("explicit toml file applies", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "A B\nC D\n")
		writeFile(t, filepath.Join(dir, "hash.toml"), "eol = \"\"\nno_eof = true\nignore_whitespaces = true\n")

		stdout, _, err := runCLI(t, dir, "--config", "hash.toml", "in.txt")

		require.NoError(t, err)
		assert.Equal(t, digestABCD+"\n", stdout)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "line1\nline2\n")
		writeFile(t, filepath.Join(dir, ".normhash.yaml"), "no_eof: true\n")

		t.Chdir(dir)
		unsetHashEnv(t)
		t.Setenv("NORMHASH_NO_EOF", "false")

		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"in.txt"})

		require.NoError(t, execute(cmd))
		assert.Equal(t, digestLFLines+"\n", out.String())
	})

	t.Run("flag overrides file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "line1\nline2\n")
		writeFile(t, filepath.Join(dir, ".normhash.yaml"), "eol: \"\\r\\n\"\nno_eof: true\n")

		stdout, _, err := runCLI(t, dir, "--eol", "\n", "--no-eof=false", "in.txt")

		require.NoError(t, err)
		assert.Equal(t, digestLFLines+"\n", stdout)
	})

	t.Run("dotenv is loaded", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "line1\nline2\n")
		writeFile(t, filepath.Join(dir, ".env"), "NORMHASH_NO_EOF=true\nNORMHASH_EOL=\"\\r\\n\"\n")

		t.Chdir(dir)
		unsetHashEnv(t)

		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"in.txt"})

		require.NoError(t, execute(cmd))
		assert.Equal(t, digestCRLFNoEOF+"\n", out.String())
	})
}

func TestRoot_InvalidConfig(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "x\n")
		writeFile(t, filepath.Join(dir, ".normhash.yaml"), "no_eof: [unterminated\n")

		_, _, err := runCLI(t, dir, "in.txt")

		require.Error(t, err)
		assert.Equal(t, normhash.ExitConfigError, normhash.ExitCodeForError(err))
	})

	t.Run("missing explicit config", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in.txt"), "x\n")

		_, _, err := runCLI(t, dir, "--config", "absent.yaml", "in.txt")

		require.Error(t, err)
		assert.Equal(t, normhash.ExitConfigError, normhash.ExitCodeForError(err))
	})
}
