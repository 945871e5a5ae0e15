//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd, err := NewRootCommand()
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

// parseKeyValueLines parses "key: value" lines as printed by generate-keys and roundtrip
func parseKeyValueLines(output string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, ": ")
		if found {
			values[key] = value
		}
	}
	return values
}

func TestIsPrimeCommand(t *testing.T) {
	tests := []struct {
		name     string
		n        string
		expected string
	}{
		{name: "two", n: "2", expected: "true"},
		{name: "prime", n: "7919", expected: "true"},
		{name: "carmichael", n: "561", expected: "false"},
		{name: "even", n: "1000", expected: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "is-prime", "--n", tt.n, "--seed", "7")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestIsPrimeCommandInvalidInput(t *testing.T) {
	_, err := executeCommand(t, "is-prime", "--n", "1")
	assert.Error(t, err)

	_, err = executeCommand(t, "is-prime", "--n", "abc")
	assert.Error(t, err)

	_, err = executeCommand(t, "is-prime")
	assert.Error(t, err)
}

func TestGeneratePrimeCommandIsReproducible(t *testing.T) {
	first, err := executeCommand(t, "generate-prime", "--bits", "48", "--seed", "42")
	require.NoError(t, err)
	second, err := executeCommand(t, "generate-prime", "--bits", "48", "--seed", "42")
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)

	isPrime, err := executeCommand(t, "is-prime", "--n", first, "--rounds", "20")
	require.NoError(t, err)
	assert.Equal(t, "true", isPrime)
}

func TestFactorCommand(t *testing.T) {
	out, err := executeCommand(t, "factor", "--n", "3120")
	require.NoError(t, err)
	assert.Equal(t, "2 2 2 2 3 5 13", out)
}

func TestArithmeticCommands(t *testing.T) {
	out, err := executeCommand(t, "gcd", "--a", "48", "--b", "18")
	require.NoError(t, err)
	assert.Equal(t, "6", out)

	out, err = executeCommand(t, "mod-inverse", "--e", "17", "--phi", "3120")
	require.NoError(t, err)
	assert.Equal(t, "2753", out)

	_, err = executeCommand(t, "gcd", "--a", "5", "--b", "0")
	assert.Error(t, err)

	_, err = executeCommand(t, "mod-inverse", "--e", "4", "--phi", "8")
	assert.Error(t, err)
}

func TestEncryptDecryptCommandsTextbookKey(t *testing.T) {
	out, err := executeCommand(t, "encrypt", "--key-size", "16", "--n", "3233", "--e", "17", "--message", "A")
	require.NoError(t, err)
	assert.Equal(t, "2790", out)

	out, err = executeCommand(t, "decrypt", "--key-size", "16", "--n", "3233", "--d", "2753", "--cipher", "2790")
	require.NoError(t, err)
	assert.Equal(t, "A", out)
}

func TestEncryptCommandRejectsInvalidKey(t *testing.T) {
	_, err := executeCommand(t, "encrypt", "--key-size", "16", "--n", "3233", "--e", "1", "--message", "A")
	assert.Error(t, err)

	_, err = executeCommand(t, "encrypt", "--key-size", "16", "--n", "3233", "--message", "A")
	assert.Error(t, err)
}

func TestGenerateKeysThenEncryptDecrypt(t *testing.T) {
	out, err := executeCommand(t, "generate-keys", "--key-size", "32", "--seed", "11")
	require.NoError(t, err)

	keys := parseKeyValueLines(out)
	require.Equal(t, "32", keys["key_size_bits"])
	require.NotEmpty(t, keys["n"])
	require.NotEmpty(t, keys["e"])
	require.NotEmpty(t, keys["d"])

	cipher, err := executeCommand(t, "encrypt", "--key-size", "32", "--n", keys["n"], "--e", keys["e"], "--message", "hi there")
	require.NoError(t, err)

	plain, err := executeCommand(t, "decrypt", "--key-size", "32", "--n", keys["n"], "--d", keys["d"], "--cipher", cipher)
	require.NoError(t, err)
	assert.Equal(t, "hi there", plain)
}

func TestRoundTripCommand(t *testing.T) {
	out, err := executeCommand(t, "roundtrip", "--key-size", "32", "--message", "Hello, RSA!", "--seed", "3")
	require.NoError(t, err)

	values := parseKeyValueLines(out)
	assert.NotEmpty(t, values["key_pair_id"])
	assert.Equal(t, "Hello, RSA!", values["decrypted"])
	assert.Equal(t, "true", values["match"])
}

func TestConfigFileIsApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
rsa:
  rounds: 12
  key_size_bits: 24
  encoding: utf-8
  seed: 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	out, err := executeCommand(t, "generate-keys", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "24", parseKeyValueLines(out)["key_size_bits"])
}

func TestInvalidGlobalFlags(t *testing.T) {
	_, err := executeCommand(t, "is-prime", "--n", "7", "--rounds", "-1")
	assert.Error(t, err)

	_, err = executeCommand(t, "is-prime", "--n", "7", "--log-level", "verbose")
	assert.Error(t, err)

	_, err = executeCommand(t, "is-prime", "--n", "7", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
