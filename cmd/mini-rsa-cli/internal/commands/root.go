package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Global flag names shared by every sub-command
const (
	flagConfig   = "config"
	flagSeed     = "seed"
	flagRounds   = "rounds"
	flagLogLevel = "log-level"
)

// NewRootCommand creates the mini-rsa-cli root command with all command groups registered.
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "mini-rsa-cli",
		Short: "Toy RSA number theory CLI tool",
		Long: `mini-rsa-cli exposes a minimal RSA numeric core on the command line.
Supports Miller-Rabin primality checks, prime generation, gcd, modular inverses,
trial-division factorisation, key pair generation and per-byte encryption/decryption.

The per-byte transform is unpadded and deterministic. It is NOT secure and
exists for teaching purposes only.

Settings are read from an optional YAML file (--config) and MINIRSA_* environment
variables, e.g. MINIRSA_RSA_ROUNDS=20 or MINIRSA_LOGGER_LOG_LEVEL=debug.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64(flagSeed, 0, "Seed of the random source (0 seeds from the clock)")
	rootCmd.PersistentFlags().Int(flagRounds, 0, "Miller-Rabin rounds (overrides rsa.rounds)")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "Log level: debug, info, warning, error or critical")

	if err := InitPrimeCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize prime commands: %w", err)
	}

	if err := InitArithmeticCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize arithmetic commands: %w", err)
	}

	if err := InitRSACommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return rootCmd, nil
}
