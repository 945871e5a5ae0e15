package commands

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/mini-rsa/internal/app"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mini-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// commandContext carries what a single command invocation needs
type commandContext struct {
	config     *config.CLIConfig
	logger     logger.Logger
	processors *app.RSAProcessors
}

// loadCommandContext loads the config, applies global flag overrides and wires the processors
func loadCommandContext(cmd *cobra.Command) (*commandContext, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagConfig, err)
	}

	cfg, err := config.InitializeCLIConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyGlobalFlags(cmd, cfg); err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processors, err := app.NewRSAProcessors(&cfg.RSA, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processors: %w", err)
	}

	return &commandContext{
		config:     cfg,
		logger:     loggerInstance,
		processors: processors,
	}, nil
}

func applyGlobalFlags(cmd *cobra.Command, cfg *config.CLIConfig) error {
	flags := cmd.Flags()

	if flags.Changed(flagSeed) {
		seed, err := flags.GetInt64(flagSeed)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", flagSeed, err)
		}
		cfg.RSA.Seed = seed
	}
	if flags.Changed(flagRounds) {
		rounds, err := flags.GetInt(flagRounds)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", flagRounds, err)
		}
		cfg.RSA.Rounds = rounds
	}
	if flags.Changed(flagLogLevel) {
		level, err := flags.GetString(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", flagLogLevel, err)
		}
		cfg.Logger.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// bigIntFlag reads a decimal integer flag
func bigIntFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("flag --%s is required", name)
	}

	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("flag --%s is not a decimal integer: %q", name, raw)
	}
	return value, nil
}

// keySizeFlag reads the key-size flag, falling back to the configured default when unset
func keySizeFlag(cmd *cobra.Command, cfg *config.CLIConfig) (uint, error) {
	keySize, err := cmd.Flags().GetUint("key-size")
	if err != nil {
		return 0, fmt.Errorf("invalid key-size flag: %w", err)
	}
	if keySize == 0 {
		return cfg.RSA.KeySizeBits, nil
	}
	return keySize, nil
}
