package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings, e.g. MINIRSA_RSA_ROUNDS
const EnvPrefix = "MINIRSA"

// CLIConfig is the root configuration of the mini-rsa CLI
type CLIConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	RSA    RSASettings    `mapstructure:"rsa"`
}

// Validate validates every settings section
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.RSA.Validate()
}

// InitializeCLIConfig loads the CLI configuration from an optional YAML file and the environment.
// An empty path yields the defaults merged with environment overrides.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("rsa.rounds", crypto.DefaultRounds)
	v.SetDefault("rsa.key_size_bits", crypto.DefaultKeySizeBits)
	v.SetDefault("rsa.encoding", crypto.EncodingUTF8)
	v.SetDefault("rsa.max_attempts", 0)
	v.SetDefault("rsa.seed", 0)
}
