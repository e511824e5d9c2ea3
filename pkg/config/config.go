package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const EnvPrefix = "OFX2QIF"

type Config struct {
	IncludeMemos bool   `mapstructure:"memo"`
	Verbosity    int    `mapstructure:"-"`
	OutputDir    string `mapstructure:"output-dir"`
	Workers      int    `mapstructure:"workers"`
	Addr         string `mapstructure:"addr"`
}

func (c *Config) GetOutputPath() string {
	return c.OutputDir
}

// New creates a new default configuration
func New(outputDir string) *Config {
	return &Config{
		Verbosity: 1,
		OutputDir: outputDir,
		Workers:   4,
		Addr:      "0.0.0.0:3000",
	}
}

// Build layers defaults, an optional config file, OFX2QIF_* environment
// variables and the given flags, in increasing precedence. A .env file in the
// working directory is loaded into the environment first when present.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	def := New("")
	v.SetDefault("memo", def.IncludeMemos)
	v.SetDefault("output-dir", def.OutputDir)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("addr", def.Addr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Verbosity = 1 + v.GetInt("verbose") - v.GetInt("quiet")
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}
