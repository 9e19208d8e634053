package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rohankatakam/githours/internal/errors"
	"github.com/rohankatakam/githours/internal/temporal"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GITHOURS_BRANCH
const EnvPrefix = "GITHOURS"

// DefaultConfigPath is where `githours config init` writes a config file
var DefaultConfigPath = filepath.Join(".githours", "githours.yaml")

// Config holds all configuration settings
type Config struct {
	// Maximum minutes between two commits counted in the same coding session
	MaxCommitDiff int `mapstructure:"max_commit_diff" yaml:"max_commit_diff"`

	// Minutes credited for the unseen work before a session's first commit
	FirstCommitAdd int `mapstructure:"first_commit_add" yaml:"first_commit_add"`

	// History window: always|today|yesterday|thisweek|lastweek|YYYY-MM-DD
	Since string `mapstructure:"since" yaml:"since"`
	Until string `mapstructure:"until" yaml:"until"`

	// Include merge commits
	MergeRequest bool `mapstructure:"merge_request" yaml:"merge_request"`

	// Repository to analyze and optional single branch
	Path   string `mapstructure:"path" yaml:"path"`
	Branch string `mapstructure:"branch" yaml:"branch"`

	// Email aliases as "other@example.com=main@example.com"
	EmailAliases []string `mapstructure:"email_aliases" yaml:"email_aliases"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "json", "yaml", "table"
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // "text", "json"
}

// Default returns default configuration
func Default() *Config {
	opts := temporal.DefaultOptions()

	aliases := make([]string, 0, len(opts.EmailAliases))
	for email, canonical := range opts.EmailAliases {
		aliases = append(aliases, email+"="+canonical)
	}

	return &Config{
		MaxCommitDiff:  opts.MaxCommitDiff,
		FirstCommitAdd: opts.FirstCommitAddition,
		Since:          DateAlways,
		Until:          DateAlways,
		MergeRequest:   true,
		Path:           ".",
		EmailAliases:   aliases,
		Output: OutputConfig{
			Format: "json",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from file, .env files and GITHOURS_* variables.
// An empty path searches the standard locations; a missing file is not an error.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("githours")
		v.AddConfigPath(".githours")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".githours"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.ConfigError(err, "failed to read config").WithContext("path", v.ConfigFileUsed())
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigError(err, "failed to unmarshal config")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("max_commit_diff", cfg.MaxCommitDiff)
	v.SetDefault("first_commit_add", cfg.FirstCommitAdd)
	v.SetDefault("since", cfg.Since)
	v.SetDefault("until", cfg.Until)
	v.SetDefault("merge_request", cfg.MergeRequest)
	v.SetDefault("path", cfg.Path)
	v.SetDefault("branch", cfg.Branch)
	v.SetDefault("email_aliases", cfg.EmailAliases)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("max_commit_diff", c.MaxCommitDiff)
	v.Set("first_commit_add", c.FirstCommitAdd)
	v.Set("since", c.Since)
	v.Set("until", c.Until)
	v.Set("merge_request", c.MergeRequest)
	v.Set("path", c.Path)
	v.Set("branch", c.Branch)
	v.Set("email_aliases", c.EmailAliases)
	v.Set("output.format", c.Output.Format)
	v.Set("log.level", c.Log.Level)
	v.Set("log.format", c.Log.Format)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigError(err, "failed to create config directory")
	}

	if err := v.WriteConfigAs(path); err != nil {
		return errors.ConfigError(err, "failed to write config")
	}

	return nil
}

// Options converts the configuration into estimation pipeline options
func (c *Config) Options() (temporal.Options, error) {
	aliases, err := c.Aliases()
	if err != nil {
		return temporal.Options{}, err
	}

	return temporal.Options{
		MaxCommitDiff:       c.MaxCommitDiff,
		FirstCommitAddition: c.FirstCommitAdd,
		EmailAliases:        aliases,
	}, nil
}

// Window resolves Since and Until relative to now. Zero times mean unbounded.
func (c *Config) Window(now time.Time) (since, until time.Time, err error) {
	since, err = ParseDate(c.Since, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("since: %w", err)
	}

	until, err = ParseDate(c.Until, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("until: %w", err)
	}

	return since, until, nil
}
