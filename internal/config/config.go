// Package config loads teamfinder settings from a YAML file, an optional
// .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"teamfinder/internal/match"
	"teamfinder/internal/misslog"
	"teamfinder/internal/roster"
	"teamfinder/internal/suggest"
)

// ErrMissingToken is returned by RequireDiscord when no bot token is configured.
var ErrMissingToken = errors.New("discord token is not set")

// Default file locations.
const (
	DefaultSourcePath  = "input.csv"
	DefaultMissLogPath = "not_found_teams.txt"
)

// Config holds all teamfinder configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Layout  roster.Layout `yaml:"layout"`
	Match   MatchConfig   `yaml:"match"`
	MissLog MissLogConfig `yaml:"miss_log"`
	Suggest SuggestConfig `yaml:"suggest"`
	Discord DiscordConfig `yaml:"discord"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig locates the counter sheet.
type SourceConfig struct {
	Path    string `yaml:"path"`
	Sheet   string `yaml:"sheet"`   // workbook sheet; empty selects the active one
	Cleaned bool   `yaml:"cleaned"` // path is a Team,Slot,Unit,Notes table
}

// MatchConfig configures the set matcher.
type MatchConfig struct {
	Threshold int    `yaml:"threshold"`
	Strategy  string `yaml:"strategy"` // greedy, maximum
}

// MissLogConfig selects where unmatched queries go.
type MissLogConfig struct {
	Backend string `yaml:"backend"` // file, sqlite
	Path    string `yaml:"path"`
}

// SuggestConfig configures unit-name autocomplete.
type SuggestConfig struct {
	Limit int `yaml:"limit"`
}

// DiscordConfig holds bot credentials and endpoints.
type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`
	GuildID       string `yaml:"guild_id"` // register commands on one guild instead of globally
	APIBaseURL    string `yaml:"api_base_url"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads the YAML file at path, applies defaults and then environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		cfg, err = Parse(data)
		if err != nil {
			return nil, err
		}
	} else {
		applyDefaults(cfg)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Parse parses YAML data into a Config with defaults applied.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadEnv loads the first .env file found among paths into the process
// environment and returns its path, or "" when none was found.
func LoadEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return p
		}
	}

	return ""
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Source.Path == "" {
		cfg.Source.Path = DefaultSourcePath
	}

	if len(cfg.Layout.Defense) == 0 && len(cfg.Layout.Attack) == 0 && cfg.Layout.Notes == 0 {
		cfg.Layout = roster.DefaultLayout()
	}

	if cfg.Match.Threshold == 0 {
		cfg.Match.Threshold = match.DefaultThreshold
	}

	if cfg.Match.Strategy == "" {
		cfg.Match.Strategy = match.StrategyGreedy.String()
	}

	if cfg.MissLog.Backend == "" {
		cfg.MissLog.Backend = misslog.BackendFile
	}

	if cfg.MissLog.Path == "" {
		cfg.MissLog.Path = DefaultMissLogPath
	}

	if cfg.Suggest.Limit == 0 {
		cfg.Suggest.Limit = suggest.DefaultLimit
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// applyEnvOverrides lets the environment override credentials and paths.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		c.Discord.Token = v
	}

	if v := os.Getenv("DISCORD_APPLICATION_ID"); v != "" {
		c.Discord.ApplicationID = v
	}

	if v := os.Getenv("DISCORD_GUILD_ID"); v != "" {
		c.Discord.GuildID = v
	}

	if v := os.Getenv("TEAMFINDER_SOURCE"); v != "" {
		c.Source.Path = v
	}

	if v := os.Getenv("TEAMFINDER_MISS_LOG"); v != "" {
		c.MissLog.Path = v
	}

	if v := os.Getenv("TEAMFINDER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks settings that do not depend on the network.
func (c *Config) Validate() error {
	if c.Source.Path == "" {
		return errors.New("source.path is empty")
	}

	if !c.Source.Cleaned {
		if err := c.Layout.Validate(); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
	}

	if c.Match.Threshold < 1 || c.Match.Threshold > 100 {
		return fmt.Errorf("match.threshold %d is outside 1..100", c.Match.Threshold)
	}

	if _, err := match.ParseStrategy(c.Match.Strategy); err != nil {
		return fmt.Errorf("match.strategy: %w", err)
	}

	switch c.MissLog.Backend {
	case misslog.BackendFile, misslog.BackendSQLite:
	default:
		return fmt.Errorf("miss_log.backend: %w: %q", misslog.ErrUnknownBackend, c.MissLog.Backend)
	}

	if c.Suggest.Limit < 0 {
		return fmt.Errorf("suggest.limit %d is negative", c.Suggest.Limit)
	}

	return nil
}

// RequireDiscord checks the settings the bot needs to connect.
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return ErrMissingToken
	}

	return nil
}

// MatcherConfig converts the match section. Call Validate first.
func (c *Config) MatcherConfig() match.Config {
	strategy, _ := match.ParseStrategy(c.Match.Strategy)

	return match.Config{
		Threshold: c.Match.Threshold,
		Strategy:  strategy,
	}
}
