// Package config loads panelbot settings from ~/.panelbot/config.toml and
// PANELBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/panelbot/internal/domain"
)

const EnvPrefix = "PANELBOT"

type Config struct {
	Panel       PanelConfig       `mapstructure:"panel"`
	Sessions    SessionsConfig    `mapstructure:"sessions"`
	Secrets     SecretsConfig     `mapstructure:"secrets"`
	Members     MembersConfig     `mapstructure:"members"`
	Log         LogConfig         `mapstructure:"log"`
	Admins      AdminsConfig      `mapstructure:"admins"`
	Environment map[string]string `mapstructure:"environment"`
	Offerings   []OfferingConfig  `mapstructure:"offerings"`
	Tiers       []TierConfig      `mapstructure:"tiers"`
}

type PanelConfig struct {
	URL            string `mapstructure:"url"`
	ApplicationKey string `mapstructure:"application_key"`
	NodeID         int    `mapstructure:"node_id"`
	// DefaultAllocation is used when the node has no free allocation. Zero
	// disables the fallback.
	DefaultAllocation     int `mapstructure:"default_allocation"`
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`
	CreateTimeoutSeconds  int `mapstructure:"create_timeout_seconds"`
}

type SessionsConfig struct {
	StepTimeoutSeconds   int      `mapstructure:"step_timeout_seconds"`
	SweepIntervalSeconds int      `mapstructure:"sweep_interval_seconds"`
	CancelWords          []string `mapstructure:"cancel_words"`
}

type SecretsConfig struct {
	// Backend is one of pass, file or pass+file.
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

type MembersConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File switches logging from stderr to an appended file.
	File string `mapstructure:"file"`
}

type AdminsConfig struct {
	Bootstrap []string     `mapstructure:"bootstrap"`
	Bounds    BoundsConfig `mapstructure:"bounds"`
}

type BoundsConfig struct {
	MaxMemoryMB   int `mapstructure:"max_memory_mb"`
	MaxCPUPercent int `mapstructure:"max_cpu_percent"`
	MaxDiskMB     int `mapstructure:"max_disk_mb"`
}

type OfferingConfig struct {
	Key         string            `mapstructure:"key"`
	DisplayName string            `mapstructure:"display_name"`
	NestID      int               `mapstructure:"nest_id"`
	EggID       int               `mapstructure:"egg_id"`
	DockerImage string            `mapstructure:"docker_image"`
	Startup     string            `mapstructure:"startup"`
	Environment map[string]string `mapstructure:"environment"`
}

type TierConfig struct {
	Name          string `mapstructure:"name"`
	MinInvites    int    `mapstructure:"min_invites"`
	MaxMemoryMB   int    `mapstructure:"max_memory_mb"`
	MaxCPUPercent int    `mapstructure:"max_cpu_percent"`
	MaxDiskMB     int    `mapstructure:"max_disk_mb"`
}

// Default returns the built-in settings. Offerings, tiers and the environment
// are filled from the domain defaults.
func Default() *Config {
	home := homeDir()
	return &Config{
		Panel: PanelConfig{
			NodeID:                1,
			RequestTimeoutSeconds: 15,
			CreateTimeoutSeconds:  60,
		},
		Sessions: SessionsConfig{
			StepTimeoutSeconds:   60,
			SweepIntervalSeconds: 5,
			CancelWords:          []string{"cancel", "exit"},
		},
		Secrets: SecretsConfig{
			Backend: "pass+file",
			Dir:     filepath.Join(home, ".panelbot", "secrets"),
		},
		Members: MembersConfig{
			Path: filepath.Join(home, ".panelbot", "members.toml"),
		},
		Log: LogConfig{Level: "info"},
		Admins: AdminsConfig{
			Bounds: BoundsConfig{MaxMemoryMB: 32768, MaxCPUPercent: 800, MaxDiskMB: 100000},
		},
		Environment: domain.DefaultEnvironment(),
		Offerings:   offeringConfigs(domain.DefaultOfferings()),
		Tiers:       tierConfigs(domain.DefaultTiers()),
	}
}

// SetDefaults registers every scalar default on v so environment overrides
// resolve during Unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("panel.url", defaults.Panel.URL)
	v.SetDefault("panel.application_key", defaults.Panel.ApplicationKey)
	v.SetDefault("panel.node_id", defaults.Panel.NodeID)
	v.SetDefault("panel.default_allocation", defaults.Panel.DefaultAllocation)
	v.SetDefault("panel.request_timeout_seconds", defaults.Panel.RequestTimeoutSeconds)
	v.SetDefault("panel.create_timeout_seconds", defaults.Panel.CreateTimeoutSeconds)

	v.SetDefault("sessions.step_timeout_seconds", defaults.Sessions.StepTimeoutSeconds)
	v.SetDefault("sessions.sweep_interval_seconds", defaults.Sessions.SweepIntervalSeconds)
	v.SetDefault("sessions.cancel_words", defaults.Sessions.CancelWords)

	v.SetDefault("secrets.backend", defaults.Secrets.Backend)
	v.SetDefault("secrets.dir", defaults.Secrets.Dir)

	v.SetDefault("members.path", defaults.Members.Path)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetDefault("admins.bootstrap", defaults.Admins.Bootstrap)
	v.SetDefault("admins.bounds.max_memory_mb", defaults.Admins.Bounds.MaxMemoryMB)
	v.SetDefault("admins.bounds.max_cpu_percent", defaults.Admins.Bounds.MaxCPUPercent)
	v.SetDefault("admins.bounds.max_disk_mb", defaults.Admins.Bounds.MaxDiskMB)
}

// Load reads path (or the default config file when empty) into v, applies
// defaults and environment overrides, and validates the result. A missing
// file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = File()
	}

	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Dir returns ~/.panelbot.
func Dir() string {
	return filepath.Join(homeDir(), ".panelbot")
}

func File() string {
	return filepath.Join(Dir(), "config.toml")
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if len(c.Environment) == 0 {
		c.Environment = defaults.Environment
	}
	if len(c.Offerings) == 0 {
		c.Offerings = defaults.Offerings
	}
	if len(c.Tiers) == 0 {
		c.Tiers = defaults.Tiers
	}
	if len(c.Sessions.CancelWords) == 0 {
		c.Sessions.CancelWords = defaults.Sessions.CancelWords
	}
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Panel.RequestTimeoutSeconds) * time.Second
}

func (c *Config) CreateTimeout() time.Duration {
	return time.Duration(c.Panel.CreateTimeoutSeconds) * time.Second
}

func (c *Config) StepTimeout() time.Duration {
	return time.Duration(c.Sessions.StepTimeoutSeconds) * time.Second
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Sessions.SweepIntervalSeconds) * time.Second
}

func (c *Config) AdminBounds() domain.Bounds {
	return domain.Bounds{
		MaxMemoryMB:   c.Admins.Bounds.MaxMemoryMB,
		MaxCPUPercent: c.Admins.Bounds.MaxCPUPercent,
		MaxDiskMB:     c.Admins.Bounds.MaxDiskMB,
	}
}

func (c *Config) BootstrapAdmins() []domain.UserID {
	ids := make([]domain.UserID, 0, len(c.Admins.Bootstrap))
	for _, id := range c.Admins.Bootstrap {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, domain.UserID(trimmed))
		}
	}
	return ids
}

// DefaultEnvironment returns the shared startup variables. Viper lowercases
// map keys, so they are upper-cased back here.
func (c *Config) DefaultEnvironment() map[string]string {
	return upperKeys(c.Environment)
}

func (c *Config) Catalog() (*domain.Catalog, error) {
	offerings := make([]domain.Offering, 0, len(c.Offerings))
	for _, offering := range c.Offerings {
		offerings = append(offerings, domain.Offering{
			Key:         domain.OfferingKey(strings.TrimSpace(offering.Key)),
			DisplayName: offering.DisplayName,
			NestID:      offering.NestID,
			EggID:       offering.EggID,
			DockerImage: offering.DockerImage,
			Startup:     offering.Startup,
			Environment: upperKeys(offering.Environment),
		})
	}
	return domain.NewCatalog(offerings)
}

func (c *Config) TierTable() (domain.Tiers, error) {
	tiers := make([]domain.Tier, 0, len(c.Tiers))
	for _, tier := range c.Tiers {
		tiers = append(tiers, domain.Tier{
			Name:          strings.TrimSpace(tier.Name),
			MinInvites:    tier.MinInvites,
			MaxMemoryMB:   tier.MaxMemoryMB,
			MaxCPUPercent: tier.MaxCPUPercent,
			MaxDiskMB:     tier.MaxDiskMB,
		})
	}
	return domain.NewTiers(tiers)
}

func upperKeys(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[strings.ToUpper(key)] = value
	}
	return out
}

func offeringConfigs(offerings []domain.Offering) []OfferingConfig {
	out := make([]OfferingConfig, 0, len(offerings))
	for _, offering := range offerings {
		out = append(out, OfferingConfig{
			Key:         string(offering.Key),
			DisplayName: offering.DisplayName,
			NestID:      offering.NestID,
			EggID:       offering.EggID,
			DockerImage: offering.DockerImage,
			Startup:     offering.Startup,
			Environment: offering.Environment,
		})
	}
	return out
}

func tierConfigs(tiers domain.Tiers) []TierConfig {
	out := make([]TierConfig, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, TierConfig{
			Name:          tier.Name,
			MinInvites:    tier.MinInvites,
			MaxMemoryMB:   tier.MaxMemoryMB,
			MaxCPUPercent: tier.MaxCPUPercent,
			MaxDiskMB:     tier.MaxDiskMB,
		})
	}
	return out
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
