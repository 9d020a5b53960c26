package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"columncalc/typeoption"
)

const EnvPrefix = "COLUMNCALC"

type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	InMemory         bool   `mapstructure:"in_memory"`
	CacheEnabled     bool   `mapstructure:"cache_enabled"`
	CacheNumCounters int64  `mapstructure:"cache_num_counters"`
	CacheMaxCost     int64  `mapstructure:"cache_max_cost"`
	LogLevel         string `mapstructure:"log_level"`
}

func Default() *Config {
	cache := typeoption.DefaultCacheConfig()
	return &Config{
		DataDir:          "columncalc-data",
		InMemory:         false,
		CacheEnabled:     true,
		CacheNumCounters: cache.NumCounters,
		CacheMaxCost:     cache.MaxCost,
		LogLevel:         "info",
	}
}

func (c *Config) CacheConfig() typeoption.CacheConfig {
	return typeoption.CacheConfig{
		NumCounters: c.CacheNumCounters,
		MaxCost:     c.CacheMaxCost,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("in_memory", d.InMemory)
	v.SetDefault("cache_enabled", d.CacheEnabled)
	v.SetDefault("cache_num_counters", d.CacheNumCounters)
	v.SetDefault("cache_max_cost", d.CacheMaxCost)
	v.SetDefault("log_level", d.LogLevel)
}

// RegisterFlags adds the config flags to fs. Flag names use dashes; they
// are bound to the underscore keys used in config files.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.String("data-dir", d.DataDir, "directory holding the table store")
	fs.Bool("in-memory", d.InMemory, "keep the table store in memory only")
	fs.Bool("cache-enabled", d.CacheEnabled, "memoise parsed cell values")
	fs.String("log-level", d.LogLevel, "debug, info, warn or error")
}

// Load merges defaults, the optional config file, COLUMNCALC_* environment
// variables and flags, in increasing priority.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range map[string]string{
			"data-dir":      "data_dir",
			"in-memory":     "in_memory",
			"cache-enabled": "cache_enabled",
			"log-level":     "log_level",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", flag)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "read config %s", f.Value.String())
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !c.InMemory && c.DataDir == "" {
		return errors.New("data_dir must be set unless in_memory is enabled")
	}
	if c.CacheEnabled && (c.CacheNumCounters <= 0 || c.CacheMaxCost <= 0) {
		return errors.New("cache_num_counters and cache_max_cost must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return level, nil
}
