package veil

import (
	"path"

	"github.com/spf13/viper"

	"pixveil/pkg/appdir"
)

// Config carries the tunable knobs of a run. Precedence is
// flags > environment (PIXVEIL_*) > config file > defaults; the flag
// layer is merged in by the CLI after LoadConfig returns.
type Config struct {
	Key       int    `mapstructure:"key"`
	Mode      string `mapstructure:"mode"`
	HistoryDB string `mapstructure:"history_db"`
	NoHistory bool   `mapstructure:"no_history"`
	Verbose   bool   `mapstructure:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Key:       123,
		Mode:      "both",
		HistoryDB: path.Join(appdir.AppDir(), "history.db"),
	}
}

// LoadConfig loads configuration from file and environment on top of
// the defaults. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("pixveil")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(appdir.AppDir())
	v.SetEnvPrefix("PIXVEIL")
	v.AutomaticEnv()

	// Register the keys so AutomaticEnv can see them.
	v.SetDefault("key", cfg.Key)
	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("history_db", cfg.HistoryDB)
	v.SetDefault("no_history", cfg.NoHistory)
	v.SetDefault("verbose", cfg.Verbose)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
