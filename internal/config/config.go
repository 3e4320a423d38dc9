// Package config loads and validates scraper configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultURL is the article this tool was built for.
const DefaultURL = "https://en.wikipedia.org/wiki/List_of_United_States_Christmas_television_episodes"

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig controls the HTTP fetch.
type SourceConfig struct {
	URL            string        `mapstructure:"url"`
	UserAgent      string        `mapstructure:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// FilterConfig holds the keyword blacklist for made-for-TV specials.
type FilterConfig struct {
	SpecialsKeywords []string `mapstructure:"specials_keywords"`
}

// OutputConfig sets where tabular and chart artifacts land.
type OutputConfig struct {
	DataDir string `mapstructure:"data_dir"`
	OutDir  string `mapstructure:"out_dir"`
}

// ChartConfig fixes the rendered chart dimensions, in inches.
type ChartConfig struct {
	WidthInches  float64 `mapstructure:"width_inches"`
	HeightInches float64 `mapstructure:"height_inches"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REWINDOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.url", DefaultURL)
	v.SetDefault("source.user_agent", "RewindOS-Christmas/1.0 (personal project)")
	v.SetDefault("source.request_timeout", "30s")
	v.SetDefault("filter.specials_keywords", []string{
		"christmas special",
		"holiday special",
		"special presentation",
		"tv special",
		"television special",
	})
	v.SetDefault("output.data_dir", "data")
	v.SetDefault("output.out_dir", "outputs")
	v.SetDefault("chart.width_inches", 14.0)
	v.SetDefault("chart.height_inches", 5.0)
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url must be set")
	}
	if c.Source.UserAgent == "" {
		return fmt.Errorf("source.user_agent must be set")
	}
	if c.Source.RequestTimeout <= 0 {
		return fmt.Errorf("source.request_timeout must be > 0")
	}
	if c.Output.DataDir == "" {
		return fmt.Errorf("output.data_dir must be set")
	}
	if c.Output.OutDir == "" {
		return fmt.Errorf("output.out_dir must be set")
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart dimensions must be > 0")
	}
	return nil
}
