// This file defines the configuration structure for the application.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port int `mapstructure:"port"`
	Site struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"site"`
	HTTP struct {
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
		UserAgent      string `mapstructure:"user_agent"`
	} `mapstructure:"http"`
}

// Timeout is the per-request limit applied by the shared HTTP client.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back
// to config.yml in the current directory.
func LoadFile(path string) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Watch loads the config and calls onChange every time the file is
// rewritten. It returns the initial config.
func Watch(path string, onChange func(*Config)) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s (%s)", e.Name, e.Op)
		updated, err := decode(v)
		if err != nil {
			log.Printf("Warning: ignoring invalid config: %v", err)
			return
		}
		onChange(updated)
	})
	v.WatchConfig()
	return cfg, nil
}

func read(path string) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // name of config file (without extension)
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}

	// NIJIERO_SITE_BASE_URL overrides `site.base_url`, and so on.
	v.SetEnvPrefix("NIJIERO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("site.base_url", "https://www.nijiero-ch.com")
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.user_agent", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.HTTP.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("http.timeout_seconds must not be negative, got %d", config.HTTP.TimeoutSeconds)
	}
	config.Site.BaseURL = strings.TrimRight(config.Site.BaseURL, "/")
	return &config, nil
}
