package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds infrastructure config from standard env vars.
type AppConfig struct {
	DataDir    string // directory holding the JSON collections
	ConfigPath string // path to the YAML site config
	Addr       string // listen address for the web UI
	LogLevel   string
	LogColor   bool
}

// SiteConfig holds presentation settings loaded from YAML.
type SiteConfig struct {
	Title    string    `yaml:"title"`
	Tagline  string    `yaml:"tagline"`
	Lakes    []string  `yaml:"lakes"`
	Map      MapConfig `yaml:"map"`
	CardCols int       `yaml:"card_columns"`
}

// MapConfig is the default viewport for the map page.
type MapConfig struct {
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	Zoom int     `yaml:"zoom"`
}

// FromEnv reads infrastructure settings from environment variables,
// loading a local .env file first when one exists.
func FromEnv() AppConfig {
	_ = godotenv.Load() // .env is optional; plain env vars win anyway

	return AppConfig{
		DataDir:    getEnv("DATA_DIR", "data"),
		ConfigPath: getEnv("CONFIG_PATH", "config.yaml"),
		Addr:       getEnv("ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogColor:   getEnvAsBool("LOG_COLOR", true),
	}
}

// LoadSiteConfig reads the YAML site file and fills in defaults for
// anything left unset.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config at '%s': %w", path, err)
	}
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML site config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// DefaultSiteConfig is used when no config file is present.
func DefaultSiteConfig() *SiteConfig {
	cfg := &SiteConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *SiteConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "Stay & Sip Finger Lakes"
	}
	if c.Tagline == "" {
		c.Tagline = "Explore. Taste. Relax. Hand-picked stays, wineries, attractions, and wedding venues around Keuka, Seneca & Cayuga."
	}
	if len(c.Lakes) == 0 {
		c.Lakes = []string{"Keuka", "Seneca", "Cayuga"}
	}
	if c.Map.Lat == 0 && c.Map.Lng == 0 {
		c.Map.Lat = 42.6
		c.Map.Lng = -77.1
	}
	if c.Map.Zoom == 0 {
		c.Map.Zoom = 8
	}
	if c.CardCols == 0 {
		c.CardCols = 3
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		return defaultValue
	}
	return valBool
}
