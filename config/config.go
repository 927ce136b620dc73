package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"teeko/meta"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "teeko/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type SearchConfig struct {
	Depth      int `json:"depth"`
	Goroutines int `json:"goroutines"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

type Config struct {
	Search SearchConfig `json:"search"`
	Log    LogConfig    `json:"log"`
}

func Default() Config {
	return Config{
		Search: SearchConfig{
			Depth:      meta.DEPTH,
			Goroutines: meta.GO_ROUTINES,
		},
		Log: LogConfig{
			Level:  meta.LOG_LEVEL,
			Pretty: true,
		},
	}
}

// InitConfig loads the user's config file if one exists under the XDG config
// directories, falling back to defaults for anything it does not set.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := Default()
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config at filePath over the defaults and validates it.
func Load(filePath string) (*Config, error) {
	config := Default()
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Search.Depth < 1 {
		return &InvalidConfig{fmt.Sprintf("search depth must be at least 1, got %d", c.Search.Depth)}
	}
	if c.Search.Goroutines < 1 {
		return &InvalidConfig{fmt.Sprintf("search goroutines must be at least 1, got %d", c.Search.Goroutines)}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
