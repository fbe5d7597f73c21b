package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	BuildDir    string `mapstructure:"build_dir"`
	JPEGQuality int    `mapstructure:"jpeg_quality"`
	UseExifTool bool   `mapstructure:"use_exiftool"`
}

func LoadConfig() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find user config dir: %w", err)
	}

	viper.SetConfigName("mallorn")
	viper.SetConfigType("toml")
	viper.AddConfigPath(filepath.Join(configDir, "mallorn"))

	// Set defaults:
	viper.SetDefault("build_dir", "build")
	viper.SetDefault("jpeg_quality", 90)
	viper.SetDefault("use_exiftool", false)

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; that's OK, just use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
