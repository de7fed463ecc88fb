package config

import (
	"github.com/spf13/viper"

	"github.com/aldebaro/hd-organizer/internal"
)

type Config struct {
	Database struct {
		Path string
	}
	Scanner struct {
		MaxDepth int `mapstructure:"max_depth"`
	}
	Compare struct {
		Method    string
		MinSize   int64 `mapstructure:"min_size"`
		ChunkSize int   `mapstructure:"chunk_size"`
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.hd-organizer")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/hd-organizer")

	viper.SetDefault("database.path", internal.DefaultDatabasePath)
	viper.SetDefault("scanner.max_depth", internal.DefaultMaxDepth)
	viper.SetDefault("compare.method", "hash")
	viper.SetDefault("compare.min_size", 0)
	viper.SetDefault("compare.chunk_size", internal.DefaultChunkSize)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
