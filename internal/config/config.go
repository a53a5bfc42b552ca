package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	Database struct {
		Path string
	}
	Session struct {
		MaxAge time.Duration
		Secure bool
	}
	CORS struct {
		AllowedOrigins []string
	}
	Log struct {
		Level string
	}
	Gin struct {
		Mode string
	}
}

// Load reads configuration from environment variables and optional config files.
// Variables already set in the environment take precedence over a .env file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DIET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:3333")
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("database.path", "data/diet.db")
	v.SetDefault("session.maxage", 7*24*time.Hour)
	v.SetDefault("session.secure", false)
	v.SetDefault("cors.allowedorigins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("gin.mode", "release")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
