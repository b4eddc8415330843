package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL  = "https://courseplanner-api.adelaide.edu.au/api/course-planner-query/v1/"
	DefaultTimezone = "Australia/Adelaide"
)

// ReadConfig loads config.yaml from the working directory, then the environment.
// A .env file, if present, is loaded into the environment first.
func ReadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info().Msg("No config file found, continuing with env and defaults")
		} else {
			// Config file was found but another error was produced
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("upstream.base_url", DefaultBaseURL)
	v.SetDefault("upstream.timeout", "15s")
	v.SetDefault("upstream.requests_per_second", 10)
	v.SetDefault("upstream.burst", 5)
	v.SetDefault("upstream.max_results", 5000)

	v.SetDefault("database.type", "none")
	v.SetDefault("database.sqlite.connection_string", "courseplanner.db")
	v.SetDefault("database.postgres.connection_string", "")
	v.SetDefault("database.firestore.project_id", "")
	v.SetDefault("database.firestore.credentials_file", "")
	v.SetDefault("database.firestore.collection_id", "lookups")

	v.SetDefault("calendar.timezone", DefaultTimezone)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

func unmarshal(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Upstream.MaxResults <= 0 {
		return Config{}, fmt.Errorf("upstream.max_results must be positive, got %d", config.Upstream.MaxResults)
	}
	if config.Upstream.RequestsPerSecond <= 0 {
		return Config{}, fmt.Errorf("upstream.requests_per_second must be positive, got %g", config.Upstream.RequestsPerSecond)
	}
	if config.Upstream.Burst <= 0 {
		return Config{}, fmt.Errorf("upstream.burst must be positive, got %d", config.Upstream.Burst)
	}

	return config, nil
}
