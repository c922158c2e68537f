package utils

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Simulation SimulationConfig
	Inbox      InboxConfig
	Session    SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type SimulationConfig struct {
	TickIntervalSeconds int
	Seed                int64 // 0 means seed from the clock
}

func (c SimulationConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalSeconds) * time.Second
}

type InboxConfig struct {
	Capacity         int
	DefaultThreshold int // minutes
}

type SessionConfig struct {
	ExpiryHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "waitwise")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TICK_INTERVAL_SECONDS", 5)
	viper.SetDefault("TICK_SEED", 0)
	viper.SetDefault("INBOX_CAPACITY", 50)
	viper.SetDefault("DEFAULT_WAIT_THRESHOLD", 15)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)

	// Config file is optional; env vars and defaults cover everything
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Simulation: SimulationConfig{
			TickIntervalSeconds: viper.GetInt("TICK_INTERVAL_SECONDS"),
			Seed:                viper.GetInt64("TICK_SEED"),
		},
		Inbox: InboxConfig{
			Capacity:         viper.GetInt("INBOX_CAPACITY"),
			DefaultThreshold: viper.GetInt("DEFAULT_WAIT_THRESHOLD"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
	}

	return config, nil
}
