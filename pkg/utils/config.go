package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Calendar CalendarConfig
	Wizard   WizardConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CalendarConfig struct {
	// FailOpen renders an empty grid when the booking fetch fails instead
	// of returning the error to the caller. Off by default.
	FailOpen bool
}

type WizardConfig struct {
	DraftTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:3000")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CALENDAR_FAIL_OPEN", false)
	viper.SetDefault("WIZARD_DRAFT_TTL_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
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
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Calendar: CalendarConfig{
			FailOpen: viper.GetBool("CALENDAR_FAIL_OPEN"),
		},
		Wizard: WizardConfig{
			DraftTTL: time.Duration(viper.GetInt("WIZARD_DRAFT_TTL_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}
