package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Audio routing
	Audio        AudioConfig
	SecureWindow SecureWindowConfig
	Channel      ChannelConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

type RateLimitConfig struct {
	PerMin int
}

const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"

	SpeakerphoneSourceTracked = "tracked"
	SpeakerphoneSourceLive    = "live"
)

type AudioConfig struct {
	Platform           string
	SpeakerphoneSource string // "tracked" or "live"
}

type SecureWindowConfig struct {
	Initial bool
}

type ChannelConfig struct {
	WebsocketEnabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Audio routing
	cfg.Audio.Platform = strings.ToLower(viper.GetString("audio.platform"))
	cfg.Audio.SpeakerphoneSource = strings.ToLower(viper.GetString("audio.speakerphone_source"))
	cfg.SecureWindow.Initial = viper.GetBool("secure_window.initial")
	cfg.Channel.WebsocketEnabled = viper.GetBool("channel.websocket_enabled")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("audio.platform", PlatformAndroid)
	viper.SetDefault("audio.speakerphone_source", SpeakerphoneSourceTracked)
	viper.SetDefault("secure_window.initial", false)
	viper.SetDefault("channel.websocket_enabled", true)
}

func validate(cfg *Config) error {
	switch cfg.Audio.Platform {
	case PlatformAndroid, PlatformIOS:
	default:
		return fmt.Errorf("audio.platform must be %q or %q, got %q", PlatformAndroid, PlatformIOS, cfg.Audio.Platform)
	}

	switch cfg.Audio.SpeakerphoneSource {
	case SpeakerphoneSourceTracked, SpeakerphoneSourceLive:
	default:
		return fmt.Errorf("audio.speakerphone_source must be %q or %q, got %q",
			SpeakerphoneSourceTracked, SpeakerphoneSourceLive, cfg.Audio.SpeakerphoneSource)
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	return nil
}
