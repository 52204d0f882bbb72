package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Game    GameConfig
	Quiz    QuizConfig
	Chat    ChatConfig
	Widgets WidgetConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Env   string
	Level string
	// File redirects output away from stdout; the terminal client needs this.
	File string
}

// GameConfig tunes the arithmetic game.
type GameConfig struct {
	BasePoints         int
	StreakBonus        int
	AddMax             int
	MulMax             int
	DistractorWindow   int
	DistractorAttempts int
	MaxRounds          int
}

// QuizConfig tunes the general-knowledge quiz.
type QuizConfig struct {
	PointValue      int
	TopThreshold    float64
	MiddleThreshold float64
	TopMessage      string
	MiddleMessage   string
	BottomMessage   string
}

type ChatConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

type WidgetConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
	MaxSessions   int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.allow_origins", "*")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")

	v.SetDefault("game.base_points", 10)
	v.SetDefault("game.streak_bonus", 2)
	v.SetDefault("game.add_max", 50)
	v.SetDefault("game.mul_max", 12)
	v.SetDefault("game.distractor_window", 10)
	v.SetDefault("game.distractor_attempts", 1000)
	v.SetDefault("game.max_rounds", 0)

	v.SetDefault("quiz.point_value", 1)
	v.SetDefault("quiz.top_threshold", 0.8)
	v.SetDefault("quiz.middle_threshold", 0.5)
	v.SetDefault("quiz.top_message", "Excellent work!")
	v.SetDefault("quiz.middle_message", "Good effort!")
	v.SetDefault("quiz.bottom_message", "Keep practicing!")

	v.SetDefault("chat.min_delay", "1s")
	v.SetDefault("chat.max_delay", "2s")

	v.SetDefault("widgets.session_ttl", "30m")
	v.SetDefault("widgets.sweep_interval", "1m")
	v.SetDefault("widgets.max_sessions", 10000)
}

// LoadConfig reads config.yaml from the working directory (or ./config) and
// applies environment overrides. A missing file falls back to defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		cfg.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
			File:  v.GetString("logger.file"),
		},
		Game: GameConfig{
			BasePoints:         v.GetInt("game.base_points"),
			StreakBonus:        v.GetInt("game.streak_bonus"),
			AddMax:             v.GetInt("game.add_max"),
			MulMax:             v.GetInt("game.mul_max"),
			DistractorWindow:   v.GetInt("game.distractor_window"),
			DistractorAttempts: v.GetInt("game.distractor_attempts"),
			MaxRounds:          v.GetInt("game.max_rounds"),
		},
		Quiz: QuizConfig{
			PointValue:      v.GetInt("quiz.point_value"),
			TopThreshold:    v.GetFloat64("quiz.top_threshold"),
			MiddleThreshold: v.GetFloat64("quiz.middle_threshold"),
			TopMessage:      v.GetString("quiz.top_message"),
			MiddleMessage:   v.GetString("quiz.middle_message"),
			BottomMessage:   v.GetString("quiz.bottom_message"),
		},
		Chat: ChatConfig{
			MinDelay: v.GetDuration("chat.min_delay"),
			MaxDelay: v.GetDuration("chat.max_delay"),
		},
		Widgets: WidgetConfig{
			SessionTTL:    v.GetDuration("widgets.session_ttl"),
			SweepInterval: v.GetDuration("widgets.sweep_interval"),
			MaxSessions:   v.GetInt("widgets.max_sessions"),
		},
	}
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	case c.Game.AddMax < 1 || c.Game.MulMax < 1:
		return fmt.Errorf("game operand bounds must be positive (add_max=%d, mul_max=%d)", c.Game.AddMax, c.Game.MulMax)
	case c.Game.DistractorWindow < 1:
		return fmt.Errorf("game.distractor_window must be positive: %d", c.Game.DistractorWindow)
	case c.Game.DistractorAttempts < 1:
		return fmt.Errorf("game.distractor_attempts must be positive: %d", c.Game.DistractorAttempts)
	case c.Game.BasePoints < 0 || c.Game.StreakBonus < 0:
		return fmt.Errorf("game scoring must not be negative (base_points=%d, streak_bonus=%d)", c.Game.BasePoints, c.Game.StreakBonus)
	case c.Quiz.PointValue < 0:
		return fmt.Errorf("quiz.point_value must not be negative: %d", c.Quiz.PointValue)
	case c.Game.MaxRounds < 0:
		return fmt.Errorf("game.max_rounds must not be negative: %d", c.Game.MaxRounds)
	case c.Quiz.MiddleThreshold > c.Quiz.TopThreshold:
		return fmt.Errorf("quiz.middle_threshold (%v) exceeds quiz.top_threshold (%v)", c.Quiz.MiddleThreshold, c.Quiz.TopThreshold)
	case c.Chat.MinDelay < 0 || c.Chat.MaxDelay < c.Chat.MinDelay:
		return fmt.Errorf("chat delay bounds invalid: min=%s max=%s", c.Chat.MinDelay, c.Chat.MaxDelay)
	case c.Widgets.MaxSessions < 1:
		return fmt.Errorf("widgets.max_sessions must be positive: %d", c.Widgets.MaxSessions)
	}
	return nil
}
