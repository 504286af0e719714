package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/genricoloni/resswitch/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultSettingsPath = "program_settings.json"
	defaultPollInterval = 2 * time.Second
	defaultPrecedence   = domain.PrecedenceIndependent
)

// AppConfig holds application configuration
type AppConfig struct {
	logger       *zap.Logger
	settingsPath string
	pollInterval time.Duration
	precedence   domain.Precedence
	notify       bool
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	settingsPath := os.Getenv("RESSWITCH_SETTINGS_FILE")
	if settingsPath == "" {
		settingsPath = defaultSettingsPath
	}
	settingsPath = expandPath(settingsPath)

	pollInterval := defaultPollInterval
	if raw := os.Getenv("RESSWITCH_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			logger.Warn("Invalid poll interval, using default",
				zap.String("value", raw),
				zap.Duration("default", defaultPollInterval))
		} else {
			pollInterval = d
		}
	}

	precedence := defaultPrecedence
	if raw := os.Getenv("RESSWITCH_PRECEDENCE"); raw != "" {
		switch p := domain.Precedence(strings.ToLower(raw)); p {
		case domain.PrecedenceIndependent, domain.PrecedenceStack:
			precedence = p
		default:
			logger.Warn("Unknown precedence policy, using default",
				zap.String("value", raw),
				zap.String("default", string(defaultPrecedence)))
		}
	}

	notify, _ := strconv.ParseBool(os.Getenv("RESSWITCH_NOTIFY"))

	logger.Info("Configuration loaded",
		zap.String("settingsPath", settingsPath),
		zap.Duration("pollInterval", pollInterval),
		zap.String("precedence", string(precedence)),
		zap.Bool("notify", notify))

	return &AppConfig{
		logger:       logger,
		settingsPath: settingsPath,
		pollInterval: pollInterval,
		precedence:   precedence,
		notify:       notify,
	}
}

// expandPath expands environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetSettingsPath returns the path of the JSON settings file
func (c *AppConfig) GetSettingsPath() string {
	return c.settingsPath
}

// GetPollInterval returns the wait between two poll cycles
func (c *AppConfig) GetPollInterval() time.Duration {
	return c.pollInterval
}

// GetPrecedence returns the stop-transition restore policy
func (c *AppConfig) GetPrecedence() domain.Precedence {
	return c.precedence
}

// NotificationsEnabled reports whether desktop notifications are sent
func (c *AppConfig) NotificationsEnabled() bool {
	return c.notify
}
