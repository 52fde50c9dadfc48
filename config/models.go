package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Grading GradingConfig `mapstructure:"grading"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.Token == "" {
		return errors.New("github.token is required")
	}
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		return errors.New("github.owner and github.repo are required")
	}
	if c.Grading.Reviewer == "" {
		return errors.New("grading.reviewer is required")
	}
	if c.Grading.Timezone == "" {
		return errors.New("grading.timezone is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings. RequestTimeout bounds one full
// grading run, including every gateway call it makes.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// GitHubConfig describes the repository the grading issues live in.
type GitHubConfig struct {
	Token          string        `mapstructure:"token"`
	Owner          string        `mapstructure:"owner"`
	Repo           string        `mapstructure:"repo"`
	BaseURL        string        `mapstructure:"base_url"`
	WorkflowFile   string        `mapstructure:"workflow_file"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// GradingConfig contains grading run parameters.
type GradingConfig struct {
	// Timezone is the reference zone for deadline arithmetic.
	Timezone string `mapstructure:"timezone"`
	// Reviewer is the single identity whose approvals count.
	Reviewer string `mapstructure:"reviewer"`
}
