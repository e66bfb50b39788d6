package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidAddr     = errors.New("server address is not specified")
	ErrInvalidDuration = errors.New("duration must be positive")
)

const (
	defaultAddr        = ":8080"
	defaultIdleTimeout = 15 * time.Minute
	defaultSweepPeriod = time.Minute
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type SessionsConfig struct {
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	SweepPeriod time.Duration `yaml:"sweep_period"`
}

type LogConfig struct {
	Development bool `yaml:"development"`
}

type config struct {
	Server   ServerConfig   `yaml:"server"`
	Sessions SessionsConfig `yaml:"sessions"`
	Log      LogConfig      `yaml:"log"`
}

func New(cfgPath string) (config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return config{}, err
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := defaults()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return config{}, errors.WithMessage(err, "decode yaml config")
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func defaults() config {
	return config{
		Server: ServerConfig{Addr: defaultAddr},
		Sessions: SessionsConfig{
			IdleTimeout: defaultIdleTimeout,
			SweepPeriod: defaultSweepPeriod,
		},
	}
}

func (c config) validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return ErrInvalidAddr
	}
	if c.Sessions.IdleTimeout <= 0 {
		return errors.WithMessage(ErrInvalidDuration, "sessions.idle_timeout")
	}
	if c.Sessions.SweepPeriod <= 0 {
		return errors.WithMessage(ErrInvalidDuration, "sessions.sweep_period")
	}
	return nil
}
