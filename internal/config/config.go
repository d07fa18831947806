package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string `envconfig:"COLLIDE2D_LOG_LEVEL" default:"info"`
	Workers  int    `envconfig:"COLLIDE2D_WORKERS" default:"4"`
	Format   string `envconfig:"COLLIDE2D_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
