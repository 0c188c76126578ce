package config

import (
	"os"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultDecimalPlaces = 16
	MaximumDecimalPlaces = 64
)

type Custom struct {
	Logger struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"logger"`
	Format struct {
		DecimalPlaces int32 `toml:"decimal-places"`
	} `toml:"format"`
}

func Default() *Custom {
	var config Custom
	config.fill()
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.fill()
	return &config, nil
}

func (c *Custom) fill() {
	if c.Logger.Level == 0 {
		c.Logger.Level = logger.INFO
	}
	if c.Format.DecimalPlaces <= 0 {
		c.Format.DecimalPlaces = DefaultDecimalPlaces
	}
	if c.Format.DecimalPlaces > MaximumDecimalPlaces {
		c.Format.DecimalPlaces = MaximumDecimalPlaces
	}
}
