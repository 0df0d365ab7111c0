package config

import (
	"errors"
	"os"
	"quicksandpoker/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for QuickSand Poker
type Config struct {
	loaded        bool
	StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
	Opponents     int `yaml:"opponents" envconfig:"opponents"`
	Equity        struct {
		Trials  int `yaml:"trials" envconfig:"trials"`
		Workers int `yaml:"workers" envconfig:"workers"`
	}
	Log struct {
		Level string `yaml:"level" envconfig:"level"`
	}
}

var config Config

// Default returns the out-of-the-box configuration
func Default() Config {
	c := Config{
		StartingChips: 1000,
		SmallBlind:    5,
		BigBlind:      10,
		Opponents:     3,
	}
	c.Equity.Trials = 1000
	c.Equity.Workers = 4

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults are used and the
// environment may still override them.
func Load() error {
	config = Default()

	configFile := util.Getenv("QSP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("qsp", &config); err != nil {
		return err
	}

	if err := config.Validate(); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// Validate ensures the configuration describes a playable table
func (c Config) Validate() error {
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return errors.New("blinds must be greater than zero")
	}

	if c.SmallBlind >= c.BigBlind {
		return errors.New("small blind must be less than the big blind")
	}

	if c.StartingChips < c.BigBlind*10 {
		return errors.New("starting chips must be at least ten big blinds")
	}

	if c.Opponents < 1 || c.Opponents > 8 {
		return errors.New("opponents must be between 1 and 8")
	}

	if c.Equity.Trials < 1 {
		return errors.New("equity trials must be at least 1")
	}

	if c.Equity.Workers < 1 {
		return errors.New("equity workers must be at least 1")
	}

	return nil
}
