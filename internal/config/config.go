package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"nolimitholdem-server/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Token struct {
		Secret string `yaml:"secret" envconfig:"secret"`
	} `yaml:"token"`
	Game struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
		BotSeats      int `yaml:"botSeats" envconfig:"bot_seats"`
	} `yaml:"game"`
}

var config Config

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
// A missing config file is not an error; defaults and environment variables apply
func Load() error {
	config = defaults()

	configFile := util.Getenv("NLH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("nlh", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	var c Config
	c.Addr = ":5000"
	c.Log.Level = "info"
	c.Game.SmallBlind = 25
	c.Game.BigBlind = 50
	c.Game.StartingStack = 5000
	c.Game.BotSeats = 3
	return c
}
