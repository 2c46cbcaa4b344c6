// Package config loads runtime settings for the automatic game runner.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the runner and cmd need. Core packages take
// plain parameters; only the outer layers read this.
type Config struct {
	BoardRows   int
	BoardCols   int
	Players     int
	Strategy    string // "greedy" or "random"
	GamesToPlay int
	Threads     int
	OutputFile  string
	Debug       bool
}

// Load fills the config from defaults, an optional corners.yml in the
// working directory, and CORNERS_* environment variables, in increasing
// precedence.
func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("board-rows", 20)
	v.SetDefault("board-cols", 20)
	v.SetDefault("players", 4)
	v.SetDefault("strategy", "greedy")
	v.SetDefault("games-to-play", 1)
	v.SetDefault("threads", 1)
	v.SetDefault("output-file", "games.csv")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("corners")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("corners")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}

	c.BoardRows = v.GetInt("board-rows")
	c.BoardCols = v.GetInt("board-cols")
	c.Players = v.GetInt("players")
	c.Strategy = v.GetString("strategy")
	c.GamesToPlay = v.GetInt("games-to-play")
	c.Threads = v.GetInt("threads")
	c.OutputFile = v.GetString("output-file")
	c.Debug = v.GetBool("debug")
	return nil
}

// DefaultConfig is a ready-to-use config for tests.
var DefaultConfig = Config{
	BoardRows:   20,
	BoardCols:   20,
	Players:     4,
	Strategy:    "greedy",
	GamesToPlay: 1,
	Threads:     1,
	OutputFile:  "games.csv",
}
