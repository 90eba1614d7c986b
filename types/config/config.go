package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	Settings Reload        `yaml:"settings"`
	HTTP     HTTP          `yaml:"http"`
	Steam    Steam         `yaml:"steam"`
}

func GetDefaultConfig() *Config {
	watch := true
	return &Config{
		Logging: LoggingConfig{
			Console: ConsoleLogging{
				Level: zerolog.InfoLevel,
			},
			File: FileLogging{
				Directory: "logs",
				Level:     zerolog.DebugLevel,
			},
		},
		Settings: Reload{
			Path:     "discordConfig.json",
			Watch:    &watch,
			Interval: "@hourly",
		},
		HTTP: HTTP{
			TimeoutSeconds: 10,
		},
		Steam: Steam{
			ProfileUrl: "https://steamcommunity.com/profiles/",
		},
	}
}

func (c *Config) ReadConfigIfFound(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// If file does not exist, just return that all went fine
		return nil
	}

	if info.IsDir() {
		// path points to a directory
		return errors.New("given path is a directory, expected a file")
	}

	file, err := os.ReadFile(path)
	if err != nil {
		// file cannot be read
		return err
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		// yaml parser failed
		return err
	}

	return nil
}
