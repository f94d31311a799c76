package config

import "github.com/spf13/viper"

type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Input:  "scoreconf.yml",
		Output: "scoring-engine.yml",
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
