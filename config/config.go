package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	S3         S3         `yaml:"s3"`
	Properties Properties `yaml:"properties"`
	Log        Log        `yaml:"log"`
	Server     Server     `yaml:"server"`
}

// Load reads the YAML file at path, when given, and then the environment.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
