package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config interface {
	EnvConfig
	ClientConfig
	SessionConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Client
	Session
}

// New returns a Config backed by environment variables only.
func New() Config {
	return newConfig(nil)
}

// Load returns a Config backed by environment variables, falling back to the flat
// KEY: value pairs of the YAML file at path. An empty path behaves like New.
func Load(path string) (Config, error) {
	if path == "" {
		return New(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load read %s: %w", path, err)
	}
	v := values{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("config.Load parse %s: %w", path, err)
	}
	return newConfig(v), nil
}

func newConfig(v values) Config {
	return mainConfig{
		EnvVars: EnvVars{v},
		Client:  Client{v},
		Session: Session{v},
	}
}
