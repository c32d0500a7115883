package config

import (
	"os"
	"time"
)

const (
	appNameVar = "APP_NAME"
	envVar     = "ENV"

	// ConfigFileVar names the optional YAML file read by the CLI.
	ConfigFileVar = "HOTELADMIN_CONFIG"
)

// values holds settings read from a config file. Environment variables win.
type values map[string]string

func (v values) get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value, ok := v[key]; ok && value != "" {
		return value
	}
	return defaultValue
}

func (v values) duration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(v.get(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

type EnvVars struct {
	values
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetAppName() string {
	return e.get(appNameVar, "Hotel Admin")
}

func (e EnvVars) GetEnv() string {
	return e.get(envVar, "DEV")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
