package config

import "time"

type Config interface {
	EnvConfig
	BackendConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetDataFolder() string
	GetCredentialsKey() string
	GetEnv() string
}

type BackendConfig interface {
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
}

type mainConfig struct {
	EnvVars
	Backend
}

func New() Config {
	return mainConfig{}
}
