package config

// Config is the process-wide configuration handed to infra, repositories and
// controllers.
type Config struct {
	EnvConfig *EnvConfig
}

func NewConfig() (*Config, error) {
	envConfig, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	return &Config{EnvConfig: envConfig}, nil
}
