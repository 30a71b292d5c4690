package config

// DefaultEnvFile is the env file used when none is configured
const DefaultEnvFile = ".env"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		EnvFile: DefaultEnvFile,
	}
}
