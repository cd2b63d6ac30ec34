package config

const (
	defaultConfigPath  = "~/.config/trackmux/config.toml"
	projectConfigName  = "trackmux.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultWorkdirLock = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Workdir: Workdir{
			Lock: defaultWorkdirLock,
		},
	}
}
