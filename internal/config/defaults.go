package config

const (
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultFPS             = 60
	defaultKeyframes       = 10
	defaultWorkers         = 0 // GOMAXPROCS
	defaultOutputFormat    = "table"
	defaultColor           = "auto"
	defaultConfigPath      = "~/.config/tableau/config.toml"
	defaultProjectFileName = "tableau.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Sampling: Sampling{
			FPS:       defaultFPS,
			Keyframes: defaultKeyframes,
			Workers:   defaultWorkers,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultColor,
		},
	}
}
