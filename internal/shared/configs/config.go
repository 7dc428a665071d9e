package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Parser  ParserConfig  `mapstructure:"parser" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ParserConfig holds log parsing configuration.
type ParserConfig struct {
	Workers   int `mapstructure:"workers" validate:"required,min=1,max=64"` // concurrent file parsers
	QueueSize int `mapstructure:"queue_size" validate:"required,min=1"`     // pending file queue bound
}

// MetricsConfig holds the optional metrics endpoint configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"required_if=Enabled true,omitempty,min=1,max=65535"`
}
