package config

import "github.com/bnema/xiboic/internal/domain/entity"

const (
	defaultProtocol      = "http"
	defaultHostName      = "localhost"
	defaultPort          = "9696"
	defaultEvalTimeoutMs = 2000
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			Protocol:  defaultProtocol,
			HostName:  defaultHostName,
			Port:      defaultPort,
			TimeoutMs: int(entity.DefaultRequestTimeout.Milliseconds()),
			Headers:   []entity.Header{},
		},
		Widget: WidgetConfig{},
		Preview: PreviewConfig{
			EvalTimeoutMs: defaultEvalTimeoutMs,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
	}
}
