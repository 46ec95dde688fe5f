package config

import (
	"goforum/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"FORUM_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"FORUM_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment преобразует строку режима в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}

// IsProduction сообщает, работает ли сервис в боевом режиме.
func (l *LoggingConfig) IsProduction() bool {
	return l.Mode == "production"
}
