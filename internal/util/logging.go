package util

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger : dev-конфиг zap с ISO8601 временем, неизвестный уровень заменяется на info
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			fmt.Printf("неизвестный уровень логирования %q, используется info\n", level)
		}
	}

	return cfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// LogError : пишет ошибку в лог и возвращает её обёрнутой, sentinel-ошибки сохраняются для errors.Is
func LogError(message string, err error) error {
	zap.L().WithOptions(zap.AddCallerSkip(1)).Error(message, zap.Error(err))
	return fmt.Errorf("%s: %w", message, err)
}
