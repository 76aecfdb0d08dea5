package logger

import (
	"go.uber.org/zap"
)

// New builds a zap logger for the given environment. Anything other than
// "development" gets the production config.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	return zap.NewProduction()
}
