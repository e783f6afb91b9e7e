// Package logger builds the application logger from the environment.
package logger

import (
	"log"

	"kwlab-go-backend/config"

	"go.uber.org/zap"
)

// New returns a sugared logger: JSON in production and staging,
// human-readable everywhere else.
func New() *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)
	switch config.C.AppEnv {
	case config.Production, config.Staging:
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return l.Sugar()
}
