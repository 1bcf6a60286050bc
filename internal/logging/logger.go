// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

func NewLogger(level string) *Logger {
	logger := newZapLogger(level)

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      NewSecurityLogger(logger.Named("security")),
	}
}

func newZapLogger(level string) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(level)

	if err != nil {
		logLevel = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(logLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()

	if err != nil {
		panic(err.Error())
	}

	return logger
}
