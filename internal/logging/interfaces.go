// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits the audit events the service is required to
// keep, separate from the operational log stream.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthSuccess(identifier string)
	AuthFailure(identifier, reason string)
	AuthzFailure(subject, action string)
}
