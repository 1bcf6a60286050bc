// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events following the OWASP logging vocabulary,
// so they can be routed and retained independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthSuccess(identifier string) {
	s.l.Info("authentication success", zap.String("event", "authn_login_success"), zap.String("identifier", identifier))
}

func (s *SecurityLogger) AuthFailure(identifier, reason string) {
	s.l.Warn("authentication failure", zap.String("event", "authn_login_fail"), zap.String("identifier", identifier), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure", zap.String("event", "authz_fail"), zap.String("subject", subject), zap.String("action", action))
}

func NewSecurityLogger(logger *zap.Logger) *SecurityLogger {
	s := new(SecurityLogger)
	s.l = logger

	return s
}
