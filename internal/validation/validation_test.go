// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"strings"
	"testing"
)

type signupPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Tier     string `validate:"omitempty,tier"`
}

func TestValidator_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		payload     signupPayload
		expectedErr string
	}{
		{
			name:    "valid payload",
			payload: signupPayload{Email: "joe@example.com", Password: "s3cretpass", Tier: "starter"},
		},
		{
			name:    "valid payload without tier",
			payload: signupPayload{Email: "joe@example.com", Password: "s3cretpass"},
		},
		{
			name:        "missing email",
			payload:     signupPayload{Password: "s3cretpass"},
			expectedErr: "email is required",
		},
		{
			name:        "malformed email",
			payload:     signupPayload{Email: "not-an-email", Password: "s3cretpass"},
			expectedErr: "email must be a valid email address",
		},
		{
			name:        "short password",
			payload:     signupPayload{Email: "joe@example.com", Password: "short"},
			expectedErr: "password must be at least 8 characters",
		},
		{
			name:        "unknown tier",
			payload:     signupPayload{Email: "joe@example.com", Password: "s3cretpass", Tier: "platinum"},
			expectedErr: "tier must be one of free, starter, professional, enterprise",
		},
		{
			name:        "multiple errors are joined",
			payload:     signupPayload{Password: "short"},
			expectedErr: "email is required, password must be at least 8 characters",
		},
	}

	v := NewValidator()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.payload)

			if tc.expectedErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error %q but got none", tc.expectedErr)
			}
			if !strings.Contains(err.Error(), tc.expectedErr) {
				t.Errorf("expected error to contain %q, got %q", tc.expectedErr, err.Error())
			}
		})
	}
}
