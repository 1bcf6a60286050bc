// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const orgIDSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateOrgID derives an organization id from a company name: the slugified
// name plus a random 6-character suffix for uniqueness. An empty or
// all-symbol name slugs to "org".
func GenerateOrgID(name string) (string, error) {
	slug := slugify(name)
	if slug == "" {
		slug = "org"
	}

	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate org id suffix: %w", err)
	}
	for i, b := range suffix {
		suffix[i] = orgIDSuffixAlphabet[int(b)%len(orgIDSuffixAlphabet)]
	}

	return fmt.Sprintf("%s-%s", slug, suffix), nil
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
