// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrForbidden   = errors.New("permission denied")
	ErrRateLimited = errors.New("ai request limit reached")
)

const (
	intentWorkOrders = "work_orders"
	intentAssets     = "assets"
	intentParts      = "parts"
	intentPM         = "preventive_maintenance"
	intentGeneral    = "general"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}

// intentKeywords is matched in order, first hit wins.
var intentKeywords = []struct {
	intent   string
	keywords []string
}{
	{intentWorkOrders, []string{"work order", "work-order", "workorder", "repair", "ticket"}},
	{intentPM, []string{"preventive", "preventative", "maintenance schedule", "pm rule", "pm schedule"}},
	{intentAssets, []string{"asset", "equipment", "machine"}},
	{intentParts, []string{"part", "stock", "inventory", "spare"}},
}

func matchIntent(message string) string {
	msg := strings.ToLower(message)
	for _, candidate := range intentKeywords {
		for _, keyword := range candidate.keywords {
			if strings.Contains(msg, keyword) {
				return candidate.intent
			}
		}
	}

	return intentGeneral
}

// summarizeNames renders up to three names from the list, with a trailing
// count for the rest.
func summarizeNames(names []string) string {
	if len(names) <= 3 {
		return strings.Join(names, ", ")
	}

	return fmt.Sprintf("%s and %d more", strings.Join(names[:3], ", "), len(names)-3)
}
