// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package assistant answers chat messages with templated responses built
// from the organization's live maintenance data. Every request counts
// against the organization's daily AI quota.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/canonical/chatterfix/internal/authorization"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/authentication"
	"github.com/canonical/chatterfix/pkg/organization"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	clock   clock.Clock

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	clk clock.Clock,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		clock:   clk,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Chat matches the message against the intent table and renders the response
// from live counts. The usage counter is bumped first, so a rejected request
// still shows up in the day's tally.
func (s *Service) Chat(ctx context.Context, p *authentication.Principal, message string) (*ChatResponse, error) {
	ctx, span := s.tracer.Start(ctx, "assistant.Service.Chat")
	defer span.End()

	allowed, err := s.authz.CheckOrganizationAccess(ctx, p.OrganizationID, p.UserID, authorization.CAN_VIEW_PERMISSION)
	if err != nil {
		s.logger.Errorf("Failed to check access: %v", err)
		return nil, fmt.Errorf("failed to check access")
	}
	if !allowed {
		s.logger.Security().AuthzFailure(p.UserID, authorization.CAN_VIEW_PERMISSION)
		return nil, ErrForbidden
	}

	now := s.clock.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	used, err := s.storage.IncrementAIUsage(ctx, p.OrganizationID, day)
	if err != nil {
		s.logger.Errorf("Failed to increment AI usage: %v", err)
		return nil, fmt.Errorf("failed to process message")
	}

	limits, err := s.storage.GetRateLimits(ctx, p.OrganizationID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("Failed to get rate limits: %v", err)
		return nil, fmt.Errorf("failed to process message")
	}
	if limits != nil {
		if max, ok := limits.Limits[organization.LimitAIRequestsPerDay]; ok && used > max {
			return nil, ErrRateLimited
		}
	}

	intent := matchIntent(message)
	response, err := s.respond(ctx, p.OrganizationID, intent)
	if err != nil {
		s.logger.Errorf("Failed to build assistant response: %v", err)
		return nil, fmt.Errorf("failed to process message")
	}

	return &ChatResponse{Response: response, Intent: intent}, nil
}

func (s *Service) respond(ctx context.Context, orgID, intent string) (string, error) {
	switch intent {
	case intentWorkOrders:
		open, err := s.storage.CountWorkOrdersByStatus(ctx, orgID, types.WorkOrderStatusOpen)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Your organization has %d open work orders right now. You can create, assign and complete them from the dashboard.", open), nil

	case intentAssets:
		count, err := s.storage.CountAssetsByOrgID(ctx, orgID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("There are %d assets registered for your organization. Each one tracks its status and criticality, and work orders can reference it.", count), nil

	case intentParts:
		low, err := s.storage.ListLowStockParts(ctx, orgID)
		if err != nil {
			return "", err
		}
		if len(low) == 0 {
			return "All parts are stocked above their reorder thresholds.", nil
		}
		names := make([]string, 0, len(low))
		for _, part := range low {
			names = append(names, part.Name)
		}
		return fmt.Sprintf("%d parts are at or below their reorder threshold: %s. Consider restocking them soon.", len(low), summarizeNames(names)), nil

	case intentPM:
		rules, err := s.storage.ListActivePMScheduleRulesByOrgID(ctx, orgID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d preventive maintenance rules are active. Running due rules generates a work order for every rule whose interval has elapsed.", len(rules)), nil

	default:
		return "I can answer questions about work orders, assets, spare parts and preventive maintenance for your organization. Try asking about open work orders or low stock.", nil
	}
}
