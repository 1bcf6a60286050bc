// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/internal/types"
)

type Service struct {
	storage         StorageInterface
	authz           AuthzInterface
	privilegedGroup string
	tracer          tracing.TracingInterface
	monitor         monitoring.MonitorInterface
	logger          logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	privilegedGroup string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         storage,
		authz:           authz,
		privilegedGroup: privilegedGroup,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// Bootstrap provisions an organization: the organization row, its
// tier-derived rate limits, the owner's user row, and optionally the sample
// catalog. It is idempotent: when the organization already exists and force
// is false, the existing summary is returned and nothing is written.
func (s *Service) Bootstrap(ctx context.Context, orgID string, req *BootstrapRequest, force bool) (*BootstrapResult, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Bootstrap")
	defer span.End()

	if orgID == "" {
		return nil, fmt.Errorf("org id is empty")
	}

	// 1. Idempotency check
	existing, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("Failed to check organization existence: %v", err)
		return nil, fmt.Errorf("failed to check organization")
	}

	if existing != nil && !force {
		return &BootstrapResult{
			OrgID:          existing.ID,
			Name:           existing.Name,
			Tier:           existing.Tier,
			AlreadyExisted: true,
			Created:        []string{},
		}, nil
	}

	tier := req.Tier
	if tier == "" {
		tier = DefaultTier
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	result := &BootstrapResult{
		OrgID:   orgID,
		Name:    req.Name,
		Tier:    tier,
		Created: []string{},
	}

	// 2. Write the organization row, overwriting on force
	org := &types.Organization{
		ID:        orgID,
		Name:      req.Name,
		Tier:      tier,
		Status:    types.OrgStatusActive,
		Timezone:  timezone,
		CreatedBy: req.OwnerID,
	}

	if existing != nil {
		result.AlreadyExisted = true
		if err := s.storage.UpdateOrganization(ctx, org, []string{"name", "tier", "timezone"}); err != nil {
			s.logger.Errorf("Failed to overwrite organization: %v", err)
			return nil, fmt.Errorf("failed to overwrite organization")
		}
	} else {
		if _, err := s.storage.CreateOrganization(ctx, org); err != nil {
			s.logger.Errorf("Failed to create organization: %v", err)
			return nil, fmt.Errorf("failed to create organization")
		}
	}
	result.Created = append(result.Created, "organization")

	// 3. Rate limits are recomputed from the tier table on every write
	limits := &types.RateLimits{
		OrgID:  orgID,
		Tier:   tier,
		Limits: LimitsForTier(tier),
	}
	if err := s.storage.UpsertRateLimits(ctx, limits); err != nil {
		s.logger.Errorf("Failed to write rate limits: %v", err)
		return nil, fmt.Errorf("failed to write rate limits")
	}
	result.Created = append(result.Created, "rate_limits")

	// 4. Merge the owner's user row when the caller identified one
	if req.OwnerID != "" {
		owner := &types.User{
			OrgID:            orgID,
			KratosIdentityID: req.OwnerID,
			Email:            req.OwnerEmail,
			FullName:         req.OwnerName,
			Role:             types.RoleOwner,
			Status:           types.UserStatusActive,
		}
		if _, err := s.storage.UpsertUser(ctx, owner); err != nil {
			s.logger.Errorf("Failed to write owner user: %v", err)
			return nil, fmt.Errorf("failed to write owner user")
		}
		result.Created = append(result.Created, "owner_user")

		if err := s.authz.AssignOrganizationOwner(ctx, orgID, req.OwnerID); err != nil {
			s.logger.Errorf("Failed to assign organization owner in authz: %v", err)
			return nil, fmt.Errorf("failed to assign permissions")
		}
	}

	if err := s.authz.LinkOrganizationToPrivileged(ctx, orgID, s.privilegedGroup); err != nil {
		s.logger.Errorf("Failed to link organization to privileged group: %v", err)
		return nil, fmt.Errorf("failed to assign permissions")
	}

	// 5. Optional sample catalog
	if req.IncludeSampleData {
		assets, rules, err := s.seedSampleData(ctx, orgID)
		if err != nil {
			s.logger.Errorf("Failed to seed sample data: %v", err)
			return nil, fmt.Errorf("failed to seed sample data")
		}
		result.SampleAssets = assets
		result.SamplePMRules = rules
		result.Created = append(result.Created, "sample_data")
	}

	s.logger.Infof("Bootstrapped organization %s (tier %s)", orgID, tier)
	return result, nil
}

func (s *Service) seedSampleData(ctx context.Context, orgID string) (int, int, error) {
	var firstAssetID string

	assets := sampleAssets(orgID)
	for i, asset := range assets {
		created, err := s.storage.CreateAsset(ctx, asset)
		if err != nil {
			return 0, 0, err
		}
		if i == 0 {
			firstAssetID = created.ID
		}
	}

	rules := samplePMRules(orgID, firstAssetID)
	for _, rule := range rules {
		if _, err := s.storage.CreatePMScheduleRule(ctx, rule); err != nil {
			return 0, 0, err
		}
	}

	return len(assets), len(rules), nil
}

// Status reports "ready" with the organization's tier, limits and child-row
// counts when the organization exists, and ErrNotFound when it does not.
func (s *Service) Status(ctx context.Context, orgID string) (*StatusResult, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Status")
	defer span.End()

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get organization: %v", err)
		return nil, fmt.Errorf("failed to get organization")
	}

	result := &StatusResult{
		OrgID:     org.ID,
		Status:    "ready",
		Name:      org.Name,
		Tier:      org.Tier,
		Timezone:  org.Timezone,
		IsDemo:    org.IsDemo,
		ExpiresAt: org.DemoExpiresAt,
		CreatedAt: org.CreatedAt,
	}

	limits, err := s.storage.GetRateLimits(ctx, orgID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("Failed to get rate limits: %v", err)
			return nil, fmt.Errorf("failed to get rate limits")
		}
		// an organization without a rate-limit row is still ready
		s.logger.Warnf("Organization %s has no rate limits", orgID)
	} else {
		result.Limits = limits.Limits
	}

	counts := map[string]int64{}
	for _, c := range []struct {
		table string
		count func(context.Context, string) (int64, error)
	}{
		{"users", s.storage.CountUsersByOrgID},
		{"assets", s.storage.CountAssetsByOrgID},
		{"parts", s.storage.CountPartsByOrgID},
		{"work_orders", s.storage.CountWorkOrdersByOrgID},
		{"pm_schedule_rules", s.storage.CountPMScheduleRulesByOrgID},
	} {
		n, err := c.count(ctx, orgID)
		if err != nil {
			s.logger.Errorf("Failed to count %s: %v", c.table, err)
			return nil, fmt.Errorf("failed to count child documents")
		}
		counts[c.table] = n
	}
	result.Counts = counts

	return result, nil
}

// Delete removes the organization and every row tagged with its id. It
// refuses to act without explicit confirmation. The OpenFGA tuple sweep runs
// after the storage cascade and is logged rather than failed on error, the
// next delete attempt re-runs it.
func (s *Service) Delete(ctx context.Context, orgID string, confirm bool) (*DeleteResult, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Delete")
	defer span.End()

	if !confirm {
		return nil, ErrConfirmationRequired
	}

	if _, err := s.storage.GetOrganizationByID(ctx, orgID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get organization: %v", err)
		return nil, fmt.Errorf("failed to get organization")
	}

	deleted := map[string]int64{}

	// children first, the organization row last
	for _, step := range []struct {
		table  string
		delete func(context.Context, string) (int64, error)
	}{
		{"work_orders", s.storage.DeleteWorkOrdersByOrgID},
		{"pm_schedule_rules", s.storage.DeletePMScheduleRulesByOrgID},
		{"assets", s.storage.DeleteAssetsByOrgID},
		{"parts", s.storage.DeletePartsByOrgID},
		{"ai_usage", s.storage.DeleteAIUsageByOrgID},
		{"users", s.storage.DeleteUsersByOrgID},
		{"rate_limits", s.storage.DeleteRateLimits},
	} {
		n, err := step.delete(ctx, orgID)
		if err != nil {
			s.logger.Errorf("Failed to delete %s: %v", step.table, err)
			return nil, fmt.Errorf("failed to delete organization documents")
		}
		deleted[step.table] = n
	}

	if err := s.storage.DeleteOrganization(ctx, orgID); err != nil {
		s.logger.Errorf("Failed to delete organization: %v", err)
		return nil, fmt.Errorf("failed to delete organization")
	}
	deleted["organizations"] = 1

	if err := s.authz.DeleteOrganization(ctx, orgID); err != nil {
		s.logger.Errorf("Failed to delete authorization tuples for organization %s: %v", orgID, err)
	}

	s.logger.Infof("Deleted organization %s", orgID)
	return &DeleteResult{OrgID: orgID, Deleted: deleted}, nil
}
