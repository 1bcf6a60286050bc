// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/influxdata/cron"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/chatterfix/internal/authorization"
	"github.com/canonical/chatterfix/internal/config"
	"github.com/canonical/chatterfix/internal/db"
	"github.com/canonical/chatterfix/internal/kratos"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring/prometheus"
	"github.com/canonical/chatterfix/internal/openfga"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/pkg/demo"
	"github.com/canonical/chatterfix/pkg/organization"
)

var cleanupSchedule string

var cleanupCmd = &cobra.Command{
	Use:   "cleanup-demos",
	Short: "Delete expired demo organizations",
	Long: `Scan for demo organizations whose expiry has passed and delete them.
By default the sweep runs once and exits. With --schedule the command keeps
running and sweeps on the given cron expression.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cleanupDemos(cmd.Context())
	},
}

func init() {
	cleanupCmd.Flags().StringVar(&cleanupSchedule, "schedule", "", "Cron expression, e.g. \"0 * * * *\" for hourly sweeps")
	rootCmd.AddCommand(cleanupCmd)
}

func cleanupDemos(ctx context.Context) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %s", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("chatterfix", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		authorizer = authorization.NewAuthorizer(
			openfga.NewClient(
				openfga.NewConfig(
					specs.OpenfgaApiScheme,
					specs.OpenfgaApiHost,
					specs.OpenfgaStoreId,
					specs.OpenfgaApiToken,
					specs.OpenfgaModelId,
					specs.Debug,
					tracer,
					monitor,
					logger,
				),
			),
			tracer,
			monitor,
			logger,
		)
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
	}

	kratosClient := kratos.NewClient(
		specs.KratosPublicURL,
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	clk := clock.New()
	orgService := organization.NewService(s, authorizer, specs.PrivilegedGroup, tracer, monitor, logger)
	demoService := demo.NewService(s, orgService, kratosClient, authorizer, specs.DemoLifetime, clk, tracer, monitor, logger)

	if cleanupSchedule == "" {
		return sweep(ctx, demoService)
	}

	parsed, err := cron.ParseUTC(cleanupSchedule)
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cleanupSchedule, err)
	}

	logger.Infof("Sweeping expired demos on schedule %q", cleanupSchedule)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	for {
		next, err := parsed.Next(clk.Now())
		if err != nil {
			return fmt.Errorf("failed to compute next run: %w", err)
		}

		timer := clk.Timer(next.Sub(clk.Now()))
		select {
		case <-timer.C:
			// Sweep failures are logged and retried on the next tick.
			if err := sweep(ctx, demoService); err != nil {
				logger.Errorf("Sweep failed: %v", err)
			}
		case <-c:
			timer.Stop()
			logger.Info("Shutting down cleanup loop")
			return nil
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func sweep(ctx context.Context, demos demo.ServiceInterface) error {
	report, err := demos.Cleanup(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Scanned %d expired demos: deleted %d, failed %d in %s\n",
		report.Scanned, report.Deleted, report.Failed, report.Elapsed)
	return nil
}
