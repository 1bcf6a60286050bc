// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
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
	"github.com/canonical/chatterfix/internal/validation"
	"github.com/canonical/chatterfix/pkg/assistant"
	"github.com/canonical/chatterfix/pkg/authentication"
	"github.com/canonical/chatterfix/pkg/cmms"
	"github.com/canonical/chatterfix/pkg/demo"
	"github.com/canonical/chatterfix/pkg/organization"
	"github.com/canonical/chatterfix/pkg/signup"
	"github.com/canonical/chatterfix/pkg/ui"
	"github.com/canonical/chatterfix/pkg/web"
	"github.com/canonical/chatterfix/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
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
		ofga := openfga.NewClient(
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
		)
		authorizer = authorization.NewAuthorizer(
			ofga,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(
		specs.KratosPublicURL,
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("JWT authentication is disabled, using noop verifier")
	}

	validator := validation.NewValidator()
	clk := clock.New()

	orgService := organization.NewService(s, authorizer, specs.PrivilegedGroup, tracer, monitor, logger)
	demoService := demo.NewService(s, orgService, kratosClient, authorizer, specs.DemoLifetime, clk, tracer, monitor, logger)
	signupService := signup.NewService(kratosClient, orgService, tracer, monitor, logger)
	cmmsService := cmms.NewService(s, authorizer, clk, tracer, monitor, logger)
	assistantService := assistant.NewService(s, authorizer, clk, tracer, monitor, logger)
	webhookService := webhooks.NewService(s, orgService, tracer, monitor, logger)

	adminAuth := authentication.NewMiddleware(verifier, tracer, monitor, logger)
	sessionAuth := authentication.NewSessionMiddleware(kratosClient, s, tracer, monitor, logger)

	router := web.NewRouter(
		organization.NewAPI(orgService, validator, logger),
		signup.NewAPI(signupService, demoService, validator, specs.CookieSecure, logger),
		cmms.NewAPI(cmmsService, validator),
		assistant.NewAPI(assistantService, validator),
		webhooks.NewAPI(webhookService, logger),
		ui.NewAPI(logger),
		adminAuth,
		sessionAuth,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
