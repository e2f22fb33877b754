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

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/voluntold-service/internal/cache"
	"github.com/canonical/voluntold-service/internal/config"
	"github.com/canonical/voluntold-service/internal/db"
	"github.com/canonical/voluntold-service/internal/identity"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/mail"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/monitoring/prometheus"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/pkg/authentication"
	"github.com/canonical/voluntold-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// loadSpecs reads the environment, seeded from ENV_FILE when set. Variables
// already present in the environment win over the file.
func loadSpecs() (*config.EnvSpec, error) {
	if f := os.Getenv("ENV_FILE"); f != "" {
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

func newSender(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) mail.SenderInterface {
	if specs.SMTPHost == "" {
		logger.Warn("SMTP_HOST is not set, emails will only be logged")
		return mail.NewLogSender(logger)
	}

	return mail.NewSMTPSender(
		mail.SMTPConfig{
			Host:     specs.SMTPHost,
			Port:     specs.SMTPPort,
			Username: specs.SMTPUsername,
			Password: specs.SMTPPassword,
			From:     specs.MailFrom,
		},
		tracer,
		monitor,
		logger,
	)
}

func newAuthMiddleware(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	if !specs.AuthenticationEnabled {
		logger.Warnf("Authentication is disabled, admin endpoints trust the %s header from any caller, only run behind a proxy that sets it", identity.HeaderName)
		return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, nil
	}

	verifier, err := authentication.NewJWTAuthenticator(
		ctx,
		specs.AuthenticationIssuer,
		specs.AuthenticationJWKSURL,
		specs.AuthenticationAllowedSubjects,
		specs.AuthenticationRequiredScope,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("site origin %s, authentication enabled: %v", specs.SiteOrigin, specs.AuthenticationEnabled)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("voluntold-service", logger)
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

	cacheClient, err := cache.NewClient(
		cache.Config{Addr: specs.RedisAddr, Password: specs.RedisPassword, DB: specs.RedisDB},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %v", err)
	}
	defer cacheClient.Close()

	mailer := mail.NewMailer(newSender(specs, tracer, monitor, logger), tracer, monitor, logger)

	auth, err := newAuthMiddleware(context.Background(), specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %v", err)
	}

	router := web.NewRouter(
		web.Config{
			SiteOrigin:            specs.SiteOrigin,
			AllowedOrigins:        specs.CORSAllowedOrigins,
			InvitationLifetime:    specs.InvitationLifetime,
			PasswordResetLifetime: specs.PasswordResetLifetime,
			MagicLinkLifetime:     specs.MagicLinkLifetime,
		},
		s,
		dbClient,
		cacheClient,
		mailer,
		auth,
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

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
