// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	// SiteOrigin is the public origin of the web application, used to build
	// every link sent by email or returned as a redirect
	SiteOrigin string `envconfig:"site_origin" default:"http://localhost:3000"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	InvitationLifetime    time.Duration `envconfig:"invitation_lifetime" default:"168h"`
	PasswordResetLifetime time.Duration `envconfig:"password_reset_lifetime" default:"1h"`
	MagicLinkLifetime     time.Duration `envconfig:"magic_link_lifetime" default:"15m"`

	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	MailFrom     string `envconfig:"mail_from" default:"no-reply@voluntold.org"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer  string `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL string `envconfig:"authentication_jwks_url"`
	// AuthenticationAllowedSubjects restricts which token subjects may call
	// admin endpoints, empty allows any
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope"`
}
