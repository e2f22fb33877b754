// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/voluntold-service/internal/authorization"
	"github.com/canonical/voluntold-service/internal/mail"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	storage  *MockStorageInterface
	tx       *MockTxRunnerInterface
	authz    *MockAuthorizerInterface
	mailer   *mail.MockMailerInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	d := &testDeps{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		authz:    NewMockAuthorizerInterface(ctrl),
		mailer:   mail.NewMockMailerInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	d.logger.EXPECT().Security().Return(d.security).AnyTimes()
	d.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	cfg := Config{
		SiteOrigin:            "https://voluntold.org",
		InvitationLifetime:    7 * 24 * time.Hour,
		PasswordResetLifetime: time.Hour,
	}

	s := NewService(d.storage, d.tx, d.authz, d.mailer, cfg, tracer, NewMockMonitorInterface(ctrl), d.logger)
	s.now = func() time.Time { return testNow }
	s.hashCost = bcrypt.MinCost

	return s, d
}

func strPtr(s string) *string { return &s }

func TestService_IssueInvitation(t *testing.T) {
	tenant := &types.Tenant{ID: "t1", Name: "Food Bank", Slug: "food-bank"}

	validRequest := func() *InvitationRequest {
		return &InvitationRequest{Email: "Admin@Example.org ", FirstName: "Ada", LastName: "Lovelace", TenantID: "t1"}
	}

	testCases := []struct {
		name        string
		principal   string
		req         *InvitationRequest
		setupMocks  func(*testing.T, *testDeps)
		expectedErr error
		anyErr      bool
	}{
		{
			name:      "success",
			principal: "owner@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.authz.EXPECT().Check(gomock.Any(), "owner@example.org", authorization.CAN_INVITE_PERMISSION, "t1").Return(true, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), "admin@example.org", types.RoleTenantAdmin, gomock.Any()).Return(nil, storage.ErrNotFound)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) {
						if tok.TokenType != types.TokenTypeInvitation {
							t.Errorf("expected invitation token, got %s", tok.TokenType)
						}
						if !tok.ExpiresAt.Equal(testNow.Add(7 * 24 * time.Hour)) {
							t.Errorf("unexpected expiry %v", tok.ExpiresAt)
						}
						if tok.CreatedBy == nil || *tok.CreatedBy != "owner@example.org" {
							t.Errorf("unexpected creator %v", tok.CreatedBy)
						}
						if len(tok.Token) < 32 {
							t.Errorf("token too short: %q", tok.Token)
						}
						return tok, nil
					},
				)
				d.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						if p.PasswordHash != nil {
							t.Error("invited admin must not have a credential")
						}
						if p.Role != types.RoleTenantAdmin || p.TenantID == nil || *p.TenantID != "t1" {
							t.Errorf("unexpected profile %+v", p)
						}
						return p, nil
					},
				)
				d.mailer.EXPECT().SendInvitation(gomock.Any(), "admin@example.org", gomock.Any()).Return(nil)
				d.security.EXPECT().TokenIssued("admin@example.org", "invitation")
				d.security.EXPECT().AdminAction("owner@example.org", "invite_admin", "tenant:t1", "success")
			},
		},
		{
			name:      "mail failure still succeeds",
			principal: "owner@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.authz.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) { return tok, nil },
				)
				d.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) { return p, nil },
				)
				d.mailer.EXPECT().SendInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
				d.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(1)
				d.security.EXPECT().TokenIssued(gomock.Any(), gomock.Any())
				d.security.EXPECT().AdminAction(gomock.Any(), gomock.Any(), gomock.Any(), "success")
			},
		},
		{
			name:        "unauthenticated",
			principal:   "",
			req:         validRequest(),
			setupMocks:  func(*testing.T, *testDeps) {},
			expectedErr: ErrUnauthenticated,
		},
		{
			name:      "member role cannot be invited",
			principal: "owner@example.org",
			req: &InvitationRequest{
				Email: "admin@example.org", FirstName: "Ada", LastName: "Lovelace", TenantID: "t1", Role: types.RoleMember,
			},
			setupMocks:  func(*testing.T, *testDeps) {},
			expectedErr: ErrValidation,
		},
		{
			name:      "insufficient permissions",
			principal: "member@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.authz.EXPECT().Check(gomock.Any(), "member@example.org", authorization.CAN_INVITE_PERMISSION, "t1").Return(false, nil)
				d.security.EXPECT().AdminAction("member@example.org", "invite_admin", "tenant:t1", "denied")
			},
			expectedErr: ErrInsufficientPermissions,
		},
		{
			name:      "unknown tenant",
			principal: "root@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.authz.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidTenant,
		},
		{
			name:      "admin already exists",
			principal: "owner@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.authz.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), "admin@example.org", types.RoleTenantAdmin, gomock.Any()).Return(&types.Profile{ID: "p1"}, nil)
			},
			expectedErr: ErrConflict,
		},
		{
			name:      "profile failure deletes the token",
			principal: "owner@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				var issued string
				d.authz.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) {
						issued = tok.Token
						return tok, nil
					},
				)
				d.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				d.storage.EXPECT().DeleteAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, token string) error {
						if token != issued {
							t.Errorf("expected %q to be deleted, got %q", issued, token)
						}
						return nil
					},
				)
			},
			anyErr: true,
		},
		{
			name:      "concurrent duplicate maps to conflict",
			principal: "owner@example.org",
			req:       validRequest(),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.authz.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) { return tok, nil },
				)
				d.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				d.storage.EXPECT().DeleteAdminToken(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedErr: ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, d := newTestService(ctrl)
			tc.setupMocks(t, d)

			res, err := s.IssueInvitation(context.Background(), tc.principal, tc.req)

			switch {
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			case tc.anyErr:
				if err == nil {
					t.Error("expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !res.Success || !strings.HasPrefix(res.InvitationURL, "https://voluntold.org/admin/setup/") {
					t.Errorf("unexpected result %+v", res)
				}
			}
		})
	}
}

func TestService_IssuePasswordResetIsGeneric(t *testing.T) {
	t1, t2 := "t1", "t2"
	twoTenants := []*types.ProfileWithTenant{
		{Profile: types.Profile{Email: "admin@example.org", Role: types.RoleTenantAdmin, TenantID: &t1}, Tenant: &types.Tenant{ID: t1, Name: "Food Bank"}},
		{Profile: types.Profile{Email: "admin@example.org", Role: types.RoleTenantAdmin, TenantID: &t2}, Tenant: &types.Tenant{ID: t2, Name: "Shelter"}},
	}

	testCases := []struct {
		name       string
		tenantID   *string
		setupMocks func(*testing.T, *testDeps)
	}{
		{
			name: "no admin",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), "admin@example.org").Return(nil, nil)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
		},
		{
			name: "lookup failure",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				d.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "several admins picks the first",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return(twoTenants, nil)
				d.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) {
						if tok.TenantID == nil || *tok.TenantID != "t1" {
							t.Errorf("expected token for t1, got %v", tok.TenantID)
						}
						if tok.CreatedBy != nil {
							t.Error("self-initiated reset must have no creator")
						}
						if tok.TokenType != types.TokenTypePasswordReset || !tok.ExpiresAt.Equal(testNow.Add(time.Hour)) {
							t.Errorf("unexpected token %+v", tok)
						}
						return tok, nil
					},
				)
				d.mailer.EXPECT().SendPasswordReset(gomock.Any(), "admin@example.org", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, data mail.PasswordResetData) error {
						if data.TenantName != "Food Bank" {
							t.Errorf("unexpected tenant %q", data.TenantName)
						}
						return nil
					},
				)
				d.security.EXPECT().TokenIssued("admin@example.org", "password_reset")
			},
		},
		{
			name:     "scoped to a tenant",
			tenantID: &t2,
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return(twoTenants, nil)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) {
						if tok.TenantID == nil || *tok.TenantID != "t2" {
							t.Errorf("expected token for t2, got %v", tok.TenantID)
						}
						return tok, nil
					},
				)
				d.mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.security.EXPECT().TokenIssued(gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "scoped to a tenant it does not administer",
			tenantID: strPtr("t3"),
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return(twoTenants, nil)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
		},
		{
			name: "token failure",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return(twoTenants[:1], nil)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				d.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "mail failure",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return(twoTenants[:1], nil)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) { return tok, nil },
				)
				d.mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
				d.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "super admin",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().ListAdminProfilesByEmail(gomock.Any(), gomock.Any()).Return([]*types.ProfileWithTenant{
					{Profile: types.Profile{Email: "admin@example.org", Role: types.RoleSuperAdmin}},
				}, nil)
				d.storage.EXPECT().CreateAdminToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.AdminToken) (*types.AdminToken, error) {
						if tok.TenantID != nil {
							t.Errorf("expected tenant-less token, got %v", *tok.TenantID)
						}
						return tok, nil
					},
				)
				d.mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.security.EXPECT().TokenIssued(gomock.Any(), gomock.Any())
			},
		},
	}

	expected := PasswordResetResult{Success: true, Message: PasswordResetRequestedMessage}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, d := newTestService(ctrl)
			tc.setupMocks(t, d)

			res := s.IssuePasswordReset(context.Background(), "ADMIN@example.org", tc.tenantID)
			if res == nil || *res != expected {
				t.Errorf("expected %+v, got %+v", expected, res)
			}
		})
	}
}

func invitationToken() *types.AdminToken {
	tenantID := "t1"
	return &types.AdminToken{
		Token:      "tok",
		AdminEmail: "admin@example.org",
		TenantID:   &tenantID,
		TokenType:  types.TokenTypeInvitation,
		ExpiresAt:  testNow.Add(time.Hour),
	}
}

func TestService_RedeemToken(t *testing.T) {
	tenant := &types.Tenant{ID: "t1", Name: "Food Bank", Slug: "food-bank"}

	testCases := []struct {
		name            string
		password        string
		setupMocks      func(*testing.T, *testDeps)
		expectedErr     error
		anyErr          bool
		expectedMessage string
	}{
		{
			name:     "invitation",
			password: "LongEnough1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(invitationToken(), nil)
				d.storage.EXPECT().ConsumeAdminToken(gomock.Any(), "tok", testNow).Return(nil)
				d.storage.EXPECT().UpdateAdminPasswordHash(gomock.Any(), "admin@example.org", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, _ *string, hash string) error {
						if bcrypt.CompareHashAndPassword([]byte(hash), []byte("LongEnough1!")) != nil {
							t.Error("stored hash does not match the password")
						}
						return nil
					},
				)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.security.EXPECT().TokenRedeemed("admin@example.org", "invitation")
			},
			expectedMessage: AccountSetUpMessage,
		},
		{
			name:     "password reset",
			password: "LongEnough1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				tok := invitationToken()
				tok.TokenType = types.TokenTypePasswordReset
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(tok, nil)
				d.storage.EXPECT().ConsumeAdminToken(gomock.Any(), "tok", gomock.Any()).Return(nil)
				d.storage.EXPECT().UpdateAdminPasswordHash(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.security.EXPECT().TokenRedeemed("admin@example.org", "password_reset")
			},
			expectedMessage: PasswordResetMessage,
		},
		{
			name:        "weak password never touches the store",
			password:    "short",
			setupMocks:  func(*testing.T, *testDeps) {},
			expectedErr: ErrWeakPassword,
		},
		{
			name:        "overlong password",
			password:    strings.Repeat("a", MaxPasswordLength+1),
			setupMocks:  func(*testing.T, *testDeps) {},
			expectedErr: ErrWeakPassword,
		},
		{
			name:     "unknown token",
			password: "LongEnough1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:     "already used",
			password: "AnotherPass1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				tok := invitationToken()
				tok.IsUsed = true
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(tok, nil)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:     "expired but unused",
			password: "LongEnough1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				tok := invitationToken()
				tok.ExpiresAt = testNow.Add(-time.Second)
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(tok, nil)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
			expectedErr: ErrTokenExpired,
		},
		{
			name:     "consumed by a concurrent request",
			password: "LongEnough1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(invitationToken(), nil)
				d.storage.EXPECT().ConsumeAdminToken(gomock.Any(), "tok", gomock.Any()).Return(storage.ErrNotFound)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:     "password update failure rolls back",
			password: "LongEnough1!",
			setupMocks: func(t *testing.T, d *testDeps) {
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(invitationToken(), nil)
				d.storage.EXPECT().ConsumeAdminToken(gomock.Any(), "tok", gomock.Any()).Return(nil)
				d.storage.EXPECT().UpdateAdminPasswordHash(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			anyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, d := newTestService(ctrl)
			tc.setupMocks(t, d)

			res, err := s.RedeemToken(context.Background(), "tok", tc.password)

			switch {
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			case tc.anyErr:
				if err == nil {
					t.Error("expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Message != tc.expectedMessage {
					t.Errorf("expected message %q, got %q", tc.expectedMessage, res.Message)
				}
				if res.Tenant == nil || res.Tenant.Slug != "food-bank" {
					t.Errorf("unexpected tenant %+v", res.Tenant)
				}
			}
		})
	}
}

func TestService_RedeemTokenConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, d := newTestService(ctrl)

	var consumed atomic.Int32

	d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(invitationToken(), nil).Times(2)
	d.storage.EXPECT().ConsumeAdminToken(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
		func(context.Context, string, time.Time) error {
			if consumed.Add(1) > 1 {
				return storage.ErrNotFound
			}
			return nil
		},
	).Times(2)
	d.storage.EXPECT().UpdateAdminPasswordHash(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&types.Tenant{ID: "t1"}, nil).Times(1)
	d.security.EXPECT().TokenRedeemed(gomock.Any(), gomock.Any()).Times(1)
	d.security.EXPECT().TokenRejected(gomock.Any()).Times(1)

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RedeemToken(context.Background(), "tok", "LongEnough1!")
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	successes, invalid := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrInvalidToken):
			invalid++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if successes != 1 || invalid != 1 {
		t.Errorf("expected one success and one rejection, got %d and %d", successes, invalid)
	}
}

func TestService_GetTokenInfo(t *testing.T) {
	testCases := []struct {
		name        string
		token       string
		setupMocks  func(*testDeps)
		expectedErr error
		check       func(*testing.T, *TokenInfo)
	}{
		{
			name:  "invitation",
			token: "tok",
			setupMocks: func(d *testDeps) {
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(invitationToken(), nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), "admin@example.org", types.RoleTenantAdmin, gomock.Any()).Return(
					&types.Profile{Email: "admin@example.org", FirstName: "Ada", LastName: "Lovelace"}, nil,
				)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&types.Tenant{ID: "t1", Name: "T1", Slug: "t1"}, nil)
			},
			check: func(t *testing.T, info *TokenInfo) {
				if info.TokenType != types.TokenTypeInvitation || info.Tenant == nil || info.Tenant.Name != "T1" {
					t.Errorf("unexpected info %+v", info)
				}
				if info.AdminInfo.FirstName != "Ada" {
					t.Errorf("unexpected admin %+v", info.AdminInfo)
				}
			},
		},
		{
			name:  "super admin reset has no tenant",
			token: "tok",
			setupMocks: func(d *testDeps) {
				tok := invitationToken()
				tok.TenantID = nil
				tok.TokenType = types.TokenTypePasswordReset
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(tok, nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), "admin@example.org", types.RoleSuperAdmin, nil).Return(
					&types.Profile{Email: "admin@example.org"}, nil,
				)
			},
			check: func(t *testing.T, info *TokenInfo) {
				if info.Tenant != nil {
					t.Errorf("expected no tenant, got %+v", info.Tenant)
				}
			},
		},
		{
			name:        "empty token",
			token:       "",
			setupMocks:  func(*testDeps) {},
			expectedErr: ErrInvalidToken,
		},
		{
			name:  "expired",
			token: "tok",
			setupMocks: func(d *testDeps) {
				tok := invitationToken()
				tok.ExpiresAt = testNow.Add(-time.Minute)
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(tok, nil)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
			expectedErr: ErrTokenExpired,
		},
		{
			name:  "admin removed",
			token: "tok",
			setupMocks: func(d *testDeps) {
				d.storage.EXPECT().GetAdminToken(gomock.Any(), "tok").Return(invitationToken(), nil)
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, d := newTestService(ctrl)
			tc.setupMocks(d)

			info, err := s.GetTokenInfo(context.Background(), tc.token)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, info)
		})
	}
}
