// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package magiclink

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/voluntold-service/internal/cache"
	"github.com/canonical/voluntold-service/internal/mail"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package magiclink -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package magiclink -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package magiclink -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type testDeps struct {
	storage  *MockStorageInterface
	cache    *cache.MockCacheInterface
	mailer   *mail.MockMailerInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	d := &testDeps{
		storage:  NewMockStorageInterface(ctrl),
		cache:    cache.NewMockCacheInterface(ctrl),
		mailer:   mail.NewMockMailerInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	d.logger.EXPECT().Security().Return(d.security).AnyTimes()

	s := NewService(d.storage, d.cache, d.mailer, "https://voluntold.org", 15*time.Minute, tracer, NewMockMonitorInterface(ctrl), d.logger)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return s, d
}

func TestService_Issue(t *testing.T) {
	tenant := &types.Tenant{ID: "t1", Name: "Food Bank", Slug: "food-bank"}
	member := &types.Profile{ID: "p1", Email: "member@example.org", Role: types.RoleMember}

	testCases := []struct {
		name        string
		setupMocks  func(*testDeps)
		expectedErr error
		anyErr      bool
	}{
		{
			name: "success",
			setupMocks: func(d *testDeps) {
				d.storage.EXPECT().GetProfile(gomock.Any(), "member@example.org", types.RoleMember, gomock.Any()).Return(member, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), 15*time.Minute).DoAndReturn(
					func(_ context.Context, key string, value []byte, _ time.Duration) error {
						if !strings.HasPrefix(key, "magiclink:") {
							t.Errorf("unexpected key %q", key)
						}
						var l Link
						if err := json.Unmarshal(value, &l); err != nil || l.Email != "member@example.org" || l.TenantID != "t1" {
							t.Errorf("unexpected payload %s", value)
						}
						return nil
					},
				)
				d.mailer.EXPECT().SendMagicLink(gomock.Any(), "member@example.org", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, data mail.MagicLinkData) error {
						if !strings.HasPrefix(data.LinkURL, "https://voluntold.org/auth/magic/") {
							t.Errorf("unexpected link %q", data.LinkURL)
						}
						if !data.ExpiresAt.Equal(time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)) {
							t.Errorf("unexpected expiry %v", data.ExpiresAt)
						}
						return nil
					},
				)
				d.security.EXPECT().TokenIssued("member@example.org", "magic_link")
			},
		},
		{
			name: "not a member",
			setupMocks: func(d *testDeps) {
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNoMembership,
		},
		{
			name: "cache failure",
			setupMocks: func(d *testDeps) {
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(member, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			anyErr: true,
		},
		{
			name: "mail failure",
			setupMocks: func(d *testDeps) {
				d.storage.EXPECT().GetProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(member, nil)
				d.storage.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(tenant, nil)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.mailer.EXPECT().SendMagicLink(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			anyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, d := newTestService(ctrl)
			tc.setupMocks(d)

			msg, err := s.Issue(context.Background(), " Member@Example.org", "t1")

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
				if !strings.Contains(msg, "Food Bank") {
					t.Errorf("expected message to name the tenant, got %q", msg)
				}
			}
		})
	}
}

func TestService_Redeem(t *testing.T) {
	payload, _ := json.Marshal(Link{Email: "member@example.org", TenantID: "t1", TenantName: "Food Bank"})

	testCases := []struct {
		name        string
		token       string
		setupMocks  func(*testDeps)
		expectedErr error
		anyErr      bool
	}{
		{
			name:  "success",
			token: "abc",
			setupMocks: func(d *testDeps) {
				d.cache.EXPECT().GetDel(gomock.Any(), "magiclink:abc").Return(payload, nil)
				d.security.EXPECT().TokenRedeemed("member@example.org", "magic_link")
			},
		},
		{
			name:  "already used or expired",
			token: "abc",
			setupMocks: func(d *testDeps) {
				d.cache.EXPECT().GetDel(gomock.Any(), "magiclink:abc").Return(nil, cache.ErrCacheMiss)
				d.security.EXPECT().TokenRejected(gomock.Any())
			},
			expectedErr: ErrInvalidLink,
		},
		{
			name:        "empty token",
			token:       "",
			setupMocks:  func(*testDeps) {},
			expectedErr: ErrInvalidLink,
		},
		{
			name:  "cache failure",
			token: "abc",
			setupMocks: func(d *testDeps) {
				d.cache.EXPECT().GetDel(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
			},
			anyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, d := newTestService(ctrl)
			tc.setupMocks(d)

			link, err := s.Redeem(context.Background(), tc.token)

			switch {
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			case tc.anyErr:
				if err == nil || errors.Is(err, ErrInvalidLink) {
					t.Errorf("expected infrastructure error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if link.Email != "member@example.org" || link.TenantName != "Food Bank" {
					t.Errorf("unexpected link %+v", link)
				}
			}
		})
	}
}
