// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/voluntold-service/internal/authorization"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/mail"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/tokens"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	SiteOrigin            string
	InvitationLifetime    time.Duration
	PasswordResetLifetime time.Duration
}

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	authz   AuthorizerInterface
	mailer  mail.MailerInterface

	cfg      Config
	hashCost int
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IssueInvitation creates a credential-less admin profile for the invitee and
// mails them a setup link. The mail is best effort.
func (s *Service) IssueInvitation(ctx context.Context, principal string, req *InvitationRequest) (*InvitationResult, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.IssueInvitation")
	defer span.End()

	if principal == "" {
		return nil, ErrUnauthenticated
	}

	role := req.Role
	if role == "" {
		role = types.RoleTenantAdmin
	}
	if role != types.RoleTenantAdmin {
		return nil, fmt.Errorf("%w: only %s can be invited", ErrValidation, types.RoleTenantAdmin)
	}

	email := types.NormalizeEmail(req.Email)
	if email == "" || req.TenantID == "" {
		return nil, fmt.Errorf("%w: email and tenant are required", ErrValidation)
	}

	allowed, err := s.authz.Check(ctx, principal, authorization.CAN_INVITE_PERMISSION, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		s.logger.Security().AdminAction(principal, "invite_admin", "tenant:"+req.TenantID, "denied")
		return nil, ErrInsufficientPermissions
	}

	tenant, err := s.storage.GetTenantByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidTenant
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	_, err = s.storage.GetProfile(ctx, email, role, &tenant.ID)
	switch {
	case err == nil:
		return nil, ErrConflict
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}

	token, err := tokens.Generate()
	if err != nil {
		return nil, err
	}

	creator := principal
	adminToken, err := s.storage.CreateAdminToken(ctx, &types.AdminToken{
		Token:      token,
		AdminEmail: email,
		TenantID:   &tenant.ID,
		TokenType:  types.TokenTypeInvitation,
		CreatedBy:  &creator,
		ExpiresAt:  s.now().Add(s.cfg.InvitationLifetime),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation token: %w", err)
	}

	_, err = s.storage.CreateProfile(ctx, &types.Profile{
		Email:     email,
		Role:      role,
		TenantID:  &tenant.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if dErr := s.storage.DeleteAdminToken(ctx, token); dErr != nil {
			s.logger.Errorf("failed to delete orphaned invitation token: %v", dErr)
		}

		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create admin profile: %w", err)
	}

	setupURL := s.setupURL(token)

	err = s.mailer.SendInvitation(ctx, email, mail.InvitationData{
		FirstName:  req.FirstName,
		TenantName: tenant.Name,
		InvitedBy:  principal,
		SetupURL:   setupURL,
		ExpiresAt:  adminToken.ExpiresAt,
	})
	if err != nil {
		s.logger.Warnf("invitation for %s stored but email failed: %v", email, err)
	}

	s.logger.Security().TokenIssued(email, string(types.TokenTypeInvitation))
	s.logger.Security().AdminAction(principal, "invite_admin", "tenant:"+tenant.ID, "success")

	return &InvitationResult{
		Success:       true,
		Message:       fmt.Sprintf("Invitation sent to %s", email),
		InvitationURL: setupURL,
	}, nil
}

// IssuePasswordReset mails a reset link to the admin record of email. When
// tenantID is nil and email administers several tenants the oldest record
// wins. Every failure is logged and swallowed.
func (s *Service) IssuePasswordReset(ctx context.Context, email string, tenantID *string) *PasswordResetResult {
	ctx, span := s.tracer.Start(ctx, "admin.Service.IssuePasswordReset")
	defer span.End()

	result := &PasswordResetResult{Success: true, Message: PasswordResetRequestedMessage}

	email = types.NormalizeEmail(email)

	profiles, err := s.storage.ListAdminProfilesByEmail(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to list admin profiles for reset: %v", err)
		return result
	}

	candidates := make([]*types.ProfileWithTenant, 0, len(profiles))
	for _, p := range profiles {
		if tenantID == nil || (p.TenantID != nil && *p.TenantID == *tenantID) {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		s.logger.Security().TokenRejected("password reset requested for unknown admin")
		return result
	}

	if len(candidates) > 1 {
		s.logger.Warnf("password reset for %s matches %d admin records, using the oldest", email, len(candidates))
	}

	target := candidates[0]

	token, err := tokens.Generate()
	if err != nil {
		s.logger.Errorf("failed to generate reset token: %v", err)
		return result
	}

	adminToken, err := s.storage.CreateAdminToken(ctx, &types.AdminToken{
		Token:      token,
		AdminEmail: email,
		TenantID:   target.TenantID,
		TokenType:  types.TokenTypePasswordReset,
		ExpiresAt:  s.now().Add(s.cfg.PasswordResetLifetime),
	})
	if err != nil {
		s.logger.Errorf("failed to create reset token: %v", err)
		return result
	}

	data := mail.PasswordResetData{
		FirstName: target.FirstName,
		ResetURL:  s.setupURL(token),
		ExpiresAt: adminToken.ExpiresAt,
	}
	if target.Tenant != nil {
		data.TenantName = target.Tenant.Name
	}

	if err := s.mailer.SendPasswordReset(ctx, email, data); err != nil {
		s.logger.Errorf("failed to send reset email: %v", err)
		return result
	}

	s.logger.Security().TokenIssued(email, string(types.TokenTypePasswordReset))

	return result
}

// RedeemToken sets the admin password and consumes the token in a single
// transaction. Of two concurrent redemptions only one consumes the token.
func (s *Service) RedeemToken(ctx context.Context, token, password string) (*RedeemResult, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.RedeemToken")
	defer span.End()

	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return nil, ErrWeakPassword
	}

	t, err := s.validToken(ctx, token)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.ConsumeAdminToken(ctx, t.Token, s.now()); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		if err := s.storage.UpdateAdminPasswordHash(ctx, t.AdminEmail, t.TenantID, string(hash)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			s.logger.Security().TokenRejected("admin token already consumed or admin removed")
			return nil, err
		}
		return nil, fmt.Errorf("failed to redeem token: %w", err)
	}

	s.logger.Security().TokenRedeemed(t.AdminEmail, string(t.TokenType))

	result := &RedeemResult{Success: true, Message: PasswordResetMessage}
	if t.TokenType == types.TokenTypeInvitation {
		result.Message = AccountSetUpMessage
	}

	if t.TenantID != nil {
		tenant, err := s.storage.GetTenantByID(ctx, *t.TenantID)
		if err != nil {
			s.logger.Warnf("password set but tenant %s could not be loaded: %v", *t.TenantID, err)
		} else {
			result.Tenant = tenantInfo(tenant)
		}
	}

	return result, nil
}

// GetTokenInfo applies the redemption checks without consuming the token.
func (s *Service) GetTokenInfo(ctx context.Context, token string) (*TokenInfo, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetTokenInfo")
	defer span.End()

	t, err := s.validToken(ctx, token)
	if err != nil {
		return nil, err
	}

	role := types.RoleSuperAdmin
	if t.TenantID != nil {
		role = types.RoleTenantAdmin
	}

	profile, err := s.storage.GetProfile(ctx, t.AdminEmail, role, t.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get admin profile: %w", err)
	}

	info := &TokenInfo{
		Success:   true,
		TokenType: t.TokenType,
		AdminInfo: AdminInfo{Email: profile.Email, FirstName: profile.FirstName, LastName: profile.LastName},
		ExpiresAt: t.ExpiresAt,
	}

	if t.TenantID != nil {
		tenant, err := s.storage.GetTenantByID(ctx, *t.TenantID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, fmt.Errorf("failed to get tenant: %w", err)
		}
		info.Tenant = tenantInfo(tenant)
	}

	return info, nil
}

func (s *Service) validToken(ctx context.Context, token string) (*types.AdminToken, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	t, err := s.storage.GetAdminToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().TokenRejected("unknown admin token")
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get admin token: %w", err)
	}

	if t.IsUsed {
		s.logger.Security().TokenRejected("admin token already used")
		return nil, ErrInvalidToken
	}

	if t.Expired(s.now()) {
		s.logger.Security().TokenRejected("admin token expired")
		return nil, ErrTokenExpired
	}

	return t, nil
}

func (s *Service) setupURL(token string) string {
	return s.cfg.SiteOrigin + "/admin/setup/" + url.PathEscape(token)
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	authz AuthorizerInterface,
	mailer mail.MailerInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.authz = authz
	s.mailer = mailer

	s.cfg = cfg
	s.hashCost = bcrypt.DefaultCost
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
