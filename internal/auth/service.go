package auth

import (
	"context"
	"fmt"
	"time"

	pkgauth "github.com/printworks/printshop-backend/pkg/auth"
	"github.com/printworks/printshop-backend/pkg/auth/session"
	"github.com/printworks/printshop-backend/pkg/config"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
	"github.com/printworks/printshop-backend/pkg/security"
)

// LoginRequest carries customer or operator credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the issued token pair.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type sessionIssuer interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Revoke(ctx context.Context, accessID string) error
}

// Service authenticates accounts and operators.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	OperatorLogin(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	repo     Repository
	sessions sessionIssuer
	jwtCfg   config.JWTConfig
	logg     *logger.Logger
}

// NewService constructs the auth service.
func NewService(repository Repository, sessions sessionIssuer, jwtCfg config.JWTConfig, logg *logger.Logger) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("auth repository is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session issuer is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		repo:     repository,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		logg:     logg,
	}, nil
}

func invalidCredentials() error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	account, err := s.repo.AccountByEmail(ctx, req.Email)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, invalidCredentials()
	}

	if err := s.verify(req.Password, account.PasswordHash); err != nil {
		return nil, err
	}

	result, err := s.issueTokens(ctx, pkgauth.AccessTokenPayload{
		AccountID: account.ID,
		IsBroker:  account.IsBroker,
	})
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithAccountID(ctx, account.ID.String())
	s.logg.Info(ctx, "auth.login")
	return result, nil
}

func (s *service) OperatorLogin(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	operator, err := s.repo.OperatorByEmail(ctx, req.Email)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !operator.IsActive {
		return nil, invalidCredentials()
	}

	if err := s.verify(req.Password, operator.PasswordHash); err != nil {
		return nil, err
	}

	role := operator.Role
	result, err := s.issueTokens(ctx, pkgauth.AccessTokenPayload{
		AccountID:    operator.ID,
		OperatorRole: &role,
	})
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"operator_id":   operator.ID.String(),
		"operator_role": string(role),
	})
	s.logg.Info(ctx, "auth.operator_login")
	return result, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if accessID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}
	return s.sessions.Revoke(ctx, accessID)
}

func (s *service) verify(password, hash string) error {
	ok, err := security.VerifyPassword(password, hash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return invalidCredentials()
	}
	return nil
}

func (s *service) issueTokens(ctx context.Context, payload pkgauth.AccessTokenPayload) (*LoginResult, error) {
	payload.JTI = session.NewAccessID()

	access, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now().UTC(), payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	refresh, err := s.sessions.Generate(ctx, payload.JTI)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating session")
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtCfg.ExpirationMinutes) * 60,
	}, nil
}
