package auth

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"

	pkgauth "github.com/printworks/printshop-backend/pkg/auth"
	"github.com/printworks/printshop-backend/pkg/config"
	"github.com/printworks/printshop-backend/pkg/db/models"
	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
	"github.com/printworks/printshop-backend/pkg/security"
)

type fakeAuthRepo struct {
	account  *models.Account
	operator *models.Operator
}

func (f *fakeAuthRepo) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.account == nil || f.account.Email != email {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}
	return f.account, nil
}

func (f *fakeAuthRepo) OperatorByEmail(ctx context.Context, email string) (*models.Operator, error) {
	if f.operator == nil || f.operator.Email != email {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "operator not found")
	}
	return f.operator, nil
}

type fakeSessions struct {
	generated []string
	revoked   []string
}

func (f *fakeSessions) Generate(ctx context.Context, accessID string) (string, error) {
	f.generated = append(f.generated, accessID)
	return "refresh-" + accessID, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "printworks-test",
		ExpirationMinutes: 15,
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard, Level: logger.ParseLevel("error")})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return hash
}

func TestLoginIssuesTokenPair(t *testing.T) {
	account := &models.Account{
		ID:           uuid.New(),
		Email:        "broker@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		IsBroker:     true,
		IsActive:     true,
	}
	sessions := &fakeSessions{}
	svc, err := NewService(&fakeAuthRepo{account: account}, sessions, testJWTConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.Login(context.Background(), LoginRequest{Email: "broker@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("expected token pair")
	}
	if result.ExpiresIn != 15*60 {
		t.Fatalf("expires_in = %d, want 900", result.ExpiresIn)
	}
	if len(sessions.generated) != 1 {
		t.Fatalf("sessions generated = %d, want 1", len(sessions.generated))
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.AccountID != account.ID {
		t.Fatalf("claims account = %s, want %s", claims.AccountID, account.ID)
	}
	if !claims.IsBroker {
		t.Fatal("expected broker claim")
	}
	if claims.ID != sessions.generated[0] {
		t.Fatalf("jti %s not tied to session %s", claims.ID, sessions.generated[0])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	account := &models.Account{
		ID:           uuid.New(),
		Email:        "shop@example.com",
		PasswordHash: mustHash(t, "correct"),
		IsActive:     true,
	}
	svc, _ := NewService(&fakeAuthRepo{account: account}, &fakeSessions{}, testJWTConfig(), testLogger())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "shop@example.com", Password: "wrong"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc, _ := NewService(&fakeAuthRepo{}, &fakeSessions{}, testJWTConfig(), testLogger())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "x"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	account := &models.Account{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		IsActive:     false,
	}
	svc, _ := NewService(&fakeAuthRepo{account: account}, &fakeSessions{}, testJWTConfig(), testLogger())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "gone@example.com", Password: "s3cret"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestOperatorLoginCarriesRole(t *testing.T) {
	operator := &models.Operator{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Role:         enums.OperatorRoleAdmin,
		IsActive:     true,
	}
	svc, _ := NewService(&fakeAuthRepo{operator: operator}, &fakeSessions{}, testJWTConfig(), testLogger())

	result, err := svc.OperatorLogin(context.Background(), LoginRequest{Email: "ops@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("OperatorLogin: %v", err)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if !claims.IsOperator() {
		t.Fatal("expected operator claims")
	}
	if claims.OperatorRole == nil || *claims.OperatorRole != enums.OperatorRoleAdmin {
		t.Fatalf("role = %v, want admin", claims.OperatorRole)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := &fakeSessions{}
	svc, _ := NewService(&fakeAuthRepo{}, sessions, testJWTConfig(), testLogger())

	if err := svc.Logout(context.Background(), "access-123"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "access-123" {
		t.Fatalf("revoked = %v, want [access-123]", sessions.revoked)
	}

	if err := svc.Logout(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty access id")
	}
}
