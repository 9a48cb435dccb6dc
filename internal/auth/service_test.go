package auth

import (
	"context"
	"testing"
	"time"

	pkgauth "github.com/srmns/quotation-backend/pkg/auth"
	"github.com/srmns/quotation-backend/pkg/config"
	"github.com/srmns/quotation-backend/pkg/db/models"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"github.com/srmns/quotation-backend/pkg/security"
	"gorm.io/gorm"
)

type stubRepo struct {
	byEmail     *models.User
	byEmailErr  error
	created     *models.User
	createErr   error
	lastLoginID uint
	lastLoginAt time.Time
}

func (s *stubRepo) Create(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 1
	s.created = user
	return nil
}

func (s *stubRepo) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubRepo) UpdateLastLogin(_ context.Context, id uint, at time.Time) error {
	s.lastLoginID = id
	s.lastLoginAt = at
	return nil
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "quotation-backend",
		ExpirationMinutes: 5,
	}
}

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(repo, testPasswordConfig(), testJWTConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := newTestService(t, &stubRepo{byEmailErr: gorm.ErrRecordNotFound})

	for _, req := range []RegisterRequest{
		{Username: "u", Password: "p"},
		{Email: "a@b.c", Password: "p"},
		{Email: "a@b.c", Username: "u"},
	} {
		err := svc.Register(context.Background(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeBadRequest {
			t.Fatalf("expected bad request for %+v, got %v", req, err)
		}
		if typed.Message() != "All fields are required" {
			t.Fatalf("unexpected message %q", typed.Message())
		}
	}
}

func TestRegisterRejectsExistingEmail(t *testing.T) {
	repo := &stubRepo{byEmail: &models.User{ID: 7, Email: "taken@example.com"}}
	svc := newTestService(t, repo)

	err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Username: "someone",
		Password: "secret",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &stubRepo{byEmailErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	err := svc.Register(context.Background(), RegisterRequest{
		Email:    "  New@Example.COM ",
		Username: "new user",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected user created")
	}
	if repo.created.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", repo.created.Email)
	}
	if repo.created.PasswordHash == "hunter2" || repo.created.PasswordHash == "" {
		t.Fatalf("expected argon2id hash, got %q", repo.created.PasswordHash)
	}
	ok, err := security.VerifyPassword("hunter2", repo.created.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestLoginUnknownUserIsUnauthorized(t *testing.T) {
	svc := newTestService(t, &stubRepo{byEmailErr: gorm.ErrRecordNotFound})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != "Invalid credentials" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	hash, err := security.HashPassword("right", testPasswordConfig())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := newTestService(t, &stubRepo{byEmail: &models.User{ID: 2, Email: "a@b.c", PasswordHash: hash}})

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "wrong"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	hash, err := security.HashPassword("secret", testPasswordConfig())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubRepo{byEmail: &models.User{
		ID:           4,
		Email:        "ops@example.com",
		Username:     "ops",
		PasswordHash: hash,
	}}
	svc := newTestService(t, repo)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "Ops@Example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.ID != 4 || result.User.Username != "ops" {
		t.Fatalf("unexpected user %+v", result.User)
	}
	if result.Token == "" {
		t.Fatal("expected access token")
	}
	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), result.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 4 || claims.Email != "ops@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if repo.lastLoginID != 4 {
		t.Fatalf("expected last login stamped for user 4, got %d", repo.lastLoginID)
	}
}
