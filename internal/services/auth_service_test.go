package services

import (
	"errors"
	"testing"
	"time"

	"github.com/workbridge/jobboard-backend/internal/config"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
		InvitationTTL:    72 * time.Hour,
	}
}

func newAuthService() (*AuthService, *storage.MemStore) {
	store := storage.NewMemStore()
	return NewAuthService(store, testConfig()), store
}

func TestRegisterJobSeeker(t *testing.T) {
	svc, store := newAuthService()

	resp, err := svc.RegisterJobSeeker(&dto.RegisterJobSeekerRequest{
		Email:     "jane@x.com",
		Password:  "password123",
		FirstName: "Jane",
	})
	if err != nil {
		t.Fatalf("RegisterJobSeeker: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected a token pair")
	}
	if resp.User.UserType != models.UserTypeJobSeeker {
		t.Fatalf("expected jobseeker user type, got %s", resp.User.UserType)
	}

	profile, err := store.GetJobSeekerByUserID(resp.User.ID)
	if err != nil {
		t.Fatalf("profile should exist: %v", err)
	}
	if profile.FirstName != "Jane" {
		t.Fatalf("expected FirstName Jane, got %s", profile.FirstName)
	}

	// Password hash must never be the plain password.
	user, err := store.GetUser(resp.User.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plain text")
	}
}

func TestRegisterJobSeeker_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	req := &dto.RegisterJobSeekerRequest{Email: "jane@x.com", Password: "password123"}
	if _, err := svc.RegisterJobSeeker(req); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := svc.RegisterJobSeeker(req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterJobSeeker_ShortPassword(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.RegisterJobSeeker(&dto.RegisterJobSeekerRequest{Email: "jane@x.com", Password: "short"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for short password, got %v", err)
	}
}

func TestRegisterEmployer_RequiresCompanyName(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.RegisterEmployer(&dto.RegisterEmployerRequest{Email: "e@x.com", Password: "password123"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation without company name, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()

	if _, err := svc.RegisterJobSeeker(&dto.RegisterJobSeekerRequest{Email: "jane@x.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(&dto.LoginRequest{Email: "jane@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}

	_, err = svc.Login(&dto.LoginRequest{Email: "jane@x.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@x.com", Password: "password123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAdminLogin_RejectsNonAdmin(t *testing.T) {
	svc, _ := newAuthService()

	if _, err := svc.RegisterJobSeeker(&dto.RegisterJobSeekerRequest{Email: "jane@x.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.AdminLogin(&dto.LoginRequest{Email: "jane@x.com", Password: "password123"})
	if !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestRegisterAdmin_InvitationIsOneShot(t *testing.T) {
	svc, store := newAuthService()

	code := &models.InvitationCode{Code: "welcome", Email: "admin@x.com", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.CreateInvitationCode(code); err != nil {
		t.Fatalf("CreateInvitationCode: %v", err)
	}

	resp, err := svc.RegisterAdmin(&dto.RegisterAdminRequest{
		Email:          "admin@x.com",
		Password:       "password123",
		InvitationCode: "welcome",
	})
	if err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}
	if resp.User.UserType != models.UserTypeAdmin {
		t.Fatalf("expected admin user type, got %s", resp.User.UserType)
	}
	if _, err := store.GetAdminByUserID(resp.User.ID); err != nil {
		t.Fatalf("admin profile should exist: %v", err)
	}

	_, err = svc.RegisterAdmin(&dto.RegisterAdminRequest{
		Email:          "admin2@x.com",
		Password:       "password123",
		InvitationCode: "welcome",
	})
	if !errors.Is(err, ErrInvalidInvitation) {
		t.Fatalf("expected ErrInvalidInvitation on reuse, got %v", err)
	}
}

func TestRegisterAdmin_WrongEmail(t *testing.T) {
	svc, store := newAuthService()

	code := &models.InvitationCode{Code: "welcome", Email: "admin@x.com", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.CreateInvitationCode(code); err != nil {
		t.Fatalf("CreateInvitationCode: %v", err)
	}

	_, err := svc.RegisterAdmin(&dto.RegisterAdminRequest{
		Email:          "other@x.com",
		Password:       "password123",
		InvitationCode: "welcome",
	})
	if !errors.Is(err, ErrInvalidInvitation) {
		t.Fatalf("expected ErrInvalidInvitation, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _ := newAuthService()

	first, err := svc.RegisterJobSeeker(&dto.RegisterJobSeekerRequest{Email: "jane@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	// The presented token is revoked; replaying it must fail.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on replay, got %v", err)
	}

	// The rotated token still works.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken}); err != nil {
		t.Fatalf("rotated token should refresh: %v", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _ := newAuthService()

	resp, err := svc.RegisterJobSeeker(&dto.RegisterJobSeekerRequest{Email: "jane@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}

	// Logging out an unknown token is a no-op.
	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: "garbage"}); err != nil {
		t.Fatalf("Logout with unknown token: %v", err)
	}
}
