package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workbridge/jobboard-backend/internal/config"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrValidation wraps malformed-input failures across the services so
	// handlers can tell them apart from unexpected server-side errors.
	ErrValidation = errors.New("invalid request")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrInvalidInvitation  = errors.New("invalid or expired invitation code")
	ErrNotAdmin           = errors.New("admin access required")
)

type AuthService struct {
	store storage.Store
	cfg   *config.Config
}

func NewAuthService(store storage.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

func (s *AuthService) RegisterJobSeeker(req *dto.RegisterJobSeekerRequest) (*dto.AuthResponse, error) {
	user, err := s.createUser(req.Email, req.Password, models.UserTypeJobSeeker)
	if err != nil {
		return nil, err
	}

	profile := models.JobSeeker{
		UserID:         user.ID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		City:           req.City,
	}
	if err := s.store.CreateJobSeeker(&profile); err != nil {
		// Don't leave a profile-less user behind.
		if delErr := s.store.DeleteUser(user.ID); delErr != nil {
			slog.Error("failed to roll back user after profile failure", "user_id", user.ID, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create job seeker profile: %w", err)
	}

	return s.generateTokenPair(user)
}

func (s *AuthService) RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.AuthResponse, error) {
	if req.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	user, err := s.createUser(req.Email, req.Password, models.UserTypeEmployer)
	if err != nil {
		return nil, err
	}

	profile := models.Employer{
		UserID:      user.ID,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Website:     req.Website,
		Industry:    req.Industry,
		City:        req.City,
	}
	if err := s.store.CreateEmployer(&profile); err != nil {
		if delErr := s.store.DeleteUser(user.ID); delErr != nil {
			slog.Error("failed to roll back user after profile failure", "user_id", user.ID, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create employer profile: %w", err)
	}

	return s.generateTokenPair(user)
}

// RegisterAdmin is gated by a one-time invitation code issued for the
// registrant's email.
func (s *AuthService) RegisterAdmin(req *dto.RegisterAdminRequest) (*dto.AuthResponse, error) {
	ok, err := s.store.VerifyInvitationCode(req.InvitationCode, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to verify invitation code: %w", err)
	}
	if !ok {
		return nil, ErrInvalidInvitation
	}

	user, err := s.createUser(req.Email, req.Password, models.UserTypeAdmin)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "moderator"
	}
	profile := models.Admin{UserID: user.ID, Role: role}
	if err := s.store.CreateAdmin(&profile); err != nil {
		if delErr := s.store.DeleteUser(user.ID); delErr != nil {
			slog.Error("failed to roll back user after profile failure", "user_id", user.ID, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create admin profile: %w", err)
	}

	if err := s.store.MarkInvitationCodeAsUsed(req.InvitationCode); err != nil {
		slog.Error("failed to consume invitation code", "email", req.Email, "error", err)
	}

	return s.generateTokenPair(user)
}

func (s *AuthService) createUser(email, password, userType string) (*models.User, error) {
	if email == "" || len(password) < 8 {
		return nil, fmt.Errorf("%w: email required and password must be at least 8 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
	}
	if err := s.store.CreateUser(&user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(user)
}

// AdminLogin additionally requires the user to be admin or super_admin.
func (s *AuthService) AdminLogin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsAdmin() {
		return nil, ErrNotAdmin
	}

	return s.generateTokenPair(user)
}

// Refresh rotates the refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	stored, err := s.store.GetRefreshTokenByHash(tokenHash)
	if err != nil || stored.Revoked {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		if err := s.store.RevokeRefreshToken(stored.ID); err != nil {
			slog.Error("failed to revoke expired refresh token", "error", err)
		}
		return nil, ErrInvalidToken
	}

	if err := s.store.RevokeRefreshToken(stored.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	user, err := s.store.GetUser(stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	stored, err := s.store.GetRefreshTokenByHash(tokenHash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.store.RevokeRefreshToken(stored.ID)
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			UserType: user.UserType,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       strconv.FormatUint(uint64(user.ID), 10),
		"email":     user.Email,
		"user_type": user.UserType,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.store.CreateRefreshToken(&record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
