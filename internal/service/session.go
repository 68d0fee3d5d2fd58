package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const minPasswordLength = 6

type sessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionService signs owners up and in, and resolves session tokens.
type SessionService struct {
	repo      repository.Repository
	secretKey []byte
	ttl       time.Duration
	trialDays int
	now       func() time.Time
	logger    *logger.Logger
}

func NewSessionService(repo repository.Repository, cfg *config.Config, logger *logger.Logger) *SessionService {
	return &SessionService{
		repo:      repo,
		secretKey: []byte(cfg.SessionSecretKey),
		ttl:       cfg.SessionTTL(),
		trialDays: cfg.TrialDays,
		now:       time.Now,
		logger:    logger,
	}
}

// SignUp creates a profile with a trial period. Mismatched passwords are
// rejected before any store access.
func (s *SessionService) SignUp(ctx context.Context, email, password, confirmPassword string) (*domain.Profile, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(password) < minPasswordLength {
		return nil, &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	if password != confirmPassword {
		return nil, &ValidationError{Field: "confirm_password", Message: "Passwords do not match"}
	}

	_, err := s.repo.Profile().GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to look up profile", err, zap.String("email", email))
		return nil, &AuthError{Op: "sign_up", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &domain.Profile{
		Email:        email,
		PasswordHash: string(hash),
		TrialEndsAt:  s.now().AddDate(0, 0, s.trialDays),
	}
	if err := s.repo.Profile().Create(ctx, profile); err != nil {
		s.logger.Error("Failed to create profile", err, zap.String("email", email))
		return nil, storeErr("create_profile", err)
	}

	s.logger.Info("Owner signed up", zap.String("user_id", profile.ID))
	return profile, nil
}

// SignIn verifies credentials and opens a new session.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	profile, err := s.repo.Profile().GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Failed to look up profile", err)
		return nil, &AuthError{Op: "sign_in", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.StartSession(ctx, profile.ID)
}

// StartSession mints a token for ownerID and registers it.
func (s *SessionService) StartSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	now := s.now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		ExpiresAt: now.Add(s.ttl),
	}

	claims := sessionClaims{
		UserID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	session.Token = token

	if err := s.repo.Session().Save(ctx, session, s.ttl); err != nil {
		s.logger.Error("Failed to register session", err, zap.String("user_id", ownerID))
		return nil, &AuthError{Op: "start_session", Err: err}
	}

	return session, nil
}

// GetSession resolves a token into the session it proves. It returns
// ErrNoSession for missing, malformed, expired or revoked tokens.
func (s *SessionService) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	ownerID, err := s.repo.Session().GetOwnerID(ctx, claims.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, &AuthError{Op: "get_session", Err: err}
	}
	if ownerID != claims.UserID {
		return nil, ErrNoSession
	}

	return &domain.Session{
		ID:        claims.ID,
		UserID:    claims.UserID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SignOut revokes the session carried by token. An invalid token is
// already signed out.
func (s *SessionService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	if err := s.repo.Session().Delete(ctx, claims.ID); err != nil {
		s.logger.Error("Failed to revoke session", err, zap.String("user_id", claims.UserID))
		return &AuthError{Op: "sign_out", Err: err}
	}

	s.logger.Info("Owner signed out", zap.String("user_id", claims.UserID))
	return nil
}

// Profile returns the account of ownerID.
func (s *SessionService) Profile(ctx context.Context, ownerID string) (*domain.Profile, error) {
	profile, err := s.repo.Profile().GetByID(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, storeErr("get_profile", err)
	}
	return profile, nil
}

func (s *SessionService) parseToken(token string) (*sessionClaims, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if claims.ID == "" || claims.UserID == "" {
		return nil, ErrNoSession
	}

	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
