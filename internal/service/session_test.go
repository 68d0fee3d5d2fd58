package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/mocks"
	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProfile *mocks.ProfileRepository
	mockSession *mocks.SessionRepository
	service     *SessionService
	now         time.Time
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProfile = new(mocks.ProfileRepository)
	s.mockSession = new(mocks.SessionRepository)

	s.mockRepo.On("Profile").Return(s.mockProfile)
	s.mockRepo.On("Session").Return(s.mockSession)

	cfg := &config.Config{
		SessionSecretKey:       "test-secret",
		SessionExpirationHours: 24,
		TrialDays:              7,
	}
	s.service = NewSessionService(s.mockRepo, cfg, logger.NewNop())
	s.now = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func TestSessionService(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestSignUp_PasswordMismatchNeverTouchesStore() {
	profile, err := s.service.SignUp(context.Background(), "owner@example.com", "secret1", "secret2")

	s.Nil(profile)
	var validationErr *ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("confirm_password", validationErr.Field)
	s.Equal("Passwords do not match", validationErr.Message)
	s.mockRepo.AssertNotCalled(s.T(), "Profile")
	s.mockProfile.AssertNotCalled(s.T(), "GetByEmail", mock.Anything, mock.Anything)
	s.mockProfile.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestSignUp_ShortPassword() {
	_, err := s.service.SignUp(context.Background(), "owner@example.com", "abc", "abc")

	var validationErr *ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("password", validationErr.Field)
}

func (s *SessionServiceTestSuite) TestSignUp_Success() {
	ctx := context.Background()
	s.mockProfile.On("GetByEmail", ctx, "owner@example.com").Return(nil, repository.ErrNotFound)
	s.mockProfile.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

	profile, err := s.service.SignUp(ctx, "  Owner@Example.com ", "secret123", "secret123")

	s.Require().NoError(err)
	s.Equal("owner@example.com", profile.Email)
	s.Equal(s.now.AddDate(0, 0, 7), profile.TrialEndsAt)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("secret123")))
	s.mockProfile.AssertExpectations(s.T())
}

func (s *SessionServiceTestSuite) TestSignUp_EmailTaken() {
	ctx := context.Background()
	s.mockProfile.On("GetByEmail", ctx, "owner@example.com").Return(&domain.Profile{ID: "p1"}, nil)

	_, err := s.service.SignUp(ctx, "owner@example.com", "secret123", "secret123")

	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.mockProfile.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestSignUp_CreateFailsIsStoreError() {
	ctx := context.Background()
	s.mockProfile.On("GetByEmail", ctx, "owner@example.com").Return(nil, repository.ErrNotFound)
	s.mockProfile.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(errors.New("db down"))

	_, err := s.service.SignUp(ctx, "owner@example.com", "secret123", "secret123")

	var storeErr *StoreError
	s.ErrorAs(err, &storeErr)
}

func (s *SessionServiceTestSuite) hashed(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(hash)
}

func (s *SessionServiceTestSuite) TestSignIn_ThenGetSession() {
	ctx := context.Background()
	s.mockProfile.On("GetByEmail", ctx, "owner@example.com").
		Return(&domain.Profile{ID: "owner-1", Email: "owner@example.com", PasswordHash: s.hashed("secret123")}, nil)

	var savedID string
	s.mockSession.On("Save", ctx, mock.AnythingOfType("*domain.Session"), 24*time.Hour).
		Run(func(args mock.Arguments) {
			savedID = args.Get(1).(*domain.Session).ID
		}).
		Return(nil)

	session, err := s.service.SignIn(ctx, "owner@example.com", "secret123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal("owner-1", session.UserID)
	s.Equal(savedID, session.ID)
	s.Equal(s.now.Add(24*time.Hour), session.ExpiresAt)

	s.mockSession.On("GetOwnerID", ctx, savedID).Return("owner-1", nil)

	resolved, err := s.service.GetSession(ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("owner-1", resolved.UserID)
	s.Equal(savedID, resolved.ID)
}

func (s *SessionServiceTestSuite) TestSignIn_WrongPassword() {
	ctx := context.Background()
	s.mockProfile.On("GetByEmail", ctx, "owner@example.com").
		Return(&domain.Profile{ID: "owner-1", PasswordHash: s.hashed("secret123")}, nil)

	_, err := s.service.SignIn(ctx, "owner@example.com", "wrong")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.mockSession.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestSignIn_UnknownEmail() {
	ctx := context.Background()
	s.mockProfile.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

	_, err := s.service.SignIn(ctx, "nobody@example.com", "secret123")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *SessionServiceTestSuite) startSession(ownerID string) *domain.Session {
	s.mockSession.On("Save", mock.Anything, mock.AnythingOfType("*domain.Session"), mock.Anything).Return(nil).Once()
	session, err := s.service.StartSession(context.Background(), ownerID)
	s.Require().NoError(err)
	return session
}

func (s *SessionServiceTestSuite) TestGetSession_EmptyOrGarbageToken() {
	ctx := context.Background()

	_, err := s.service.GetSession(ctx, "")
	s.ErrorIs(err, ErrNoSession)

	_, err = s.service.GetSession(ctx, "not-a-token")
	s.ErrorIs(err, ErrNoSession)
	s.mockSession.AssertNotCalled(s.T(), "GetOwnerID", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestGetSession_RevokedSession() {
	session := s.startSession("owner-1")
	s.mockSession.On("GetOwnerID", mock.Anything, session.ID).Return("", repository.ErrNotFound)

	_, err := s.service.GetSession(context.Background(), session.Token)

	s.ErrorIs(err, ErrNoSession)
}

func (s *SessionServiceTestSuite) TestGetSession_ExpiredToken() {
	session := s.startSession("owner-1")
	s.now = s.now.Add(25 * time.Hour)

	_, err := s.service.GetSession(context.Background(), session.Token)

	s.ErrorIs(err, ErrNoSession)
	s.mockSession.AssertNotCalled(s.T(), "GetOwnerID", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestGetSession_RegistryUnavailableIsAuthError() {
	session := s.startSession("owner-1")
	s.mockSession.On("GetOwnerID", mock.Anything, session.ID).Return("", errors.New("connection refused"))

	_, err := s.service.GetSession(context.Background(), session.Token)

	var authErr *AuthError
	s.Require().ErrorAs(err, &authErr)
	s.Equal("get_session", authErr.Op)
}

func (s *SessionServiceTestSuite) TestGetSession_OwnerMismatch() {
	session := s.startSession("owner-1")
	s.mockSession.On("GetOwnerID", mock.Anything, session.ID).Return("owner-2", nil)

	_, err := s.service.GetSession(context.Background(), session.Token)

	s.ErrorIs(err, ErrNoSession)
}

func (s *SessionServiceTestSuite) TestSignOut() {
	session := s.startSession("owner-1")
	s.mockSession.On("Delete", mock.Anything, session.ID).Return(nil)

	s.NoError(s.service.SignOut(context.Background(), session.Token))
	s.mockSession.AssertCalled(s.T(), "Delete", mock.Anything, session.ID)
}

func (s *SessionServiceTestSuite) TestSignOut_InvalidTokenIsNoop() {
	s.NoError(s.service.SignOut(context.Background(), "garbage"))
	s.mockSession.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestProfile_NotFound() {
	s.mockProfile.On("GetByID", mock.Anything, "owner-1").Return(nil, repository.ErrNotFound)

	_, err := s.service.Profile(context.Background(), "owner-1")

	s.ErrorIs(err, ErrProfileNotFound)
}
