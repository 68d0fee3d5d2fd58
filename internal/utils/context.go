package utils

import (
	"context"
	"errors"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

type ContextKey string

const (
	SessionKey ContextKey = "session"
	OwnerIDKey ContextKey = "user_id"
)

var (
	ErrNoSessionInContext = errors.New("no session found in context")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrNoOwnerIDInSession = errors.New("no user_id found in session")
)

// GetSessionFromContext returns the session stored by the auth middleware.
func GetSessionFromContext(c context.Context) (*domain.Session, error) {
	value := c.Value(SessionKey)
	if value == nil {
		return nil, ErrNoSessionInContext
	}

	session, ok := value.(*domain.Session)
	if !ok {
		return nil, ErrInvalidSessionType
	}

	return session, nil
}

// GetOwnerIDFromContext returns the authenticated owner id.
func GetOwnerIDFromContext(c context.Context) (string, error) {
	session, err := GetSessionFromContext(c)
	if err != nil {
		return "", err
	}

	if session.UserID == "" {
		return "", ErrNoOwnerIDInSession
	}

	return session.UserID, nil
}
