package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
)

type userRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service authenticates stored accounts.
type Service struct {
	repo             userRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures an auth Service.
func NewService(r userRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logger}
}

// Authenticate checks a username/credential pair against the store.
// The credential comparison is constant-time over the full input; an
// unknown username still burns a comparison so both failure paths cost
// the same.
func (s *Service) Authenticate(ctx context.Context, username, credential string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.ErrAuth
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		subtle.ConstantTimeCompare([]byte(credential), []byte(credential))
		s.logger.Warn("authentication failed", logx.String("username", username))
		return nil, apperr.ErrAuth
	}

	if subtle.ConstantTimeCompare([]byte(u.Credential), []byte(credential)) != 1 {
		s.logger.Warn("authentication failed", logx.String("username", username))
		return nil, apperr.ErrAuth
	}
	return u, nil
}
