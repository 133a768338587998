package mock

import (
	"context"

	"github.com/pwalen/vitalwiki"
)

var _ vitalwiki.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of vitalwiki.SessionService.
type SessionService struct {
	RegisterFn    func(ctx context.Context, username, password string) error
	LoginFn       func(ctx context.Context, username, password string) (string, error)
	LogoutFn      func(ctx context.Context, token string) error
	CurrentUserFn func(ctx context.Context, token string) (string, error)
}

func (s *SessionService) Register(ctx context.Context, username, password string) error {
	return s.RegisterFn(ctx, username, password)
}

func (s *SessionService) Login(ctx context.Context, username, password string) (string, error) {
	return s.LoginFn(ctx, username, password)
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.LogoutFn(ctx, token)
}

func (s *SessionService) CurrentUser(ctx context.Context, token string) (string, error) {
	return s.CurrentUserFn(ctx, token)
}
