package auth

import (
	"context"
	"errors"

	"github.com/yourname/serenedesk/internal"
)

// LocalAuthProvider checks bearer tokens against a fixed user table. It is
// the development provider.
type LocalAuthProvider struct {
	users  map[string]internal.User
	logger internal.Logger
}

func (a *LocalAuthProvider) ValidateTokenLocal(token string) (*internal.User, error) {
	if u, ok := a.users[token]; ok && token != "" {
		return &u, nil
	}
	a.logger.Warnf("invalid token presented (len=%d)", len(token))
	return nil, errors.New("invalid token")
}

func (a *LocalAuthProvider) ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error) {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalAuthProvider")
	return nil, errors.New("not implemented in LocalAuthProvider")
}

func NewLocalAuthProvider(logger internal.Logger, users ...internal.User) *LocalAuthProvider {
	table := make(map[string]internal.User, len(users))
	for _, u := range users {
		table[u.Token] = u
	}
	return &LocalAuthProvider{users: table, logger: logger}
}
