package session

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Auth is the client's pseudo-authentication: signup, login and a current-user marker.
// It is not a security boundary.
type Auth struct {
	creds  Credentials
	kv     KV
	logger zerolog.Logger
}

func NewAuth(creds Credentials, kv KV, logger zerolog.Logger) *Auth {
	return &Auth{
		creds:  creds,
		kv:     kv,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Signup registers a new username. Both fields are trimmed and required.
func (a *Auth) Signup(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return ErrMissingFields
	}
	if err := a.creds.Register(ctx, username, password); err != nil {
		return err
	}
	a.logger.Info().Str("username", username).Msg("user signed up")
	return nil
}

// Login checks the password and marks username as the current user.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	ok, err := a.creds.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	if err := a.kv.Set(ctx, currentUserKey, username); err != nil {
		return err
	}
	a.logger.Info().Str("username", username).Msg("user logged in")
	return nil
}

// Logout clears the current-user marker.
func (a *Auth) Logout(ctx context.Context) error {
	return a.kv.Remove(ctx, currentUserKey)
}

// CurrentUser returns the logged-in username, if any.
func (a *Auth) CurrentUser(ctx context.Context) (string, bool, error) {
	return a.kv.Get(ctx, currentUserKey)
}
