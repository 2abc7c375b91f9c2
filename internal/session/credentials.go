package session

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("please fill all fields")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Password schemes accepted by NewHasher.
const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// PasswordHasher turns a password into its stored form and checks candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// NewHasher returns the hasher for scheme. Plaintext is the default and provides no
// protection at all.
func NewHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case SchemePlaintext, "":
		return PlaintextHasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, errors.New("unknown password scheme: " + scheme)
	}
}

// PlaintextHasher stores passwords as-is and compares by equality.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(password string) (string, error) { return password, nil }

func (PlaintextHasher) Verify(stored, password string) bool { return stored == password }

const defaultBcryptCost = 12

// BcryptHasher stores bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = defaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// Credentials registers users and checks their passwords.
type Credentials interface {
	Register(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (bool, error)
}

// CredentialStore keeps one username -> stored password entry per signup in a KV.
type CredentialStore struct {
	kv     KV
	hasher PasswordHasher
}

var _ Credentials = (*CredentialStore)(nil)

func NewCredentialStore(kv KV, hasher PasswordHasher) *CredentialStore {
	if hasher == nil {
		hasher = PlaintextHasher{}
	}
	return &CredentialStore{kv: kv, hasher: hasher}
}

// Register fails with ErrUsernameTaken when the username already has an entry.
func (s *CredentialStore) Register(ctx context.Context, username, password string) error {
	_, exists, err := s.kv.Get(ctx, userKeyPrefix+username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}
	stored, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, userKeyPrefix+username, stored)
}

func (s *CredentialStore) Verify(ctx context.Context, username, password string) (bool, error) {
	stored, ok, err := s.kv.Get(ctx, userKeyPrefix+username)
	if err != nil || !ok || stored == "" {
		return false, err
	}
	return s.hasher.Verify(stored, password), nil
}
