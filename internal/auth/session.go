package auth

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/travel-booking-client/internal/models"
	"github.com/mathangi54/travel-booking-client/internal/store"
)

// TokenProvider resolves the current auth token. Implementations define a
// single lookup order; callers never consult storage keys directly.
type TokenProvider interface {
	Token() (string, bool)
}

// Session is the authentication capability handed to the booking flow
// controller. It is injected, never a package-level singleton, so tests can
// substitute a fake.
type Session interface {
	TokenProvider

	// CurrentUser returns the signed-in account, or nil.
	CurrentUser() *models.User

	// IsAuthenticated reports whether the user counts as signed in. All
	// three signals (user object, token, explicit flag) must agree.
	IsAuthenticated() bool

	// StoreCredentials records a successful login.
	StoreCredentials(user models.User, token string) error

	// ClearCredentials signs the user out and removes stored tokens.
	ClearCredentials() error
}

// StoreTokenProvider reads the token from the local store, trying the
// primary key first and the legacy key second. This is the one place the
// two-key history of the web client is encoded.
type StoreTokenProvider struct {
	kv store.KeyValueStore
}

// NewStoreTokenProvider creates a token provider over the given store.
func NewStoreTokenProvider(kv store.KeyValueStore) *StoreTokenProvider {
	return &StoreTokenProvider{kv: kv}
}

// Token returns the stored token, preferring the primary key.
func (p *StoreTokenProvider) Token() (string, bool) {
	for _, key := range []string{store.KeyToken, store.KeyLegacyToken} {
		if token, ok := p.kv.Get(key); ok && token != "" {
			return token, true
		}
	}
	return "", false
}

// StoreSession is the Session implementation backed by the local store.
type StoreSession struct {
	kv            store.KeyValueStore
	tokens        TokenProvider
	logger        *logrus.Logger
	user          *models.User
	authenticated bool
}

// NewStoreSession builds a session over the local store, restoring any
// previously stored credentials (the web client restores from localStorage
// on mount the same way).
func NewStoreSession(kv store.KeyValueStore, logger *logrus.Logger) *StoreSession {
	s := &StoreSession{
		kv:     kv,
		tokens: NewStoreTokenProvider(kv),
		logger: logger,
	}
	s.restore()
	return s
}

func (s *StoreSession) restore() {
	raw, ok := s.kv.Get(store.KeyUser)
	if !ok {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.WithError(err).Warn("Stored user record unreadable, clearing credentials")
		_ = s.ClearCredentials()
		return
	}

	if _, hasToken := s.tokens.Token(); !hasToken {
		// User record without a token is stale; drop it.
		_ = s.ClearCredentials()
		return
	}

	s.user = &user
	s.authenticated = true
}

// CurrentUser returns the signed-in account, or nil.
func (s *StoreSession) CurrentUser() *models.User {
	return s.user
}

// Token resolves the current auth token via the token provider.
func (s *StoreSession) Token() (string, bool) {
	return s.tokens.Token()
}

// IsAuthenticated requires the user object, a retrievable token and the
// explicit authenticated flag to all agree. A partial set of signals is
// logged and treated as signed out.
func (s *StoreSession) IsAuthenticated() bool {
	_, hasToken := s.tokens.Token()
	hasUser := s.user != nil

	if hasToken == hasUser && hasUser == s.authenticated {
		return s.authenticated
	}

	s.logger.WithFields(logrus.Fields{
		"has_user":  hasUser,
		"has_token": hasToken,
		"auth_flag": s.authenticated,
	}).Warn("Auth signals disagree, treating as not authenticated")
	return false
}

// StoreCredentials records a successful login under both token keys, the
// way the web client always has.
func (s *StoreSession) StoreCredentials(user models.User, token string) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	if err := s.kv.Set(store.KeyToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := s.kv.Set(store.KeyLegacyToken, token); err != nil {
		return fmt.Errorf("failed to store legacy token: %w", err)
	}
	if err := s.kv.Set(store.KeyUser, string(userData)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}

	s.user = &user
	s.authenticated = true
	return nil
}

// ClearCredentials signs out and removes every stored auth key.
func (s *StoreSession) ClearCredentials() error {
	s.user = nil
	s.authenticated = false

	for _, key := range []string{store.KeyToken, store.KeyLegacyToken, store.KeyUser} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}
