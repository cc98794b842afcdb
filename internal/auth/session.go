package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/models"
)

// Session is the process-wide auth state: the bearer token and the signed-in
// user. It is created at app start, mutated only through its methods, and
// cleared on logout. It satisfies api.TokenSource.
type Session struct {
	mu    sync.RWMutex
	token string
	user  models.User
}

func NewSession() *Session {
	return &Session{}
}

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken installs a freshly issued token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// SetUser records the signed-in user after a current-user fetch.
func (s *Session) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns the signed-in user snapshot.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Clear tears the session down on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = models.User{}
}

// Valid reports whether a token is present and, when it carries an expiry
// claim, not yet expired. The signature is not verified here; the backend
// remains the authority and will reject a forged token anyway.
func (s *Session) Valid() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		log.WithField("error", err.Error()).Warn("Session token is not a parseable JWT")
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		// No expiry claim: assume usable and let the backend decide.
		return true
	}
	return exp.After(time.Now())
}
