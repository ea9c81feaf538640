package playback

import (
	"sync"
	"time"

	"github.com/cyberschool/cyberstorm_api/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the learner identity a controller and its API client act for. It is created on
// login and must be closed on logout; a closed or expired session refuses further calls.
type Session struct {
	token     string
	userID    string
	role      string
	expiresAt time.Time

	mu     sync.RWMutex
	closed bool
}

type sessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewSession(token, userID, role string, expiresAt time.Time) *Session {
	return &Session{token: token, userID: userID, role: role, expiresAt: expiresAt}
}

// SessionFromToken reads the identity claims of a bearer token issued by the API. The signature
// is not checked here; the server verifies it on every request.
func SessionFromToken(token string) (*Session, error) {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return NewSession(token, claims.UserID, claims.Role, exp), nil
}

func (s *Session) UserID() string { return s.userID }
func (s *Session) Role() string   { return s.role }

// Token returns the bearer token, or ErrSessionClosed once the session ended.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", ErrSessionClosed
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", ErrSessionClosed
	}
	return s.token, nil
}

func (s *Session) Active() bool {
	_, err := s.Token()
	return err == nil
}

func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.token = ""
	s.mu.Unlock()
}

// SeesTeacherTips reports whether the session's role is shown ParentTeacherTip components.
func (s *Session) SeesTeacherTips() bool {
	return s.role == shared.RoleTeacher || s.role == shared.RoleParent
}
