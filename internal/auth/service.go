package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/SOHAMSUPEKAR24/travle1/internal/kv"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
)

const sessionKey = "admin_auth"

// State is the persisted admin session. The session has no expiry; it
// lives until an explicit logout.
type State struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username,omitempty"`
	LoginTime       string `json:"loginTime,omitempty"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service authenticates the single configured admin user and keeps the
// session state both in memory and in the backing store, so a restart
// restores an active session.
type Service struct {
	secret   []byte
	username string
	hash     []byte
	backend  kv.Store
	mon      *monitor.Monitor

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

func NewService(secret, username, password string, backend kv.Store, mon *monitor.Monitor) *Service {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		mon.Log(monitor.LevelError, "AuthService", "Failed to hash admin password", map[string]any{"error": err.Error()})
	}
	return &Service{
		secret:    []byte(secret),
		username:  username,
		hash:      hash,
		backend:   backend,
		mon:       mon,
		listeners: map[int]func(State){},
	}
}

// Restore loads a previously persisted session, if any. Call once at
// startup.
func (s *Service) Restore(ctx context.Context) {
	raw, err := s.backend.Get(ctx, sessionKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.mon.Log(monitor.LevelWarning, "AuthService", "Failed to restore session", map[string]any{"error": err.Error()})
		}
		return
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.mon.Log(monitor.LevelWarning, "AuthService", "Discarding corrupt session record", map[string]any{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Login checks the credentials against the configured admin user and, on
// success, opens a session and returns a signed bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (string, bool) {
	if username != s.username || bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		s.mon.Log(monitor.LevelWarning, "AuthService", "Login failed for "+username, nil)
		return "", false
	}

	token, err := s.signToken(username)
	if err != nil {
		s.mon.Log(monitor.LevelError, "AuthService", "Failed to sign token", map[string]any{"error": err.Error()})
		return "", false
	}

	state := State{
		IsAuthenticated: true,
		Username:        username,
		LoginTime:       time.Now().UTC().Format(time.RFC3339),
	}
	s.setState(ctx, state)

	s.mon.Log(monitor.LevelInfo, "AuthService", "Admin logged in", map[string]any{"username": username})
	return token, true
}

// Logout closes the session and drops the persisted record. Previously
// issued tokens stop validating because middleware checks the session
// state, not just the signature.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = State{}
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if err := s.backend.Delete(ctx, sessionKey); err != nil {
		s.mon.Log(monitor.LevelError, "AuthService", "Failed to clear session", map[string]any{"error": err.Error()})
	}
	for _, fn := range listeners {
		fn(State{})
	}
	s.mon.Log(monitor.LevelInfo, "AuthService", "Admin logged out", nil)
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener invoked synchronously on every state
// change. The returned function unsubscribes it.
func (s *Service) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// ValidateToken parses a bearer token and returns the username claim.
func (s *Service) ValidateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", errors.New("token invalid")
	}
	return claims.Username, nil
}

func (s *Service) signToken(username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) setState(ctx context.Context, state State) {
	s.mu.Lock()
	s.state = state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	payload, err := json.Marshal(state)
	if err == nil {
		err = s.backend.Set(ctx, sessionKey, string(payload))
	}
	if err != nil {
		s.mon.Log(monitor.LevelError, "AuthService", "Failed to persist session", map[string]any{"error": err.Error()})
	}

	for _, fn := range listeners {
		fn(state)
	}
}
