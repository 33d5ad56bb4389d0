package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"
	"carmarket-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrNameRequired        = errors.New("first and last name are required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrNotAuthenticated    = errors.New("not authenticated")
)

// Registration is the input of Register.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// Session is the demo sign-in state of one device. Any non-empty credentials are accepted.
type Session struct {
	owner   string
	persist snapshot.Persister
	now     func() time.Time

	mu    sync.Mutex
	state domain.AuthState
}

// Open restores the owner's session. A failed restore is logged and yields a signed-out session.
func Open(ctx context.Context, owner string, p snapshot.Persister) *Session {
	s := &Session{owner: owner, persist: p, now: time.Now}
	if _, err := p.Restore(ctx, snapshot.NamespaceAuth, owner, &s.state); err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("Failed to restore auth state")
		s.state = domain.AuthState{}
	}
	return s
}

func (s *Session) copyState() domain.AuthState {
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func (s *Session) save() {
	s.persist.Submit(snapshot.NamespaceAuth, s.owner, s.copyState())
}

// UserID derives the account id from the e-mail address, so the same address
// signs in as the same user on every login and every device.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

func (s *Session) signIn(u domain.AuthUser) domain.AuthState {
	u.ID = UserID(u.Email)
	u.CreatedAt = s.now().UTC()
	s.state = domain.AuthState{
		User:            &u,
		Token:           "mock_token_" + u.ID,
		IsAuthenticated: true,
	}
	s.save()
	return s.copyState()
}

func (s *Session) Login(email, password string) (domain.AuthState, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.AuthState{}, ErrCredentialsRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signIn(domain.AuthUser{
		Email:     email,
		FirstName: "Demo",
		LastName:  "User",
		Verified:  true,
	}), nil
}

// Register signs in a new, unverified demo user.
func (s *Session) Register(in Registration) (domain.AuthState, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return domain.AuthState{}, ErrCredentialsRequired
	}
	if !validation.IsValidEmail(in.Email) {
		return domain.AuthState{}, ErrInvalidEmail
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return domain.AuthState{}, ErrNameRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signIn(domain.AuthUser{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     strings.TrimSpace(in.Phone),
	}), nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.AuthState{}
	s.save()
}

func (s *Session) Current() domain.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// Me returns the signed-in user.
func (s *Session) Me() (domain.AuthUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsAuthenticated || s.state.User == nil {
		return domain.AuthUser{}, ErrNotAuthenticated
	}
	return *s.state.User, nil
}
