package userstate

import (
	"context"

	"github.com/nestfinder/browse-api/internal/prefstore"
)

// SessionKey is the stored payload name, a JSON {name,email} object.
const SessionKey = "nest_finder_auth"

// User is the mock identity. There are no credentials to verify.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session tracks at most one mock-authenticated identity, durable across
// restarts. A corrupt stored payload means unauthenticated, never an
// error.
type Session struct {
	store prefstore.Store
	user  *User
}

func NewSession(ctx context.Context, store prefstore.Store) *Session {
	s := &Session{store: store}
	var u User
	if prefstore.ReadJSON(ctx, store, SessionKey, &u) && u.Name != "" {
		s.user = &u
	}
	return s
}

// Login stores the identity unconditionally, replacing any existing one.
func (s *Session) Login(ctx context.Context, name, email string) error {
	u := User{Name: name, Email: email}
	if err := prefstore.WriteJSON(ctx, s.store, SessionKey, u); err != nil {
		return err
	}
	s.user = &u
	return nil
}

// Logout clears both the in-memory identity and the persisted payload.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, SessionKey); err != nil {
		return err
	}
	s.user = nil
	return nil
}

func (s *Session) IsAuthenticated() bool { return s.user != nil }

func (s *Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}
