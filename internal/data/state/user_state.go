package state

import (
	"strings"

	"waitwise/internal/data/entity"

	"github.com/google/uuid"
)

// UserByEmail looks up an account by email, case-insensitively.
func (s *Store) UserByEmail(email string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return entity.User{}, false
	}
	return *u, true
}

// UserByID looks up an account by id.
func (s *Store) UserByID(id uuid.UUID) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.usersByID[id]
	if !ok {
		return entity.User{}, false
	}
	return *u, true
}

// CreateUser registers a new account. The email must be unused.
func (s *Store) CreateUser(u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := s.usersByEmail[key]; exists {
		return ErrEmailTaken
	}
	stored := u
	s.usersByID[stored.ID] = &stored
	s.usersByEmail[key] = &stored
	return nil
}

// CreateSession mints a bearer token for the user.
func (s *Store) CreateSession(userID uuid.UUID) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &entity.Session{
		Token:     uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	s.sessions[sess.Token] = sess
	return *sess
}

// SessionUser resolves a token to its account. Expired sessions are
// dropped on sight.
func (s *Store) SessionUser(token uuid.UUID) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return entity.User{}, ErrSessionInvalid
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return entity.User{}, ErrSessionInvalid
	}
	u, ok := s.usersByID[sess.UserID]
	if !ok {
		return entity.User{}, ErrSessionInvalid
	}
	return *u, nil
}

// RevokeSession discards a token. Unknown tokens are a no-op.
func (s *Store) RevokeSession(token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
