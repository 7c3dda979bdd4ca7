package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

// CreateUser registers a user. Usernames are unique across active and
// inactive users.
func (s *Store) CreateUser(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return model.User{}, fmt.Errorf("username %q already taken", u.Username)
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := s.now()
	u.Active = true
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := u
	s.users[u.ID] = &cp
	return u, nil
}

// UserByUsername resolves an active user by username.
func (s *Store) UserByUsername(username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username && u.Active {
			return *u, nil
		}
	}
	return model.User{}, fmt.Errorf("%w: user %s", ErrNotFound, username)
}

// UserByID resolves a user by id, active or not.
func (s *Store) UserByID(id uuid.UUID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return *u, nil
}

// Users lists all users, optionally including deactivated ones.
func (s *Store) Users(includeInactive bool) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		if !includeInactive && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	return out
}

// UpdateUser replaces a user's editable fields. An empty PasswordHash keeps
// the current password.
func (s *Store) UpdateUser(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.users[u.ID]
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %s", ErrNotFound, u.ID)
	}
	cur.Name = u.Name
	cur.Email = u.Email
	cur.Role = u.Role
	if u.PasswordHash != "" {
		cur.PasswordHash = u.PasswordHash
	}
	cur.UpdatedAt = s.now()
	return *cur, nil
}

// SetUserActive toggles a user's active flag.
func (s *Store) SetUserActive(id uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	u.Active = active
	u.UpdatedAt = s.now()
	return nil
}
