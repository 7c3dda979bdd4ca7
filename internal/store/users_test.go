package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateUser(model.User{Username: "staff", Name: "Staff Demo", Role: model.RoleStaff})
	require.NoError(t, err)

	_, err = s.CreateUser(model.User{Username: "staff", Name: "Another", Role: model.RoleStaff})
	require.Error(t, err)
}

func TestUserByUsernameSkipsInactive(t *testing.T) {
	s := newTestStore()
	u, err := s.CreateUser(model.User{Username: "staff", Name: "Staff Demo", Role: model.RoleStaff})
	require.NoError(t, err)

	got, err := s.UserByUsername("staff")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, s.SetUserActive(u.ID, false))
	_, err = s.UserByUsername("staff")
	require.ErrorIs(t, err, ErrNotFound)

	// Still resolvable by id for audit display.
	got, err = s.UserByID(u.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUpdateUserKeepsPasswordWhenHashEmpty(t *testing.T) {
	s := newTestStore()
	u, err := s.CreateUser(model.User{
		Username: "manager", Name: "Manager Demo",
		Role: model.RoleManager, PasswordHash: "original-hash",
	})
	require.NoError(t, err)

	u.Name = "Renamed"
	u.PasswordHash = ""
	updated, err := s.UpdateUser(u)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "original-hash", updated.PasswordHash)

	u.PasswordHash = "new-hash"
	updated, err = s.UpdateUser(u)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
}

func TestUsersIncludeInactiveFlag(t *testing.T) {
	s := newTestStore()
	active, err := s.CreateUser(model.User{Username: "a", Name: "Active", Role: model.RoleStaff})
	require.NoError(t, err)
	gone, err := s.CreateUser(model.User{Username: "b", Name: "Gone", Role: model.RoleStaff})
	require.NoError(t, err)
	require.NoError(t, s.SetUserActive(gone.ID, false))

	assert.Len(t, s.Users(false), 1)
	assert.Len(t, s.Users(true), 2)
	assert.Equal(t, active.ID, s.Users(false)[0].ID)
}
