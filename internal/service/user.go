// Package service holds the business rules sitting between the HTTP handlers
// and the storage backends: uniqueness enforcement, cross-entity existence
// checks and field merging on updates.
package service

import (
	"fmt"
	"strings"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// UserUpdate carries a partial user update. Nil fields leave the stored
// value untouched.
type UserUpdate struct {
	ID       int64
	Email    *string
	Login    *string
	Name     *string
	Birthday *models.Date
}

// UserService orchestrates user CRUD and friendship management.
type UserService struct {
	users storage.UserStorage
}

// NewUserService creates a user service over the given backend.
func NewUserService(users storage.UserStorage) *UserService {
	return &UserService{users: users}
}

// Create stores a new user. The email must not be in use; a blank display
// name defaults to the login.
func (s *UserService) Create(user *models.User) (*models.User, error) {
	used, err := s.users.ContainsEmail(user.Email, 0)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: email %q is already in use", storage.ErrDuplicate, user.Email)
	}

	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return s.users.Create(user)
}

// FindByID returns the user or storage.ErrNotFound.
func (s *UserService) FindByID(id int64) (*models.User, error) {
	return s.users.FindByID(id)
}

// FindAll returns every user.
func (s *UserService) FindAll() ([]*models.User, error) {
	return s.users.FindAll()
}

// Update merges the non-nil fields of upd onto the stored record. A changed
// email must not collide with any other user's.
func (s *UserService) Update(upd UserUpdate) (*models.User, error) {
	if upd.ID == 0 {
		return nil, fmt.Errorf("%w: id must be provided", ErrValidation)
	}

	user, err := s.users.FindByID(upd.ID)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil && !strings.EqualFold(*upd.Email, user.Email) {
		used, err := s.users.ContainsEmail(*upd.Email, upd.ID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, fmt.Errorf("%w: email %q is already in use", storage.ErrDuplicate, *upd.Email)
		}
	}

	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Login != nil {
		user.Login = *upd.Login
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Birthday != nil {
		user.Birthday = *upd.Birthday
	}
	return s.users.Update(user)
}

// RemoveByID deletes the user and returns the pre-deletion snapshot.
func (s *UserService) RemoveByID(id int64) (*models.User, error) {
	return s.users.RemoveByID(id)
}

// AddFriend installs a friendship edge from id to friendID with the given
// status string (UNCONFIRMED or CONFIRMED) and returns the refreshed owner.
func (s *UserService) AddFriend(id, friendID int64, statusValue string) (*models.User, error) {
	status, err := models.ParseFriendStatus(statusValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if id == friendID {
		return nil, fmt.Errorf("%w: a user cannot befriend themselves", ErrValidation)
	}

	user, friend, err := s.pair(id, friendID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddFriend(user, friend, status); err != nil {
		return nil, err
	}
	return s.users.FindByID(id)
}

// RemoveFriend deletes the id->friendID edge and returns the refreshed
// owner.
func (s *UserService) RemoveFriend(id, friendID int64) (*models.User, error) {
	user, friend, err := s.pair(id, friendID)
	if err != nil {
		return nil, err
	}
	if err := s.users.RemoveFriend(user, friend); err != nil {
		return nil, err
	}
	return s.users.FindByID(id)
}

// FindFriends lists the user's friends.
func (s *UserService) FindFriends(id int64) ([]*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.users.FindFriends(user)
}

// FindCommonFriends lists the users both id and otherID hold an edge to.
func (s *UserService) FindCommonFriends(id, otherID int64) ([]*models.User, error) {
	user, other, err := s.pair(id, otherID)
	if err != nil {
		return nil, err
	}
	return s.users.FindCommonFriends(user, other)
}

func (s *UserService) pair(id, otherID int64) (*models.User, *models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("user %d: %w", id, err)
	}
	other, err := s.users.FindByID(otherID)
	if err != nil {
		return nil, nil, fmt.Errorf("user %d: %w", otherID, err)
	}
	return user, other, nil
}
