// Package postgres implements the storage contracts on the relational
// schema. Single statements rely on the engine for atomicity; multi-statement
// sequences run inside explicit transactions.
package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// UserStorage implements storage.UserStorage over the users and friends
// tables.
type UserStorage struct {
	db *gorm.DB
}

// NewUserStorage creates a relational user store.
func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{db: db}
}

// Create persists the user and returns it with the generated id.
func (s *UserStorage) Create(user *models.User) (*models.User, error) {
	stored := *user
	stored.ID = 0
	stored.Friends = nil

	if err := s.db.Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if stored.ID == 0 {
		return nil, fmt.Errorf("%w: generated user id not returned", storage.ErrInternal)
	}
	stored.Friends = make(map[int64]models.FriendStatus)
	return &stored, nil
}

// FindByID returns the user with the friend map loaded from the friends
// table.
func (s *UserStorage) FindByID(id int64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	friends, err := s.friendMap(id)
	if err != nil {
		return nil, err
	}
	user.Friends = friends
	return &user, nil
}

// FindAll returns every user ordered by id, friend maps included.
func (s *UserStorage) FindAll() ([]*models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	out := make([]*models.User, 0, len(users))
	for i := range users {
		friends, err := s.friendMap(users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Friends = friends
		out = append(out, &users[i])
	}
	return out, nil
}

// Update overwrites the user's scalar columns.
func (s *UserStorage) Update(user *models.User) (*models.User, error) {
	res := s.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"email":    user.Email,
		"login":    user.Login,
		"name":     user.Name,
		"birthday": user.Birthday,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update user %d: %w", user.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.FindByID(user.ID)
}

// RemoveByID deletes the user and returns the pre-deletion snapshot.
// Dependent friends and likes rows go with it through ON DELETE CASCADE.
func (s *UserStorage) RemoveByID(id int64) (*models.User, error) {
	snapshot, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return nil, fmt.Errorf("delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: delete of user %d affected no rows", storage.ErrInternal, id)
	}
	return snapshot, nil
}

// ContainsEmail reports whether any user other than excludeID uses the email.
func (s *UserStorage) ContainsEmail(email string, excludeID int64) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// AddFriend upserts the user->friend edge; a CONFIRMED status also upserts
// the reciprocal edge.
func (s *UserStorage) AddFriend(user, friend *models.User, status models.FriendStatus) error {
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}

	edge := models.Friendship{UserID: user.ID, FriendID: friend.ID, Status: status}
	if err := s.db.Clauses(upsert).Create(&edge).Error; err != nil {
		return fmt.Errorf("add friend edge %d->%d: %w", user.ID, friend.ID, err)
	}

	if status == models.StatusConfirmed {
		reverse := models.Friendship{UserID: friend.ID, FriendID: user.ID, Status: models.StatusConfirmed}
		if err := s.db.Clauses(upsert).Create(&reverse).Error; err != nil {
			return fmt.Errorf("add friend edge %d->%d: %w", friend.ID, user.ID, err)
		}
	}
	return nil
}

// RemoveFriend deletes only the user->friend directed edge; a previously
// confirmed reciprocal edge survives.
func (s *UserStorage) RemoveFriend(user, friend *models.User) error {
	err := s.db.Where("user_id = ? AND friend_id = ?", user.ID, friend.ID).
		Delete(&models.Friendship{}).Error
	if err != nil {
		return fmt.Errorf("remove friend edge %d->%d: %w", user.ID, friend.ID, err)
	}
	return nil
}

// FindFriends returns all users the owner holds an edge to.
func (s *UserStorage) FindFriends(user *models.User) ([]*models.User, error) {
	sub := s.db.Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", user.ID)

	var users []models.User
	if err := s.db.Where("id IN (?)", sub).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("find friends of user %d: %w", user.ID, err)
	}
	return s.withFriendMaps(users)
}

// FindCommonFriends intersects both users' friend ids in-database.
func (s *UserStorage) FindCommonFriends(user, other *models.User) ([]*models.User, error) {
	var users []models.User
	err := s.db.Where(
		"id IN (SELECT friend_id FROM friends WHERE user_id = ? INTERSECT SELECT friend_id FROM friends WHERE user_id = ?)",
		user.ID, other.ID,
	).Order("id").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("find common friends of users %d and %d: %w", user.ID, other.ID, err)
	}
	return s.withFriendMaps(users)
}

func (s *UserStorage) withFriendMaps(users []models.User) ([]*models.User, error) {
	out := make([]*models.User, 0, len(users))
	for i := range users {
		friends, err := s.friendMap(users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Friends = friends
		out = append(out, &users[i])
	}
	return out, nil
}

func (s *UserStorage) friendMap(id int64) (map[int64]models.FriendStatus, error) {
	var edges []models.Friendship
	if err := s.db.Where("user_id = ?", id).Find(&edges).Error; err != nil {
		return nil, fmt.Errorf("load friends of user %d: %w", id, err)
	}
	friends := make(map[int64]models.FriendStatus, len(edges))
	for _, edge := range edges {
		friends[edge.FriendID] = edge.Status
	}
	return friends, nil
}
