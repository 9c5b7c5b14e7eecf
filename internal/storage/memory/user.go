// Package memory implements the storage contracts with plain process-resident
// maps. It is the non-durable backend: no synchronization, no persistence,
// catalog content seeded at construction time.
package memory

import (
	"sort"
	"strings"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// UserStorage keeps users and their friendship edges in memory.
type UserStorage struct {
	users   map[int64]*models.User
	friends map[int64]map[int64]models.FriendStatus
}

// NewUserStorage creates an empty in-memory user store.
func NewUserStorage() *UserStorage {
	return &UserStorage{
		users:   make(map[int64]*models.User),
		friends: make(map[int64]map[int64]models.FriendStatus),
	}
}

// Create assigns the next id (one greater than the current max) and stores a
// copy of the user.
func (s *UserStorage) Create(user *models.User) (*models.User, error) {
	stored := *user
	stored.ID = s.nextID()
	s.users[stored.ID] = &stored
	return s.materialize(&stored), nil
}

// FindByID returns the user with its friend map materialized.
func (s *UserStorage) FindByID(id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.materialize(user), nil
}

// FindAll returns every user ordered by id.
func (s *UserStorage) FindAll() ([]*models.User, error) {
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, s.materialize(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Update overwrites the stored record with the given user's fields.
func (s *UserStorage) Update(user *models.User) (*models.User, error) {
	if _, ok := s.users[user.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	stored := *user
	stored.Friends = nil
	s.users[stored.ID] = &stored
	return s.materialize(&stored), nil
}

// RemoveByID deletes the user together with every friendship edge that
// references it, and returns the pre-deletion snapshot.
func (s *UserStorage) RemoveByID(id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	snapshot := s.materialize(user)

	delete(s.users, id)
	delete(s.friends, id)
	for _, edges := range s.friends {
		delete(edges, id)
	}
	return snapshot, nil
}

// ContainsEmail reports whether any user other than excludeID uses the email.
func (s *UserStorage) ContainsEmail(email string, excludeID int64) (bool, error) {
	for _, user := range s.users {
		if user.ID != excludeID && strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// AddFriend inserts the user->friend edge. A CONFIRMED edge also installs
// the reciprocal CONFIRMED edge.
func (s *UserStorage) AddFriend(user, friend *models.User, status models.FriendStatus) error {
	s.edge(user.ID)[friend.ID] = status
	if status == models.StatusConfirmed {
		s.edge(friend.ID)[user.ID] = models.StatusConfirmed
	}
	return nil
}

// RemoveFriend deletes only the user->friend directed edge. A previously
// confirmed reciprocal edge survives.
func (s *UserStorage) RemoveFriend(user, friend *models.User) error {
	delete(s.edge(user.ID), friend.ID)
	return nil
}

// FindFriends returns all users referenced by the owner's friend map keys.
func (s *UserStorage) FindFriends(user *models.User) ([]*models.User, error) {
	friends := make([]*models.User, 0, len(s.friends[user.ID]))
	for id := range s.friends[user.ID] {
		if stored, ok := s.users[id]; ok {
			friends = append(friends, s.materialize(stored))
		}
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].ID < friends[j].ID })
	return friends, nil
}

// FindCommonFriends returns the intersection of both users' friend maps.
func (s *UserStorage) FindCommonFriends(user, other *models.User) ([]*models.User, error) {
	otherFriends := s.friends[other.ID]

	common := make([]*models.User, 0)
	for id := range s.friends[user.ID] {
		if _, shared := otherFriends[id]; !shared {
			continue
		}
		if stored, ok := s.users[id]; ok {
			common = append(common, s.materialize(stored))
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].ID < common[j].ID })
	return common, nil
}

func (s *UserStorage) edge(ownerID int64) map[int64]models.FriendStatus {
	edges, ok := s.friends[ownerID]
	if !ok {
		edges = make(map[int64]models.FriendStatus)
		s.friends[ownerID] = edges
	}
	return edges
}

// materialize copies the stored record and fills its friend map so callers
// never alias internal state.
func (s *UserStorage) materialize(user *models.User) *models.User {
	out := *user
	out.Friends = make(map[int64]models.FriendStatus, len(s.friends[user.ID]))
	for id, status := range s.friends[user.ID] {
		out.Friends[id] = status
	}
	return &out
}

func (s *UserStorage) nextID() int64 {
	var max int64
	for id := range s.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}
