// Package storage defines the persistence contracts the service layer depends
// on. Two interchangeable backends implement them: an in-memory store and a
// relational store (see the memory and postgres subpackages). The backend is
// chosen once at process start via configuration.
package storage

import "github.com/VitalyVL1/filmorate/internal/models"

// UserStorage manages users and their friendship edges.
type UserStorage interface {
	// Create assigns a new unique id, persists the user and returns the
	// stored entity.
	Create(user *models.User) (*models.User, error)

	// FindByID returns the user with its friend map fully materialized.
	FindByID(id int64) (*models.User, error)

	// FindAll returns every user, each with its friend map materialized.
	FindAll() ([]*models.User, error)

	// Update overwrites the existing record with the user's fields and
	// returns the stored entity.
	Update(user *models.User) (*models.User, error)

	// RemoveByID deletes the user and returns the pre-deletion snapshot.
	// Friendship edges and likes referencing the user are removed with it.
	RemoveByID(id int64) (*models.User, error)

	// ContainsEmail reports whether any user other than excludeID already
	// uses the email. Pass excludeID = 0 for creation checks.
	ContainsEmail(email string, excludeID int64) (bool, error)

	// AddFriend inserts the directed user->friend edge with the given
	// status. A CONFIRMED status also installs the reciprocal edge.
	AddFriend(user, friend *models.User, status models.FriendStatus) error

	// RemoveFriend deletes only the user->friend directed edge.
	RemoveFriend(user, friend *models.User) error

	// FindFriends returns all users referenced by the owner's friend map.
	FindFriends(user *models.User) ([]*models.User, error)

	// FindCommonFriends returns the intersection of both users' friend
	// maps, materialized as full user entities.
	FindCommonFriends(user, other *models.User) ([]*models.User, error)
}

// FilmStorage manages films, their catalog associations and like edges.
type FilmStorage interface {
	// Create assigns an id, persists the core fields, associates genres and
	// resolves the full rating details onto the returned entity.
	Create(film *models.Film) (*models.Film, error)

	// FindByID returns the film with likes, genres and rating materialized.
	FindByID(id int64) (*models.Film, error)

	// FindAll returns every film with the same materialization as FindByID.
	FindAll() ([]*models.Film, error)

	// Update overwrites the film's core fields. When the genre set is
	// non-nil the existing associations are fully replaced.
	Update(film *models.Film) (*models.Film, error)

	// RemoveByID deletes the film and returns the pre-deletion snapshot.
	RemoveByID(id int64) (*models.Film, error)

	// AddLike and RemoveLike are idempotent set operations on the like
	// relation.
	AddLike(filmID, userID int64) error
	RemoveLike(filmID, userID int64) error

	// FindPopular returns up to limit films ordered by like count
	// descending.
	FindPopular(limit int) ([]*models.Film, error)
}

// GenreStorage is the genre reference-data catalog.
type GenreStorage interface {
	Create(genre *models.Genre) (*models.Genre, error)
	FindByID(id int64) (*models.Genre, error)
	FindAll() ([]*models.Genre, error)
	Update(genre *models.Genre) (*models.Genre, error)
	RemoveByID(id int64) (*models.Genre, error)

	// Contains reports existence by id, used to validate film references.
	Contains(id int64) (bool, error)

	// ContainsName reports whether another entry (excluding excludeID)
	// already uses the name.
	ContainsName(name string, excludeID int64) (bool, error)
}

// MpaStorage is the MPA rating reference-data catalog.
type MpaStorage interface {
	Create(mpa *models.Mpa) (*models.Mpa, error)
	FindByID(id int64) (*models.Mpa, error)
	FindAll() ([]*models.Mpa, error)
	Update(mpa *models.Mpa) (*models.Mpa, error)
	RemoveByID(id int64) (*models.Mpa, error)
	Contains(id int64) (bool, error)
	ContainsName(name string, excludeID int64) (bool, error)
}
