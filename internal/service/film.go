package service

import (
	"fmt"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// FilmUpdate carries a partial film update. Nil fields leave the stored
// value untouched; a non-nil Genres set fully replaces the existing
// associations.
type FilmUpdate struct {
	ID          int64
	Name        *string
	Description *string
	ReleaseDate *models.Date
	Duration    *int
	Mpa         *models.Mpa
	Genres      []models.Genre
}

// FilmService orchestrates film CRUD, reference validation and the like
// relation.
type FilmService struct {
	films  storage.FilmStorage
	users  storage.UserStorage
	genres storage.GenreStorage
	mpa    storage.MpaStorage
}

// NewFilmService creates a film service over the given backends. The user
// and catalog stores are consulted for existence checks only.
func NewFilmService(
	films storage.FilmStorage,
	users storage.UserStorage,
	genres storage.GenreStorage,
	mpa storage.MpaStorage,
) *FilmService {
	return &FilmService{films: films, users: users, genres: genres, mpa: mpa}
}

// Create validates that the referenced rating and genres exist, then stores
// the film. No partial write happens on a dangling reference.
func (s *FilmService) Create(film *models.Film) (*models.Film, error) {
	if err := s.checkRefs(film.Mpa, film.Genres); err != nil {
		return nil, err
	}
	return s.films.Create(film)
}

// FindByID returns the film or storage.ErrNotFound.
func (s *FilmService) FindByID(id int64) (*models.Film, error) {
	return s.films.FindByID(id)
}

// FindAll returns every film.
func (s *FilmService) FindAll() ([]*models.Film, error) {
	return s.films.FindAll()
}

// Update merges the non-nil fields of upd onto the stored record after
// validating any newly referenced rating and genres.
func (s *FilmService) Update(upd FilmUpdate) (*models.Film, error) {
	if upd.ID == 0 {
		return nil, fmt.Errorf("%w: id must be provided", ErrValidation)
	}
	if err := s.checkRefs(upd.Mpa, upd.Genres); err != nil {
		return nil, err
	}

	film, err := s.films.FindByID(upd.ID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		film.Name = *upd.Name
	}
	if upd.Description != nil {
		film.Description = *upd.Description
	}
	if upd.ReleaseDate != nil {
		film.ReleaseDate = *upd.ReleaseDate
	}
	if upd.Duration != nil {
		film.Duration = *upd.Duration
	}
	if upd.Mpa != nil {
		film.Mpa = upd.Mpa
	}
	// nil means "leave associations untouched" all the way down.
	film.Genres = upd.Genres

	return s.films.Update(film)
}

// RemoveByID deletes the film and returns the pre-deletion snapshot.
func (s *FilmService) RemoveByID(id int64) (*models.Film, error) {
	return s.films.RemoveByID(id)
}

// AddLike records that the user liked the film. Both must exist.
func (s *FilmService) AddLike(filmID, userID int64) (*models.Film, error) {
	if err := s.checkLikePair(filmID, userID); err != nil {
		return nil, err
	}
	if err := s.films.AddLike(filmID, userID); err != nil {
		return nil, err
	}
	return s.films.FindByID(filmID)
}

// RemoveLike removes the user's like from the film. Both must exist.
func (s *FilmService) RemoveLike(filmID, userID int64) (*models.Film, error) {
	if err := s.checkLikePair(filmID, userID); err != nil {
		return nil, err
	}
	if err := s.films.RemoveLike(filmID, userID); err != nil {
		return nil, err
	}
	return s.films.FindByID(filmID)
}

// FindPopular returns up to count films ordered by like count descending.
func (s *FilmService) FindPopular(count int) ([]*models.Film, error) {
	return s.films.FindPopular(count)
}

// checkRefs verifies every supplied rating/genre reference against the
// catalogs before any write is attempted.
func (s *FilmService) checkRefs(mpa *models.Mpa, genres []models.Genre) error {
	if mpa != nil {
		ok, err := s.mpa.Contains(mpa.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: mpa with id = %d", storage.ErrNotFound, mpa.ID)
		}
	}
	for _, genre := range genres {
		ok, err := s.genres.Contains(genre.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: genre with id = %d", storage.ErrNotFound, genre.ID)
		}
	}
	return nil
}

func (s *FilmService) checkLikePair(filmID, userID int64) error {
	if _, err := s.films.FindByID(filmID); err != nil {
		return fmt.Errorf("film %d: %w", filmID, err)
	}
	if _, err := s.users.FindByID(userID); err != nil {
		return fmt.Errorf("user %d: %w", userID, err)
	}
	return nil
}
