package service

import (
	"fmt"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// GenreService manages the genre reference-data catalog. Names are unique.
type GenreService struct {
	genres storage.GenreStorage
}

// NewGenreService creates a genre service over the given backend.
func NewGenreService(genres storage.GenreStorage) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) Create(genre *models.Genre) (*models.Genre, error) {
	used, err := s.genres.ContainsName(genre.Name, 0)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: genre %q already exists", storage.ErrDuplicate, genre.Name)
	}
	return s.genres.Create(genre)
}

func (s *GenreService) FindByID(id int64) (*models.Genre, error) {
	return s.genres.FindByID(id)
}

func (s *GenreService) FindAll() ([]*models.Genre, error) {
	return s.genres.FindAll()
}

func (s *GenreService) Update(genre *models.Genre) (*models.Genre, error) {
	if genre.ID == 0 {
		return nil, fmt.Errorf("%w: id must be provided", ErrValidation)
	}
	used, err := s.genres.ContainsName(genre.Name, genre.ID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: genre %q already exists", storage.ErrDuplicate, genre.Name)
	}
	return s.genres.Update(genre)
}

func (s *GenreService) RemoveByID(id int64) (*models.Genre, error) {
	return s.genres.RemoveByID(id)
}

// MpaService manages the MPA rating catalog. Names are unique.
type MpaService struct {
	mpa storage.MpaStorage
}

// NewMpaService creates an MPA service over the given backend.
func NewMpaService(mpa storage.MpaStorage) *MpaService {
	return &MpaService{mpa: mpa}
}

func (s *MpaService) Create(mpa *models.Mpa) (*models.Mpa, error) {
	used, err := s.mpa.ContainsName(mpa.Name, 0)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: mpa rating %q already exists", storage.ErrDuplicate, mpa.Name)
	}
	return s.mpa.Create(mpa)
}

func (s *MpaService) FindByID(id int64) (*models.Mpa, error) {
	return s.mpa.FindByID(id)
}

func (s *MpaService) FindAll() ([]*models.Mpa, error) {
	return s.mpa.FindAll()
}

func (s *MpaService) Update(mpa *models.Mpa) (*models.Mpa, error) {
	if mpa.ID == 0 {
		return nil, fmt.Errorf("%w: id must be provided", ErrValidation)
	}
	used, err := s.mpa.ContainsName(mpa.Name, mpa.ID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: mpa rating %q already exists", storage.ErrDuplicate, mpa.Name)
	}
	return s.mpa.Update(mpa)
}

func (s *MpaService) RemoveByID(id int64) (*models.Mpa, error) {
	return s.mpa.RemoveByID(id)
}
