package memory

import (
	"sort"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// GenreStorage is the in-memory genre catalog, seeded at construction with
// the fixed reference content.
type GenreStorage struct {
	genres map[int64]models.Genre
}

// NewGenreStorage creates the genre catalog pre-seeded with the fixed
// entries.
func NewGenreStorage() *GenreStorage {
	s := &GenreStorage{genres: make(map[int64]models.Genre)}
	for _, g := range storage.SeedGenres() {
		s.genres[g.ID] = g
	}
	return s
}

func (s *GenreStorage) Create(genre *models.Genre) (*models.Genre, error) {
	stored := *genre
	stored.ID = s.nextID()
	s.genres[stored.ID] = stored
	return &stored, nil
}

func (s *GenreStorage) FindByID(id int64) (*models.Genre, error) {
	genre, ok := s.genres[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &genre, nil
}

func (s *GenreStorage) FindAll() ([]*models.Genre, error) {
	genres := make([]*models.Genre, 0, len(s.genres))
	for id := range s.genres {
		genre := s.genres[id]
		genres = append(genres, &genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (s *GenreStorage) Update(genre *models.Genre) (*models.Genre, error) {
	if _, ok := s.genres[genre.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	stored := *genre
	s.genres[stored.ID] = stored
	return &stored, nil
}

func (s *GenreStorage) RemoveByID(id int64) (*models.Genre, error) {
	genre, ok := s.genres[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(s.genres, id)
	return &genre, nil
}

func (s *GenreStorage) Contains(id int64) (bool, error) {
	_, ok := s.genres[id]
	return ok, nil
}

func (s *GenreStorage) ContainsName(name string, excludeID int64) (bool, error) {
	for _, genre := range s.genres {
		if genre.ID != excludeID && genre.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *GenreStorage) nextID() int64 {
	var max int64
	for id := range s.genres {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// MpaStorage is the in-memory MPA rating catalog, seeded at construction.
type MpaStorage struct {
	ratings map[int64]models.Mpa
}

// NewMpaStorage creates the MPA catalog pre-seeded with the fixed entries.
func NewMpaStorage() *MpaStorage {
	s := &MpaStorage{ratings: make(map[int64]models.Mpa)}
	for _, m := range storage.SeedMpa() {
		s.ratings[m.ID] = m
	}
	return s
}

func (s *MpaStorage) Create(mpa *models.Mpa) (*models.Mpa, error) {
	stored := *mpa
	stored.ID = s.nextID()
	s.ratings[stored.ID] = stored
	return &stored, nil
}

func (s *MpaStorage) FindByID(id int64) (*models.Mpa, error) {
	mpa, ok := s.ratings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &mpa, nil
}

func (s *MpaStorage) FindAll() ([]*models.Mpa, error) {
	ratings := make([]*models.Mpa, 0, len(s.ratings))
	for id := range s.ratings {
		mpa := s.ratings[id]
		ratings = append(ratings, &mpa)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (s *MpaStorage) Update(mpa *models.Mpa) (*models.Mpa, error) {
	if _, ok := s.ratings[mpa.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	stored := *mpa
	s.ratings[stored.ID] = stored
	return &stored, nil
}

func (s *MpaStorage) RemoveByID(id int64) (*models.Mpa, error) {
	mpa, ok := s.ratings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(s.ratings, id)
	return &mpa, nil
}

func (s *MpaStorage) Contains(id int64) (bool, error) {
	_, ok := s.ratings[id]
	return ok, nil
}

func (s *MpaStorage) ContainsName(name string, excludeID int64) (bool, error) {
	for _, mpa := range s.ratings {
		if mpa.ID != excludeID && mpa.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *MpaStorage) nextID() int64 {
	var max int64
	for id := range s.ratings {
		if id > max {
			max = id
		}
	}
	return max + 1
}
