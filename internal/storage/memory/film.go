package memory

import (
	"fmt"
	"sort"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// FilmStorage keeps films and their like edges in memory. Genre and rating
// details are resolved through the injected catalog stores so the entity
// always carries full reference data, same as the relational backend.
type FilmStorage struct {
	films  map[int64]*models.Film
	likes  map[int64]map[int64]struct{}
	genres storage.GenreStorage
	mpa    storage.MpaStorage
}

// NewFilmStorage creates an empty in-memory film store backed by the given
// reference-data catalogs.
func NewFilmStorage(genres storage.GenreStorage, mpa storage.MpaStorage) *FilmStorage {
	return &FilmStorage{
		films:  make(map[int64]*models.Film),
		likes:  make(map[int64]map[int64]struct{}),
		genres: genres,
		mpa:    mpa,
	}
}

// Create assigns the next id, resolves rating and genre details and stores
// the film.
func (s *FilmStorage) Create(film *models.Film) (*models.Film, error) {
	stored := *film
	stored.ID = s.nextID()

	if err := s.resolveRefs(&stored); err != nil {
		return nil, err
	}
	s.films[stored.ID] = &stored
	return s.materialize(&stored), nil
}

// FindByID returns the film with likes, genres and rating materialized.
func (s *FilmStorage) FindByID(id int64) (*models.Film, error) {
	film, ok := s.films[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.materialize(film), nil
}

// FindAll returns every film ordered by id.
func (s *FilmStorage) FindAll() ([]*models.Film, error) {
	films := make([]*models.Film, 0, len(s.films))
	for _, film := range s.films {
		films = append(films, s.materialize(film))
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

// Update overwrites the stored record. A nil genre set leaves the existing
// associations untouched; a non-nil set fully replaces them.
func (s *FilmStorage) Update(film *models.Film) (*models.Film, error) {
	old, ok := s.films[film.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	stored := *film
	if stored.Genres == nil {
		stored.Genres = old.Genres
	}
	if err := s.resolveRefs(&stored); err != nil {
		return nil, err
	}
	s.films[stored.ID] = &stored
	return s.materialize(&stored), nil
}

// RemoveByID deletes the film and its like edges, returning the pre-deletion
// snapshot.
func (s *FilmStorage) RemoveByID(id int64) (*models.Film, error) {
	film, ok := s.films[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	snapshot := s.materialize(film)

	delete(s.films, id)
	delete(s.likes, id)
	return snapshot, nil
}

// AddLike inserts the (film, user) like edge. Adding an existing like is a
// no-op.
func (s *FilmStorage) AddLike(filmID, userID int64) error {
	if _, ok := s.films[filmID]; !ok {
		return storage.ErrNotFound
	}
	set, ok := s.likes[filmID]
	if !ok {
		set = make(map[int64]struct{})
		s.likes[filmID] = set
	}
	set[userID] = struct{}{}
	return nil
}

// RemoveLike deletes the (film, user) like edge. Removing an absent like is
// a no-op.
func (s *FilmStorage) RemoveLike(filmID, userID int64) error {
	if _, ok := s.films[filmID]; !ok {
		return storage.ErrNotFound
	}
	delete(s.likes[filmID], userID)
	return nil
}

// FindPopular returns up to limit films ordered by like count descending,
// ties broken by ascending id.
func (s *FilmStorage) FindPopular(limit int) ([]*models.Film, error) {
	films, err := s.FindAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(films, func(i, j int) bool {
		return len(s.likes[films[i].ID]) > len(s.likes[films[j].ID])
	})
	if limit >= 0 && limit < len(films) {
		films = films[:limit]
	}
	return films, nil
}

// resolveRefs replaces bare rating/genre references with full catalog rows.
// Genres are deduplicated by id and sorted ascending.
func (s *FilmStorage) resolveRefs(film *models.Film) error {
	if film.Mpa != nil {
		mpa, err := s.mpa.FindByID(film.Mpa.ID)
		if err != nil {
			return fmt.Errorf("resolve mpa %d: %w", film.Mpa.ID, err)
		}
		film.Mpa = mpa
		film.MpaID = &mpa.ID
	}

	if film.Genres != nil {
		seen := make(map[int64]struct{}, len(film.Genres))
		resolved := make([]models.Genre, 0, len(film.Genres))
		for _, ref := range film.Genres {
			if _, dup := seen[ref.ID]; dup {
				continue
			}
			seen[ref.ID] = struct{}{}

			genre, err := s.genres.FindByID(ref.ID)
			if err != nil {
				return fmt.Errorf("resolve genre %d: %w", ref.ID, err)
			}
			resolved = append(resolved, *genre)
		}
		sort.Slice(resolved, func(i, j int) bool { return resolved[i].ID < resolved[j].ID })
		film.Genres = resolved
	}
	return nil
}

func (s *FilmStorage) materialize(film *models.Film) *models.Film {
	out := *film
	out.Genres = make([]models.Genre, 0, len(film.Genres))
	out.Genres = append(out.Genres, film.Genres...)

	out.Likes = make([]int64, 0, len(s.likes[film.ID]))
	for userID := range s.likes[film.ID] {
		out.Likes = append(out.Likes, userID)
	}
	sort.Slice(out.Likes, func(i, j int) bool { return out.Likes[i] < out.Likes[j] })
	return &out
}

func (s *FilmStorage) nextID() int64 {
	var max int64
	for id := range s.films {
		if id > max {
			max = id
		}
	}
	return max + 1
}
