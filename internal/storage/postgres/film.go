package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// FilmStorage implements storage.FilmStorage over the films, film_genres and
// likes tables.
type FilmStorage struct {
	db *gorm.DB
}

// NewFilmStorage creates a relational film store.
func NewFilmStorage(db *gorm.DB) *FilmStorage {
	return &FilmStorage{db: db}
}

// Create persists the film and its genre associations in one transaction and
// returns the fully materialized entity.
func (s *FilmStorage) Create(film *models.Film) (*models.Film, error) {
	stored := *film
	stored.ID = 0
	stored.Likes = nil
	if stored.Mpa != nil {
		stored.MpaID = &stored.Mpa.ID
	}
	genres := stored.Genres
	stored.Mpa = nil
	stored.Genres = nil

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&stored).Error; err != nil {
			return fmt.Errorf("create film: %w", err)
		}
		if stored.ID == 0 {
			return fmt.Errorf("%w: generated film id not returned", storage.ErrInternal)
		}
		return s.replaceGenres(tx, stored.ID, genres)
	})
	if err != nil {
		return nil, err
	}
	return s.FindByID(stored.ID)
}

// FindByID returns the film with likes, genres (ordered by id) and the full
// rating object materialized.
func (s *FilmStorage) FindByID(id int64) (*models.Film, error) {
	var film models.Film
	err := s.preloaded().First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find film %d: %w", id, err)
	}
	if err := s.fillLikes(&film); err != nil {
		return nil, err
	}
	return &film, nil
}

// FindAll returns every film ordered by id with the same materialization as
// FindByID.
func (s *FilmStorage) FindAll() ([]*models.Film, error) {
	var films []models.Film
	if err := s.preloaded().Order("films.id").Find(&films).Error; err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	return s.materialize(films)
}

// Update overwrites the film's scalar columns and, when a genre set is
// supplied, replaces the genre associations (delete-all then re-insert)
// inside the same transaction.
func (s *FilmStorage) Update(film *models.Film) (*models.Film, error) {
	var mpaID *int64
	if film.Mpa != nil {
		mpaID = &film.Mpa.ID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Film{}).Where("id = ?", film.ID).Updates(map[string]interface{}{
			"name":         film.Name,
			"description":  film.Description,
			"release_date": film.ReleaseDate,
			"duration":     film.Duration,
			"mpa_id":       mpaID,
		})
		if res.Error != nil {
			return fmt.Errorf("update film %d: %w", film.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return storage.ErrNotFound
		}

		if film.Genres == nil {
			return nil
		}
		return s.replaceGenres(tx, film.ID, film.Genres)
	})
	if err != nil {
		return nil, err
	}
	return s.FindByID(film.ID)
}

// RemoveByID deletes the film and returns the pre-deletion snapshot. Likes
// and genre associations go with it through ON DELETE CASCADE.
func (s *FilmStorage) RemoveByID(id int64) (*models.Film, error) {
	snapshot, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	res := s.db.Delete(&models.Film{}, id)
	if res.Error != nil {
		return nil, fmt.Errorf("delete film %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: delete of film %d affected no rows", storage.ErrInternal, id)
	}
	return snapshot, nil
}

// AddLike inserts the like edge; adding an existing like is a no-op.
func (s *FilmStorage) AddLike(filmID, userID int64) error {
	like := models.Like{FilmID: filmID, UserID: userID}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
	if err != nil {
		return fmt.Errorf("add like (%d, %d): %w", filmID, userID, err)
	}
	return nil
}

// RemoveLike deletes the like edge; removing an absent like is a no-op.
func (s *FilmStorage) RemoveLike(filmID, userID int64) error {
	err := s.db.Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&models.Like{}).Error
	if err != nil {
		return fmt.Errorf("remove like (%d, %d): %w", filmID, userID, err)
	}
	return nil
}

// FindPopular returns up to limit films ordered by like count descending,
// ties broken by ascending id. Films without likes rank last.
func (s *FilmStorage) FindPopular(limit int) ([]*models.Film, error) {
	var films []models.Film
	err := s.preloaded().
		Joins("LEFT JOIN likes ON likes.film_id = films.id").
		Group("films.id").
		Order("COUNT(likes.user_id) DESC, films.id").
		Limit(limit).
		Find(&films).Error
	if err != nil {
		return nil, fmt.Errorf("find popular films: %w", err)
	}
	return s.materialize(films)
}

// replaceGenres deletes every genre association of the film and re-inserts
// the given set, deduplicated by id.
func (s *FilmStorage) replaceGenres(tx *gorm.DB, filmID int64, genres []models.Genre) error {
	rows, err := s.catalogGenres(tx, genres)
	if err != nil {
		return err
	}
	film := models.Film{ID: filmID}
	if err := tx.Model(&film).Association("Genres").Replace(rows); err != nil {
		return fmt.Errorf("replace genres of film %d: %w", filmID, err)
	}
	return nil
}

// catalogGenres resolves bare genre references to full catalog rows, ordered
// by id.
func (s *FilmStorage) catalogGenres(tx *gorm.DB, genres []models.Genre) ([]models.Genre, error) {
	if len(genres) == 0 {
		return nil, nil
	}

	seen := make(map[int64]struct{}, len(genres))
	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		ids = append(ids, g.ID)
	}

	var rows []models.Genre
	if err := tx.Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("resolve genres: %w", err)
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("%w: unknown genre id among %v", storage.ErrNotFound, ids)
	}
	return rows, nil
}

func (s *FilmStorage) preloaded() *gorm.DB {
	return s.db.
		Preload("Mpa").
		Preload("Genres", func(tx *gorm.DB) *gorm.DB { return tx.Order("genres.id") })
}

func (s *FilmStorage) fillLikes(film *models.Film) error {
	film.Likes = make([]int64, 0)
	err := s.db.Model(&models.Like{}).
		Where("film_id = ?", film.ID).
		Order("user_id").
		Pluck("user_id", &film.Likes).Error
	if err != nil {
		return fmt.Errorf("load likes of film %d: %w", film.ID, err)
	}
	if film.Genres == nil {
		film.Genres = make([]models.Genre, 0)
	}
	return nil
}

func (s *FilmStorage) materialize(films []models.Film) ([]*models.Film, error) {
	out := make([]*models.Film, 0, len(films))
	for i := range films {
		if err := s.fillLikes(&films[i]); err != nil {
			return nil, err
		}
		out = append(out, &films[i])
	}
	return out, nil
}
