package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

// GenreStorage implements storage.GenreStorage over the genres table.
type GenreStorage struct {
	db *gorm.DB
}

// NewGenreStorage creates a relational genre catalog.
func NewGenreStorage(db *gorm.DB) *GenreStorage {
	return &GenreStorage{db: db}
}

func (s *GenreStorage) Create(genre *models.Genre) (*models.Genre, error) {
	stored := *genre
	stored.ID = 0
	if err := s.db.Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}
	return &stored, nil
}

func (s *GenreStorage) FindByID(id int64) (*models.Genre, error) {
	var genre models.Genre
	if err := s.db.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find genre %d: %w", id, err)
	}
	return &genre, nil
}

func (s *GenreStorage) FindAll() ([]*models.Genre, error) {
	var genres []models.Genre
	if err := s.db.Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	out := make([]*models.Genre, 0, len(genres))
	for i := range genres {
		out = append(out, &genres[i])
	}
	return out, nil
}

func (s *GenreStorage) Update(genre *models.Genre) (*models.Genre, error) {
	res := s.db.Model(&models.Genre{}).Where("id = ?", genre.ID).Update("name", genre.Name)
	if res.Error != nil {
		return nil, fmt.Errorf("update genre %d: %w", genre.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.FindByID(genre.ID)
}

func (s *GenreStorage) RemoveByID(id int64) (*models.Genre, error) {
	snapshot, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Genre{}, id).Error; err != nil {
		return nil, fmt.Errorf("delete genre %d: %w", id, err)
	}
	return snapshot, nil
}

func (s *GenreStorage) Contains(id int64) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Genre{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check genre %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *GenreStorage) ContainsName(name string, excludeID int64) (bool, error) {
	var count int64
	err := s.db.Model(&models.Genre{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check genre name: %w", err)
	}
	return count > 0, nil
}

// MpaStorage implements storage.MpaStorage over the mpa table.
type MpaStorage struct {
	db *gorm.DB
}

// NewMpaStorage creates a relational MPA rating catalog.
func NewMpaStorage(db *gorm.DB) *MpaStorage {
	return &MpaStorage{db: db}
}

func (s *MpaStorage) Create(mpa *models.Mpa) (*models.Mpa, error) {
	stored := *mpa
	stored.ID = 0
	if err := s.db.Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("create mpa: %w", err)
	}
	return &stored, nil
}

func (s *MpaStorage) FindByID(id int64) (*models.Mpa, error) {
	var mpa models.Mpa
	if err := s.db.First(&mpa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find mpa %d: %w", id, err)
	}
	return &mpa, nil
}

func (s *MpaStorage) FindAll() ([]*models.Mpa, error) {
	var ratings []models.Mpa
	if err := s.db.Order("id").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("find mpa ratings: %w", err)
	}
	out := make([]*models.Mpa, 0, len(ratings))
	for i := range ratings {
		out = append(out, &ratings[i])
	}
	return out, nil
}

func (s *MpaStorage) Update(mpa *models.Mpa) (*models.Mpa, error) {
	res := s.db.Model(&models.Mpa{}).Where("id = ?", mpa.ID).Updates(map[string]interface{}{
		"name":        mpa.Name,
		"description": mpa.Description,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update mpa %d: %w", mpa.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.FindByID(mpa.ID)
}

func (s *MpaStorage) RemoveByID(id int64) (*models.Mpa, error) {
	snapshot, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Mpa{}, id).Error; err != nil {
		return nil, fmt.Errorf("delete mpa %d: %w", id, err)
	}
	return snapshot, nil
}

func (s *MpaStorage) Contains(id int64) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Mpa{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check mpa %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *MpaStorage) ContainsName(name string, excludeID int64) (bool, error) {
	var count int64
	err := s.db.Model(&models.Mpa{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check mpa name: %w", err)
	}
	return count > 0, nil
}
