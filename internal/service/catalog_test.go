package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
	"github.com/VitalyVL1/filmorate/internal/storage/memory"
)

func TestGenreService_CreateEnforcesUniqueName(t *testing.T) {
	svc := NewGenreService(memory.NewGenreStorage())

	created, err := svc.Create(&models.Genre{Name: "Фантастика"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	_, err = svc.Create(&models.Genre{Name: "Комедия"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestGenreService_Update(t *testing.T) {
	svc := NewGenreService(memory.NewGenreStorage())

	_, err := svc.Update(&models.Genre{Name: "Комедия"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(&models.Genre{ID: 1, Name: "Драма"})
	assert.ErrorIs(t, err, storage.ErrDuplicate, "renaming onto another entry's name collides")

	updated, err := svc.Update(&models.Genre{ID: 1, Name: "Комедия"})
	require.NoError(t, err)
	assert.Equal(t, "Комедия", updated.Name, "keeping your own name is not a conflict")
}

func TestMpaService_CreateEnforcesUniqueName(t *testing.T) {
	svc := NewMpaService(memory.NewMpaStorage())

	_, err := svc.Create(&models.Mpa{Name: "PG-13"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	created, err := svc.Create(&models.Mpa{Name: "NR", Description: "не оценивался"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)
}

func TestMpaService_RemoveByID(t *testing.T) {
	svc := NewMpaService(memory.NewMpaStorage())

	removed, err := svc.RemoveByID(5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", removed.Name)

	_, err = svc.RemoveByID(5)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
