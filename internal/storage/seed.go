package storage

import "github.com/VitalyVL1/filmorate/internal/models"

// Both backends must expose identical seed content and id ordering so that
// swapping implementations is behavior-preserving for pre-seeded ids.

// SeedGenres returns the pre-seeded genre catalog.
func SeedGenres() []models.Genre {
	return []models.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}
}

// SeedMpa returns the pre-seeded MPA rating catalog.
func SeedMpa() []models.Mpa {
	return []models.Mpa{
		{ID: 1, Name: "G", Description: "у фильма нет возрастных ограничений"},
		{ID: 2, Name: "PG", Description: "детям рекомендуется смотреть фильм с родителями"},
		{ID: 3, Name: "PG-13", Description: "детям до 13 лет просмотр не желателен"},
		{ID: 4, Name: "R", Description: "лицам до 17 лет просматривать фильм можно только в присутствии взрослого"},
		{ID: 5, Name: "NC-17", Description: "лицам до 18 лет просмотр запрещён"},
	}
}
