package models

// Genre is a catalog entry classifying a film's category (e.g., Комедия).
// The catalog is pre-seeded with ids 1-6 and immutable by convention, though
// administrators may extend it through the admin API.
type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;unique;not null"`
}

// TableName keeps the relational schema's table name.
func (Genre) TableName() string {
	return "genres"
}

// Mpa is a catalog entry denoting a film's MPA age-appropriateness rating
// (e.g., PG-13). Pre-seeded with ids 1-5.
type Mpa struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;unique;not null"`
	Description string `json:"description" gorm:"size:255"`
}

// TableName keeps the relational schema's table name.
func (Mpa) TableName() string {
	return "mpa"
}
