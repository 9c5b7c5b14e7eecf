package models

// Film represents a film in the system.
type Film struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"size:200"`
	ReleaseDate Date   `json:"releaseDate"`
	Duration    int    `json:"duration" gorm:"not null"`

	// MpaID is nullable: deleting a rating sets it to null instead of
	// cascading into the film.
	MpaID *int64 `json:"-" gorm:"column:mpa_id"`
	Mpa   *Mpa   `json:"mpa,omitempty" gorm:"foreignKey:MpaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`

	// Genres are unique by genre id and kept sorted by id.
	Genres []Genre `json:"genres" gorm:"many2many:film_genres;constraint:OnDelete:CASCADE;"`

	// Likes is the set of user ids who liked the film, materialized from the
	// likes table.
	Likes []int64 `json:"likes,omitempty" gorm:"-"`
}

// TableName keeps the relational schema's table name.
func (Film) TableName() string {
	return "films"
}
