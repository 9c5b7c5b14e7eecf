package models

// Like represents an existence-only like edge between a film and a user.
// At most one like exists per (film, user) pair.
type Like struct {
	FilmID int64 `gorm:"primaryKey;column:film_id"`
	UserID int64 `gorm:"primaryKey;column:user_id"`

	Film Film `gorm:"foreignKey:FilmID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TableName keeps the relational schema's table name.
func (Like) TableName() string {
	return "likes"
}
