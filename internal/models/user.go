package models

// User represents a user in the system.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Login    string `json:"login" gorm:"size:255;not null"`
	Name     string `json:"name" gorm:"size:255"`
	Birthday Date   `json:"birthday"`

	// Friends maps friend id to friendship status. It is a materialized view
	// over the friends table, never owned state; it never contains the user's
	// own id.
	Friends map[int64]FriendStatus `json:"friends,omitempty" gorm:"-"`
}
