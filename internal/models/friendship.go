package models

import (
	"fmt"
	"time"
)

// FriendStatus defines the state of a friendship edge between two users.
type FriendStatus string

const (
	// StatusUnconfirmed is a one-directional edge: the owner follows the
	// friend, the friend has no edge back.
	StatusUnconfirmed FriendStatus = "UNCONFIRMED"

	// StatusConfirmed is a bidirectional friendship. Installing a confirmed
	// edge also installs the reverse edge with the same status.
	StatusConfirmed FriendStatus = "CONFIRMED"
)

// ParseFriendStatus translates the wire value into a FriendStatus.
func ParseFriendStatus(s string) (FriendStatus, error) {
	switch FriendStatus(s) {
	case StatusUnconfirmed:
		return StatusUnconfirmed, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	default:
		return "", fmt.Errorf("unknown friendship status %q", s)
	}
}

// Friendship represents a directed friendship edge (owner -> friend).
// The primary key is a composite of (UserID, FriendID) to ensure uniqueness.
type Friendship struct {
	UserID    int64        `gorm:"primaryKey;column:user_id"`
	FriendID  int64        `gorm:"primaryKey;column:friend_id"`
	Status    FriendStatus `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TableName keeps the relational schema's table name.
func (Friendship) TableName() string {
	return "friends"
}
