package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user. The User field is a lookup relation only,
	// populated on demand via Preload; it is never serialized directly.
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DateTime  time.Time `gorm:"not null" json:"date_time"`
	PartySize int       `gorm:"not null" json:"party_size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
