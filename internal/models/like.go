package models

import "time"

// Like represents a user's endorsement of a pin. Liked-ness is encoded purely
// by row existence, unique per (user, pin).
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_pin_like"`
	PinID     uint      `json:"pin_id" gorm:"index;uniqueIndex:idx_user_pin_like"`
	CreatedAt time.Time `json:"created_at"`
}
