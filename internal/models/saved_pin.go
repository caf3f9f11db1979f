package models

import "time"

// SavedPin records that a user has placed a pin into one of their boards,
// unique per (user, pin, board).
type SavedPin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_pin_board_save"`
	PinID     uint      `json:"pin_id" gorm:"index;uniqueIndex:idx_user_pin_board_save"`
	BoardID   uint      `json:"board_id" gorm:"index;uniqueIndex:idx_user_pin_board_save"`
	CreatedAt time.Time `json:"created_at"`
}
