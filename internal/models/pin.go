package models

import "time"

// Pin is a single shareable image post. BoardID, when set, must reference a
// board owned by the same user.
type Pin struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url"`
	Link        string        `json:"link,omitempty"`
	UserID      uint          `json:"user_id" gorm:"index"`
	BoardID     *uint         `json:"board_id,omitempty" gorm:"index"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	User        *UserSummary  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Board       *BoardSummary `json:"board,omitempty" gorm:"foreignKey:BoardID"`
	LikesCount  int64         `json:"likes_count" gorm:"-"`
}

// PinDetail is the single-pin response shape: the pin plus viewer-dependent
// like/save state.
type PinDetail struct {
	Pin
	SavedCount int64 `json:"saved_count"`
	IsLiked    bool  `json:"is_liked"`
	IsSaved    bool  `json:"is_saved"`
}

type CreatePinRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Link        string `json:"link" validate:"omitempty,url"`
	BoardID     *uint  `json:"board_id"`
}

type UpdatePinRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	Link        string `json:"link,omitempty" validate:"omitempty,url"`
	BoardID     *uint  `json:"board_id,omitempty"`
}

// SavePinRequest defines the request body for saving a pin to a board
type SavePinRequest struct {
	BoardID uint `json:"board_id" validate:"required"`
}
