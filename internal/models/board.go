package models

import "time"

// Board is a named, ownable collection of pins, optionally private.
type Board struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CoverImage  string       `json:"cover_image"`
	IsPrivate   bool         `json:"is_private"`
	UserID      uint         `json:"user_id" gorm:"index"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	User        *UserSummary `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Pins        []Pin        `json:"pins,omitempty" gorm:"foreignKey:BoardID"`
	PinsCount   int64        `json:"pins_count" gorm:"-"`
}

// BoardSummary is the trimmed projection embedded in pin responses. It reads
// from the boards table.
type BoardSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func (BoardSummary) TableName() string {
	return "boards"
}

type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	CoverImage  string `json:"cover_image" validate:"omitempty,url"`
	IsPrivate   bool   `json:"is_private"`
}

type UpdateBoardRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	CoverImage  string `json:"cover_image,omitempty" validate:"omitempty,url"`
	IsPrivate   *bool  `json:"is_private,omitempty"`
}
