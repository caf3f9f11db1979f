package client

import "time"

// Wire types mirroring the API's JSON shapes.

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Profile struct {
	User
	PinsCount   int64 `json:"pins_count"`
	BoardsCount int64 `json:"boards_count"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type BoardSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type Pin struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url"`
	Link        string        `json:"link,omitempty"`
	UserID      uint          `json:"user_id"`
	BoardID     *uint         `json:"board_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	User        *UserSummary  `json:"user,omitempty"`
	Board       *BoardSummary `json:"board,omitempty"`
	LikesCount  int64         `json:"likes_count"`
}

type PinDetail struct {
	Pin
	SavedCount int64 `json:"saved_count"`
	IsLiked    bool  `json:"is_liked"`
	IsSaved    bool  `json:"is_saved"`
}

type Board struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CoverImage  string       `json:"cover_image"`
	IsPrivate   bool         `json:"is_private"`
	UserID      uint         `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	User        *UserSummary `json:"user,omitempty"`
	Pins        []Pin        `json:"pins,omitempty"`
	PinsCount   int64        `json:"pins_count"`
}

type PageMeta struct {
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int64  `json:"total_pages"`
	Query      string `json:"query,omitempty"`
}

type PinPage struct {
	Data []Pin    `json:"data"`
	Meta PageMeta `json:"meta"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

type CreatePinRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link,omitempty"`
	BoardID     *uint  `json:"board_id,omitempty"`
}

type UpdatePinRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Link        string `json:"link,omitempty"`
	BoardID     *uint  `json:"board_id,omitempty"`
}

type CreateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
	IsPrivate   bool   `json:"is_private"`
}

type UpdateBoardRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
	IsPrivate   *bool  `json:"is_private,omitempty"`
}

type UpdateUserRequest struct {
	Username string `json:"username,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type authResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}

// LikeResult is the response of a like toggle.
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// SaveResult is the response of a save toggle.
type SaveResult struct {
	Saved bool `json:"saved"`
}
