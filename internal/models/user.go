package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // Store hashed password, ignore for JSON serialization
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the trimmed owner projection embedded in pin and board
// responses. It reads from the users table.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (UserSummary) TableName() string {
	return "users"
}

// Summary returns the public projection of a user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

// Profile is a user plus their content counts, returned by the profile endpoints.
type Profile struct {
	User
	PinsCount   int64 `json:"pins_count"`
	BoardsCount int64 `json:"boards_count"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
