package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/pinrest/backend/internal/middleware"
	"github.com/pinrest/backend/internal/models"
	"github.com/pinrest/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository  repositories.UserRepository
	pinRepository   repositories.PinRepository
	boardRepository repositories.BoardRepository
	likeRepository  repositories.LikeRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, pinRepo repositories.PinRepository, boardRepo repositories.BoardRepository, likeRepo repositories.LikeRepository) *UserHandler {
	return &UserHandler{
		userRepository:  userRepo,
		pinRepository:   pinRepo,
		boardRepository: boardRepo,
		likeRepository:  likeRepo,
	}
}

// RegisterUserRoutes registers user profile-related routes
func (h *UserHandler) RegisterUserRoutes(pub, priv *echo.Group) {
	priv.GET("/users/me", h.GetMe)       // Get own profile
	priv.PATCH("/users/me", h.UpdateMe)  // Update own profile
	pub.GET("/users/:id", h.GetUser)     // Get any user's profile by ID
	pub.GET("/users/:id/boards", h.GetUserBoards)
	pub.GET("/users/:id/pins", h.GetUserPins)
}

// GetMe retrieves the authenticated user's profile with content counts
func (h *UserHandler) GetMe(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	profile, err := h.profileFor(claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMe updates the authenticated user's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		user.Username = req.Username
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// GetUser retrieves any user's public profile with content counts
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	profile, err := h.profileFor(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// GetUserBoards retrieves a user's boards. Private boards are only included
// when the requester is the owner.
func (h *UserHandler) GetUserBoards(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	claims := middleware.ClaimsFrom(c)
	includePrivate := claims != nil && claims.UserID == uint(id)

	boards, err := h.boardRepository.GetBoardsByUserID(uint(id), includePrivate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := attachPinCounts(h.boardRepository, boards); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, boards)
}

// GetUserPins retrieves all pins created by a user
func (h *UserHandler) GetUserPins(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	pins, err := h.pinRepository.GetPinsByUserID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := attachLikeCounts(h.likeRepository, pins); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, pins)
}

// profileFor loads a user and their pin/board counts
func (h *UserHandler) profileFor(userID uint) (*models.Profile, error) {
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	pinsCount, err := h.pinRepository.CountPinsByUserID(userID)
	if err != nil {
		return nil, err
	}
	boardsCount, err := h.boardRepository.CountBoardsByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User:        *user,
		PinsCount:   pinsCount,
		BoardsCount: boardsCount,
	}, nil
}
