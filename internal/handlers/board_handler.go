package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/pinrest/backend/internal/middleware"
	"github.com/pinrest/backend/internal/models"
	"github.com/pinrest/backend/internal/repositories"
)

// BoardHandler handles HTTP requests related to boards
type BoardHandler struct {
	boardRepository repositories.BoardRepository
	likeRepository  repositories.LikeRepository
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardRepo repositories.BoardRepository, likeRepo repositories.LikeRepository) *BoardHandler {
	return &BoardHandler{
		boardRepository: boardRepo,
		likeRepository:  likeRepo,
	}
}

// RegisterBoardRoutes registers board-related routes
func (h *BoardHandler) RegisterBoardRoutes(pub, priv *echo.Group) {
	pub.GET("/boards", h.ListBoards)
	pub.GET("/boards/:id", h.GetBoard)
	priv.POST("/boards", h.CreateBoard)
	priv.PATCH("/boards/:id", h.UpdateBoard)
	priv.DELETE("/boards/:id", h.DeleteBoard)
}

// ListBoards retrieves all public boards, plus the caller's own boards when
// authenticated
func (h *BoardHandler) ListBoards(c echo.Context) error {
	var viewerID *uint
	if claims := middleware.ClaimsFrom(c); claims != nil {
		viewerID = &claims.UserID
	}

	boards, err := h.boardRepository.ListBoards(viewerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := attachPinCounts(h.boardRepository, boards); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, boards)
}

// GetBoard retrieves a board with its pins. Private boards are only visible
// to their owner.
func (h *BoardHandler) GetBoard(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	board, err := h.boardRepository.GetBoardWithPins(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Board not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	claims := middleware.ClaimsFrom(c)
	if board.IsPrivate && (claims == nil || claims.UserID != board.UserID) {
		return echo.NewHTTPError(http.StatusForbidden, "This board is private")
	}

	if err := attachLikeCounts(h.likeRepository, board.Pins); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	board.PinsCount = int64(len(board.Pins))

	return c.JSON(http.StatusOK, board)
}

// CreateBoard creates a new board owned by the caller
func (h *BoardHandler) CreateBoard(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	var req models.CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	board := &models.Board{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		IsPrivate:   req.IsPrivate,
		UserID:      claims.UserID,
	}

	if err := h.boardRepository.CreateBoard(board); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, err := h.boardRepository.GetBoardByID(board.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBoard updates a board owned by the caller
func (h *BoardHandler) UpdateBoard(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.UpdateBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	board, err := h.boardRepository.GetBoardByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Board not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := requireOwner(board.UserID, claims.UserID, "You can only update your own boards"); err != nil {
		return err
	}

	if req.Title != "" {
		board.Title = req.Title
	}
	if req.Description != "" {
		board.Description = req.Description
	}
	if req.CoverImage != "" {
		board.CoverImage = req.CoverImage
	}
	if req.IsPrivate != nil {
		board.IsPrivate = *req.IsPrivate
	}

	if err := h.boardRepository.UpdateBoard(board); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, board)
}

// DeleteBoard deletes a board owned by the caller. Its pins are detached, not
// deleted.
func (h *BoardHandler) DeleteBoard(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	board, err := h.boardRepository.GetBoardByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Board not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := requireOwner(board.UserID, claims.UserID, "You can only delete your own boards"); err != nil {
		return err
	}

	if err := h.boardRepository.DeleteBoard(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Board deleted successfully"})
}
