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

// PinHandler handles HTTP requests related to pins
type PinHandler struct {
	pinRepository      repositories.PinRepository
	boardRepository    repositories.BoardRepository
	likeRepository     repositories.LikeRepository
	savedPinRepository repositories.SavedPinRepository
}

// NewPinHandler creates a new PinHandler
func NewPinHandler(pinRepo repositories.PinRepository, boardRepo repositories.BoardRepository, likeRepo repositories.LikeRepository, savedPinRepo repositories.SavedPinRepository) *PinHandler {
	return &PinHandler{
		pinRepository:      pinRepo,
		boardRepository:    boardRepo,
		likeRepository:     likeRepo,
		savedPinRepository: savedPinRepo,
	}
}

// RegisterPinRoutes registers pin-related routes
func (h *PinHandler) RegisterPinRoutes(pub, priv *echo.Group) {
	pub.GET("/pins", h.ListPins)
	pub.GET("/pins/search", h.SearchPins)
	pub.GET("/pins/:id", h.GetPin)
	priv.POST("/pins", h.CreatePin)
	priv.PATCH("/pins/:id", h.UpdatePin)
	priv.DELETE("/pins/:id", h.DeletePin)
	priv.POST("/pins/:id/like", h.ToggleLike)
	priv.POST("/pins/:id/save", h.SavePin)
}

// ListPins retrieves one page of pins, newest first
func (h *PinHandler) ListPins(c echo.Context) error {
	p := paginationFrom(c)

	pins, total, err := h.pinRepository.ListPins(p.Offset(), p.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := attachLikeCounts(h.likeRepository, pins); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.PageResponse{
		Data: pins,
		Meta: models.NewPageMeta(p, total),
	})
}

// SearchPins searches pins by title or description with the same pagination
// envelope as ListPins, echoing the query in the meta block
func (h *PinHandler) SearchPins(c echo.Context) error {
	query := c.QueryParam("q")
	p := paginationFrom(c)

	pins, total, err := h.pinRepository.SearchPins(query, p.Offset(), p.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := attachLikeCounts(h.likeRepository, pins); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	meta := models.NewPageMeta(p, total)
	meta.Query = query
	return c.JSON(http.StatusOK, models.PageResponse{Data: pins, Meta: meta})
}

// GetPin retrieves a single pin with like/save counts. When the request
// carries a valid token, the viewer's own like/save state is included.
func (h *PinHandler) GetPin(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	pin, err := h.pinRepository.GetPinByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detail := models.PinDetail{Pin: *pin}
	detail.LikesCount, err = h.likeRepository.CountLikesByPinID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	detail.SavedCount, err = h.savedPinRepository.CountSavesByPinID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if claims := middleware.ClaimsFrom(c); claims != nil {
		detail.IsLiked, err = h.likeRepository.HasUserLikedPin(claims.UserID, id)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		detail.IsSaved, err = h.savedPinRepository.IsPinSaved(claims.UserID, id)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, detail)
}

// CreatePin creates a new pin. A board linkage, if supplied, must point to a
// board the caller owns.
func (h *PinHandler) CreatePin(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	var req models.CreatePinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.BoardID != nil {
		if _, err := boardOwnedBy(h.boardRepository, *req.BoardID, claims.UserID); err != nil {
			return err
		}
	}

	pin := &models.Pin{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		UserID:      claims.UserID,
		BoardID:     req.BoardID,
	}

	if err := h.pinRepository.CreatePin(pin); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, err := h.pinRepository.GetPinByID(pin.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePin updates a pin owned by the caller
func (h *PinHandler) UpdatePin(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.UpdatePinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pin, err := h.pinRepository.GetPinByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := requireOwner(pin.UserID, claims.UserID, "You can only update your own pins"); err != nil {
		return err
	}

	if req.BoardID != nil {
		if _, err := boardOwnedBy(h.boardRepository, *req.BoardID, claims.UserID); err != nil {
			return err
		}
		pin.BoardID = req.BoardID
	}
	if req.Title != "" {
		pin.Title = req.Title
	}
	if req.Description != "" {
		pin.Description = req.Description
	}
	if req.ImageURL != "" {
		pin.ImageURL = req.ImageURL
	}
	if req.Link != "" {
		pin.Link = req.Link
	}

	if err := h.pinRepository.UpdatePin(pin); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.pinRepository.GetPinByID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePin deletes a pin owned by the caller together with its likes and
// saved-pin links
func (h *PinHandler) DeletePin(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	pin, err := h.pinRepository.GetPinByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := requireOwner(pin.UserID, claims.UserID, "You can only delete your own pins"); err != nil {
		return err
	}

	if err := h.pinRepository.DeletePin(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Pin deleted successfully"})
}

// ToggleLike flips the caller's like on a pin and reports the new state
func (h *PinHandler) ToggleLike(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if _, err := h.pinRepository.GetPinByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked, err := h.likeRepository.ToggleLike(claims.UserID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.likeRepository.CountLikesByPinID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "likes_count": count})
}

// SavePin flips whether the pin is saved into one of the caller's boards and
// reports the new state
func (h *PinHandler) SavePin(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.SavePinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.pinRepository.GetPinByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := boardOwnedBy(h.boardRepository, req.BoardID, claims.UserID); err != nil {
		return err
	}

	saved, err := h.savedPinRepository.ToggleSavedPin(claims.UserID, id, req.BoardID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"saved": saved})
}

// parseID extracts the numeric :id path parameter
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return uint(id), nil
}

// paginationFrom reads and clamps the page/limit query parameters
func paginationFrom(c echo.Context) models.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return models.NewPagination(page, limit)
}
