package repositories

import (
	"github.com/pinrest/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BoardRepository defines the interface for board data operations
type BoardRepository interface {
	CreateBoard(board *models.Board) error
	GetBoardByID(id uint) (*models.Board, error)
	GetBoardWithPins(id uint) (*models.Board, error)
	ListBoards(viewerID *uint) ([]models.Board, error)
	GetBoardsByUserID(userID uint, includePrivate bool) ([]models.Board, error)
	UpdateBoard(board *models.Board) error
	DeleteBoard(id uint) error
	CountBoardsByUserID(userID uint) (int64, error)
	CountPinsByBoardIDs(boardIDs []uint) (map[uint]int64, error)
}

// PostgresBoardRepository implements BoardRepository for PostgreSQL
type PostgresBoardRepository struct {
	db *gorm.DB
}

// NewPostgresBoardRepository creates a new PostgresBoardRepository
func NewPostgresBoardRepository(db *gorm.DB) *PostgresBoardRepository {
	return &PostgresBoardRepository{db: db}
}

// CreateBoard creates a new board in PostgreSQL. Association fields are
// read-only projections and never written back.
func (r *PostgresBoardRepository) CreateBoard(board *models.Board) error {
	return r.db.Omit(clause.Associations).Create(board).Error
}

// GetBoardByID retrieves a board with its owner summary
func (r *PostgresBoardRepository) GetBoardByID(id uint) (*models.Board, error) {
	var board models.Board
	if err := r.db.Preload("User").First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// GetBoardWithPins retrieves a board including its pins, newest first, each
// with its owner summary
func (r *PostgresBoardRepository) GetBoardWithPins(id uint) (*models.Board, error) {
	var board models.Board
	err := r.db.Preload("User").
		Preload("Pins", func(db *gorm.DB) *gorm.DB {
			return db.Order("pins.created_at DESC")
		}).
		Preload("Pins.User").
		First(&board, id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListBoards retrieves all public boards, plus the viewer's own private
// boards when a viewer is given, newest first
func (r *PostgresBoardRepository) ListBoards(viewerID *uint) ([]models.Board, error) {
	q := r.db.Preload("User").Order("created_at DESC")
	if viewerID != nil {
		q = q.Where("is_private = ? OR user_id = ?", false, *viewerID)
	} else {
		q = q.Where("is_private = ?", false)
	}

	var boards []models.Board
	if err := q.Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoardsByUserID retrieves a user's boards, optionally including private
// ones, newest first
func (r *PostgresBoardRepository) GetBoardsByUserID(userID uint, includePrivate bool) ([]models.Board, error) {
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if !includePrivate {
		q = q.Where("is_private = ?", false)
	}

	var boards []models.Board
	if err := q.Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// UpdateBoard updates an existing board in PostgreSQL
func (r *PostgresBoardRepository) UpdateBoard(board *models.Board) error {
	return r.db.Omit(clause.Associations).Save(board).Error
}

// DeleteBoard removes a board in one transaction: its saved-pin links are
// deleted and its directly linked pins are detached (board_id set to NULL),
// not deleted — pins outlive the boards that collect them.
func (r *PostgresBoardRepository) DeleteBoard(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.SavedPin{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Pin{}).Where("board_id = ?", id).Update("board_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Board{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountBoardsByUserID retrieves the number of boards owned by a user
func (r *PostgresBoardRepository) CountBoardsByUserID(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Board{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPinsByBoardIDs returns a map of board ID to the number of pins
// directly linked to it
func (r *PostgresBoardRepository) CountPinsByBoardIDs(boardIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	if len(boardIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		BoardID uint
		Count   int64
	}
	err := r.db.Model(&models.Pin{}).
		Select("board_id, COUNT(*) as count").
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.BoardID] = row.Count
	}
	return result, nil
}
