package repositories

import (
	"github.com/pinrest/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavedPinRepository defines the interface for saved pin operations
type SavedPinRepository interface {
	ToggleSavedPin(userID, pinID, boardID uint) (bool, error)
	IsPinSaved(userID, pinID uint) (bool, error)
	CountSavesByPinID(pinID uint) (int64, error)
	GetSavedPinsByBoardID(boardID uint) ([]models.SavedPin, error)
}

// PostgresSavedPinRepository implements SavedPinRepository
type PostgresSavedPinRepository struct {
	db *gorm.DB
}

func NewPostgresSavedPinRepository(db *gorm.DB) *PostgresSavedPinRepository {
	return &PostgresSavedPinRepository{db: db}
}

// ToggleSavedPin atomically flips the saved state for (user, pin, board) and
// returns the resulting state. Same race-free shape as ToggleLike: delete
// first, else insert with ON CONFLICT DO NOTHING, all in one transaction.
func (r *PostgresSavedPinRepository) ToggleSavedPin(userID, pinID, boardID uint) (bool, error) {
	saved := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND pin_id = ? AND board_id = ?", userID, pinID, boardID).
			Delete(&models.SavedPin{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		sp := &models.SavedPin{UserID: userID, PinID: pinID, BoardID: boardID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(sp).Error; err != nil {
			return err
		}
		saved = true
		return nil
	})
	return saved, err
}

// IsPinSaved checks if a user has saved a pin to any of their boards
func (r *PostgresSavedPinRepository) IsPinSaved(userID, pinID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedPin{}).Where("user_id = ? AND pin_id = ?", userID, pinID).Count(&count).Error
	return count > 0, err
}

// CountSavesByPinID retrieves the count of saves for a specific pin
func (r *PostgresSavedPinRepository) CountSavesByPinID(pinID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.SavedPin{}).Where("pin_id = ?", pinID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSavedPinsByBoardID retrieves the saved-pin links for a board, newest first
func (r *PostgresSavedPinRepository) GetSavedPinsByBoardID(boardID uint) ([]models.SavedPin, error) {
	var saved []models.SavedPin
	err := r.db.Where("board_id = ?", boardID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}
