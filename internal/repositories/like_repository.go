package repositories

import (
	"github.com/pinrest/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(userID, pinID uint) (bool, error)
	HasUserLikedPin(userID, pinID uint) (bool, error)
	CountLikesByPinID(pinID uint) (int64, error)
	CountLikesByPinIDs(pinIDs []uint) (map[uint]int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike atomically flips the like state for (user, pin) and returns the
// resulting state. The delete-then-insert pair runs in one transaction, and
// the insert carries ON CONFLICT DO NOTHING so two concurrent toggles cannot
// surface a uniqueness violation: one of them removes the row or wins the
// insert, the other observes the same final state.
func (r *PostgresLikeRepository) ToggleLike(userID, pinID uint) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND pin_id = ?", userID, pinID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// Row existed; the toggle removed it.
			return nil
		}
		like := &models.Like{UserID: userID, PinID: pinID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// HasUserLikedPin checks if a user has liked a specific pin
func (r *PostgresLikeRepository) HasUserLikedPin(userID, pinID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND pin_id = ?", userID, pinID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountLikesByPinID retrieves the count of likes for a specific pin
func (r *PostgresLikeRepository) CountLikesByPinID(pinID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("pin_id = ?", pinID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountLikesByPinIDs returns a map of pin ID to like count for one batch of
// pins, so listings do not issue one count query per pin
func (r *PostgresLikeRepository) CountLikesByPinIDs(pinIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	if len(pinIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		PinID uint
		Count int64
	}
	err := r.db.Model(&models.Like{}).
		Select("pin_id, COUNT(*) as count").
		Where("pin_id IN ?", pinIDs).
		Group("pin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.PinID] = row.Count
	}
	return result, nil
}
