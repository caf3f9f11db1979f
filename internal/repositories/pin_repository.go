package repositories

import (
	"github.com/pinrest/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PinRepository defines the interface for pin data operations
type PinRepository interface {
	CreatePin(pin *models.Pin) error
	GetPinByID(id uint) (*models.Pin, error)
	ListPins(offset, limit int) ([]models.Pin, int64, error)
	SearchPins(query string, offset, limit int) ([]models.Pin, int64, error)
	GetPinsByUserID(userID uint) ([]models.Pin, error)
	UpdatePin(pin *models.Pin) error
	DeletePin(id uint) error
	CountPinsByUserID(userID uint) (int64, error)
}

// PostgresPinRepository implements PinRepository for PostgreSQL
type PostgresPinRepository struct {
	db *gorm.DB
}

// NewPostgresPinRepository creates a new PostgresPinRepository
func NewPostgresPinRepository(db *gorm.DB) *PostgresPinRepository {
	return &PostgresPinRepository{db: db}
}

// CreatePin creates a new pin in PostgreSQL. Association fields are read-only
// projections and never written back.
func (r *PostgresPinRepository) CreatePin(pin *models.Pin) error {
	return r.db.Omit(clause.Associations).Create(pin).Error
}

// GetPinByID retrieves a pin with its owner and board summaries
func (r *PostgresPinRepository) GetPinByID(id uint) (*models.Pin, error) {
	var pin models.Pin
	if err := r.db.Preload("User").Preload("Board").First(&pin, id).Error; err != nil {
		return nil, err
	}
	return &pin, nil
}

// ListPins retrieves one page of pins, newest first, plus the total count
func (r *PostgresPinRepository) ListPins(offset, limit int) ([]models.Pin, int64, error) {
	var total int64
	if err := r.db.Model(&models.Pin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pins []models.Pin
	err := r.db.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&pins).Error
	if err != nil {
		return nil, 0, err
	}
	return pins, total, nil
}

// SearchPins performs a case-insensitive substring match over title and
// description, OR-combined, with the same pagination as ListPins
func (r *PostgresPinRepository) SearchPins(query string, offset, limit int) ([]models.Pin, int64, error) {
	pattern := "%" + query + "%"
	matched := r.db.Model(&models.Pin{}).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)

	var total int64
	if err := matched.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pins []models.Pin
	err := r.db.Preload("User").
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&pins).Error
	if err != nil {
		return nil, 0, err
	}
	return pins, total, nil
}

// GetPinsByUserID retrieves all pins created by a user, newest first
func (r *PostgresPinRepository) GetPinsByUserID(userID uint) ([]models.Pin, error) {
	var pins []models.Pin
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pins).Error
	if err != nil {
		return nil, err
	}
	return pins, nil
}

// UpdatePin updates an existing pin in PostgreSQL
func (r *PostgresPinRepository) UpdatePin(pin *models.Pin) error {
	return r.db.Omit(clause.Associations).Save(pin).Error
}

// DeletePin removes a pin together with its likes and saved-pin links in one
// transaction, keeping the cascade explicit at the storage layer.
func (r *PostgresPinRepository) DeletePin(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pin_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pin_id = ?", id).Delete(&models.SavedPin{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Pin{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountPinsByUserID retrieves the number of pins created by a user
func (r *PostgresPinRepository) CountPinsByUserID(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Pin{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
