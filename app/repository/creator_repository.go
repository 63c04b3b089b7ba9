package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/neotaste/creator-portal/app/models"
)

// creatorRepository implements the CreatorRepository interface
type creatorRepository struct {
	db *gorm.DB
}

// NewCreatorRepository creates a new creator repository instance
func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

// Create creates a new creator in the database
func (r *creatorRepository) Create(creator *models.Creator) error {
	return r.db.Create(creator).Error
}

// GetByID retrieves a creator by their ID
func (r *creatorRepository) GetByID(id uint) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.First(&creator, id).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// GetByUUID retrieves a creator by their UUID
func (r *creatorRepository) GetByUUID(uuid string) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.Where("uuid = ?", uuid).First(&creator).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// GetByEmail retrieves a creator by their email address
func (r *creatorRepository) GetByEmail(email string) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.Where("email = ?", email).First(&creator).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// GetByVoucherCode retrieves a creator by their voucher code
func (r *creatorRepository) GetByVoucherCode(code string) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.Where("voucher_code = ?", code).First(&creator).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// GetByActivationToken retrieves a creator by their activation token
func (r *creatorRepository) GetByActivationToken(token string) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.Where("activation_token = ?", token).First(&creator).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// Update updates an existing creator in the database
func (r *creatorRepository) Update(creator *models.Creator) error {
	return r.db.Save(creator).Error
}

// Delete soft deletes a creator by their ID
func (r *creatorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Creator{}, id).Error
}

// List retrieves a paginated list of creators
func (r *creatorRepository) List(offset, limit int) ([]models.Creator, error) {
	var creators []models.Creator
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&creators).Error
	return creators, err
}

// Count returns the total number of creators
func (r *creatorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Creator{}).Count(&count).Error
	return count, err
}

// Search searches for creators by name, email or voucher code
func (r *creatorRepository) Search(query string) ([]models.Creator, error) {
	var creators []models.Creator
	searchPattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("name LIKE ? OR email LIKE ? OR voucher_code LIKE ?", searchPattern, searchPattern, searchPattern).Find(&creators).Error
	return creators, err
}
