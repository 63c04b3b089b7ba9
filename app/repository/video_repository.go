package repository

import (
	"gorm.io/gorm"

	"github.com/neotaste/creator-portal/app/models"
)

// videoRepository implements the VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository instance
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// Create creates a new video submission in the database
func (r *videoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByUUID retrieves a video by its UUID
func (r *videoRepository) GetByUUID(uuid string) (*models.Video, error) {
	var video models.Video
	err := r.db.Where("uuid = ?", uuid).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByCreatorID retrieves all videos of a creator, newest submission first
func (r *videoRepository) GetByCreatorID(creatorID uint) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("creator_id = ?", creatorID).Order("submitted_at DESC").Find(&videos).Error
	return videos, err
}

// GetEligibleForExpense retrieves approved videos without a food expense invoice yet
func (r *videoRepository) GetEligibleForExpense(creatorID uint) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("creator_id = ? AND status = ? AND invoice_submitted = ?",
		creatorID, models.VideoStatusApproved, false).
		Order("submitted_at DESC").Find(&videos).Error
	return videos, err
}

// Update updates an existing video in the database
func (r *videoRepository) Update(video *models.Video) error {
	return r.db.Save(video).Error
}

// MarkInvoiceSubmitted flags a video as consumed by a food expense invoice
func (r *videoRepository) MarkInvoiceSubmitted(videoID uint) error {
	return r.db.Model(&models.Video{}).Where("id = ?", videoID).Update("invoice_submitted", true).Error
}

// Delete soft deletes a video by its ID
func (r *videoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Video{}, id).Error
}

// ListForReview retrieves videos for the admin review queue. Status and date
// range filter in SQL; the free-text term is applied afterwards in Go.
func (r *videoRepository) ListForReview(filter ReviewFilter) ([]models.Video, error) {
	query := r.db.Preload("Creator").Order("submitted_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("submitted_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("submitted_at <= ?", *filter.DateTo)
	}

	var videos []models.Video
	if err := query.Find(&videos).Error; err != nil {
		return nil, err
	}

	return FilterVideosBySearch(videos, filter.Search), nil
}

// CountByStatus returns the number of videos in the given status
func (r *videoRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
