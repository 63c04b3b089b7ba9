package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/neotaste/creator-portal/app/models"
)

// CreatorRepository defines the interface for creator-related database operations
type CreatorRepository interface {
	Create(creator *models.Creator) error
	GetByID(id uint) (*models.Creator, error)
	GetByUUID(uuid string) (*models.Creator, error)
	GetByEmail(email string) (*models.Creator, error)
	GetByVoucherCode(code string) (*models.Creator, error)
	GetByActivationToken(token string) (*models.Creator, error)
	Update(creator *models.Creator) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Creator, error)
	Count() (int64, error)
	Search(query string) ([]models.Creator, error)
}

// VideoRepository defines the interface for video-related database operations
type VideoRepository interface {
	Create(video *models.Video) error
	GetByID(id uint) (*models.Video, error)
	GetByUUID(uuid string) (*models.Video, error)
	GetByCreatorID(creatorID uint) ([]models.Video, error)
	GetEligibleForExpense(creatorID uint) ([]models.Video, error)
	Update(video *models.Video) error
	MarkInvoiceSubmitted(videoID uint) error
	Delete(id uint) error
	ListForReview(filter ReviewFilter) ([]models.Video, error)
	CountByStatus(status string) (int64, error)
}

// InvoiceRepository defines the interface for invoice-related database operations
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByID(id uint) (*models.Invoice, error)
	GetByUUID(uuid string) (*models.Invoice, error)
	GetByCreatorID(creatorID uint) ([]models.Invoice, error)
	Update(invoice *models.Invoice) error
	Delete(id uint) error
	ListForReview(filter ReviewFilter) ([]models.Invoice, error)
	CountByStatus(status string) (int64, error)
}

// ReviewFilter narrows the admin review queues. Status and Type map to SQL
// predicates; the free-text Search term is applied in Go after loading.
type ReviewFilter struct {
	Status   string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

// Repositories struct holds all repository instances
type Repositories struct {
	Creator CreatorRepository
	Video   VideoRepository
	Invoice InvoiceRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Creator: NewCreatorRepository(db),
		Video:   NewVideoRepository(db),
		Invoice: NewInvoiceRepository(db),
	}
}
