package repository

import (
	"gorm.io/gorm"

	"github.com/neotaste/creator-portal/app/models"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create creates a new invoice in the database
func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// GetByID retrieves an invoice by its ID
func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByUUID retrieves an invoice by its UUID
func (r *invoiceRepository) GetByUUID(uuid string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Where("uuid = ?", uuid).First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByCreatorID retrieves all invoices of a creator, newest submission first
func (r *invoiceRepository) GetByCreatorID(creatorID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("creator_id = ?", creatorID).Order("submitted_at DESC").Find(&invoices).Error
	return invoices, err
}

// Update updates an existing invoice in the database
func (r *invoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete soft deletes an invoice by its ID
func (r *invoiceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Invoice{}, id).Error
}

// ListForReview retrieves invoices for the admin review queue. Status, type
// and invoice date range filter in SQL; the free-text term is applied
// afterwards in Go.
func (r *invoiceRepository) ListForReview(filter ReviewFilter) ([]models.Invoice, error) {
	query := r.db.Preload("Creator").Preload("Video").Order("submitted_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DateFrom != nil {
		query = query.Where("invoice_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("invoice_date <= ?", *filter.DateTo)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}

	return FilterInvoicesBySearch(invoices, filter.Search), nil
}

// CountByStatus returns the number of invoices in the given status
func (r *invoiceRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
