package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusApproved = "approved"
	InvoiceStatusDeclined = "declined"

	InvoiceTypeReferralPayout = "referral_payout"
	InvoiceTypeFoodExpense    = "food_expense"

	CurrencyGBP = "GBP"
	CurrencyEUR = "EUR"
)

type Invoice struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UUID         string          `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	CreatorID    uint            `gorm:"index;not null" json:"creator_id"`
	Creator      *Creator        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	VideoID      *uint           `gorm:"index" json:"video_id,omitempty"`
	Video        *Video          `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	Type         string          `gorm:"type:varchar(30);not null;index" json:"type"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Currency     string          `gorm:"type:varchar(3);default:'GBP'" json:"currency"`
	InvoiceDate  time.Time       `gorm:"type:date;index" json:"invoice_date"`
	FilePath     string          `gorm:"type:varchar(255);not null" json:"file_path"`
	FileName     string          `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize     int64           `gorm:"type:bigint" json:"file_size"`
	Status       string          `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminComment *string         `gorm:"type:text" json:"admin_comment,omitempty"`
	SubmittedAt  time.Time       `gorm:"index" json:"submitted_at"`
	ReviewedAt   *time.Time      `json:"reviewed_at,omitempty"`
	ReviewedByID *uint           `gorm:"index" json:"reviewed_by_id,omitempty"`
	ReviewedBy   *Creator        `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.UUID == "" {
		i.UUID = uuid.New().String()
	}
	if i.SubmittedAt.IsZero() {
		i.SubmittedAt = time.Now()
	}
	return nil
}

// IsPending reports whether the invoice is still awaiting review
func (i *Invoice) IsPending() bool {
	return i.Status == InvoiceStatusPending
}

// IsReferralPayout reports whether the invoice bills referral commission
func (i *Invoice) IsReferralPayout() bool {
	return i.Type == InvoiceTypeReferralPayout
}

// IsFoodExpense reports whether the invoice bills a restaurant visit
func (i *Invoice) IsFoodExpense() bool {
	return i.Type == InvoiceTypeFoodExpense
}

// CurrencySymbol maps an ISO currency code to its display symbol.
// Unknown codes fall back to the pound sign.
func CurrencySymbol(currency string) string {
	if currency == CurrencyEUR {
		return "€"
	}
	return "£"
}

// FormattedAmount renders the amount with its currency symbol, e.g. "£150.00".
func (i *Invoice) FormattedAmount() string {
	return CurrencySymbol(i.Currency) + i.Amount.StringFixed(2)
}
