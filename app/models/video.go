package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VideoStatusPending  = "pending"
	VideoStatusApproved = "approved"
	VideoStatusRejected = "rejected"
)

type Video struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UUID             string         `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	CreatorID        uint           `gorm:"index;not null" json:"creator_id"`
	Creator          *Creator       `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	VideoURL         string         `gorm:"type:varchar(500)" json:"video_url,omitempty"`
	FilePath         string         `gorm:"type:varchar(255)" json:"file_path,omitempty"`
	FileName         string         `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	FileSize         int64          `gorm:"type:bigint" json:"file_size"`
	FileType         string         `gorm:"type:varchar(50)" json:"file_type"`
	Status           string         `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminComment     *string        `gorm:"type:text" json:"admin_comment,omitempty"`
	InvoiceSubmitted bool           `gorm:"default:false" json:"invoice_submitted"`
	SubmittedAt      time.Time      `gorm:"index" json:"submitted_at"`
	ReviewedAt       *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedByID     *uint          `gorm:"index" json:"reviewed_by_id,omitempty"`
	ReviewedBy       *Creator       `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.UUID == "" {
		v.UUID = uuid.New().String()
	}
	if v.SubmittedAt.IsZero() {
		v.SubmittedAt = time.Now()
	}
	return nil
}

// IsPending reports whether the video is still awaiting review
func (v *Video) IsPending() bool {
	return v.Status == VideoStatusPending
}

// IsApproved reports whether the video passed review
func (v *Video) IsApproved() bool {
	return v.Status == VideoStatusApproved
}

// IsRejected reports whether the video was rejected
func (v *Video) IsRejected() bool {
	return v.Status == VideoStatusRejected
}

// HasFile reports whether the submission carries an uploaded file rather
// than only a pasted link
func (v *Video) HasFile() bool {
	return v.FilePath != ""
}
