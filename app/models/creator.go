package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ROLE_CREATOR    = "creator"
	ROLE_ADMIN      = "admin"
	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
	STATUS_DISABLED = "disabled"
)

type Creator struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UUID             string         `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	Name             string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email            string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Password         string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	VoucherCode      string         `gorm:"uniqueIndex;type:varchar(50) CHARACTER SET utf8 COLLATE utf8_bin" json:"voucher_code" validate:"required,min=3,max=50"`
	Role             string         `gorm:"type:varchar(50);default:'creator'" json:"role" validate:"oneof=creator admin"`
	Status           string         `gorm:"type:varchar(50);default:'inactive'" json:"status" validate:"oneof=active inactive disabled"`
	ActivationToken  string         `gorm:"type:varchar(100);index" json:"-"`
	ActivationSentAt *time.Time     `gorm:"type:timestamp;default:null" json:"-"`
	IPv4             string         `gorm:"type:varchar(15);default:null" json:"-"`
	IPv6             string         `gorm:"type:varchar(45);default:null" json:"-"`
	LastLoginAt      *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (cr *Creator) Validate() error {
	v := validator.New()

	return v.Struct(cr)
}

func (cr *Creator) BeforeCreate(tx *gorm.DB) error {
	if cr.UUID == "" {
		cr.UUID = uuid.New().String()
	}
	return nil
}

// CreateCreator builds a new creator account pending activation.
func CreateCreator(name string, email string, password string, voucherCode string) (*Creator, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	cr := &Creator{
		Name:        name,
		Email:       email,
		Password:    pw,
		VoucherCode: voucherCode,
		Role:        ROLE_CREATOR,
		Status:      STATUS_INACTIVE,
	}

	err = cr.Validate()
	if err != nil {
		return nil, err
	}

	return cr, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// GenerateActivationToken creates a random token and sets ActivationSentAt
func (cr *Creator) GenerateActivationToken() error {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	cr.ActivationToken = hex.EncodeToString(b)
	now := time.Now()
	cr.ActivationSentAt = &now
	return nil
}

// IsActive reports whether the creator status is active
func (cr *Creator) IsActive() bool {
	return cr.Status == STATUS_ACTIVE
}

// IsAdmin reports whether the account carries the admin role
func (cr *Creator) IsAdmin() bool {
	return cr.Role == ROLE_ADMIN
}

// CheckPassword verifies if the provided password matches the stored hash
func (cr *Creator) CheckPassword(password string) bool {
	return CheckPasswordHash(password, cr.Password)
}

// SetPassword hashes and sets a new password
func (cr *Creator) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	cr.Password = hashedPassword
	return nil
}
