package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPCodeModel mirrors the 'otp_codes' table.
type OTPCodeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Phone      string    `gorm:"type:varchar(20);not null;index:idx_otp_codes_phone_created,priority:1"`
	CodeHash   string    `gorm:"type:varchar(255);not null"`
	Attempts   int       `gorm:"not null;default:0"`
	ExpiresAt  time.Time `gorm:"not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time `gorm:"index:idx_otp_codes_phone_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (OTPCodeModel) TableName() string {
	return "otp_codes"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
