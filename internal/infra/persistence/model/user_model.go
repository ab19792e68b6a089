package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Phone     string    `gorm:"type:varchar(20);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(20);not null;default:customer;index"`
	IsBlocked bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
	Addresses     []AddressModel      `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
