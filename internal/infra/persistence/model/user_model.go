package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The unique index on username is the
// authority for uniqueness; the repository translates its violation into a
// domain error. password_hash never appears on any serialized view.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	ImageURL     string    `gorm:"type:text"`
	Bio          string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Recipes []RecipeModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
