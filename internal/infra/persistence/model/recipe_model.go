package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. UserID references users.id with
// ON DELETE CASCADE so removing a user removes their recipes in the same
// transaction.
type RecipeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Instructions      string    `gorm:"type:text;not null"`
	MinutesToComplete *int
	UserID            uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
