package models

import "time"

// User — строка таблицы users. Email — естественный уникальный ключ (upsert по нему).
type User struct {
	ID           string     `json:"id,omitempty" gorm:"primaryKey;type:text"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	FullName     string     `json:"full_name" gorm:"column:full_name"`
	Role         string     `json:"role" gorm:"not null" validate:"required"`
	IsActive     bool       `json:"is_active" gorm:"column:is_active"`
	PasswordHash string     `json:"password_hash" gorm:"column:password_hash;not null" validate:"required"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// TableName фиксирует имя таблицы для GORM
func (User) TableName() string {
	return "users"
}
