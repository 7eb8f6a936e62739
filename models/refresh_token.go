package models

import (
	"time"

	"gorm.io/gorm"
)

type RefreshToken struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	UserID         uint           `json:"user_id" gorm:"not null"`
	User           User           `json:"-" gorm:"foreignKey:UserID"`
	Token          string         `json:"token" gorm:"not null"`
	ExpirationDate time.Time      `json:"expiry" gorm:"not null"`
}
