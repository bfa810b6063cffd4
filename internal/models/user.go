package models

import "time"

type User struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	// Stored and returned as-is; existing clients compare it by value.
	Password     string    `gorm:"type:varchar(255);not null" json:"password"`
	Experience   int       `gorm:"not null;default:0" json:"experience"`
	Photo        string    `gorm:"type:varchar(512)" json:"photo"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
}
