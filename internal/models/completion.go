package models

import "time"

type Completion struct {
	ID uint64 `gorm:"primarykey" json:"id"`
	// The composite unique index enforces at most one completion per
	// (user, mission) pair even under concurrent requests.
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_completions_user_mission" json:"user_id"`
	MissionID   uint64    `gorm:"not null;uniqueIndex:idx_completions_user_mission" json:"mission_id"`
	Photo       string    `gorm:"type:varchar(512)" json:"photo"`
	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`
}
