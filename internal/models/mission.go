package models

type Mission struct {
	ID         uint64 `gorm:"primarykey" json:"id"`
	Title      string `gorm:"type:varchar(255);not null" json:"title"`
	Body       string `gorm:"type:text" json:"body"`
	Experience int    `gorm:"not null;default:0" json:"experience"`
}
