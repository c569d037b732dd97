package models

import "time"

// TimeLayout — формат всех дат в API (и в ответах, и во входных данных).
const TimeLayout = "2006-01-02 15:04:05"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:50;not null"`
	Password  string `gorm:"size:100;not null"` // bcrypt-хэш, не plaintext
	Nickname  string `gorm:"size:50;not null"`
	Role      string `gorm:"size:20;default:user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
