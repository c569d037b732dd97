package models

import "time"

// Followup — отметка о контакте с клиентом (звонок, встреча, письмо).
type Followup struct {
	ID uint `gorm:"primaryKey"`

	CustomerID uint `gorm:"not null"`
	UserID     uint `gorm:"not null"`
	User       User `gorm:"constraint:OnDelete:CASCADE"`

	FollowTime         time.Time `gorm:"not null"`
	FollowMethod       string    `gorm:"size:20;not null"`
	Content            string    `gorm:"type:text;not null"`
	NextFollowReminder *time.Time

	CreatedAt time.Time
}
