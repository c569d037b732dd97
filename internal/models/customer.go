package models

import "time"

type Customer struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:50;not null"`
	Phone    string  `gorm:"size:20;not null"`
	Email    *string `gorm:"size:100"`
	Company  *string `gorm:"size:100"`
	Position *string `gorm:"size:50"`
	Source   *string `gorm:"size:50"` // канал привлечения (реклама, рекомендация и т.п.)
	Notes    *string `gorm:"type:text"`

	// кто завёл клиента; при удалении пользователя ссылка обнуляется
	CreatedBy *uint
	Creator   *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// при удалении клиента вся его история контактов удаляется целиком
	Followups []Followup `gorm:"constraint:OnDelete:CASCADE"`
}
