package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income 收入记录模型
type Income struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	Source    string          `json:"source" gorm:"size:100;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date      Date            `json:"date" gorm:"type:date;index;not null"`
	CreatedAt time.Time       `json:"created_at"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
	User      User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Income) TableName() string {
	return "income"
}
