package models

import (
	cryptoRand "crypto/rand"
	"fmt"
	"time"
)

// VerificationPurposeConfirm 注册后确认邮箱
const VerificationPurposeConfirm = "confirm"

// ConfirmationTTL 确认码有效期
const ConfirmationTTL = 10 * time.Minute

// EmailVerification 邮箱确认码
type EmailVerification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Email     string    `json:"email" gorm:"index;size:100;not null"`
	Code      string    `json:"-" gorm:"size:6;not null"`
	Purpose   string    `json:"purpose" gorm:"size:20;not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 设置表名
func (EmailVerification) TableName() string {
	return "email_verifications"
}

// NewConfirmation 为用户生成一条新的确认码记录
func NewConfirmation(user *User, now time.Time) (*EmailVerification, error) {
	code, err := GenerateVerificationCode()
	if err != nil {
		return nil, err
	}
	return &EmailVerification{
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		Purpose:   VerificationPurposeConfirm,
		ExpiresAt: now.Add(ConfirmationTTL),
	}, nil
}

// IsExpired 检查确认码是否过期
func (e *EmailVerification) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// IsValid 未使用且未过期
func (e *EmailVerification) IsValid() bool {
	return !e.Used && !e.IsExpired()
}

// GenerateVerificationCode 生成6位数字验证码
func GenerateVerificationCode() (string, error) {
	b := make([]byte, 3)
	if _, err := randRead(b); err != nil {
		return "", err
	}
	code := int(b[0])<<16 | int(b[1])<<8 | int(b[2])
	code = code%900000 + 100000
	return fmt.Sprintf("%06d", code), nil
}

var randRead = func(b []byte) (int, error) {
	return cryptoRand.Read(b)
}
