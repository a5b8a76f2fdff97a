package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNoIdentity 未登录
	ErrNoIdentity = errors.New("请先登录")
	// ErrNotFound 记录不存在（或不属于当前用户）
	ErrNotFound = errors.New("记录不存在")
	// ErrInvalidAmount 金额为负
	ErrInvalidAmount = errors.New("金额不能为负数")
	// ErrInvalidCategory 不在固定类别内
	ErrInvalidCategory = errors.New("无效的类别")
	// ErrBudgetExists 该类别已设置预算
	ErrBudgetExists = errors.New("该类别已设置预算")
)

// Identity 当前登录身份，零值表示未登录
type Identity struct {
	UserID   uint
	Username string
}

// Present 是否已登录
func (i Identity) Present() bool {
	return i.UserID != 0
}

// Ledger 收支与预算的数据访问门面，所有查询都按身份隔离
type Ledger struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLedger 创建数据访问门面
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db, now: time.Now}
}

func (l *Ledger) conn(ctx context.Context) *gorm.DB {
	return l.db.WithContext(ctx)
}

// ownedBy 按所有者过滤
func ownedBy(id Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", id.UserID)
	}
}

// newestFirst 收入/支出列表排序：日期倒序，同日按创建时间、ID 倒序
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at DESC").Order("id DESC")
}

// deleteResult 把删除结果统一为 (成功, 原因)
func deleteResult(kind string, recordID uint, tx *gorm.DB) (bool, error) {
	if tx.Error != nil {
		log.Printf("删除%s失败 id=%d: %v", kind, recordID, tx.Error)
		return false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return false, ErrNotFound
	}
	log.Printf("%s %d 已删除", kind, recordID)
	return true, nil
}
