// Package adapters はcontactフィーチャーの永続化と通知の実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wealth_backend/internal/feature/contact/domain/entity"
	"wealth_backend/internal/feature/contact/usecase"
)

// contactGorm はContactRepositoryのGORM実装です。
type contactGorm struct {
	db *gorm.DB
}

var _ usecase.ContactRepository = (*contactGorm)(nil)

// NewContactGorm は指定されたgorm.DB接続でcontactGormを生成します。
func NewContactGorm(db *gorm.DB) *contactGorm {
	return &contactGorm{db: db}
}

// Create はお問い合わせを保存します。
func (r *contactGorm) Create(ctx context.Context, msg *entity.ContactMessage) error {
	if msg == nil {
		return errors.New("nil contact message")
	}
	return r.db.WithContext(ctx).Create(msg).Error
}
