// Package waiterrepo persists waiters with GORM.
package waiterrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// WaiterDTO is a row of the waiters table.
type WaiterDTO struct {
	ID   int64 `gorm:"primaryKey;autoIncrement:false"`
	Name string
}

func (WaiterDTO) TableName() string {
	return "waiters"
}

// GormWaiterRepository implements WaiterRepository using GORM.
type GormWaiterRepository struct {
	db *gorm.DB
}

func NewGormWaiterRepository(db *gorm.DB) *GormWaiterRepository {
	return &GormWaiterRepository{db: db}
}

func (r *GormWaiterRepository) Add(ctx context.Context, waiter *staff.Waiter) error {
	if err := waiter.Validate(); err != nil {
		return err
	}

	dto := WaiterDTO{ID: waiter.ID().Int64(), Name: waiter.Name()}
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewAlreadyExistsErrorWithCause("waiter", waiter.ID().Int64(), err)
	}
	return err
}

// Exists reports whether a waiter with id is stored.
func (r *GormWaiterRepository) Exists(ctx context.Context, id kernel.WaiterID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&WaiterDTO{}).
		Where("id = ?", id.Int64()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
