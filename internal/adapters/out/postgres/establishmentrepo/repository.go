// Package establishmentrepo persists establishments with GORM.
package establishmentrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// EstablishmentDTO is a row of the establishments table.
type EstablishmentDTO struct {
	Code int64 `gorm:"primaryKey;autoIncrement:false"`
	Name string
}

func (EstablishmentDTO) TableName() string {
	return "establishments"
}

// GormEstablishmentRepository implements EstablishmentRepository using GORM.
type GormEstablishmentRepository struct {
	db *gorm.DB
}

func NewGormEstablishmentRepository(db *gorm.DB) *GormEstablishmentRepository {
	return &GormEstablishmentRepository{db: db}
}

func (r *GormEstablishmentRepository) Add(ctx context.Context, establishment *staff.Establishment) error {
	if err := establishment.Validate(); err != nil {
		return err
	}

	dto := EstablishmentDTO{Code: establishment.Code().Int64(), Name: establishment.Name()}
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewAlreadyExistsErrorWithCause("establishment", establishment.Code().Int64(), err)
	}
	return err
}

// Exists reports whether an establishment with code is stored.
func (r *GormEstablishmentRepository) Exists(ctx context.Context, code kernel.EstablishmentCode) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&EstablishmentDTO{}).
		Where("code = ?", code.Int64()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
