package postgres

import (
	"context"
	"time"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"
	"orderguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// FindByOwnerAndCode retrieves the coupon ownerID holds under code.
func (repo *couponRepository) FindByOwnerAndCode(ctx context.Context, ownerID uuid.UUID, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND code = ?", ownerID, code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find coupon")
	}

	return &entity.Coupon{
		ID:              couponM.ID,
		OwnerID:         couponM.OwnerID,
		Code:            couponM.Code,
		Discount:        couponM.Discount,
		Type:            entity.CouponType(couponM.Type),
		ValidFrom:       couponM.ValidFrom,
		ValidUntil:      couponM.ValidUntil,
		MinimumPurchase: couponM.MinimumPurchase,
		Used:            couponM.Used,
		UsedAt:          couponM.UsedAt,
	}, nil
}

// Claim marks the coupon used with a compare-and-set on the used column.
func (repo *couponRepository) Claim(ctx context.Context, couponID, ownerID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.CouponModel{}).
		Where("id = ? AND owner_id = ? AND used = ?", couponID, ownerID, false).
		Updates(map[string]any{"used": true, "used_at": at})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponAlreadyClaimed
	}

	return nil
}
