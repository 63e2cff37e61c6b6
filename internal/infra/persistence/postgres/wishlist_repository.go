package postgres

import (
	"context"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Wishlist, error) {
	var itemModels []*model.WishlistItemModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("added_at").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load wishlist")
	}

	wishlist := &entity.Wishlist{OwnerID: ownerID, Items: make([]entity.WishlistItem, 0, len(itemModels))}
	for _, itemM := range itemModels {
		wishlist.Items = append(wishlist.Items, entity.WishlistItem{ProductID: itemM.ProductID, AddedAt: itemM.AddedAt})
	}

	return wishlist, nil
}

func (repo *wishlistRepository) Add(ctx context.Context, ownerID uuid.UUID, item entity.WishlistItem) error {
	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.WishlistItemModel{
		OwnerID:   ownerID,
		ProductID: item.ProductID,
		AddedAt:   item.AddedAt,
	})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemExists
	}

	return nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, ownerID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}
