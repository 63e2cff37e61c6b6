package postgres

import (
	"context"
	"time"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository stores carts as cart_items rows keyed by (owner, product).
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByOwner returns the cart of ownerID, oldest line first.
func (repo *cartRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var itemModels []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("added_at, product_id").
		Find(&itemModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	cart := &entity.Cart{OwnerID: ownerID, Items: make([]entity.CartItem, 0, len(itemModels))}
	for _, itemM := range itemModels {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
			AddedAt:   itemM.AddedAt,
		})
	}

	return cart, nil
}

// UpsertItem inserts the line or replaces quantity, name and price of an existing one.
func (repo *cartRepository) UpsertItem(ctx context.Context, ownerID uuid.UUID, item entity.CartItem) error {
	itemM := &model.CartItemModel{
		OwnerID:   ownerID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		AddedAt:   item.AddedAt,
		UpdatedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "quantity", "unit_price", "updated_at"}),
	}).Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart item")
	}

	return nil
}

// RemoveItem deletes one line.
func (repo *cartRepository) RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Clear deletes every line of the cart.
func (repo *cartRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
