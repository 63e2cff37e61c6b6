package postgres

import (
	"context"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"
	"orderguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository is the catalog lookup and stock ledger.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves every listed product that exists, keyed by ID.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products")
	}

	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

// DecrementStock removes quantity units in one conditional UPDATE, so two
// concurrent orders can never drive stock below zero.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ? AND is_active AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrStockUnavailable
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockUnavailable
	}

	return nil
}

// IncrementStock adds quantity units.
func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Price:          data.Price,
		WholesalePrice: data.WholesalePrice,
		Stock:          data.Stock,
		IsActive:       data.IsActive,
		UpdatedAt:      data.UpdatedAt,
	}
}
