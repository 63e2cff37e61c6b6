package impl

import (
	"context"
	"log/slog"

	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/policy"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	auth        *PurchaseAuthorizer
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Authorizer  *PurchaseAuthorizer
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		auth:        params.Authorizer,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProductQuote returns the price the actor's role would pay. The wholesale
// price is disclosed only to roles allowed to see it.
func (srv *catalogService) GetProductQuote(ctx context.Context, actorID, productID uuid.UUID) (*usecase.ProductQuote, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	check := Check{
		Action:     entity.ActionView,
		Resources:  []entity.Resource{entity.ResourceProducts},
		ResourceID: productID.String(),
	}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, err
	}

	product, err := findActiveProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	wholesale := srv.auth.Limits(actor).CanSeeWholesalePrices
	quote := &usecase.ProductQuote{
		ProductID:    product.ID,
		Name:         product.Name,
		Price:        product.Price,
		UnitPrice:    product.UnitPrice(wholesale),
		RoleDiscount: srv.auth.discounts.RoleDiscountPercent(actor.Role),
		InStock:      product.Stock > 0,
	}
	if wholesale && product.HasWholesalePrice() {
		price := product.WholesalePrice
		quote.WholesalePrice = &price
	}

	return quote, nil
}

// RestockProduct adds units to a product's stock.
func (srv *catalogService) RestockProduct(
	ctx context.Context, actorID, productID uuid.UUID, input *usecase.RestockInput,
) (*entity.Product, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("restock quantity must be positive")
	}

	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	check := Check{
		Action:     entity.ActionSpecial,
		Resources:  []entity.Resource{entity.ResourceInventoryManagement},
		ResourceID: productID.String(),
	}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, err
	}
	if err := srv.auth.CheckFlag(ctx, actor, check, policy.LimitInventoryManagement); err != nil {
		return nil, err
	}

	_, err = findActiveProduct(ctx, srv.productRepo, productID)
	if err == nil {
		err = srv.productRepo.IncrementStock(ctx, productID, input.Quantity)
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to restock product")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product")
	}
	srv.log(ctx).Info("Product restocked",
		slog.Any("product_id", productID),
		slog.Int("added", input.Quantity),
		slog.Int("stock", product.Stock),
	)

	return product, nil
}
