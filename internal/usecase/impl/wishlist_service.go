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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	auth         *PurchaseAuthorizer
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Authorizer   *PurchaseAuthorizer
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		auth:         params.Authorizer,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWishlist returns the wishlist of ownerID.
func (srv *wishlistService) GetWishlist(ctx context.Context, actorID, ownerID uuid.UUID) (*entity.Wishlist, error) {
	if _, _, err := srv.authorize(ctx, actorID, ownerID, entity.ActionView, entity.ResourceWishlist); err != nil {
		return nil, err
	}

	return srv.load(ctx, ownerID)
}

// AddWishlistItem saves a product for later.
func (srv *wishlistService) AddWishlistItem(ctx context.Context, actorID, ownerID, productID uuid.UUID) (*entity.Wishlist, error) {
	actor, check, err := srv.authorize(ctx, actorID, ownerID, entity.ActionCreate, entity.ResourceWishlistItems)
	if err != nil {
		return nil, err
	}
	check.ResourceID = productID.String()

	_, err = findActiveProduct(ctx, srv.productRepo, productID)
	if err == nil {
		err = srv.wishlistRepo.Add(ctx, ownerID, entity.WishlistItem{ProductID: productID, AddedAt: srv.auth.Now()})
		if errors.Is(err, repository.ErrWishlistItemExists) {
			err = domainerrors.ErrConflict.WithDetails("product is already on the wishlist")
		}
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to add wishlist item")
	}
	srv.log(ctx).Debug("Wishlist item added", slog.Any("owner_id", ownerID), slog.Any("product_id", productID))

	return srv.load(ctx, ownerID)
}

// RemoveWishlistItem removes a saved product.
func (srv *wishlistService) RemoveWishlistItem(ctx context.Context, actorID, ownerID, productID uuid.UUID) (*entity.Wishlist, error) {
	actor, check, err := srv.authorize(ctx, actorID, ownerID, entity.ActionDelete, entity.ResourceOwnWishlistItems)
	if err != nil {
		return nil, err
	}
	check.ResourceID = productID.String()

	err = srv.wishlistRepo.Remove(ctx, ownerID, productID)
	if errors.Is(err, repository.ErrWishlistItemNotFound) {
		err = domainerrors.NewResourceNotFound("wishlist item", productID.String())
	}
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to remove wishlist item")
	}

	return srv.load(ctx, ownerID)
}

func (srv *wishlistService) authorize(
	ctx context.Context, actorID, ownerID uuid.UUID, action entity.Action, resource entity.Resource,
) (*entity.User, Check, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, Check{}, err
	}

	ownership := policy.WishlistOwnership(ownerID)
	check := Check{Action: action, Resources: []entity.Resource{resource}, Ownership: &ownership}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, check, err
	}

	return actor, check, nil
}

func (srv *wishlistService) load(ctx context.Context, ownerID uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := srv.wishlistRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}
	if wishlist.Items == nil {
		wishlist.Items = []entity.WishlistItem{}
	}

	return wishlist, nil
}
