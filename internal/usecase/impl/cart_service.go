package impl

import (
	"context"
	"fmt"
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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	auth        *PurchaseAuthorizer
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Authorizer  *PurchaseAuthorizer
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		auth:        params.Authorizer,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the cart of ownerID.
func (srv *cartService) GetCart(ctx context.Context, actorID, ownerID uuid.UUID) (*usecase.CartView, error) {
	_, err := srv.authorizeCart(ctx, actorID, ownerID, entity.ActionView, false,
		entity.ResourceOwnCart, entity.ResourceAllCarts)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return usecase.NewCartView(cart), nil
}

// AddCartItem adds units of a product, merging with an existing line.
func (srv *cartService) AddCartItem(ctx context.Context, actorID, ownerID uuid.UUID, input *usecase.CartItemInput) (*usecase.CartView, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	authorized, err := srv.authorizeCart(ctx, actorID, ownerID, entity.ActionCreate, true, entity.ResourceCartItems)
	if err != nil {
		return nil, err
	}

	return srv.setQuantity(ctx, authorized, ownerID, input.ProductID, func(existing int, _ bool) (int, error) {
		return existing + input.Quantity, nil
	})
}

// UpdateCartItem sets the quantity of an existing line.
func (srv *cartService) UpdateCartItem(ctx context.Context, actorID, ownerID uuid.UUID, input *usecase.CartItemInput) (*usecase.CartView, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive, remove the item instead")
	}

	authorized, err := srv.authorizeCart(ctx, actorID, ownerID, entity.ActionUpdate, true,
		entity.ResourceOwnCart, entity.ResourceAllCarts)
	if err != nil {
		return nil, err
	}

	return srv.setQuantity(ctx, authorized, ownerID, input.ProductID, func(_ int, found bool) (int, error) {
		if !found {
			return 0, domainerrors.NewResourceNotFound("cart item", input.ProductID.String())
		}

		return input.Quantity, nil
	})
}

// setQuantity computes the new quantity of a line, checks it against the
// role limits and the stock, and stores it with a fresh price snapshot.
func (srv *cartService) setQuantity(
	ctx context.Context,
	authorized authorizedCart,
	ownerID, productID uuid.UUID,
	quantityFor func(existing int, found bool) (int, error),
) (*usecase.CartView, error) {
	actor, check := authorized.actor, authorized.check
	check.ResourceID = productID.String()

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		product, err := findActiveProduct(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}

		current, err := cartRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		existing, found := current.Find(productID)
		quantity, err := quantityFor(existing.Quantity, found)
		if err != nil {
			return err
		}

		if err := srv.auth.CheckCount(ctx, actor, check, policy.LimitItemQuantity, quantity); err != nil {
			return err
		}
		if err := srv.auth.CheckCount(ctx, actor, check, policy.LimitCartItems, current.UnitsWith(productID, quantity)); err != nil {
			return err
		}
		if product.Stock < quantity {
			return domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("product %s has %d in stock, %d requested", product.ID, product.Stock, quantity))
		}

		item := entity.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			UnitPrice: product.UnitPrice(srv.auth.Limits(actor).CanSeeWholesalePrices),
			AddedAt:   srv.auth.Now(),
		}
		if found {
			item.AddedAt = existing.AddedAt
		}
		if err := cartRepo.UpsertItem(ctx, ownerID, item); err != nil {
			return errors.Wrap(err, "failed to store cart item")
		}

		cart, err = cartRepo.FindByOwner(ctx, ownerID)

		return errors.Wrap(err, "failed to reload cart")
	})
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		srv.log(ctx).Warn("Failed to update cart", slog.Any("owner_id", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update cart")
	}

	return usecase.NewCartView(cart), nil
}

// RemoveCartItem deletes one line.
func (srv *cartService) RemoveCartItem(ctx context.Context, actorID, ownerID, productID uuid.UUID) (*usecase.CartView, error) {
	authorized, err := srv.authorizeCartDelete(ctx, actorID, ownerID)
	if err != nil {
		return nil, err
	}
	check := authorized.check
	check.ResourceID = productID.String()

	err = srv.cartRepo.RemoveItem(ctx, ownerID, productID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		err = domainerrors.NewResourceNotFound("cart item", productID.String())
	}
	if err := srv.auth.Finish(ctx, authorized.actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	cart, err := srv.cartRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return usecase.NewCartView(cart), nil
}

// ClearCart deletes every line of the cart.
func (srv *cartService) ClearCart(ctx context.Context, actorID, ownerID uuid.UUID) error {
	authorized, err := srv.authorizeCartDelete(ctx, actorID, ownerID)
	if err != nil {
		return err
	}

	err = srv.cartRepo.Clear(ctx, ownerID)
	if err := srv.auth.Finish(ctx, authorized.actor, authorized.check, "", err); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

type authorizedCart struct {
	actor *entity.User
	check Check
}

func (srv *cartService) authorizeCartDelete(ctx context.Context, actorID, ownerID uuid.UUID) (authorizedCart, error) {
	return srv.authorizeCart(ctx, actorID, ownerID, entity.ActionDelete, false,
		entity.ResourceOwnCartItems, entity.ResourceAllCartItems, entity.ResourceCustomerCartItems)
}

// authorizeCart gates access to the cart of ownerID. The own_* resources
// pass the matrix for anyone holding them, and the ownership guard then
// confines them to the actor's own cart.
func (srv *cartService) authorizeCart(
	ctx context.Context, actorID, ownerID uuid.UUID, action entity.Action, purchase bool, resources ...entity.Resource,
) (authorizedCart, error) {
	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return authorizedCart{}, err
	}

	ownership := policy.CartOwnership(ownerID)
	check := Check{Action: action, Resources: resources, Purchase: purchase, Ownership: &ownership}

	granted, err := srv.auth.Authorize(ctx, actor, check)
	if err != nil {
		return authorizedCart{}, err
	}
	check.Resources = []entity.Resource{granted}

	return authorizedCart{actor: actor, check: check}, nil
}

func findActiveProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewResourceNotFound("product", productID.String())
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if !product.IsActive {
		return nil, domainerrors.NewResourceNotFound("product", productID.String())
	}

	return product, nil
}
