package handler

import (
	"log/slog"
	"net/http"

	"orderguard/internal/delivery/http/response"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// CartHandler serves carts and wishlists. Both address the caller's own
// collection unless an administrative caller passes ?userId=.
type CartHandler struct {
	cartUC     usecase.CartUsecase
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:     params.CartUC,
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// CartItemRequest is the body of POST /api/v1/cart/items.
type CartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// QuantityRequest is the body of PUT /api/v1/cart/items/:productId.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// WishlistItemRequest is the body of POST /api/v1/wishlist.
type WishlistItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// GetCart returns a cart with its totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), actor, owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddCartItem adds units of a product to a cart.
func (h *CartHandler) AddCartItem(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}

	var req CartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddCartItem(c.Request().Context(), actor, owner, &usecase.CartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateCartItem sets the quantity of a cart line.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req QuantityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateCartItem(c.Request().Context(), actor, owner, &usecase.CartItemInput{
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveCartItem removes a cart line.
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveCartItem(c.Request().Context(), actor, owner, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties a cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), actor, owner); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetWishlist returns a wishlist.
func (h *CartHandler) GetWishlist(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context(), actor, owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wishlist)
}

// AddWishlistItem saves a product to a wishlist.
func (h *CartHandler) AddWishlistItem(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}

	var req WishlistItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.AddWishlistItem(c.Request().Context(), actor, owner, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, wishlist)
}

// RemoveWishlistItem removes a product from a wishlist.
func (h *CartHandler) RemoveWishlistItem(c echo.Context) error {
	actor, owner, err := h.actorAndOwner(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.RemoveWishlistItem(c.Request().Context(), actor, owner, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wishlist)
}

func (h *CartHandler) actorAndOwner(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	actor, err := actorID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	owner, err := targetUser(c, actor)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return actor, owner, nil
}
