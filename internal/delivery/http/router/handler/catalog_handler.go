package handler

import (
	"log/slog"
	"net/http"
	"time"

	"orderguard/internal/delivery/http/response"
	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC    usecase.CatalogUsecase
	CouponUC     usecase.CouponUsecase
	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// CatalogHandler serves product quotes, restocking, coupons and the
// caller's permission profile.
type CatalogHandler struct {
	catalogUC    usecase.CatalogUsecase
	couponUC     usecase.CouponUsecase
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC:    params.CatalogUC,
		couponUC:     params.CouponUC,
		permissionUC: params.PermissionUC,
		logger:       params.Logger,
	}
}

// ApplyCouponRequest is the body of POST /api/v1/coupons/apply.
type ApplyCouponRequest struct {
	CouponCode string    `json:"couponCode" validate:"required,max=64"`
	OrderID    uuid.UUID `json:"orderId" validate:"required"`
}

// RestockRequest is the body of POST /api/v1/products/:productId/restock.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// ProductResponse is a product after a stock change.
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	IsActive  bool            `json:"isActive"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func newProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		IsActive:  product.IsActive,
		UpdatedAt: product.UpdatedAt,
	}
}

// GetPermissions returns what the caller's role may do.
func (h *CatalogHandler) GetPermissions(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	permissions, err := h.permissionUC.GetPermissions(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, permissions)
}

// GetProductQuote prices a product for the caller's role.
func (h *CatalogHandler) GetProductQuote(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	quote, err := h.catalogUC.GetProductQuote(c.Request().Context(), actor, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// RestockProduct adds stock to a product.
func (h *CatalogHandler) RestockProduct(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req RestockRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.RestockProduct(c.Request().Context(), actor, productID, &usecase.RestockInput{Quantity: req.Quantity})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// ApplyCoupon redeems one of the caller's coupons on an order.
func (h *CatalogHandler) ApplyCoupon(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req ApplyCouponRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.couponUC.ApplyCoupon(c.Request().Context(), actor, &usecase.ApplyCouponInput{
		CouponCode: req.CouponCode,
		OrderID:    req.OrderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}
