package postgres

import (
	"context"

	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/errors"
	"orderguard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository stores the order aggregate across orders, order_items,
// order_changes and order_coupons.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order with its items, change history and coupons.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("order number already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with all of its children.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.withChildren(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// FindByCustomer retrieves a page of the orders placed by customerID, newest first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	return repo.find(repo.withChildren(ctx).Where("customer_id = ?", customerID).Limit(limit).Offset(offset))
}

// List retrieves orders of every customer, newest first.
func (repo *orderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	return repo.find(repo.withChildren(ctx).Limit(limit).Offset(offset))
}

func (repo *orderRepository) find(query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update writes the order only when the stored version still equals
// expectedVersion. Change entries and coupons are append-only, so rows whose
// id already exists are skipped.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order, expectedVersion int) error {
	orderM := fromOrderDomain(order)
	orderM.Version = expectedVersion + 1

	db := repo.db.WithContext(ctx)

	result := db.Model(&model.OrderModel{}).
		Where("id = ? AND version = ?", order.ID, expectedVersion).
		Select("*").
		Omit("id", "order_number", "customer_id", "created_at", clause.Associations).
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderVersionConflict
	}

	if len(orderM.Changes) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&orderM.Changes).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append order changes")
		}
	}
	if len(orderM.Coupons) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&orderM.Coupons).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append order coupons")
		}
	}

	order.Version = orderM.Version
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) withChildren(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Changes", func(db *gorm.DB) *gorm.DB { return db.Order("changed_at, id") }).
		Preload("Coupons", func(db *gorm.DB) *gorm.DB { return db.Order("applied_at") })
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
			Discount:  item.Discount,
			Tax:       item.Tax,
		})
	}

	changes := make([]entity.ChangeEntry, 0, len(data.Changes))
	for _, change := range data.Changes {
		changes = append(changes, entity.ChangeEntry{
			ID:            change.ID,
			ChangedBy:     change.ChangedBy,
			ChangedAt:     change.ChangedAt,
			ChangeType:    entity.ChangeType(change.ChangeType),
			PreviousValue: change.PreviousValue,
			NewValue:      change.NewValue,
			Reason:        change.Reason,
		})
	}

	coupons := make([]entity.AppliedCoupon, 0, len(data.Coupons))
	for _, coupon := range data.Coupons {
		coupons = append(coupons, entity.AppliedCoupon{
			ID:        coupon.ID,
			Code:      coupon.Code,
			Discount:  coupon.Discount,
			Type:      entity.CouponType(coupon.Type),
			AppliedAt: coupon.AppliedAt,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		CustomerID:  data.CustomerID,
		Status:      entity.OrderStatus(data.Status),
		Items:       items,
		Pricing: entity.Pricing{
			Subtotal: data.Subtotal,
			Tax:      data.Tax,
			Shipping: data.Shipping,
			Discount: data.Discount,
			Total:    data.Total,
			Currency: data.Currency,
		},
		Payment: entity.Payment{
			Method:        entity.PaymentMethod(data.PaymentMethod),
			Status:        entity.PaymentStatus(data.PaymentStatus),
			TransactionID: data.PaymentTransactionID,
			PaidAt:        data.PaidAt,
			RefundedAt:    data.RefundedAt,
			RefundAmount:  data.RefundAmount,
		},
		Shipping: entity.Shipping{
			Method:         entity.ShippingMethod(data.ShippingMethod),
			TrackingNumber: data.TrackingNumber,
			ShippedAt:      data.ShippedAt,
			DeliveredAt:    data.DeliveredAt,
		},
		Authorization: entity.OrderAuthorization{
			ViewPermissions:         entity.RolesFromStrings(data.ViewPermissions),
			EditPermissions:         entity.RolesFromStrings(data.EditPermissions),
			CancelPermissions:       entity.RolesFromStrings(data.CancelPermissions),
			RefundPermissions:       entity.RolesFromStrings(data.RefundPermissions),
			StatusChangePermissions: entity.RolesFromStrings(data.StatusChangePermissions),
		},
		ChangeHistory: changes,
		Coupons:       coupons,
		Notes: entity.OrderNotes{
			Customer: data.CustomerNotes,
			Internal: data.InternalNotes,
			Shipping: data.ShippingNotes,
		},
		Audit: entity.OrderAudit{
			CreatedBy:   data.CreatedBy,
			ModifiedBy:  data.ModifiedBy,
			CancelledBy: data.CancelledBy,
			RefundedBy:  data.RefundedBy,
			IPAddress:   data.IPAddress,
			UserAgent:   data.UserAgent,
		},
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:   data.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
			Discount:  item.Discount,
			Tax:       item.Tax,
		})
	}

	changes := make([]model.OrderChangeModel, 0, len(data.ChangeHistory))
	for _, change := range data.ChangeHistory {
		changes = append(changes, model.OrderChangeModel{
			ID:            change.ID,
			OrderID:       data.ID,
			ChangedBy:     change.ChangedBy,
			ChangedAt:     change.ChangedAt,
			ChangeType:    string(change.ChangeType),
			PreviousValue: change.PreviousValue,
			NewValue:      change.NewValue,
			Reason:        change.Reason,
		})
	}

	coupons := make([]model.OrderCouponModel, 0, len(data.Coupons))
	for _, coupon := range data.Coupons {
		coupons = append(coupons, model.OrderCouponModel{
			ID:        coupon.ID,
			OrderID:   data.ID,
			Code:      coupon.Code,
			Discount:  coupon.Discount,
			Type:      string(coupon.Type),
			AppliedAt: coupon.AppliedAt,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		CustomerID:  data.CustomerID,
		Status:      string(data.Status),

		Subtotal: data.Pricing.Subtotal,
		Tax:      data.Pricing.Tax,
		Shipping: data.Pricing.Shipping,
		Discount: data.Pricing.Discount,
		Total:    data.Pricing.Total,
		Currency: data.Pricing.Currency,

		PaymentMethod:        string(data.Payment.Method),
		PaymentStatus:        string(data.Payment.Status),
		PaymentTransactionID: data.Payment.TransactionID,
		PaidAt:               data.Payment.PaidAt,
		RefundedAt:           data.Payment.RefundedAt,
		RefundAmount:         data.Payment.RefundAmount,

		ShippingMethod: string(data.Shipping.Method),
		TrackingNumber: data.Shipping.TrackingNumber,
		ShippedAt:      data.Shipping.ShippedAt,
		DeliveredAt:    data.Shipping.DeliveredAt,

		ViewPermissions:         pq.StringArray(data.Authorization.ViewPermissions.ToStrings()),
		EditPermissions:         pq.StringArray(data.Authorization.EditPermissions.ToStrings()),
		CancelPermissions:       pq.StringArray(data.Authorization.CancelPermissions.ToStrings()),
		RefundPermissions:       pq.StringArray(data.Authorization.RefundPermissions.ToStrings()),
		StatusChangePermissions: pq.StringArray(data.Authorization.StatusChangePermissions.ToStrings()),

		CustomerNotes: data.Notes.Customer,
		InternalNotes: data.Notes.Internal,
		ShippingNotes: data.Notes.Shipping,

		CreatedBy:   data.Audit.CreatedBy,
		ModifiedBy:  data.Audit.ModifiedBy,
		CancelledBy: data.Audit.CancelledBy,
		RefundedBy:  data.Audit.RefundedBy,
		IPAddress:   data.Audit.IPAddress,
		UserAgent:   data.Audit.UserAgent,

		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,

		Items:   items,
		Changes: changes,
		Coupons: coupons,
	}
}
