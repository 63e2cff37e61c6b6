package impl

import (
	"context"
	"log/slog"
	"time"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/orderflow"
	"orderguard/internal/domain/policy"
	"orderguard/internal/domain/pricing"
	"orderguard/internal/domain/repository"
	"orderguard/internal/domain/service"
	"orderguard/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Check describes one authorization request: the matrix cell that would
// allow it, whether the account must be able to purchase, and the owned
// resource it targets, if any.
type Check struct {
	Action     entity.Action
	Resources  []entity.Resource // Any one of these is sufficient.
	Purchase   bool
	Ownership  *policy.OwnershipFact
	ResourceID string
}

// primaryResource is the resource named in audit events.
func (c Check) primaryResource() entity.Resource {
	if len(c.Resources) == 0 {
		return ""
	}

	return c.Resources[0]
}

// PurchaseAuthorizer runs every purchase operation through the same gate
// sequence: resolve the actor, account gate, permission matrix, ownership,
// then limits. Each denial and each completed mutation is handed to the
// audit recorder.
type PurchaseAuthorizer struct {
	userRepo    repository.UserRepository
	recorder    service.AuditRecorder
	matrix      *policy.PermissionMatrix
	limits      *policy.PurchaseLimitPolicy
	accountGate *policy.AccountGate
	ownership   *policy.OwnershipGuard
	discounts   *pricing.DiscountEngine
	orders      *orderflow.StateMachine
	escalation  entity.Escalation
	currency    string
	now         func() time.Time
	logger      *slog.Logger
}

// PurchaseAuthorizerParams holds dependencies for PurchaseAuthorizer, injected by Fx.
type PurchaseAuthorizerParams struct {
	fx.In

	UserRepo repository.UserRepository
	Recorder service.AuditRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewPurchaseAuthorizer builds the facade over the default policy tables.
func NewPurchaseAuthorizer(params PurchaseAuthorizerParams) *PurchaseAuthorizer {
	limits := policy.NewPurchaseLimitPolicy()
	discounts := pricing.NewDiscountEngine()

	escalation := entity.DefaultEscalation
	currency := orderflow.DefaultCurrency
	if params.Config != nil && params.Config.Purchase != nil {
		purchase := params.Config.Purchase
		if purchase.PremiumThreshold.IsPositive() {
			escalation.PremiumAt = purchase.PremiumThreshold
		}
		if purchase.VIPThreshold.IsPositive() {
			escalation.VIPAt = purchase.VIPThreshold
		}
		if purchase.Currency != "" {
			currency = purchase.Currency
		}
	}

	return &PurchaseAuthorizer{
		userRepo:    params.UserRepo,
		recorder:    params.Recorder,
		matrix:      policy.NewPermissionMatrix(),
		limits:      limits,
		accountGate: policy.NewAccountGate(),
		ownership:   policy.NewOwnershipGuard(),
		discounts:   discounts,
		orders:      orderflow.NewStateMachine(limits, discounts),
		escalation:  escalation,
		currency:    currency,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (a *PurchaseAuthorizer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Now is the clock every purchase operation uses.
func (a *PurchaseAuthorizer) Now() time.Time {
	return a.now().UTC()
}

// Actor loads the acting user. An unknown id is an authentication failure.
func (a *PurchaseAuthorizer) Actor(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	if actorID == uuid.Nil {
		return nil, a.deny(ctx, nil, actorID, Check{}, a.accountGate.Check(nil, false, a.Now()))
	}

	actor, err := a.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, a.deny(ctx, nil, actorID, Check{}, a.accountGate.Check(nil, false, a.Now()))
		}

		return nil, errors.Wrap(err, "failed to load actor")
	}

	return actor, nil
}

// Admit runs the account gate.
func (a *PurchaseAuthorizer) Admit(ctx context.Context, actor *entity.User, check Check) error {
	if err := a.accountGate.Check(actor, check.Purchase, a.Now()); err != nil {
		return a.deny(ctx, actor, actorIDOf(actor), check, err)
	}

	return nil
}

// Permit runs the permission matrix and, when the check targets an owned
// resource, the ownership guard. It returns the resource that matched.
func (a *PurchaseAuthorizer) Permit(ctx context.Context, actor *entity.User, check Check) (entity.Resource, error) {
	granted, ok := a.matrix.AllowsAny(actor.Role, check.Action, check.Resources...)
	if !ok {
		return "", a.deny(ctx, actor, actor.ID, check,
			domainerrors.NewPermissionDenied(string(check.Action), resourceNames(check.Resources), actor.Role.String()))
	}

	if check.Ownership != nil {
		if err := a.ownership.Check(actor, *check.Ownership); err != nil {
			return "", a.deny(ctx, actor, actor.ID, check, err)
		}
	}

	return granted, nil
}

// Authorize is Admit followed by Permit.
func (a *PurchaseAuthorizer) Authorize(ctx context.Context, actor *entity.User, check Check) (entity.Resource, error) {
	if err := a.Admit(ctx, actor, check); err != nil {
		return "", err
	}

	return a.Permit(ctx, actor, check)
}

// CheckLimit enforces a numeric limit of the actor's role.
func (a *PurchaseAuthorizer) CheckLimit(
	ctx context.Context, actor *entity.User, check Check, limitType policy.LimitType, observed decimal.Decimal,
) error {
	if err := a.limits.CheckLimit(actor.Role, limitType, observed); err != nil {
		return a.deny(ctx, actor, actor.ID, check, err)
	}

	return nil
}

// CheckCount is CheckLimit for unit counts.
func (a *PurchaseAuthorizer) CheckCount(ctx context.Context, actor *entity.User, check Check, limitType policy.LimitType, observed int) error {
	return a.CheckLimit(ctx, actor, check, limitType, decimal.NewFromInt(int64(observed)))
}

// CheckFlag enforces a capability flag of the actor's role.
func (a *PurchaseAuthorizer) CheckFlag(ctx context.Context, actor *entity.User, check Check, limitType policy.LimitType) error {
	return a.CheckLimit(ctx, actor, check, limitType, decimal.Zero)
}

// Limits returns the limit profile of the actor's role.
func (a *PurchaseAuthorizer) Limits(actor *entity.User) policy.PurchaseLimits {
	return a.limits.LimitsFor(actor.Role)
}

// Finish records how a mutation ended: granted on success, denied when a
// gate or the order lifecycle rejected it, failed otherwise. Errors already
// recorded by a gate are passed through without a second event.
func (a *PurchaseAuthorizer) Finish(ctx context.Context, actor *entity.User, check Check, resourceID string, err error) error {
	if resourceID != "" {
		check.ResourceID = resourceID
	}

	var audited *auditedError
	switch {
	case errors.As(err, &audited):
		return err
	case err == nil:
		a.record(ctx, actor, actorIDOf(actor), check, entity.AuditOutcomeGranted, "", "")
	case isRefusal(err):
		return a.deny(ctx, actor, actorIDOf(actor), check, err)
	default:
		a.record(ctx, actor, actorIDOf(actor), check, entity.AuditOutcomeFailed, "", err.Error())
	}

	return err
}

// deny records a denial and returns err.
func (a *PurchaseAuthorizer) deny(ctx context.Context, actor *entity.User, actorID uuid.UUID, check Check, err error) error {
	gate, _ := domainerrors.RefusalGate(err)

	a.log(ctx).Info("Purchase request denied",
		slog.String("gate", string(gate)),
		slog.String("action", string(check.Action)),
		slog.String("resource", check.primaryResource().String()),
		slog.Any("actor_id", actorID),
		slog.String("reason", err.Error()),
	)
	a.record(ctx, actor, actorID, check, entity.AuditOutcomeDenied, string(gate), err.Error())

	return &auditedError{err: err}
}

// auditedError marks a denial that already produced an audit event.
type auditedError struct {
	err error
}

func (e *auditedError) Error() string {
	return e.err.Error()
}

func (e *auditedError) Unwrap() error {
	return e.err
}

func (a *PurchaseAuthorizer) record(
	ctx context.Context, actor *entity.User, actorID uuid.UUID, check Check, outcome entity.AuditOutcome, gate, reason string,
) {
	if a.recorder == nil {
		return
	}

	var role entity.Role
	if actor != nil {
		role = actor.Role
	}

	a.recorder.Record(ctx, &entity.AuditEvent{
		ActorID:    actorID,
		Role:       role,
		Action:     check.Action,
		Resource:   check.primaryResource(),
		ResourceID: check.ResourceID,
		Outcome:    outcome,
		Gate:       gate,
		Reason:     reason,
	})
}

func isRefusal(err error) bool {
	_, ok := domainerrors.RefusalGate(err)

	return ok
}

func actorIDOf(actor *entity.User) uuid.UUID {
	if actor == nil {
		return uuid.Nil
	}

	return actor.ID
}

func resourceNames(resources []entity.Resource) []string {
	names := make([]string, len(resources))
	for i, resource := range resources {
		names[i] = resource.String()
	}

	return names
}
