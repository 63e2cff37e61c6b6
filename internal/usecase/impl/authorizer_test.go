package impl

import (
	"context"
	"testing"

	"orderguard/config"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/policy"
	"orderguard/internal/errors"
	mockRepo "orderguard/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseAuthorizer_Actor_NilID(t *testing.T) {
	auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))

	_, err := auth.Actor(context.Background(), uuid.Nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	require.Len(t, trail.events, 1)
	assert.Equal(t, entity.AuditOutcomeDenied, trail.last().Outcome)
	assert.Equal(t, string(domainerrors.GateAccount), trail.last().Gate)
}

func TestPurchaseAuthorizer_Authorize_GateOrder(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(u *entity.User)
		check    Check
		wantGate domainerrors.Gate
		wantErr  error
	}{
		{
			name:     "suspended account fails before the matrix",
			mutate:   func(u *entity.User) { u.Status = entity.AccountStatusSuspended },
			check:    Check{Action: entity.ActionSpecial, Resources: []entity.Resource{entity.ResourceSystemManagement}},
			wantGate: domainerrors.GateAccount,
			wantErr:  domainerrors.ErrAccountInactive,
		},
		{
			name:     "unverified email only matters for purchases",
			mutate:   func(u *entity.User) { u.EmailVerified = false },
			check:    Check{Action: entity.ActionCreate, Resources: []entity.Resource{entity.ResourceOrders}, Purchase: true},
			wantGate: domainerrors.GateAccount,
			wantErr:  domainerrors.ErrEmailUnverified,
		},
		{
			name:     "missing matrix cell",
			mutate:   func(*entity.User) {},
			check:    Check{Action: entity.ActionSpecial, Resources: []entity.Resource{entity.ResourceSystemManagement}},
			wantGate: domainerrors.GatePermission,
			wantErr:  domainerrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
			actor := newTestUser(entity.RoleCustomer)
			tt.mutate(actor)

			_, err := auth.Authorize(context.Background(), actor, tt.check)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			denial, ok := domainerrors.AsDenial(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantGate, denial.Gate())
			assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, trail.outcomes())
		})
	}
}

func TestPurchaseAuthorizer_Authorize_UnverifiedMayBrowse(t *testing.T) {
	auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
	actor := newTestUser(entity.RoleCustomer)
	actor.EmailVerified = false

	granted, err := auth.Authorize(context.Background(), actor, Check{
		Action:    entity.ActionView,
		Resources: []entity.Resource{entity.ResourceAllOrders, entity.ResourceOwnOrders},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ResourceOwnOrders, granted)
	assert.Empty(t, trail.events)
}

func TestPurchaseAuthorizer_Finish(t *testing.T) {
	check := Check{Action: entity.ActionUpdate, Resources: []entity.Resource{entity.ResourceOwnOrders}, ResourceID: "order-1"}

	t.Run("success records granted", func(t *testing.T) {
		auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
		actor := newTestUser(entity.RoleCustomer)

		err := auth.Finish(context.Background(), actor, check, "order-2", nil)

		require.NoError(t, err)
		assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeGranted}, trail.outcomes())
		assert.Equal(t, "order-2", trail.last().ResourceID)
		assert.Equal(t, actor.ID, trail.last().ActorID)
		assert.Equal(t, entity.RoleCustomer, trail.last().Role)
	})

	t.Run("denial inside the mutation records denied", func(t *testing.T) {
		auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
		actor := newTestUser(entity.RoleCustomer)

		err := auth.Finish(context.Background(), actor, check, "",
			domainerrors.NewLimitExceeded(string(policy.LimitOrderValue), "50000", "60000", "customer"))

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)
		assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, trail.outcomes())
		assert.Equal(t, string(domainerrors.GateLimit), trail.last().Gate)
	})

	t.Run("other errors record failed", func(t *testing.T) {
		auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
		actor := newTestUser(entity.RoleCustomer)

		err := auth.Finish(context.Background(), actor, check, "", domainerrors.ErrConcurrentModification)

		require.Error(t, err)
		assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeFailed}, trail.outcomes())
		assert.Empty(t, trail.last().Gate)
	})

	t.Run("lifecycle refusals record denied at the transition gate", func(t *testing.T) {
		refusals := []struct {
			name string
			err  error
			want error
		}{
			{"terminal state", domainerrors.ErrTerminalState.WithDetails("order is delivered"), domainerrors.ErrTerminalState},
			{"invalid transition", domainerrors.NewInvalidTransition("shipped", "cancelled"), domainerrors.ErrInvalidTransition},
			{"wrapped invalid transition", errors.Wrap(domainerrors.NewInvalidTransition("pending", "refunded"), "refund"), domainerrors.ErrInvalidTransition},
		}

		for _, tt := range refusals {
			t.Run(tt.name, func(t *testing.T) {
				auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
				actor := newTestUser(entity.RoleManager)

				err := auth.Finish(context.Background(), actor, check, "", tt.err)

				require.Error(t, err)
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, trail.outcomes())
				assert.Equal(t, string(domainerrors.GateTransition), trail.last().Gate)
				assert.Equal(t, tt.err.Error(), trail.last().Reason)
			})
		}
	})

	t.Run("gate denial is recorded once", func(t *testing.T) {
		auth, trail := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
		actor := newTestUser(entity.RoleCustomer)

		gateErr := auth.CheckCount(context.Background(), actor, check, policy.LimitItemQuantity, 11)
		require.Error(t, gateErr)

		err := auth.Finish(context.Background(), actor, check, "", gateErr)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)
		assert.Equal(t, []entity.AuditOutcome{entity.AuditOutcomeDenied}, trail.outcomes())
	})
}

func TestPurchaseAuthorizer_CheckFlag(t *testing.T) {
	auth, _ := newTestAuthorizer(t, mockRepo.NewMockUserRepository(t))
	check := Check{Action: entity.ActionSpecial, Resources: []entity.Resource{entity.ResourceRefundProcessing}}

	assert.NoError(t, auth.CheckFlag(context.Background(), newTestUser(entity.RoleFinance), check, policy.LimitRefundProcessing))

	err := auth.CheckFlag(context.Background(), newTestUser(entity.RoleSeller), check, policy.LimitRefundProcessing)
	require.Error(t, err)
	denial, ok := domainerrors.AsDenial(err)
	require.True(t, ok)
	assert.Equal(t, "refund_processing <= false", denial.Required())
}

func TestNewPurchaseAuthorizer_ConfigOverrides(t *testing.T) {
	auth := NewPurchaseAuthorizer(PurchaseAuthorizerParams{
		UserRepo: mockRepo.NewMockUserRepository(t),
		Config: &config.Config{Purchase: &config.PurchaseConfig{
			Currency:         "EUR",
			PremiumThreshold: decimal.NewFromInt(500),
		}},
		Logger: newDiscardLogger(),
	})

	assert.Equal(t, "EUR", auth.currency)
	assert.True(t, decimal.NewFromInt(500).Equal(auth.escalation.PremiumAt))
	assert.True(t, entity.DefaultEscalation.VIPAt.Equal(auth.escalation.VIPAt))
}
