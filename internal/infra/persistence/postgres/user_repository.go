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
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate retrieves a user with SELECT ... FOR UPDATE.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx), "email = ?", email)
}

func (repo *userRepository) first(_ context.Context, query *gorm.DB, cond string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := query.Where(cond, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes every mutable column of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").Omit("id", "created_at").
		Updates(userM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		Status:        entity.AccountStatus(data.Status),
		EmailVerified: data.EmailVerified,
		LockoutUntil:  data.LockoutUntil,
		LoginAttempts: data.LoginAttempts,
		PurchaseHistory: entity.PurchaseHistory{
			TotalPurchases:    data.TotalPurchases,
			TotalSpent:        data.TotalSpent,
			LastPurchase:      data.LastPurchase,
			AverageOrderValue: data.AverageOrderValue,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Name:              data.Name,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Role:              data.Role.String(),
		Status:            string(data.Status),
		EmailVerified:     data.EmailVerified,
		LockoutUntil:      data.LockoutUntil,
		LoginAttempts:     data.LoginAttempts,
		TotalPurchases:    data.PurchaseHistory.TotalPurchases,
		TotalSpent:        data.PurchaseHistory.TotalSpent,
		LastPurchase:      data.PurchaseHistory.LastPurchase,
		AverageOrderValue: data.PurchaseHistory.AverageOrderValue,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
