package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"publicapi/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrDuplicateAPIID = errors.New("api_id already exists")

// ApiUserRepository provides DB access for API user accounts.
type ApiUserRepository struct {
	db *gorm.DB
}

func NewApiUserRepository(db *gorm.DB) *ApiUserRepository {
	return &ApiUserRepository{db: db}
}

func (r *ApiUserRepository) Create(ctx context.Context, u *domain.ApiUser) error {
	u.APIID = strings.TrimSpace(u.APIID)
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAPIID
		}
		return err
	}
	return nil
}

func (r *ApiUserRepository) GetByAPIID(ctx context.Context, apiID string) (*domain.ApiUser, error) {
	var u domain.ApiUser
	err := r.db.WithContext(ctx).
		Where("api_id = ?", strings.TrimSpace(apiID)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateFields applies a partial update. Callers are responsible for keeping
// immutable columns out of the map; gorm stamps updated_at on its own.
func (r *ApiUserRepository) UpdateFields(ctx context.Context, apiID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Model(&domain.ApiUser{}).
		Where("api_id = ?", apiID).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Disable soft-deletes the account. Re-disabling an already disabled user
// just re-stamps disabled_at.
func (r *ApiUserRepository) Disable(ctx context.Context, apiID string, at time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.ApiUser{}).
		Where("api_id = ?", apiID).
		Updates(map[string]any{
			"disabled":    true,
			"disabled_at": at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// modernc sqlite reports constraint failures by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
