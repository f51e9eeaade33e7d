package repository

import (
	"context"
	"errors"
	"time"

	"publicapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenBlacklistRepository records revoked refresh-token ids. An entry only
// matters until the token's natural expiry; after that it may be dropped by
// the lazy purge on lookup or by cmd/blacklist_cleanup.
type TokenBlacklistRepository struct {
	db *gorm.DB
}

func NewTokenBlacklistRepository(db *gorm.DB) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{db: db}
}

// Revoke stores the jti until expires. Revoking the same jti twice is a no-op.
func (r *TokenBlacklistRepository) Revoke(ctx context.Context, jti string, expires time.Time) error {
	entry := domain.TokenBlacklistEntry{JTI: jti, Expires: expires}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "jti"}},
			DoNothing: true,
		}).
		Create(&entry).Error
}

// IsRevoked reports whether the jti is blacklisted and still within its
// expiry. Stale entries are purged on the way out. Storage errors propagate
// so callers can deny authorization rather than fail open.
func (r *TokenBlacklistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var entry domain.TokenBlacklistEntry
	err := r.db.WithContext(ctx).Where("jti = ?", jti).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if entry.IsExpired(time.Now()) {
		// Harmless to delete once past expiry; ignore the outcome.
		r.db.WithContext(ctx).Delete(&domain.TokenBlacklistEntry{}, entry.ID)
		return false, nil
	}

	return true, nil
}

// DeleteExpired removes every entry past its expiry and reports how many went.
func (r *TokenBlacklistRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires < ?", time.Now()).
		Delete(&domain.TokenBlacklistEntry{})
	return tx.RowsAffected, tx.Error
}
