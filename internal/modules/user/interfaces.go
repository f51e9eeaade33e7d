package user

import (
	"context"
	"time"

	"publicapi/internal/domain"
)

// Repository — the persistence operations the user service needs.
type Repository interface {
	GetByAPIID(ctx context.Context, apiID string) (*domain.ApiUser, error)
	UpdateFields(ctx context.Context, apiID string, fields map[string]any) error
	Disable(ctx context.Context, apiID string, at time.Time) error
}
