package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"publicapi/internal/pkg/validator"

	"gorm.io/gorm"
)

// forbiddenFields are immutable through the update path. Touching any of
// them rejects the whole request before a single row is read.
var forbiddenFields = map[string]bool{
	"id":     true,
	"api_id": true,
	"key":    true,
}

var allowedFields = map[string]string{
	"name":  "required",
	"phone": "omitempty",
	"email": "omitempty,email",
}

// Service owns the read/patch/disable lifecycle of API user accounts.
// Creation stays out-of-band.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, apiID string) (*Projection, error) {
	u, err := s.repo.GetByAPIID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &Projection{
		APIID:   u.APIID,
		Name:    u.Name,
		Phone:   u.Phone,
		Email:   u.Email,
		Created: u.CreatedAt,
	}, nil
}

// Update applies patch semantics: only the supplied fields change. Forbidden
// and unknown fields fail the request with no write.
func (s *Service) Update(ctx context.Context, apiID string, updates map[string]any) error {
	fields, err := filterUpdates(updates)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetByAPIID(ctx, apiID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.UpdateFields(ctx, apiID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Disable soft-deletes the account with the server clock. Idempotent: a
// second call just re-stamps disabled_at.
func (s *Service) Disable(ctx context.Context, apiID string) error {
	if _, err := s.repo.GetByAPIID(ctx, apiID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Disable(ctx, apiID, time.Now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func filterUpdates(updates map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(updates))
	for key, value := range updates {
		if forbiddenFields[key] {
			return nil, ErrForbiddenField
		}
		tag, ok := allowedFields[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidUpdates, key)
		}
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be a string", ErrInvalidUpdates, key)
		}
		if !validator.Var(str, tag) {
			return nil, fmt.Errorf("%w: field %q failed validation", ErrInvalidUpdates, key)
		}
		fields[key] = str
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields supplied", ErrInvalidUpdates)
	}
	return fields, nil
}
