package domain

import "time"

// ApiUser is a consumer of the public API. Accounts are created out-of-band
// (seed tooling or an internal process), never through the public routes.
//
// APIID and Key are immutable through the update endpoint. Key holds a bcrypt
// hash of the user's secret and must never be returned in any response.
type ApiUser struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	APIID string `json:"api_id" gorm:"column:api_id;size:255;uniqueIndex;not null" validate:"required"`
	Key   string `json:"-" gorm:"size:255;not null" validate:"required"`

	Email string `json:"email" gorm:"size:255;not null" validate:"required,email"`
	Phone string `json:"phone,omitempty" gorm:"size:255"`
	Name  string `json:"name" gorm:"size:255;not null" validate:"required"`

	Disabled   bool       `json:"disabled"`
	DisabledAt *time.Time `json:"disabled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ApiUser) TableName() string { return "ApiUsers" }
