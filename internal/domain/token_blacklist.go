package domain

import "time"

// TokenBlacklistEntry marks a refresh token's jti as revoked until the
// token's own expiry. Past Expires the entry is dead weight and may be
// deleted at any time; a lookup must never report a stale entry as revoked.
type TokenBlacklistEntry struct {
	ID      int64     `json:"id" gorm:"primaryKey"`
	JTI     string    `json:"jti" gorm:"column:jti;size:64;uniqueIndex;not null"`
	Expires time.Time `json:"expires" gorm:"index;not null"`
}

func (TokenBlacklistEntry) TableName() string { return "TokenBlackList" }

func (e *TokenBlacklistEntry) IsExpired(now time.Time) bool {
	return now.After(e.Expires)
}
