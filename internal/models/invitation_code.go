package models

import "time"

// InvitationCode is a one-time-use code gating admin registration.
// Verification and consumption are separate calls; see storage.Store.
type InvitationCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:64;not null;uniqueIndex" json:"code"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
}
