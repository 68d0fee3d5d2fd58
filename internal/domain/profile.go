package domain

import (
	"time"
)

// Profile is a landlord account. Its ID is the owner id of every other row.
type Profile struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	TrialEndsAt  time.Time `json:"trial_ends_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// InTrial reports whether the trial period is still running at t.
func (p Profile) InTrial(t time.Time) bool {
	return t.Before(p.TrialEndsAt)
}
