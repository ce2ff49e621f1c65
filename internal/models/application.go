package models

import "time"

// Application statuses, set by the employer reviewing applicants.
const (
	ApplicationStatusNew         = "new"
	ApplicationStatusViewed      = "viewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
)

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusViewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	JobID       uint      `gorm:"not null;index" json:"job_id"`
	JobSeekerID uint      `gorm:"not null;index" json:"job_seeker_id"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	Status      string    `gorm:"size:20;not null;default:'new'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
