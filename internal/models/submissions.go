package models

import "time"

// Submission lifecycle for vacancies and staffing inquiries. Transitions
// are forward-only: new -> {assigned, in_progress} -> {completed, rejected}.
const (
	SubmissionStatusNew        = "new"
	SubmissionStatusAssigned   = "assigned"
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusCompleted  = "completed"
	SubmissionStatusRejected   = "rejected"
)

var submissionTransitions = map[string][]string{
	SubmissionStatusNew:        {SubmissionStatusAssigned, SubmissionStatusInProgress},
	SubmissionStatusAssigned:   {SubmissionStatusInProgress, SubmissionStatusCompleted, SubmissionStatusRejected},
	SubmissionStatusInProgress: {SubmissionStatusCompleted, SubmissionStatusRejected},
}

// CanTransition reports whether a submission may move from one status to
// another. Terminal statuses (completed, rejected) allow no further moves.
func CanTransition(from, to string) bool {
	for _, next := range submissionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Vacancy is a standalone vacancy submission, not owned by any User.
type Vacancy struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	ContactEmail    string    `gorm:"size:255;not null" json:"contact_email"`
	ContactPhone    string    `gorm:"size:30" json:"contact_phone"`
	Status          string    `gorm:"size:20;not null;default:'new'" json:"status"`
	AssignedAdminID *uint     `gorm:"index" json:"assigned_admin_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StaffingInquiry is a standalone staffing request from a company.
type StaffingInquiry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CompanyName     string    `gorm:"size:200;not null" json:"company_name"`
	ContactEmail    string    `gorm:"size:255;not null" json:"contact_email"`
	Message         string    `gorm:"type:text" json:"message"`
	Positions       int       `json:"positions"`
	Status          string    `gorm:"size:20;not null;default:'new'" json:"status"`
	AssignedAdminID *uint     `gorm:"index" json:"assigned_admin_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
