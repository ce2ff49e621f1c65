package models

import "time"

// JobSeeker is the candidate profile owned by a jobseeker User.
type JobSeeker struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	FirstName      string    `gorm:"size:100" json:"first_name"`
	LastName       string    `gorm:"size:100" json:"last_name"`
	Phone          string    `gorm:"size:30" json:"phone"`
	Specialization string    `gorm:"size:100" json:"specialization"`
	Experience     string    `gorm:"size:50" json:"experience"`
	City           string    `gorm:"size:100" json:"city"`
	CVPath         string    `gorm:"size:500" json:"cv_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Employer is the company profile owned by an employer User.
type Employer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CompanyName string    `gorm:"size:200;not null" json:"company_name"`
	ContactName string    `gorm:"size:100" json:"contact_name"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Website     string    `gorm:"size:255" json:"website"`
	Industry    string    `gorm:"size:100" json:"industry"`
	City        string    `gorm:"size:100" json:"city"`
	CreatedAt   time.Time `json:"created_at"`
}

// Admin is the staff profile owned by an admin or super_admin User.
type Admin struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	Role             string     `gorm:"size:50;default:'moderator'" json:"role"`
	ResetToken       *string    `gorm:"size:64" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
}
