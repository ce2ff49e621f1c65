package models

import "time"

// User types. Every profile row (JobSeeker/Employer/Admin) is owned 1:1 by
// a User of the matching type.
const (
	UserTypeJobSeeker  = "jobseeker"
	UserTypeEmployer   = "employer"
	UserTypeAdmin      = "admin"
	UserTypeSuperAdmin = "super_admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	UserType     string    `gorm:"size:20;not null;default:'jobseeker'" json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin || u.UserType == UserTypeSuperAdmin
}
