package models

import "time"

type Job struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EmployerID     uint      `gorm:"not null;index" json:"employer_id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Requirements   string    `gorm:"type:text" json:"requirements"`
	Company        string    `gorm:"size:200" json:"company"`
	Category       string    `gorm:"size:100;index" json:"category"`
	Location       string    `gorm:"size:100" json:"location"`
	JobType        string    `gorm:"size:50" json:"job_type"`
	Specialization string    `gorm:"size:100" json:"specialization"`
	Experience     string    `gorm:"size:50" json:"experience"`
	SalaryMin      int       `json:"salary_min"`
	SalaryMax      int       `json:"salary_max"`
	Deadline       time.Time `json:"deadline"`
	// Denormalized counter, bumped when an application is created.
	ApplicationCount int       `gorm:"default:0" json:"application_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
