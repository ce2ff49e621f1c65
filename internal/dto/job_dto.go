package dto

import (
	"time"

	"github.com/workbridge/jobboard-backend/internal/models"
)

type CreateJobRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	JobType        string    `json:"job_type"`
	Specialization string    `json:"specialization"`
	Experience     string    `json:"experience"`
	SalaryMin      int       `json:"salary_min"`
	SalaryMax      int       `json:"salary_max"`
	Deadline       time.Time `json:"deadline"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type JobsPollResponse struct {
	Items  []models.Job `json:"items"`
	LastID uint         `json:"lastId"`
}

type NotificationsPollResponse struct {
	Items  []models.Notification `json:"items"`
	LastID uint                  `json:"lastId"`
}
