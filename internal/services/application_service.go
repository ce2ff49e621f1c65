package services

import (
	"errors"
	"fmt"

	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

var (
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrInvalidStatus  = errors.New("invalid application status")
)

type ApplicationService struct {
	store         storage.Store
	notifications *NotificationService
}

func NewApplicationService(store storage.Store, notifications *NotificationService) *ApplicationService {
	return &ApplicationService{store: store, notifications: notifications}
}

// Apply submits an application from the job seeker owning userID.
func (s *ApplicationService) Apply(userID, jobID uint, coverLetter string) (*models.Application, error) {
	seeker, err := s.store.GetJobSeekerByUserID(userID)
	if err != nil {
		return nil, ErrNoProfile
	}

	job, err := s.store.GetJob(jobID)
	if err != nil {
		return nil, ErrJobMissing
	}

	existing, err := s.store.GetApplicationsByJobSeeker(seeker.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.JobID == jobID {
			return nil, ErrAlreadyApplied
		}
	}

	app := models.Application{
		JobID:       job.ID,
		JobSeekerID: seeker.ID,
		CoverLetter: coverLetter,
		Status:      models.ApplicationStatusNew,
	}
	if err := s.store.CreateApplication(&app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	// Let the employer know someone applied.
	if employer, err := s.store.GetEmployer(job.EmployerID); err == nil {
		s.notifications.Notify(employer.UserID, "New application",
			fmt.Sprintf("A candidate applied to %q", job.Title))
	}

	return &app, nil
}

// ListForJob returns a job's applications to the owning employer.
func (s *ApplicationService) ListForJob(userID, jobID uint) ([]models.Application, error) {
	job, err := s.store.GetJob(jobID)
	if err != nil {
		return nil, ErrJobMissing
	}

	employer, err := s.store.GetEmployerByUserID(userID)
	if err != nil {
		return nil, ErrNoProfile
	}
	if job.EmployerID != employer.ID {
		return nil, ErrNotOwner
	}

	return s.store.GetApplicationsByJob(jobID)
}

// ListOwn returns the applications of the job seeker owning userID.
func (s *ApplicationService) ListOwn(userID uint) ([]models.Application, error) {
	seeker, err := s.store.GetJobSeekerByUserID(userID)
	if err != nil {
		return nil, ErrNoProfile
	}
	return s.store.GetApplicationsByJobSeeker(seeker.ID)
}

// UpdateStatus lets the owning employer move an application through the
// review pipeline; the job seeker gets a notification on the change.
func (s *ApplicationService) UpdateStatus(userID, applicationID uint, status string) error {
	if !models.ValidApplicationStatus(status) {
		return ErrInvalidStatus
	}

	app, err := s.store.GetApplication(applicationID)
	if err != nil {
		return err
	}

	job, err := s.store.GetJob(app.JobID)
	if err != nil {
		return ErrJobMissing
	}

	employer, err := s.store.GetEmployerByUserID(userID)
	if err != nil {
		return ErrNoProfile
	}
	if job.EmployerID != employer.ID {
		return ErrNotOwner
	}

	if err := s.store.UpdateApplicationStatus(applicationID, status); err != nil {
		return err
	}

	if seeker, err := s.store.GetJobSeeker(app.JobSeekerID); err == nil {
		s.notifications.Notify(seeker.UserID, "Application update",
			fmt.Sprintf("Your application to %q is now %s", job.Title, status))
	}
	return nil
}
