package services

import (
	"errors"
	"fmt"

	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/realtime"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

var (
	ErrNotOwner   = errors.New("you can only manage your own jobs")
	ErrNoProfile  = errors.New("profile not found for this account")
	ErrJobMissing = errors.New("job not found")
)

type JobService struct {
	store   storage.Store
	tracker *realtime.Tracker
}

func NewJobService(store storage.Store, tracker *realtime.Tracker) *JobService {
	return &JobService{store: store, tracker: tracker}
}

// Create posts a job owned by the employer profile of the given user.
func (s *JobService) Create(userID uint, req *dto.CreateJobRequest) (*models.Job, error) {
	employer, err := s.store.GetEmployerByUserID(userID)
	if err != nil {
		return nil, ErrNoProfile
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.SalaryMin > req.SalaryMax && req.SalaryMax != 0 {
		return nil, fmt.Errorf("%w: salary_min cannot exceed salary_max", ErrValidation)
	}

	job := models.Job{
		EmployerID:     employer.ID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Company:        employer.CompanyName,
		Category:       req.Category,
		Location:       req.Location,
		JobType:        req.JobType,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Deadline:       req.Deadline,
	}
	if err := s.store.CreateJob(&job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.tracker.PublishJob(job.ID)
	return &job, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	return s.store.GetJob(id)
}

func (s *JobService) Search(filter storage.JobFilter) ([]models.Job, error) {
	return s.store.GetJobs(filter)
}

func (s *JobService) ListByOwner(userID uint) ([]models.Job, error) {
	employer, err := s.store.GetEmployerByUserID(userID)
	if err != nil {
		return nil, ErrNoProfile
	}
	return s.store.GetJobsByEmployer(employer.ID)
}

// Update replaces the mutable fields of a job owned by the caller.
func (s *JobService) Update(userID, jobID uint, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(userID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Category = req.Category
	job.Location = req.Location
	job.JobType = req.JobType
	job.Specialization = req.Specialization
	job.Experience = req.Experience
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.Deadline = req.Deadline

	if err := s.store.UpdateJob(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a job and its applications; owner-employer only.
func (s *JobService) Delete(userID, jobID uint) error {
	if _, err := s.ownedJob(userID, jobID); err != nil {
		return err
	}
	return s.store.DeleteJob(jobID)
}

func (s *JobService) ownedJob(userID, jobID uint) (*models.Job, error) {
	job, err := s.store.GetJob(jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobMissing
		}
		return nil, err
	}

	employer, err := s.store.GetEmployerByUserID(userID)
	if err != nil {
		return nil, ErrNoProfile
	}
	if job.EmployerID != employer.ID {
		return nil, ErrNotOwner
	}
	return job, nil
}
