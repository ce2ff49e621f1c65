package services

import (
	"errors"
	"testing"

	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/realtime"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

func newEmployerUser(t *testing.T, store *storage.MemStore, email, company string) *models.User {
	t.Helper()
	u := &models.User{Email: email, PasswordHash: "x", UserType: models.UserTypeEmployer}
	if err := store.CreateUser(u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := store.CreateEmployer(&models.Employer{UserID: u.ID, CompanyName: company}); err != nil {
		t.Fatalf("CreateEmployer: %v", err)
	}
	return u
}

func newSeekerUser(t *testing.T, store *storage.MemStore, email string) (*models.User, *models.JobSeeker) {
	t.Helper()
	u := &models.User{Email: email, PasswordHash: "x", UserType: models.UserTypeJobSeeker}
	if err := store.CreateUser(u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	js := &models.JobSeeker{UserID: u.ID, FirstName: "Jane"}
	if err := store.CreateJobSeeker(js); err != nil {
		t.Fatalf("CreateJobSeeker: %v", err)
	}
	return u, js
}

func TestJobCreate(t *testing.T) {
	store := storage.NewMemStore()
	tracker := realtime.NewTracker()
	svc := NewJobService(store, tracker)
	emp := newEmployerUser(t, store, "e@x.com", "Acme")

	job, err := svc.Create(emp.ID, &dto.CreateJobRequest{Title: "Backend Engineer", SalaryMin: 50000, SalaryMax: 90000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Company != "Acme" {
		t.Fatalf("company should come from the employer profile, got %q", job.Company)
	}
	if tracker.LastJobID() != job.ID {
		t.Fatalf("tracker should see job %d, got %d", job.ID, tracker.LastJobID())
	}
}

func TestJobCreate_Validation(t *testing.T) {
	store := storage.NewMemStore()
	svc := NewJobService(store, realtime.NewTracker())
	emp := newEmployerUser(t, store, "e@x.com", "Acme")

	if _, err := svc.Create(emp.ID, &dto.CreateJobRequest{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}
	if _, err := svc.Create(emp.ID, &dto.CreateJobRequest{Title: "X", SalaryMin: 100, SalaryMax: 50}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted salary range, got %v", err)
	}

	// Users without an employer profile cannot post.
	seeker, _ := newSeekerUser(t, store, "s@x.com")
	if _, err := svc.Create(seeker.ID, &dto.CreateJobRequest{Title: "X"}); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestJobUpdate_OwnerOnly(t *testing.T) {
	store := storage.NewMemStore()
	svc := NewJobService(store, realtime.NewTracker())
	owner := newEmployerUser(t, store, "owner@x.com", "Acme")
	rival := newEmployerUser(t, store, "rival@x.com", "Rival Inc")

	job, err := svc.Create(owner.ID, &dto.CreateJobRequest{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(rival.ID, job.ID, &dto.CreateJobRequest{Title: "Hijacked"}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(rival.ID, job.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on delete, got %v", err)
	}

	updated, err := svc.Update(owner.ID, job.ID, &dto.CreateJobRequest{Title: "Senior Backend Engineer"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Fatalf("title not updated, got %q", updated.Title)
	}

	if err := svc.Delete(owner.ID, job.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(job.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("job should be gone, got %v", err)
	}
}

func TestJobUpdate_MissingJob(t *testing.T) {
	store := storage.NewMemStore()
	svc := NewJobService(store, realtime.NewTracker())
	emp := newEmployerUser(t, store, "e@x.com", "Acme")

	if _, err := svc.Update(emp.ID, 999, &dto.CreateJobRequest{Title: "X"}); !errors.Is(err, ErrJobMissing) {
		t.Fatalf("expected ErrJobMissing, got %v", err)
	}
}

func TestJobListByOwner(t *testing.T) {
	store := storage.NewMemStore()
	svc := NewJobService(store, realtime.NewTracker())
	a := newEmployerUser(t, store, "a@x.com", "A Corp")
	b := newEmployerUser(t, store, "b@x.com", "B Corp")

	if _, err := svc.Create(a.ID, &dto.CreateJobRequest{Title: "A job"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(b.ID, &dto.CreateJobRequest{Title: "B job"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	jobs, err := svc.ListByOwner(a.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "A job" {
		t.Fatalf("expected only A's job, got %v", jobs)
	}
}
