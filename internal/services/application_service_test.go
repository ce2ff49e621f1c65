package services

import (
	"errors"
	"testing"

	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/realtime"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

type applicationFixture struct {
	store    *storage.MemStore
	apps     *ApplicationService
	employer *models.User
	seeker   *models.User
	job      *models.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	store := storage.NewMemStore()
	tracker := realtime.NewTracker()
	notifications := NewNotificationService(store, tracker)
	jobs := NewJobService(store, tracker)
	apps := NewApplicationService(store, notifications)

	employer := newEmployerUser(t, store, "employer@x.com", "Acme")
	seeker, _ := newSeekerUser(t, store, "seeker@x.com")

	job, err := jobs.Create(employer.ID, &dto.CreateJobRequest{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	return &applicationFixture{store: store, apps: apps, employer: employer, seeker: seeker, job: job}
}

func TestApply(t *testing.T) {
	f := newApplicationFixture(t)

	app, err := f.apps.Apply(f.seeker.ID, f.job.ID, "I am interested")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if app.Status != models.ApplicationStatusNew {
		t.Fatalf("expected status new, got %s", app.Status)
	}

	job, err := f.store.GetJob(f.job.ID)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if job.ApplicationCount != 1 {
		t.Fatalf("expected application_count 1, got %d", job.ApplicationCount)
	}

	// The employer is notified about the new application.
	items, err := f.store.ListNotifications(f.employer.ID, true)
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 employer notification, got %d", len(items))
	}
}

func TestApply_Duplicate(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.apps.Apply(f.seeker.ID, f.job.ID, ""); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := f.apps.Apply(f.seeker.ID, f.job.ID, "")
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApply_MissingJobOrProfile(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.apps.Apply(f.seeker.ID, 999, ""); !errors.Is(err, ErrJobMissing) {
		t.Fatalf("expected ErrJobMissing, got %v", err)
	}
	// Employers have no seeker profile and cannot apply.
	if _, err := f.apps.Apply(f.employer.ID, f.job.ID, ""); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestListForJob_OwnerOnly(t *testing.T) {
	f := newApplicationFixture(t)
	rival := newEmployerUser(t, f.store, "rival@x.com", "Rival Inc")

	if _, err := f.apps.Apply(f.seeker.ID, f.job.ID, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := f.apps.ListForJob(rival.ID, f.job.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	items, err := f.apps.ListForJob(f.employer.ID, f.job.ID)
	if err != nil {
		t.Fatalf("ListForJob: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 application, got %d", len(items))
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)

	app, err := f.apps.Apply(f.seeker.ID, f.job.ID, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := f.apps.UpdateStatus(f.employer.ID, app.ID, "unknown"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	rival := newEmployerUser(t, f.store, "rival@x.com", "Rival Inc")
	if err := f.apps.UpdateStatus(rival.ID, app.ID, models.ApplicationStatusShortlisted); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	if err := f.apps.UpdateStatus(f.employer.ID, app.ID, models.ApplicationStatusShortlisted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := f.store.GetApplication(app.ID)
	if err != nil {
		t.Fatalf("GetApplication: %v", err)
	}
	if got.Status != models.ApplicationStatusShortlisted {
		t.Fatalf("expected shortlisted, got %s", got.Status)
	}

	// The seeker is notified about the status change.
	items, err := f.store.ListNotifications(f.seeker.ID, true)
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 seeker notification, got %d", len(items))
	}
}

func TestListOwn(t *testing.T) {
	f := newApplicationFixture(t)
	other, _ := newSeekerUser(t, f.store, "other@x.com")

	if _, err := f.apps.Apply(f.seeker.ID, f.job.ID, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	mine, err := f.apps.ListOwn(f.seeker.ID)
	if err != nil {
		t.Fatalf("ListOwn: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 application, got %d", len(mine))
	}

	theirs, err := f.apps.ListOwn(other.ID)
	if err != nil {
		t.Fatalf("ListOwn(other): %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected 0 applications for other seeker, got %d", len(theirs))
	}
}
