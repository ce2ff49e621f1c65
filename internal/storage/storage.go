// Package storage provides the persistence contract for the job board:
// per-entity CRUD plus the cascading deletes, behind one interface with a
// PostgreSQL-backed and an in-memory implementation.
package storage

import "github.com/workbridge/jobboard-backend/internal/models"

// JobFilter holds the optional, conjunctive job search filters. Salary
// bounds use range-overlap semantics: a job matches MinSalary when its
// SalaryMax is at least MinSalary, and matches MaxSalary when its
// SalaryMin is at most MaxSalary.
type JobFilter struct {
	Category       string
	Location       string
	JobType        string
	Specialization string
	Experience     string
	MinSalary      *int
	MaxSalary      *int
	Keyword        string
}

// Store is implemented by GormStore (persistent) and MemStore (in-memory).
// Reads return ErrNotFound on miss; multi-step deletes are atomic: either
// every step applies or none does.
type Store interface {
	// Users. DeleteUser runs the full cascade: admin profile, job seeker
	// profile and its applications, employer profile with its jobs and
	// their applications, blog authorship nulled, notifications and
	// refresh tokens removed, then the user row itself.
	CreateUser(u *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	DeleteUser(id uint) error

	// Job seeker profiles.
	CreateJobSeeker(js *models.JobSeeker) error
	GetJobSeeker(id uint) (*models.JobSeeker, error)
	GetJobSeekerByUserID(userID uint) (*models.JobSeeker, error)
	UpdateJobSeeker(js *models.JobSeeker) error

	// Employer profiles.
	CreateEmployer(e *models.Employer) error
	GetEmployer(id uint) (*models.Employer, error)
	GetEmployerByUserID(userID uint) (*models.Employer, error)
	UpdateEmployer(e *models.Employer) error

	// Admin profiles.
	CreateAdmin(a *models.Admin) error
	GetAdminByUserID(userID uint) (*models.Admin, error)
	UpdateAdmin(a *models.Admin) error

	// Jobs. DeleteJob removes the job's applications first, atomically.
	// GetJobs returns newest-created first. GetJobsSince returns jobs with
	// ID greater than the cursor, ascending.
	CreateJob(j *models.Job) error
	GetJob(id uint) (*models.Job, error)
	GetJobs(filter JobFilter) ([]models.Job, error)
	GetJobsByEmployer(employerID uint) ([]models.Job, error)
	GetJobsSince(id uint) ([]models.Job, error)
	UpdateJob(j *models.Job) error
	DeleteJob(id uint) error

	// Applications. CreateApplication increments the parent job's
	// denormalized ApplicationCount.
	CreateApplication(a *models.Application) error
	GetApplication(id uint) (*models.Application, error)
	GetApplicationsByJob(jobID uint) ([]models.Application, error)
	GetApplicationsByJobSeeker(jobSeekerID uint) ([]models.Application, error)
	UpdateApplicationStatus(id uint, status string) error
	DeleteApplication(id uint) error

	// Vacancy submissions. Status updates enforce the forward-only
	// lifecycle; ErrInvalidTransition otherwise.
	CreateVacancy(v *models.Vacancy) error
	GetVacancy(id uint) (*models.Vacancy, error)
	ListVacancies(status string) ([]models.Vacancy, error)
	UpdateVacancyStatus(id uint, status string, assignedAdminID *uint) error
	DeleteVacancy(id uint) error

	// Staffing inquiries, same lifecycle rules as vacancies.
	CreateInquiry(q *models.StaffingInquiry) error
	GetInquiry(id uint) (*models.StaffingInquiry, error)
	ListInquiries(status string) ([]models.StaffingInquiry, error)
	UpdateInquiryStatus(id uint, status string, assignedAdminID *uint) error
	DeleteInquiry(id uint) error

	// Blog posts.
	CreateBlogPost(p *models.BlogPost) error
	GetBlogPost(id uint) (*models.BlogPost, error)
	ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error)
	UpdateBlogPost(p *models.BlogPost) error
	DeleteBlogPost(id uint) error

	// Notifications. MarkNotificationAsRead is idempotent and scoped to
	// the owning user: ErrNotFound when the row does not exist or belongs
	// to someone else. MarkAllNotificationsAsRead reports whether any row
	// changed.
	CreateNotification(n *models.Notification) error
	ListNotifications(userID uint, unreadOnly bool) ([]models.Notification, error)
	GetNotificationsSince(userID, sinceID uint) ([]models.Notification, error)
	MarkNotificationAsRead(userID, id uint) error
	MarkAllNotificationsAsRead(userID uint) (bool, error)

	// Invitation codes. VerifyInvitationCode is side-effect-free; callers
	// consume the code with a separate MarkInvitationCodeAsUsed call.
	CreateInvitationCode(c *models.InvitationCode) error
	VerifyInvitationCode(code, email string) (bool, error)
	MarkInvitationCodeAsUsed(code string) error

	// Refresh tokens.
	CreateRefreshToken(t *models.RefreshToken) error
	GetRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshToken(id uint) error
	RevokeUserRefreshTokens(userID uint) error

	Ping() error
}
