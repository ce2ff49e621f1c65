package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/workbridge/jobboard-backend/internal/models"
	"gorm.io/gorm"
)

// GormStore is the persistent backend. Multi-step deletes run inside a
// database transaction, so concurrent readers never observe a partially
// deleted user or job.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConstraintViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConstraintViolation
	default:
		return err
	}
}

// --- Users ---

func (s *GormStore) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		// The unique index on email is the source of truth for duplicates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return translate(err)
	}
	return nil
}

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and every dependent row in one transaction.
// Ordering matters: applications go before their parent job or job seeker,
// profiles before the user row.
func (s *GormStore) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return translate(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Admin{}).Error; err != nil {
			return err
		}

		var seeker models.JobSeeker
		if err := tx.Where("user_id = ?", id).First(&seeker).Error; err == nil {
			if err := tx.Where("job_seeker_id = ?", seeker.ID).Delete(&models.Application{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&seeker).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var employer models.Employer
		if err := tx.Where("user_id = ?", id).First(&employer).Error; err == nil {
			var jobs []models.Job
			if err := tx.Where("employer_id = ?", employer.ID).Find(&jobs).Error; err != nil {
				return err
			}
			for _, job := range jobs {
				if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("employer_id = ?", employer.ID).Delete(&models.Job{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&employer).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Posts survive their author.
		if err := tx.Model(&models.BlogPost{}).Where("author_id = ?", id).
			Update("author_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete user %d: %v", ErrTransactionFailure, id, err)
	}
	return nil
}

// --- Job seekers ---

func (s *GormStore) CreateJobSeeker(js *models.JobSeeker) error {
	return translate(s.db.Create(js).Error)
}

func (s *GormStore) GetJobSeeker(id uint) (*models.JobSeeker, error) {
	var js models.JobSeeker
	if err := s.db.First(&js, id).Error; err != nil {
		return nil, translate(err)
	}
	return &js, nil
}

func (s *GormStore) GetJobSeekerByUserID(userID uint) (*models.JobSeeker, error) {
	var js models.JobSeeker
	if err := s.db.Where("user_id = ?", userID).First(&js).Error; err != nil {
		return nil, translate(err)
	}
	return &js, nil
}

func (s *GormStore) UpdateJobSeeker(js *models.JobSeeker) error {
	return translate(s.db.Save(js).Error)
}

// --- Employers ---

func (s *GormStore) CreateEmployer(e *models.Employer) error {
	return translate(s.db.Create(e).Error)
}

func (s *GormStore) GetEmployer(id uint) (*models.Employer, error) {
	var e models.Employer
	if err := s.db.First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *GormStore) GetEmployerByUserID(userID uint) (*models.Employer, error) {
	var e models.Employer
	if err := s.db.Where("user_id = ?", userID).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *GormStore) UpdateEmployer(e *models.Employer) error {
	return translate(s.db.Save(e).Error)
}

// --- Admins ---

func (s *GormStore) CreateAdmin(a *models.Admin) error {
	return translate(s.db.Create(a).Error)
}

func (s *GormStore) GetAdminByUserID(userID uint) (*models.Admin, error) {
	var a models.Admin
	if err := s.db.Where("user_id = ?", userID).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormStore) UpdateAdmin(a *models.Admin) error {
	return translate(s.db.Save(a).Error)
}

// --- Jobs ---

func (s *GormStore) CreateJob(j *models.Job) error {
	return translate(s.db.Create(j).Error)
}

func (s *GormStore) GetJob(id uint) (*models.Job, error) {
	var j models.Job
	if err := s.db.First(&j, id).Error; err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

func (s *GormStore) GetJobs(filter JobFilter) ([]models.Job, error) {
	query := s.db.Model(&models.Job{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Experience != "" {
		query = query.Where("experience = ?", filter.Experience)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Specialization != "" {
		query = query.Where("specialization ILIKE ?", "%"+filter.Specialization+"%")
	}
	// Range overlap, not containment: the job's range must intersect the
	// filter's range.
	if filter.MinSalary != nil {
		query = query.Where("salary_max >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("salary_min <= ?", *filter.MaxSalary)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR company ILIKE ? OR requirements ILIKE ?",
			kw, kw, kw, kw,
		)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) GetJobsByEmployer(employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Where("employer_id = ?", employerID).
		Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) GetJobsSince(id uint) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Where("id > ?", id).Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) UpdateJob(j *models.Job) error {
	return translate(s.db.Save(j).Error)
}

// DeleteJob deletes the job's applications, then the job, atomically.
func (s *GormStore) DeleteJob(id uint) error {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		return translate(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete job %d: %v", ErrTransactionFailure, id, err)
	}
	return nil
}

// --- Applications ---

func (s *GormStore) CreateApplication(a *models.Application) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).Where("id = ?", a.JobID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	}))
}

func (s *GormStore) GetApplication(id uint) (*models.Application, error) {
	var a models.Application
	if err := s.db.First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormStore) GetApplicationsByJob(jobID uint) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Where("job_id = ?", jobID).
		Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *GormStore) GetApplicationsByJobSeeker(jobSeekerID uint) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Where("job_seeker_id = ?", jobSeekerID).
		Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *GormStore) UpdateApplicationStatus(id uint, status string) error {
	result := s.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteApplication(id uint) error {
	result := s.db.Delete(&models.Application{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Vacancies ---

func (s *GormStore) CreateVacancy(v *models.Vacancy) error {
	return translate(s.db.Create(v).Error)
}

func (s *GormStore) GetVacancy(id uint) (*models.Vacancy, error) {
	var v models.Vacancy
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (s *GormStore) ListVacancies(status string) ([]models.Vacancy, error) {
	query := s.db.Model(&models.Vacancy{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var vacancies []models.Vacancy
	if err := query.Order("created_at DESC").Find(&vacancies).Error; err != nil {
		return nil, err
	}
	return vacancies, nil
}

func (s *GormStore) UpdateVacancyStatus(id uint, status string, assignedAdminID *uint) error {
	var v models.Vacancy
	if err := s.db.First(&v, id).Error; err != nil {
		return translate(err)
	}
	if !models.CanTransition(v.Status, status) {
		return fmt.Errorf("%w: vacancy %s -> %s", ErrInvalidTransition, v.Status, status)
	}

	updates := map[string]interface{}{"status": status}
	if assignedAdminID != nil {
		updates["assigned_admin_id"] = *assignedAdminID
	}
	return s.db.Model(&v).Updates(updates).Error
}

func (s *GormStore) DeleteVacancy(id uint) error {
	result := s.db.Delete(&models.Vacancy{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Staffing inquiries ---

func (s *GormStore) CreateInquiry(q *models.StaffingInquiry) error {
	return translate(s.db.Create(q).Error)
}

func (s *GormStore) GetInquiry(id uint) (*models.StaffingInquiry, error) {
	var q models.StaffingInquiry
	if err := s.db.First(&q, id).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (s *GormStore) ListInquiries(status string) ([]models.StaffingInquiry, error) {
	query := s.db.Model(&models.StaffingInquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var inquiries []models.StaffingInquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (s *GormStore) UpdateInquiryStatus(id uint, status string, assignedAdminID *uint) error {
	var q models.StaffingInquiry
	if err := s.db.First(&q, id).Error; err != nil {
		return translate(err)
	}
	if !models.CanTransition(q.Status, status) {
		return fmt.Errorf("%w: inquiry %s -> %s", ErrInvalidTransition, q.Status, status)
	}

	updates := map[string]interface{}{"status": status}
	if assignedAdminID != nil {
		updates["assigned_admin_id"] = *assignedAdminID
	}
	return s.db.Model(&q).Updates(updates).Error
}

func (s *GormStore) DeleteInquiry(id uint) error {
	result := s.db.Delete(&models.StaffingInquiry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Blog posts ---

func (s *GormStore) CreateBlogPost(p *models.BlogPost) error {
	return translate(s.db.Create(p).Error)
}

func (s *GormStore) GetBlogPost(id uint) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	query := s.db.Model(&models.BlogPost{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var posts []models.BlogPost
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *GormStore) UpdateBlogPost(p *models.BlogPost) error {
	return translate(s.db.Save(p).Error)
}

func (s *GormStore) DeleteBlogPost(id uint) error {
	result := s.db.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Notifications ---

func (s *GormStore) CreateNotification(n *models.Notification) error {
	return translate(s.db.Create(n).Error)
}

func (s *GormStore) ListNotifications(userID uint, unreadOnly bool) ([]models.Notification, error) {
	query := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	var notifications []models.Notification
	if err := query.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *GormStore) GetNotificationsSince(userID, sinceID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ? AND id > ?", userID, sinceID).
		Order("id ASC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationAsRead is idempotent and owner-scoped: a notification
// belonging to another user reads as ErrNotFound.
func (s *GormStore) MarkNotificationAsRead(userID, id uint) error {
	var n models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return translate(err)
	}
	if n.Read {
		return nil
	}
	return s.db.Model(&n).Update("read", true).Error
}

func (s *GormStore) MarkAllNotificationsAsRead(userID uint) (bool, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// --- Invitation codes ---

func (s *GormStore) CreateInvitationCode(c *models.InvitationCode) error {
	return translate(s.db.Create(c).Error)
}

// VerifyInvitationCode is side-effect-free; consuming the code is a
// separate MarkInvitationCodeAsUsed call.
func (s *GormStore) VerifyInvitationCode(code, email string) (bool, error) {
	var c models.InvitationCode
	err := s.db.Where("code = ? AND email = ?", code, email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !c.IsUsed && c.ExpiresAt.After(time.Now()), nil
}

func (s *GormStore) MarkInvitationCodeAsUsed(code string) error {
	result := s.db.Model(&models.InvitationCode{}).
		Where("code = ?", code).
		Update("is_used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Refresh tokens ---

func (s *GormStore) CreateRefreshToken(t *models.RefreshToken) error {
	return translate(s.db.Create(t).Error)
}

func (s *GormStore) GetRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	var t models.RefreshToken
	if err := s.db.Where("token_hash = ?", hash).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormStore) RevokeRefreshToken(id uint) error {
	return s.db.Model(&models.RefreshToken{}).Where("id = ?", id).
		Update("revoked", true).Error
}

func (s *GormStore) RevokeUserRefreshTokens(userID uint) error {
	return s.db.Model(&models.RefreshToken{}).Where("user_id = ?", userID).
		Update("revoked", true).Error
}

func (s *GormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
