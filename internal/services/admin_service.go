package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workbridge/jobboard-backend/internal/config"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

var (
	ErrProtectedUser   = errors.New("super admin accounts cannot be deleted")
	ErrFilteredOut     = errors.New("submission rejected by content filter")
	ErrEmailRequired   = errors.New("contact email is required")
	ErrEmptySubmission = errors.New("submission text is required")
)

type AdminService struct {
	store  storage.Store
	cfg    *config.Config
	filter *ContentFilter
}

func NewAdminService(store storage.Store, cfg *config.Config, filter *ContentFilter) *AdminService {
	return &AdminService{store: store, cfg: cfg, filter: filter}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.store.ListUsers()
}

// DeleteUser runs the storage cascade. Super admin accounts are protected
// from deletion through this path.
func (s *AdminService) DeleteUser(id uint) error {
	user, err := s.store.GetUser(id)
	if err != nil {
		return err
	}
	if user.UserType == models.UserTypeSuperAdmin {
		return ErrProtectedUser
	}
	return s.store.DeleteUser(id)
}

// IssueInvitation creates a one-time admin invitation code for an email.
func (s *AdminService) IssueInvitation(req *dto.CreateInvitationRequest) (*models.InvitationCode, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}

	code := models.InvitationCode{
		Code:      uuid.NewString(),
		Email:     req.Email,
		ExpiresAt: time.Now().Add(s.cfg.InvitationTTL),
	}
	if err := s.store.CreateInvitationCode(&code); err != nil {
		return nil, fmt.Errorf("failed to create invitation code: %w", err)
	}
	return &code, nil
}

// SubmitVacancy accepts a public vacancy submission after content
// screening.
func (s *AdminService) SubmitVacancy(req *dto.CreateVacancyRequest) (*models.Vacancy, error) {
	if req.Title == "" || req.Description == "" {
		return nil, ErrEmptySubmission
	}
	if req.ContactEmail == "" {
		return nil, ErrEmailRequired
	}
	if ok, reason := s.filter.Check(req.Title + " " + req.Description); !ok {
		return nil, fmt.Errorf("%w: %s", ErrFilteredOut, s.filter.RejectionMessage(reason))
	}

	v := models.Vacancy{
		Title:        req.Title,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       models.SubmissionStatusNew,
	}
	if err := s.store.CreateVacancy(&v); err != nil {
		return nil, fmt.Errorf("failed to create vacancy: %w", err)
	}
	return &v, nil
}

// SubmitInquiry accepts a public staffing inquiry after content screening.
func (s *AdminService) SubmitInquiry(req *dto.CreateInquiryRequest) (*models.StaffingInquiry, error) {
	if req.CompanyName == "" || req.Message == "" {
		return nil, ErrEmptySubmission
	}
	if req.ContactEmail == "" {
		return nil, ErrEmailRequired
	}
	if ok, reason := s.filter.Check(req.Message); !ok {
		return nil, fmt.Errorf("%w: %s", ErrFilteredOut, s.filter.RejectionMessage(reason))
	}

	q := models.StaffingInquiry{
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		Message:      req.Message,
		Positions:    req.Positions,
		Status:       models.SubmissionStatusNew,
	}
	if err := s.store.CreateInquiry(&q); err != nil {
		return nil, fmt.Errorf("failed to create staffing inquiry: %w", err)
	}
	return &q, nil
}

func (s *AdminService) ListVacancies(status string) ([]models.Vacancy, error) {
	return s.store.ListVacancies(status)
}

func (s *AdminService) UpdateVacancyStatus(id uint, req *dto.UpdateSubmissionStatusRequest) error {
	return s.store.UpdateVacancyStatus(id, req.Status, req.AssignedAdminID)
}

func (s *AdminService) ListInquiries(status string) ([]models.StaffingInquiry, error) {
	return s.store.ListInquiries(status)
}

func (s *AdminService) UpdateInquiryStatus(id uint, req *dto.UpdateSubmissionStatusRequest) error {
	return s.store.UpdateInquiryStatus(id, req.Status, req.AssignedAdminID)
}
