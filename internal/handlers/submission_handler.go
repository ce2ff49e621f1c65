package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/services"
)

// SubmissionHandler serves the public, unauthenticated submission forms.
type SubmissionHandler struct {
	adminService *services.AdminService
}

func NewSubmissionHandler(adminService *services.AdminService) *SubmissionHandler {
	return &SubmissionHandler{adminService: adminService}
}

func (h *SubmissionHandler) CreateVacancy(c *fiber.Ctx) error {
	var req dto.CreateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	v, err := h.adminService.SubmitVacancy(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *SubmissionHandler) CreateInquiry(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	q, err := h.adminService.SubmitInquiry(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}
