package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// DeleteUser serves DELETE /api/admin/users/:id, the full cascade.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.adminService.DeleteUser(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) IssueInvitation(c *fiber.Ctx) error {
	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	code, err := h.adminService.IssueInvitation(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvitationResponse{
		Code:      code.Code,
		Email:     code.Email,
		ExpiresAt: code.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AdminHandler) ListVacancies(c *fiber.Ctx) error {
	vacancies, err := h.adminService.ListVacancies(c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(vacancies)
}

func (h *AdminHandler) UpdateVacancyStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateSubmissionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.adminService.UpdateVacancyStatus(id, &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) ListInquiries(c *fiber.Ctx) error {
	inquiries, err := h.adminService.ListInquiries(c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(inquiries)
}

func (h *AdminHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateSubmissionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.adminService.UpdateInquiryStatus(id, &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
