package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/middleware"
	"github.com/workbridge/jobboard-backend/internal/services"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Apply serves POST /api/jobs/:id/apply for job seekers.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	app, err := h.applications.Apply(userID, jobID, req.CoverLetter)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// ListForJob serves GET /api/jobs/:id/applications for the owning employer.
func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	apps, err := h.applications.ListForJob(userID, jobID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(apps)
}

// ListOwn serves GET /api/applications for job seekers.
func (h *ApplicationHandler) ListOwn(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	apps, err := h.applications.ListOwn(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(apps)
}

// UpdateStatus serves PUT /api/applications/:id/status for the owning
// employer.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.applications.UpdateStatus(userID, id, req.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
