package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/middleware"
	"github.com/workbridge/jobboard-backend/internal/services"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List serves GET /api/jobs with the conjunctive filter set.
func (h *JobHandler) List(c *fiber.Ctx) error {
	filter := storage.JobFilter{
		Category:       c.Query("category"),
		Location:       c.Query("location"),
		JobType:        c.Query("jobType"),
		Specialization: c.Query("specialization"),
		Experience:     c.Query("experience"),
		Keyword:        c.Query("keyword"),
	}
	if v := c.Query("minSalary"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return respond(c, fiber.StatusBadRequest, "minSalary must be an integer")
		}
		filter.MinSalary = &n
	}
	if v := c.Query("maxSalary"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return respond(c, fiber.StatusBadRequest, "maxSalary must be an integer")
		}
		filter.MaxSalary = &n
	}

	jobs, err := h.jobService.Search(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) ListOwn(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	jobs, err := h.jobService.ListByOwner(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	job, err := h.jobService.Update(userID, id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.jobService.Delete(userID, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
