package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/middleware"
	"github.com/workbridge/jobboard-backend/internal/services"
)

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.blogService.ListPublished()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	post, err := h.blogService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	post, err := h.blogService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CreateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	post, err := h.blogService.Update(userID, id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.blogService.Delete(userID, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
