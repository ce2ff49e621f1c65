package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
)

// AdminRequired gates a route on user_type admin or super_admin.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := UserType(c)
		if userType != models.UserTypeAdmin && userType != models.UserTypeSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}

// RoleRequired gates a route on an exact user type.
func RoleRequired(userType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserType(c) != userType {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient permissions",
			})
		}
		return c.Next()
	}
}
