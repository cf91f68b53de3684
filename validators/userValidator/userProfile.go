package userValidator

import (
	"ilmhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Gender       string `json:"gender"`
			Country      string `json:"country"`
			City         string `json:"city"`
			ProfileImage string `json:"profile_image"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}
		if reqData.Gender != "" && reqData.Gender != "male" && reqData.Gender != "female" {
			errors["gender"] = "Gender must be male or female!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
