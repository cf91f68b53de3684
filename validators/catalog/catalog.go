package catalogValidator

import (
	"ilmhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Sector codes are lowercase slugs, e.g. "qirat-ilm".
func isValidCode(code string) bool {
	re := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	return re.MatchString(code)
}

// CreateSector validator middleware
func CreateSector() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code        string `json:"code"`
			Name        string `json:"name"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Code == "" || !isValidCode(reqData.Code) {
			errors["code"] = "Code must be a lowercase slug!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSector", reqData)
		return c.Next()
	}
}

// CreateLevel validator middleware
func CreateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectorID uint   `json:"sector_id"`
			Title    string `json:"title"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectorID == 0 {
			errors["sector_id"] = "Sector ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLevel", reqData)
		return c.Next()
	}
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LevelID     uint   `json:"level_id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LevelID == 0 {
			errors["level_id"] = "Level ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
