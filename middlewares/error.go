package middlewares

import (
	"errors"
	"log"

	"people-manager-backend/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldError is one entry in a 400 validation response body.
type FieldError struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorHandler centralizes error responses and keeps messages sanitized.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Fiber errors (use their status code + message)
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	// 2) Validation errors (400 + one entry per violated rule)
	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, FieldError{
				PropertyName: fe.Field(),
				ErrorMessage: fieldMessage(fe),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid person data.",
			"errors":  out,
		})
	}

	// 3) Domain errors
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	if errors.Is(err, repository.ErrInvalidArgument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// 4) Unknown errors (500); the cause is logged with the request id, never exposed
	reqID, _ := c.Locals("requestid").(string)
	log.Printf("internal error: request %q: %v", reqID, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "First name is required."
	case "LastName":
		return "Last name is required."
	case "DOB":
		if fe.Tag() == "required" {
			return "Date of birth is required."
		}
		return "Date of birth must be a valid date."
	case "DepartmentId":
		return "Department must be selected."
	}
	return fe.Field() + " is invalid."
}
