package controllers

import (
	"people-manager-backend/services"
	"people-manager-backend/viewmodels"

	"github.com/gofiber/fiber/v2"
)

type DepartmentController struct {
	service *services.PersonService
}

func NewDepartmentController(service *services.PersonService) *DepartmentController {
	return &DepartmentController{service: service}
}

// GET /api/departments
func (dc *DepartmentController) GetAllDepartments(c *fiber.Ctx) error {
	departments, err := dc.service.GetAllDepartments()
	if err != nil {
		return err
	}
	return c.JSON(viewmodels.ToDepartmentViewModels(departments))
}
