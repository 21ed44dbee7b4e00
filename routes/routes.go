package routes

import (
	"github.com/gofiber/fiber/v2"

	"people-manager-backend/controllers"
)

// Register wires all HTTP routes.
func Register(app *fiber.App, people *controllers.PersonController, departments *controllers.DepartmentController) {
	api := app.Group("/api")

	// People
	api.Get("/people", people.GetAllPeople)
	api.Post("/people", people.AddPerson)
	api.Get("/people/:id", people.GetPersonByID)
	api.Put("/people/:id", people.UpdatePerson)
	api.Delete("/people/:id", people.DeletePerson)

	// Departments (read-only; seeded at startup)
	api.Get("/departments", departments.GetAllDepartments)
}
