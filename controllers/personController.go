package controllers

import (
	"fmt"

	"people-manager-backend/middlewares"
	"people-manager-backend/services"
	"people-manager-backend/utils"
	"people-manager-backend/viewmodels"

	"github.com/gofiber/fiber/v2"
)

type PersonController struct {
	service *services.PersonService
}

func NewPersonController(service *services.PersonService) *PersonController {
	return &PersonController{service: service}
}

// GET /api/people
func (pc *PersonController) GetAllPeople(c *fiber.Ctx) error {
	people, err := pc.service.GetAllPeople()
	if err != nil {
		return err
	}
	return c.JSON(viewmodels.ToPersonViewModels(people))
}

// GET /api/people/:id
func (pc *PersonController) GetPersonByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid person id")
	}

	person, err := pc.service.GetPersonByID(uint(id))
	if err != nil {
		return err
	}
	if person == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Person with ID %d was not found.", id))
	}
	return c.JSON(viewmodels.ToPersonViewModel(*person))
}

// POST /api/people
func (pc *PersonController) AddPerson(c *fiber.Ctx) error {
	var in viewmodels.PersonViewModel
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	person, err := viewmodels.ToPerson(in)
	if err != nil {
		// unreachable for validated input; kept for direct callers
		return fiber.NewError(fiber.StatusBadRequest, "dob must be a valid date")
	}
	person.Id = 0 // the store assigns the identifier

	id, err := pc.service.AddPerson(&person)
	if err != nil {
		return err
	}

	// person carries the store-assigned id after the commit; no re-read needed.
	c.Location(fmt.Sprintf("/api/people/%d", id))
	return c.Status(fiber.StatusCreated).JSON(viewmodels.ToPersonViewModel(person))
}

// PUT /api/people/:id
func (pc *PersonController) UpdatePerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid person id")
	}

	var in viewmodels.PersonViewModel
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if uint(id) != in.Id {
		return fiber.NewError(fiber.StatusBadRequest, "Person ID in the URL does not match the body.")
	}
	utils.NormalizeDTO(&in)
	if err := middlewares.ValidateStruct(&in); err != nil {
		return err
	}

	person, err := viewmodels.ToPerson(in)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "dob must be a valid date")
	}

	if err := pc.service.UpdatePerson(&person); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/people/:id
func (pc *PersonController) DeletePerson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid person id")
	}

	if err := pc.service.DeletePerson(uint(id)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
