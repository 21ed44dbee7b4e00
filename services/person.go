package services

import (
	"fmt"

	"people-manager-backend/models"
	"people-manager-backend/repository"

	"gorm.io/gorm"
)

// PersonService orchestrates repository calls and owns the commit boundary.
// Each operation works on its own request-scoped repository so concurrent
// requests never share staged state.
type PersonService struct {
	db *gorm.DB
}

func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{db: db}
}

func (s *PersonService) repo() *repository.PersonRepository {
	return repository.New(s.db)
}

// AddPerson stores a new person and returns the store-assigned id.
func (s *PersonService) AddPerson(person *models.Person) (uint, error) {
	if person == nil {
		return 0, repository.ErrInvalidArgument
	}

	repo := s.repo()
	if err := repo.Add(person); err != nil {
		repo.Rollback()
		return 0, err
	}
	if err := repo.Commit(); err != nil {
		return 0, err
	}
	return person.Id, nil
}

// UpdatePerson replaces every mutable field of the stored record wholesale.
// Fields absent from the input overwrite stored values with their zero value.
func (s *PersonService) UpdatePerson(person *models.Person) error {
	if person == nil {
		return repository.ErrInvalidArgument
	}

	repo := s.repo()
	existing, err := repo.GetByID(person.Id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: person %d does not exist", repository.ErrNotFound, person.Id)
	}

	existing.Title = person.Title
	existing.FirstName = person.FirstName
	existing.LastName = person.LastName
	existing.DOB = person.DOB
	existing.AddressLine1 = person.AddressLine1
	existing.AddressLine2 = person.AddressLine2
	existing.AddressLine3 = person.AddressLine3
	existing.AddressLine4 = person.AddressLine4
	existing.PostCode = person.PostCode
	existing.DepartmentId = person.DepartmentId

	if err := repo.Update(existing); err != nil {
		repo.Rollback()
		return err
	}
	return repo.Commit()
}

func (s *PersonService) DeletePerson(id uint) error {
	repo := s.repo()
	existing, err := repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: person %d does not exist", repository.ErrNotFound, id)
	}

	if err := repo.Delete(id); err != nil {
		repo.Rollback()
		return err
	}
	return repo.Commit()
}

func (s *PersonService) GetPersonByID(id uint) (*models.Person, error) {
	return s.repo().GetByID(id)
}

func (s *PersonService) GetAllPeople() ([]models.Person, error) {
	return s.repo().GetAll()
}

func (s *PersonService) GetAllDepartments() ([]models.Department, error) {
	return s.repo().GetAllDepartments()
}
