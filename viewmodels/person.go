package viewmodels

import (
	"strings"
	"time"

	"people-manager-backend/models"
)

// DOBLayout is the wire format for dates of birth.
const DOBLayout = "2006-01-02"

// PersonViewModel is the wire shape for a person. DOB travels as a string so
// the wire format stays decoupled from storage. Id is required on writes and
// used by the update path to target the stored record.
type PersonViewModel struct {
	Id           uint   `json:"id"`
	Title        string `json:"title"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	DOB          string `json:"dob" validate:"required,datetime=2006-01-02"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	AddressLine4 string `json:"addressLine4"`
	PostCode     string `json:"postCode"`
	DepartmentId int    `json:"departmentId" validate:"gt=0"`
}

// ToPerson converts a view model to the stored entity. An empty or
// whitespace-only DOB maps to the zero date; that is the defined mapping rule,
// not a validation failure. A malformed non-empty DOB returns the parse error,
// which in practice validation prevents from ever reaching this point.
func ToPerson(vm PersonViewModel) (models.Person, error) {
	person := models.Person{
		Id:           vm.Id,
		Title:        vm.Title,
		FirstName:    vm.FirstName,
		LastName:     vm.LastName,
		AddressLine1: vm.AddressLine1,
		AddressLine2: vm.AddressLine2,
		AddressLine3: vm.AddressLine3,
		AddressLine4: vm.AddressLine4,
		PostCode:     vm.PostCode,
		DepartmentId: uint(vm.DepartmentId),
	}

	if dob := strings.TrimSpace(vm.DOB); dob != "" {
		parsed, err := time.Parse(DOBLayout, dob)
		if err != nil {
			return models.Person{}, err
		}
		person.DOB = parsed
	}
	return person, nil
}

func ToPersonViewModel(p models.Person) PersonViewModel {
	return PersonViewModel{
		Id:           p.Id,
		Title:        p.Title,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		DOB:          p.DOB.Format(DOBLayout),
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		AddressLine3: p.AddressLine3,
		AddressLine4: p.AddressLine4,
		PostCode:     p.PostCode,
		DepartmentId: int(p.DepartmentId),
	}
}

func ToPersonViewModels(people []models.Person) []PersonViewModel {
	out := make([]PersonViewModel, 0, len(people))
	for _, p := range people {
		out = append(out, ToPersonViewModel(p))
	}
	return out
}
