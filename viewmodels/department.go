package viewmodels

import "people-manager-backend/models"

type DepartmentViewModel struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

func ToDepartmentViewModel(d models.Department) DepartmentViewModel {
	return DepartmentViewModel{Id: d.Id, Name: d.Name}
}

func ToDepartmentViewModels(departments []models.Department) []DepartmentViewModel {
	out := make([]DepartmentViewModel, 0, len(departments))
	for _, d := range departments {
		out = append(out, ToDepartmentViewModel(d))
	}
	return out
}
