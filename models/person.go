package models

import "time"

// Person is the stored entity. DOB carries a calendar date only; the wire
// representation lives in viewmodels.PersonViewModel.
type Person struct {
	Id           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	DOB          time.Time `json:"dob" gorm:"type:date"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	AddressLine3 string    `json:"addressLine3"`
	AddressLine4 string    `json:"addressLine4"`
	PostCode     string    `json:"postCode"`
	DepartmentId uint      `json:"departmentId" gorm:"not null"`

	Department Department `json:"-" gorm:"foreignKey:DepartmentId;references:Id;constraint:OnDelete:CASCADE"`
}
