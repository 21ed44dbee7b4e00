package models

type Department struct {
	Id     uint     `json:"id" gorm:"primaryKey"`
	Name   string   `json:"name" gorm:"not null"`
	People []Person `json:"-" gorm:"foreignKey:DepartmentId"`
}
