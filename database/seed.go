package database

import (
	"time"

	"people-manager-backend/models"

	"gorm.io/gorm"
)

var seedDepartments = []models.Department{
	{Id: 1, Name: "Sales"},
	{Id: 2, Name: "Marketing"},
	{Id: 3, Name: "Finance"},
	{Id: 4, Name: "HR"},
}

var seedPeople = []models.Person{
	{Id: 1, FirstName: "Fred", LastName: "Bloggs", DOB: date(2000, 1, 20), Title: "Mr", DepartmentId: 1, AddressLine1: "1 Acacia Avenue", PostCode: "AC1 111"},
	{Id: 2, FirstName: "John", LastName: "Smith", DOB: date(2000, 2, 25), Title: "Mr", DepartmentId: 2, AddressLine1: "2 Acacia Avenue", PostCode: "AC1 222"},
	{Id: 3, FirstName: "Sophie", LastName: "Smith", DOB: date(2000, 3, 10), Title: "Ms", DepartmentId: 3, AddressLine1: "3 Acacia Avenue", PostCode: "AC1 333"},
	{Id: 4, FirstName: "Matthew", LastName: "Bloggs", DOB: date(2000, 4, 7), Title: "Mr", DepartmentId: 4, AddressLine1: "4 Acacia Avenue", PostCode: "AC1 444"},
	{Id: 5, FirstName: "Jenny", LastName: "Smith", DOB: date(2000, 5, 28), Title: "Mrs", DepartmentId: 1, AddressLine1: "5 Acacia Avenue", PostCode: "AC1 555"},
	{Id: 6, FirstName: "Peter", LastName: "Bloggs", DOB: date(2000, 6, 15), Title: "Mr", DepartmentId: 2, AddressLine1: "6 Acacia Avenue", PostCode: "AC1 666"},
	{Id: 7, FirstName: "Ben", LastName: "Smith", DOB: date(2000, 7, 14), Title: "Mr", DepartmentId: 3, AddressLine1: "7 Acacia Avenue", PostCode: "AC1 777"},
	{Id: 8, FirstName: "Robert", LastName: "Bloggs", DOB: date(2000, 8, 13), Title: "Mr", DepartmentId: 4, AddressLine1: "8 Acacia Avenue", PostCode: "AC1 888"},
	{Id: 9, FirstName: "Max", LastName: "Smith", DOB: date(2000, 9, 12), Title: "Mr", DepartmentId: 1, AddressLine1: "9 Acacia Avenue", PostCode: "AC1 999"},
	{Id: 10, FirstName: "Mark", LastName: "Bloggs", DOB: date(2000, 10, 2), Title: "Mr", DepartmentId: 2, AddressLine1: "10 Acacia Avenue", PostCode: "AC1 101"},
	{Id: 11, FirstName: "George", LastName: "Smith", DOB: date(2000, 11, 4), Title: "Mr", DepartmentId: 3, AddressLine1: "11 Acacia Avenue", PostCode: "AC1 101"},
	{Id: 12, FirstName: "Emma", LastName: "Bloggs", DOB: date(2000, 12, 30), Title: "Miss", DepartmentId: 4, AddressLine1: "12 Acacia Avenue", PostCode: "AC1 202"},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seed inserts the fixed departments and, when includePeople is set, the demo
// people. It only runs against an empty store, so restarts stay idempotent.
func Seed(db *gorm.DB, includePeople bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Department{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&seedDepartments).Error; err != nil {
				return err
			}
		}

		if !includePeople {
			return nil
		}

		if err := tx.Model(&models.Person{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := tx.Create(&seedPeople).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
