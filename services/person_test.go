package services

import (
	"testing"
	"time"

	"people-manager-backend/database"
	"people-manager-backend/models"
	"people-manager-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *PersonService {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db, false))
	return NewPersonService(db)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAddPersonAssignsID(t *testing.T) {
	svc := newTestService(t)

	person := &models.Person{
		Title:        "Ms",
		FirstName:    "Sophie",
		LastName:     "Smith",
		DOB:          date(2000, 3, 10),
		AddressLine1: "3 Acacia Avenue",
		PostCode:     "AC1 333",
		DepartmentId: 3,
	}

	id, err := svc.AddPerson(person)
	require.NoError(t, err)
	assert.NotZero(t, id)

	stored, err := svc.GetPersonByID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Sophie", stored.FirstName)
	assert.Equal(t, "Smith", stored.LastName)
	assert.Equal(t, uint(3), stored.DepartmentId)
	assert.True(t, stored.DOB.Equal(date(2000, 3, 10)))
}

func TestAddPersonNil(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddPerson(nil)
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)
}

func TestUpdatePersonNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdatePerson(&models.Person{Id: 123, FirstName: "Ghost", LastName: "Record", DepartmentId: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdatePersonReplacesAllFields(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.AddPerson(&models.Person{
		Title:        "Mr",
		FirstName:    "Fred",
		LastName:     "Bloggs",
		DOB:          date(2000, 1, 20),
		AddressLine1: "1 Acacia Avenue",
		AddressLine2: "Flat 2",
		PostCode:     "AC1 111",
		DepartmentId: 1,
	})
	require.NoError(t, err)

	// A wholesale replace: fields left empty in the input blank out the
	// stored values too.
	err = svc.UpdatePerson(&models.Person{
		Id:           id,
		FirstName:    "Fred",
		LastName:     "King",
		DOB:          date(2000, 1, 20),
		DepartmentId: 2,
	})
	require.NoError(t, err)

	stored, err := svc.GetPersonByID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "King", stored.LastName)
	assert.Equal(t, uint(2), stored.DepartmentId)
	assert.Empty(t, stored.Title)
	assert.Empty(t, stored.AddressLine1)
	assert.Empty(t, stored.AddressLine2)
	assert.Empty(t, stored.PostCode)
}

func TestDeletePerson(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.AddPerson(&models.Person{FirstName: "Jane", LastName: "Smith", DOB: date(1985, 2, 2), DepartmentId: 2})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePerson(id))

	stored, err := svc.GetPersonByID(id)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDeletePersonNotFound(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.DeletePerson(999), repository.ErrNotFound)
}

func TestGetAllPeopleOrdered(t *testing.T) {
	svc := newTestService(t)

	for _, p := range []*models.Person{
		{FirstName: "John", LastName: "Smith", DOB: date(2000, 2, 25), DepartmentId: 2},
		{FirstName: "Amber", LastName: "Bloggs", DOB: date(1990, 1, 1), DepartmentId: 1},
		{FirstName: "Ben", LastName: "Smith", DOB: date(2000, 7, 14), DepartmentId: 3},
	} {
		_, err := svc.AddPerson(p)
		require.NoError(t, err)
	}

	people, err := svc.GetAllPeople()
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Bloggs", people[0].LastName)
	assert.Equal(t, "Ben", people[1].FirstName)
	assert.Equal(t, "John", people[2].FirstName)
}

func TestGetAllDepartments(t *testing.T) {
	svc := newTestService(t)

	departments, err := svc.GetAllDepartments()
	require.NoError(t, err)

	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Sales", "Marketing", "Finance", "HR"}, names)
}
