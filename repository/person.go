package repository

import (
	"errors"
	"fmt"

	"people-manager-backend/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("record not found")
)

// PersistenceError wraps a store failure raised while flushing staged changes.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("an error occurred while saving changes to the store: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PersonRepository stages inserts, updates and deletes in a single transaction
// that Commit flushes atomically. Store-level failures (e.g. a foreign key
// violation) are held back until Commit so mutating calls keep their narrow
// error contracts. Instances are cheap and request scoped; do not share one
// across requests.
type PersonRepository struct {
	db  *gorm.DB
	tx  *gorm.DB
	err error
}

func New(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) staging() *gorm.DB {
	if r.tx == nil {
		r.tx = r.db.Begin()
	}
	return r.tx
}

// session is the handle reads use: the staged transaction when one is open,
// the root connection otherwise.
func (r *PersonRepository) session() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *PersonRepository) Add(person *models.Person) error {
	if person == nil {
		return ErrInvalidArgument
	}
	if r.err != nil {
		return nil
	}
	r.err = r.staging().Create(person).Error
	return nil
}

func (r *PersonRepository) Update(person *models.Person) error {
	if person == nil {
		return ErrInvalidArgument
	}
	if r.err != nil {
		return nil
	}
	r.err = r.staging().Save(person).Error
	return nil
}

// GetByID returns nil without error when no person matches.
func (r *PersonRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	if err := r.session().First(&person, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

// GetAll returns every person ordered by last name, then first name.
func (r *PersonRepository) GetAll() ([]models.Person, error) {
	var people []models.Person
	if err := r.session().Order("last_name, first_name").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *PersonRepository) GetAllDepartments() ([]models.Department, error) {
	var departments []models.Department
	if err := r.session().Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *PersonRepository) Delete(id uint) error {
	existing, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: person %d does not exist", ErrNotFound, id)
	}
	if r.err != nil {
		return nil
	}
	r.err = r.staging().Delete(&models.Person{}, "id = ?", id).Error
	return nil
}

// Commit flushes all staged changes as one transaction. Any failure, whether
// raised while staging or at commit time, comes back as a *PersistenceError.
// There is no retry; the transaction is gone either way.
func (r *PersonRepository) Commit() error {
	if r.tx == nil {
		return nil
	}
	tx := r.tx
	r.tx = nil

	if r.err != nil {
		err := r.err
		r.err = nil
		tx.Rollback()
		return &PersistenceError{Err: err}
	}
	if err := tx.Commit().Error; err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// Rollback discards staged changes. Safe to call when nothing is staged.
func (r *PersonRepository) Rollback() {
	if r.tx != nil {
		r.tx.Rollback()
		r.tx = nil
	}
	r.err = nil
}
