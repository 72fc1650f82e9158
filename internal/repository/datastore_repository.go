package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/datastore"

	"github.com/locvowork/employee_service/internal/domain"
)

const employeeKind = "Employee"

// DatastoreEmployeeRepository stores employees as Cloud Datastore entities
// keyed by numeric id.
type DatastoreEmployeeRepository struct {
	client *datastore.Client
}

func NewDatastoreEmployeeRepository(client *datastore.Client) *DatastoreEmployeeRepository {
	return &DatastoreEmployeeRepository{client: client}
}

func employeeKey(id int64) *datastore.Key {
	return datastore.IDKey(employeeKind, id, nil)
}

func withKeys(keys []*datastore.Key, employees []domain.Employee) []domain.Employee {
	for i := range employees {
		employees[i].ID = keys[i].ID
	}
	return employees
}

func (r *DatastoreEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	q := datastore.NewQuery(employeeKind).Order("__key__")

	keys, err := r.client.GetAll(ctx, q, &employees)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	return withKeys(keys, employees), nil
}

func (r *DatastoreEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.client.Get(ctx, employeeKey(id), &e); err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	e.ID = id
	return &e, nil
}

func (r *DatastoreEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var result []domain.Employee
	q := datastore.NewQuery(employeeKind).
		Filter("Email =", email).
		Limit(1)

	keys, err := r.client.GetAll(ctx, q, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee by email: %w", err)
	}
	if len(result) == 0 {
		return nil, domain.ErrNotFound
	}
	return &withKeys(keys, result)[0], nil
}

// Save checks email uniqueness with a query before writing. The check is not
// transactional; concurrent writers with the same email can both succeed.
func (r *DatastoreEmployeeRepository) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	existing, err := r.FindByEmail(ctx, e.Email)
	switch {
	case err == nil && existing.ID != e.ID:
		return domain.Employee{}, domain.ErrDuplicateEmail
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return domain.Employee{}, err
	}

	key := datastore.IncompleteKey(employeeKind, nil)
	if e.ID != 0 {
		key = employeeKey(e.ID)
	}

	saved, err := r.client.Put(ctx, key, &e)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}
	e.ID = saved.ID
	return e, nil
}

func (r *DatastoreEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, employeeKey(id)); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}
