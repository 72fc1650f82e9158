package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/locvowork/employee_service/internal/domain"
)

// MemoryEmployeeRepository is a map-backed EmployeeRepository for local runs
// and tests. It enforces email uniqueness like the SQL schema does.
type MemoryEmployeeRepository struct {
	mu        sync.RWMutex
	nextID    int64
	employees map[int64]domain.Employee
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{employees: make(map[int64]domain.Employee)}
}

func (r *MemoryEmployeeRepository) FindAll(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (r *MemoryEmployeeRepository) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *MemoryEmployeeRepository) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.Email == email {
			found := e
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryEmployeeRepository) Save(_ context.Context, e domain.Employee) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, other := range r.employees {
		if id != e.ID && other.Email == e.Email {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
	}

	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	} else if e.ID > r.nextID {
		r.nextID = e.ID
	}
	r.employees[e.ID] = e
	return e, nil
}

func (r *MemoryEmployeeRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.employees, id)
	return nil
}
