package domain

import "context"

// EmployeeRepository defines the interface for employee data access.
// FindByID and FindByEmail return ErrNotFound on a miss.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	// Save inserts when e.ID is zero and updates otherwise. The returned
	// record carries the persisted identifier.
	Save(ctx context.Context, e Employee) (Employee, error)
	DeleteByID(ctx context.Context, id int64) error
}

// DepartmentClient confirms department references against the department service.
type DepartmentClient interface {
	Resolve(ctx context.Context, departmentID int64) (*DepartmentInfo, error)
}

// EmployeeAssembler attaches navigation links to employee representations.
type EmployeeAssembler interface {
	ToModel(dto EmployeeDTO) EmployeeModel
	ToCollectionModel(models []EmployeeModel) EmployeeCollectionModel
}

// EmployeeSearcher runs full-text queries over employees.
type EmployeeSearcher interface {
	Search(ctx context.Context, query string) ([]Employee, error)
}

// EmployeeIndex keeps a search index in step with the repository.
type EmployeeIndex interface {
	EmployeeSearcher
	Index(ctx context.Context, e Employee) error
	Remove(ctx context.Context, id int64) error
}
