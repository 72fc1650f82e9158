package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/logger"
)

const employeeResource = "Employee"

// EmployeeService orchestrates employee persistence, department validation
// and hypermedia wrapping. It holds no state of its own and is safe for
// concurrent use.
type EmployeeService interface {
	FindAll(ctx context.Context) (*domain.EmployeeCollectionModel, error)
	FindByID(ctx context.Context, id int64) (domain.ResponseEntity, error)
	FindByEmail(ctx context.Context, email string) (*domain.EmployeeModel, error)
	NewEmployee(ctx context.Context, dto domain.EmployeeDTO) (domain.ResponseEntity, error)
	Save(ctx context.Context, dto domain.EmployeeDTO, id int64) (domain.ResponseEntity, error)
	DeleteByID(ctx context.Context, id int64) (domain.ResponseEntity, error)
	Search(ctx context.Context, query string) (*domain.EmployeeCollectionModel, error)
}

type employeeService struct {
	repo        domain.EmployeeRepository
	departments domain.DepartmentClient
	assembler   domain.EmployeeAssembler
	searcher    domain.EmployeeSearcher
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(
	repo domain.EmployeeRepository,
	departments domain.DepartmentClient,
	assembler domain.EmployeeAssembler,
	opts ...Option,
) EmployeeService {
	s := &employeeService{
		repo:        repo,
		departments: departments,
		assembler:   assembler,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *employeeService) toModel(e domain.Employee) domain.EmployeeModel {
	return s.assembler.ToModel(domain.ToDTO(e))
}

func (s *employeeService) toCollection(employees []domain.Employee) *domain.EmployeeCollectionModel {
	models := make([]domain.EmployeeModel, 0, len(employees))
	for _, e := range employees {
		models = append(models, s.toModel(e))
	}
	collection := s.assembler.ToCollectionModel(models)
	return &collection
}

// FindAll returns every employee; an empty store yields an empty collection.
func (s *employeeService) FindAll(ctx context.Context) (*domain.EmployeeCollectionModel, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return s.toCollection(employees), nil
}

func (s *employeeService) FindByID(ctx context.Context, id int64) (domain.ResponseEntity, error) {
	if id <= 0 {
		return domain.ResponseEntity{}, fmt.Errorf("%w: employee id is required", domain.ErrInvalidInput)
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ResponseEntity{}, domain.NewResourceNotFound(employeeResource, "id", id)
		}
		return domain.ResponseEntity{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}

	model := s.toModel(*e)
	return domain.ResponseEntity{Status: http.StatusOK, Body: &model}, nil
}

func (s *employeeService) FindByEmail(ctx context.Context, email string) (*domain.EmployeeModel, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	e, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewResourceNotFound(employeeResource, "email", email)
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	model := s.toModel(*e)
	return &model, nil
}

// NewEmployee always inserts; any id on dto is ignored.
func (s *employeeService) NewEmployee(ctx context.Context, dto domain.EmployeeDTO) (domain.ResponseEntity, error) {
	if err := validateEmployee(dto); err != nil {
		return domain.ResponseEntity{}, err
	}

	if err := s.resolveDepartment(ctx, dto.DepartmentID); err != nil {
		return domain.ResponseEntity{}, err
	}

	return s.persist(ctx, dto.ToEmployee())
}

// Save updates the employee with the given id, or inserts a new one when the
// id is unknown. The department is confirmed before anything is written and
// both paths answer 201.
func (s *employeeService) Save(ctx context.Context, dto domain.EmployeeDTO, id int64) (domain.ResponseEntity, error) {
	if err := validateEmployee(dto); err != nil {
		return domain.ResponseEntity{}, err
	}

	employee := dto.ToEmployee()
	if id > 0 {
		existing, err := s.repo.FindByID(ctx, id)
		switch {
		case err == nil:
			employee = *existing
			employee.Name = dto.Name
			employee.Role = dto.Role
			employee.Email = dto.Email
			employee.UserID = dto.UserID
		case errors.Is(err, domain.ErrNotFound):
			logger.DebugLog(ctx, "employee %d not found, inserting new record", id)
		default:
			return domain.ResponseEntity{}, fmt.Errorf("failed to get employee %d: %w", id, err)
		}
	}

	if err := s.resolveDepartment(ctx, dto.DepartmentID); err != nil {
		return domain.ResponseEntity{}, err
	}
	employee.DepartmentID = dto.DepartmentID

	return s.persist(ctx, employee)
}

// DeleteByID does not check existence; deleting an unknown id succeeds.
func (s *employeeService) DeleteByID(ctx context.Context, id int64) (domain.ResponseEntity, error) {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return domain.ResponseEntity{}, fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	logger.InfoLog(ctx, "Employee %d deleted", id)
	return domain.ResponseEntity{Status: http.StatusNoContent}, nil
}

func (s *employeeService) Search(ctx context.Context, query string) (*domain.EmployeeCollectionModel, error) {
	if s.searcher == nil {
		return nil, domain.ErrSearchUnavailable
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}

	employees, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return s.toCollection(employees), nil
}

func (s *employeeService) persist(ctx context.Context, e domain.Employee) (domain.ResponseEntity, error) {
	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return domain.ResponseEntity{}, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.InfoLog(ctx, "Employee %d saved", saved.ID)
	model := s.toModel(saved)
	return domain.ResponseEntity{Status: http.StatusCreated, Body: &model}, nil
}

// resolveDepartment confirms a non-zero department id with the department
// service. Zero means unassigned and is not looked up.
func (s *employeeService) resolveDepartment(ctx context.Context, departmentID int64) error {
	if departmentID == 0 {
		return nil
	}

	if _, err := s.departments.Resolve(ctx, departmentID); err != nil {
		logger.WarnLog(ctx, "department %d could not be resolved: %v", departmentID, err)
		return domain.NewDepartmentError(departmentID, err)
	}
	return nil
}

func validateEmployee(dto domain.EmployeeDTO) error {
	if strings.TrimSpace(dto.Email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if dto.DepartmentID < 0 {
		return fmt.Errorf("%w: department id must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
