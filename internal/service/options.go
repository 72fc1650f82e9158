package service

import "github.com/locvowork/employee_service/internal/domain"

// Option configures optional collaborators of the employee service.
type Option func(*employeeService)

// WithSearcher enables Search. Without it Search reports domain.ErrSearchUnavailable.
func WithSearcher(searcher domain.EmployeeSearcher) Option {
	return func(s *employeeService) {
		s.searcher = searcher
	}
}
