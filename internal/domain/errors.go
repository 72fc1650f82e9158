package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrDepartmentUnavailable = errors.New("department service unavailable")
	ErrSearchUnavailable     = errors.New("search is not configured")
)

// ResourceNotFoundError reports a lookup miss by some key.
type ResourceNotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func NewResourceNotFound(resource, field string, value interface{}) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func (e *ResourceNotFoundError) Unwrap() error {
	return ErrNotFound
}

// DepartmentError is raised when a department reference cannot be confirmed.
// Kind is either ErrDepartmentNotFound or ErrDepartmentUnavailable; the
// transport-level cause is kept out of the message.
type DepartmentError struct {
	DepartmentID int64
	Kind         error
}

// NewDepartmentError classifies cause into one of the department error kinds.
func NewDepartmentError(departmentID int64, cause error) *DepartmentError {
	kind := ErrDepartmentUnavailable
	if errors.Is(cause, ErrDepartmentNotFound) {
		kind = ErrDepartmentNotFound
	}
	return &DepartmentError{DepartmentID: departmentID, Kind: kind}
}

func (e *DepartmentError) Error() string {
	if e.Kind == ErrDepartmentNotFound {
		return fmt.Sprintf("Department not found with id: %d", e.DepartmentID)
	}
	return fmt.Sprintf("Department service unavailable while resolving department %d", e.DepartmentID)
}

func (e *DepartmentError) Unwrap() error {
	return e.Kind
}
