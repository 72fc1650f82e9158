package domain

// EmployeeDTO is the boundary projection of an Employee.
type EmployeeDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"departmentId"`
	UserID       int64  `json:"userId"`
}

// ToDTO projects an employee record onto its transfer form.
func ToDTO(e Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		UserID:       e.UserID,
	}
}

// ToEmployee builds a record without identity; the repository assigns one on save.
func (d EmployeeDTO) ToEmployee() Employee {
	return Employee{
		Name:         d.Name,
		Role:         d.Role,
		Email:        d.Email,
		DepartmentID: d.DepartmentID,
		UserID:       d.UserID,
	}
}
