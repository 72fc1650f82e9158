package domain

// Employee represents the employees table
type Employee struct {
	ID           int64  `json:"id" db:"id" datastore:"-"`
	Name         string `json:"name" db:"name" datastore:"Name"`
	Role         string `json:"role" db:"role" datastore:"Role"`
	Email        string `json:"email" db:"email" datastore:"Email"`
	DepartmentID int64  `json:"department_id" db:"department_id" datastore:"DepartmentID"`
	UserID       int64  `json:"user_id" db:"user_id" datastore:"UserID"`
}

// DepartmentInfo is what the department service reports for a department id.
type DepartmentInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
