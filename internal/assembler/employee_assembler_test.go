package assembler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_service/internal/domain"
)

func TestLinkAssembler_ToModel(t *testing.T) {
	a := NewLinkAssembler("")
	model := a.ToModel(domain.EmployeeDTO{ID: 1, Name: "John Doe", Email: "john@example.com"})

	self, ok := model.Links.Href(domain.RelSelf)
	require.True(t, ok)
	assert.Equal(t, "/employees/1", self)

	collection, ok := model.Links.Href(domain.RelEmployees)
	require.True(t, ok)
	assert.Equal(t, "/employees", collection)
	assert.Equal(t, "John Doe", model.Name)
}

func TestLinkAssembler_BaseURL(t *testing.T) {
	a := NewLinkAssembler("https://hr.example.com/")
	model := a.ToModel(domain.EmployeeDTO{ID: 12})

	self, _ := model.Links.Href(domain.RelSelf)
	assert.Equal(t, "https://hr.example.com/employees/12", self)
}

func TestLinkAssembler_ToModelJSON(t *testing.T) {
	model := NewLinkAssembler("").ToModel(domain.EmployeeDTO{
		ID: 1, Name: "John Doe", Role: "Engineer", Email: "john@example.com", DepartmentID: 2, UserID: 3,
	})

	data, err := json.Marshal(model)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "John Doe",
		"role": "Engineer",
		"email": "john@example.com",
		"departmentId": 2,
		"userId": 3,
		"_links": {
			"self": {"href": "/employees/1"},
			"employees": {"href": "/employees"}
		}
	}`, string(data))
}

func TestLinkAssembler_ToCollectionModel(t *testing.T) {
	a := NewLinkAssembler("")

	empty := a.ToCollectionModel(nil)
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_embedded":{"employees":[]},"_links":{"self":{"href":"/employees"}}}`, string(data))

	full := a.ToCollectionModel([]domain.EmployeeModel{a.ToModel(domain.EmployeeDTO{ID: 4})})
	require.Len(t, full.Embedded.Employees, 1)
	self, _ := full.Links.Href(domain.RelSelf)
	assert.Equal(t, "/employees", self)
}

func TestFunc(t *testing.T) {
	f := Func(func(dto domain.EmployeeDTO) domain.EmployeeModel {
		return domain.EmployeeModel{EmployeeDTO: dto, Links: domain.Links{{Rel: "profile", Href: "/people/x"}}}
	})

	model := f.ToModel(domain.EmployeeDTO{ID: 9})
	href, ok := model.Links.Href("profile")
	assert.True(t, ok)
	assert.Equal(t, "/people/x", href)

	collection := f.ToCollectionModel([]domain.EmployeeModel{model})
	assert.Len(t, collection.Embedded.Employees, 1)
}
