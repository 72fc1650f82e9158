// Package assembler builds hypermedia representations of employees.
package assembler

import (
	"strconv"
	"strings"

	"github.com/locvowork/employee_service/internal/domain"
)

// CollectionPath is the path of the employee collection resource.
const CollectionPath = "/employees"

// LinkAssembler links each employee to itself and to the collection. Links
// are relative unless a public base URL is configured.
type LinkAssembler struct {
	baseURL string
}

func NewLinkAssembler(baseURL string) *LinkAssembler {
	return &LinkAssembler{baseURL: strings.TrimRight(baseURL, "/")}
}

func (a *LinkAssembler) collectionHref() string {
	return a.baseURL + CollectionPath
}

func (a *LinkAssembler) employeeHref(id int64) string {
	return a.collectionHref() + "/" + strconv.FormatInt(id, 10)
}

func (a *LinkAssembler) ToModel(dto domain.EmployeeDTO) domain.EmployeeModel {
	return domain.EmployeeModel{
		EmployeeDTO: dto,
		Links: domain.Links{
			{Rel: domain.RelSelf, Href: a.employeeHref(dto.ID)},
			{Rel: domain.RelEmployees, Href: a.collectionHref()},
		},
	}
}

func (a *LinkAssembler) ToCollectionModel(models []domain.EmployeeModel) domain.EmployeeCollectionModel {
	return domain.NewCollectionModel(models, domain.Link{Rel: domain.RelSelf, Href: a.collectionHref()})
}

// Func adapts a plain conversion function to domain.EmployeeAssembler.
// Collections get a single relative self link.
type Func func(domain.EmployeeDTO) domain.EmployeeModel

func (f Func) ToModel(dto domain.EmployeeDTO) domain.EmployeeModel {
	return f(dto)
}

func (f Func) ToCollectionModel(models []domain.EmployeeModel) domain.EmployeeCollectionModel {
	return domain.NewCollectionModel(models, domain.Link{Rel: domain.RelSelf, Href: CollectionPath})
}
