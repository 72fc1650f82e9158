package domain

import (
	"bytes"
	"encoding/json"
)

// Link relation names used on employee resources.
const (
	RelSelf      = "self"
	RelEmployees = "employees"
)

// Link is a single named hyperlink.
type Link struct {
	Rel  string
	Href string
}

// Links is an ordered link set. It renders as a HAL "_links" object and keeps
// insertion order in the output.
type Links []Link

// Href returns the target of the first link with the given relation.
func (l Links) Href(rel string) (string, bool) {
	for _, link := range l {
		if link.Rel == rel {
			return link.Href, true
		}
	}
	return "", false
}

type halHref struct {
	Href string `json:"href"`
}

func (l Links) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, link := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		rel, err := json.Marshal(link.Rel)
		if err != nil {
			return nil, err
		}
		href, err := json.Marshal(halHref{Href: link.Href})
		if err != nil {
			return nil, err
		}
		buf.Write(rel)
		buf.WriteByte(':')
		buf.Write(href)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EmployeeModel is an employee representation carrying navigation links.
type EmployeeModel struct {
	EmployeeDTO
	Links Links `json:"_links"`
}

// EmbeddedEmployees holds the items of a collection response.
type EmbeddedEmployees struct {
	Employees []EmployeeModel `json:"employees"`
}

// EmployeeCollectionModel is an ordered list of employee models plus
// collection-level links.
type EmployeeCollectionModel struct {
	Embedded EmbeddedEmployees `json:"_embedded"`
	Links    Links             `json:"_links"`
}

// NewCollectionModel wraps models; a nil slice becomes an empty one so the
// collection always renders as an array.
func NewCollectionModel(models []EmployeeModel, links ...Link) EmployeeCollectionModel {
	if models == nil {
		models = []EmployeeModel{}
	}
	return EmployeeCollectionModel{
		Embedded: EmbeddedEmployees{Employees: models},
		Links:    Links(links),
	}
}

// ResponseEntity pairs a status code with an optional body.
type ResponseEntity struct {
	Status int
	Body   *EmployeeModel
}
