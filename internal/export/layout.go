package export

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/locvowork/employee_service/internal/domain"
)

//go:embed default_layout.yaml
var defaultLayout []byte

// Layout describes the worksheet produced by an Exporter.
type Layout struct {
	Sheet   string   `yaml:"sheet"`
	Columns []Column `yaml:"columns"`
}

// Column maps one employee field to a worksheet column.
type Column struct {
	Field  string  `yaml:"field"`
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

var fieldValues = map[string]func(domain.EmployeeDTO) interface{}{
	"id":           func(e domain.EmployeeDTO) interface{} { return e.ID },
	"name":         func(e domain.EmployeeDTO) interface{} { return e.Name },
	"role":         func(e domain.EmployeeDTO) interface{} { return e.Role },
	"email":        func(e domain.EmployeeDTO) interface{} { return e.Email },
	"departmentId": func(e domain.EmployeeDTO) interface{} { return e.DepartmentID },
	"userId":       func(e domain.EmployeeDTO) interface{} { return e.UserID },
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() Layout {
	layout, err := ParseLayout(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("export: invalid default layout: %v", err))
	}
	return layout
}

// LoadLayout reads a layout file; an empty path selects the default layout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates a YAML layout. Unknown keys are rejected.
func ParseLayout(data []byte) (Layout, error) {
	var layout Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if err := layout.validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func (l Layout) validate() error {
	if l.Sheet == "" {
		return errors.New("layout: sheet name is required")
	}
	if len(l.Columns) == 0 {
		return errors.New("layout: at least one column is required")
	}
	for i, col := range l.Columns {
		if _, ok := fieldValues[col.Field]; !ok {
			return fmt.Errorf("layout: column %d has unknown field %q", i+1, col.Field)
		}
	}
	return nil
}
