package database

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/logger"
)

// DataSeeder fills the employee store with sample records and keeps the
// search index aligned with it.
type DataSeeder struct {
	repo  domain.EmployeeRepository
	index *ElasticSearchClient
}

// NewDataSeeder creates a seeder. index may be nil when search is disabled.
func NewDataSeeder(repo domain.EmployeeRepository, index *ElasticSearchClient) *DataSeeder {
	return &DataSeeder{repo: repo, index: index}
}

var (
	firstNames = []string{"John", "Jane", "Minh", "Khoa", "Alice", "Bob", "Linh", "Carlos", "Aiko", "Omar"}
	lastNames  = []string{"Doe", "Smith", "Nguyen", "Tran", "Garcia", "Sato", "Haddad", "Brown", "Le", "Pham"}
	roles      = []string{"Engineer", "Senior Engineer", "Manager", "Analyst", "Designer", "Recruiter", "Accountant"}
)

// SeedData inserts count random employees. Departments 1-5 and users are
// assigned at random; duplicates from earlier runs are skipped.
func (ds *DataSeeder) SeedData(ctx context.Context, count int) (int, error) {
	start := time.Now()
	created := 0

	for i := 1; i <= count; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		e := domain.Employee{
			Name:         first + " " + last,
			Role:         roles[rand.Intn(len(roles))],
			Email:        fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			DepartmentID: int64(rand.Intn(5) + 1),
			UserID:       int64(1000 + i),
		}

		if _, err := ds.repo.Save(ctx, e); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				continue
			}
			return created, fmt.Errorf("failed to insert employee %s: %w", e.Email, err)
		}
		created++
	}

	logger.InfoLog(ctx, "Seeded %d employees in %v", created, time.Since(start))
	return created, nil
}

// ClearData removes every employee.
func (ds *DataSeeder) ClearData(ctx context.Context) (int, error) {
	employees, err := ds.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	for _, e := range employees {
		if err := ds.repo.DeleteByID(ctx, e.ID); err != nil {
			return 0, fmt.Errorf("failed to delete employee %d: %w", e.ID, err)
		}
	}

	logger.InfoLog(ctx, "Cleared %d employees", len(employees))
	return len(employees), nil
}

// Reindex pushes every stored employee into the search index.
func (ds *DataSeeder) Reindex(ctx context.Context) (int, error) {
	if ds.index == nil {
		return 0, domain.ErrSearchUnavailable
	}

	employees, err := ds.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	if err := ds.index.BulkIndex(ctx, employees); err != nil {
		return 0, err
	}
	return len(employees), nil
}

// Presets
type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
)

// GetPresetCount returns the number of employees for a preset.
func GetPresetCount(preset SeedPreset) int {
	switch preset {
	case PresetSmall:
		return 10
	case PresetLarge:
		return 1000
	default:
		return 100
	}
}
