package repository

import (
	"context"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/logger"
)

// indexedEmployeeRepository mirrors successful writes into a search index.
// Index failures are logged and never fail the write.
type indexedEmployeeRepository struct {
	domain.EmployeeRepository
	index domain.EmployeeIndex
}

// NewIndexedEmployeeRepository decorates repo so that saves and deletes are
// propagated to index.
func NewIndexedEmployeeRepository(repo domain.EmployeeRepository, index domain.EmployeeIndex) domain.EmployeeRepository {
	return &indexedEmployeeRepository{EmployeeRepository: repo, index: index}
}

func (r *indexedEmployeeRepository) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	saved, err := r.EmployeeRepository.Save(ctx, e)
	if err != nil {
		return saved, err
	}
	if err := r.index.Index(ctx, saved); err != nil {
		logger.WarnLog(ctx, "search index update failed for employee %d: %v", saved.ID, err)
	}
	return saved, nil
}

func (r *indexedEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.EmployeeRepository.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := r.index.Remove(ctx, id); err != nil {
		logger.WarnLog(ctx, "search index removal failed for employee %d: %v", id, err)
	}
	return nil
}
