package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olivere/elastic/v7"

	"github.com/locvowork/employee_service/internal/domain"
)

// EmployeeDoc mirrors domain.Employee for ES storage.
type EmployeeDoc struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"department_id"`
	UserID       int64  `json:"user_id"`
}

func toDoc(e domain.Employee) EmployeeDoc {
	return EmployeeDoc{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		UserID:       e.UserID,
	}
}

func (d EmployeeDoc) toEmployee() domain.Employee {
	return domain.Employee{
		ID:           d.ID,
		Name:         d.Name,
		Role:         d.Role,
		Email:        d.Email,
		DepartmentID: d.DepartmentID,
		UserID:       d.UserID,
	}
}

// ElasticSearchClient wraps olivere/elastic client and implements domain.EmployeeIndex.
type ElasticSearchClient struct {
	client *elastic.Client
	index  string
}

// NewElasticSearchClient creates a new client for Elasticsearch 7.x.
func NewElasticSearchClient(url, index string) (*ElasticSearchClient, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false), // Essential when using Docker or cloud
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &ElasticSearchClient{client: client, index: index}, nil
}

// Index writes an employee document using its id as the document id.
func (es *ElasticSearchClient) Index(ctx context.Context, e domain.Employee) error {
	_, err := es.client.Index().
		Index(es.index).
		Id(strconv.FormatInt(e.ID, 10)).
		BodyJson(toDoc(e)).
		Refresh("true"). // Make changes immediately searchable
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index employee %d: %w", e.ID, err)
	}
	return nil
}

// Remove deletes an employee document; a missing document is not an error.
func (es *ElasticSearchClient) Remove(ctx context.Context, id int64) error {
	_, err := es.client.Delete().
		Index(es.index).
		Id(strconv.FormatInt(id, 10)).
		Refresh("true").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("failed to remove employee %d from index: %w", id, err)
	}
	return nil
}

// Search performs a full-text match on name, role and email.
func (es *ElasticSearchClient) Search(ctx context.Context, query string) ([]domain.Employee, error) {
	q := elastic.NewMultiMatchQuery(query, "name", "role", "email")

	searchResult, err := es.client.Search().
		Index(es.index).
		Query(q).
		Size(100).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	employees := make([]domain.Employee, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		var doc EmployeeDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode search hit %s: %w", hit.Id, err)
		}
		employees = append(employees, doc.toEmployee())
	}
	return employees, nil
}

// BulkIndex efficiently indexes multiple employees.
func (es *ElasticSearchClient) BulkIndex(ctx context.Context, employees []domain.Employee) error {
	bulkRequest := es.client.Bulk()

	for _, e := range employees {
		req := elastic.NewBulkIndexRequest().
			Index(es.index).
			Id(strconv.FormatInt(e.ID, 10)).
			Doc(toDoc(e))
		bulkRequest = bulkRequest.Add(req)
	}

	if bulkRequest.NumberOfActions() == 0 {
		return nil
	}

	bulkResponse, err := bulkRequest.Refresh("true").Do(ctx)
	if err != nil {
		return fmt.Errorf("bulk index failed: %w", err)
	}

	if bulkResponse.Errors {
		for _, item := range bulkResponse.Items {
			for _, op := range item {
				if op.Error != nil {
					return fmt.Errorf("bulk item failed: %s", op.Error.Reason)
				}
			}
		}
	}

	return nil
}

// Close stops background goroutines of the underlying client.
func (es *ElasticSearchClient) Close() {
	es.client.Stop()
}
