package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/locvowork/employee_service/internal/domain"
)

// DepartmentClient resolves department ids against the department service
// over HTTP. Every call is bounded by the client timeout and by ctx.
type DepartmentClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDepartmentClient creates a client for the service rooted at baseURL.
func NewDepartmentClient(baseURL string, timeout time.Duration) *DepartmentClient {
	return &DepartmentClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve fetches GET {baseURL}/departments/{id}. A 404 wraps
// domain.ErrDepartmentNotFound; transport failures, timeouts, other statuses
// and undecodable bodies wrap domain.ErrDepartmentUnavailable.
func (c *DepartmentClient) Resolve(ctx context.Context, departmentID int64) (*domain.DepartmentInfo, error) {
	endpoint := fmt.Sprintf("%s/departments/%d", c.baseURL, departmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrDepartmentUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDepartmentUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: id %d", domain.ErrDepartmentNotFound, departmentID)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrDepartmentUnavailable, resp.StatusCode)
	}

	var info domain.DepartmentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decode department %d: %w", domain.ErrDepartmentUnavailable, departmentID, err)
	}
	if info.ID == 0 {
		info.ID = departmentID
	}
	return &info, nil
}
