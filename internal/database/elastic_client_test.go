package database

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_service/internal/domain"
)

type fakeElastic struct {
	mu       sync.Mutex
	requests []string
	bodies   []string
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.bodies = append(f.bodies, string(body))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/":
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			io.WriteString(w, `{"version":{"number":"7.17.0"}}`)
		}
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/employees/_doc/"):
		io.WriteString(w, `{"_index":"employees","_id":"1","_version":1,"result":"created"}`)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"_index":"employees","_id":"9","result":"not_found"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		io.WriteString(w, `{"took":1,"hits":{"total":{"value":1,"relation":"eq"},"hits":[
			{"_index":"employees","_id":"3","_source":{"id":3,"name":"John Doe","role":"Engineer","email":"john@example.com","department_id":1,"user_id":0}}
		]}}`)
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		io.WriteString(w, `{"took":1,"errors":false,"items":[{"index":{"_index":"employees","_id":"1","status":201}}]}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (f *fakeElastic) seen(request string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == request {
			return true
		}
	}
	return false
}

func newTestElastic(t *testing.T) (*ElasticSearchClient, *fakeElastic) {
	t.Helper()
	fake := &fakeElastic{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	es, err := NewElasticSearchClient(srv.URL, "employees")
	require.NoError(t, err)
	t.Cleanup(es.Close)
	return es, fake
}

func TestElasticSearchClient_Index(t *testing.T) {
	es, fake := newTestElastic(t)

	err := es.Index(context.Background(), domain.Employee{ID: 1, Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	assert.True(t, fake.seen("PUT /employees/_doc/1"))
}

func TestElasticSearchClient_RemoveMissingIsNotAnError(t *testing.T) {
	es, fake := newTestElastic(t)

	assert.NoError(t, es.Remove(context.Background(), 9))
	assert.True(t, fake.seen("DELETE /employees/_doc/9"))
}

func TestElasticSearchClient_Search(t *testing.T) {
	es, _ := newTestElastic(t)

	results, err := es.Search(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, []domain.Employee{{ID: 3, Name: "John Doe", Role: "Engineer", Email: "john@example.com", DepartmentID: 1}}, results)
}

func TestElasticSearchClient_BulkIndex(t *testing.T) {
	es, fake := newTestElastic(t)

	require.NoError(t, es.BulkIndex(context.Background(), nil))
	assert.False(t, fake.seen("POST /_bulk"))

	require.NoError(t, es.BulkIndex(context.Background(), []domain.Employee{{ID: 1, Email: "a@example.com"}}))
	assert.True(t, fake.seen("POST /_bulk"))
}
