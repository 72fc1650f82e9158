package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_service/internal/domain"
)

func newDepartmentServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve_Found(t *testing.T) {
	srv := newDepartmentServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departments/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Engineering","code":"ENG"}`))
	})

	c := NewDepartmentClient(srv.URL+"/", time.Second)
	info, err := c.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &domain.DepartmentInfo{ID: 7, Name: "Engineering", Code: "ENG"}, info)
}

func TestResolve_FillsMissingID(t *testing.T) {
	srv := newDepartmentServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Sales"}`))
	})

	info, err := NewDepartmentClient(srv.URL, time.Second).Resolve(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.ID)
}

func TestResolve_NotFound(t *testing.T) {
	srv := newDepartmentServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := NewDepartmentClient(srv.URL, time.Second).Resolve(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	assert.NotErrorIs(t, err, domain.ErrDepartmentUnavailable)
}

func TestResolve_ServerError(t *testing.T) {
	srv := newDepartmentServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewDepartmentClient(srv.URL, time.Second).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDepartmentUnavailable)
}

func TestResolve_MalformedBody(t *testing.T) {
	srv := newDepartmentServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := NewDepartmentClient(srv.URL, time.Second).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDepartmentUnavailable)
}

func TestResolve_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newDepartmentServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := NewDepartmentClient(srv.URL, 50*time.Millisecond).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDepartmentUnavailable)
}

func TestResolve_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewDepartmentClient(url, time.Second).Resolve(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDepartmentUnavailable)
}
