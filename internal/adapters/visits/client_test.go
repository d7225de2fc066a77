package visits

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic-customers/internal/platform/httpclient"
)

func TestClient_VisitsForPets(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pets/visits", r.URL.Path)
		gotQuery = r.URL.Query().Get("petId")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":1,"petId":7,"date":"2013-01-01","description":"rabies shot"}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	items, err := c.VisitsForPets(context.Background(), []int{7, 8})
	require.NoError(t, err)
	assert.Equal(t, "7,8", gotQuery)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].PetID)
	assert.Equal(t, "rabies shot", items[0].Description)
	assert.Equal(t, "2013-01-01", items[0].Date.String())
}

func TestClient_EmptyIDs_SkipsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected upstream call %s", r.URL)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	items, err := c.VisitsForPets(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithHTTP(mustBaseURLClient(t, srv.URL))

	_, err := c.VisitsForPets(context.Background(), []int{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVisitsUpstream))

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.False(t, c.IsConfigured())

	_, err = c.VisitsForPets(context.Background(), []int{1})
	assert.ErrorIs(t, err, ErrVisitsNotConfigured)
}

func mustBaseURLClient(t *testing.T, base string) *httpclient.Client {
	t.Helper()
	hc, err := httpclient.NewWithBaseURL(base, time.Second)
	require.NoError(t, err)
	return hc
}
