package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithBaseURL_Validates(t *testing.T) {
	c, err := NewWithBaseURL("http://visits-service:8082/", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "http://visits-service:8082", c.BaseURL)

	c, err = NewWithBaseURL("  ", 0)
	require.NoError(t, err)
	assert.Empty(t, c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)

	_, err = NewWithBaseURL("ftp://visits", time.Second)
	assert.Error(t, err)

	_, err = NewWithBaseURL("not a url", time.Second)
	assert.Error(t, err)
}

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/owners", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "customers-service", r.Header.Get("User-Agent"))
		assert.Equal(t, "r-1", r.Header.Get("X-Request-Id"))

		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)
	c.Headers = map[string]string{"User-Agent": "customers-service"}

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "owners", map[string]string{"X-Request-Id": "r-1"},
		map[string]string{"name": "George"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "George", out["echo"])
}

func TestDoJSON_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/missing", nil, nil, nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "nope", httpErr.Body)
}

func TestDoJSON_RelativePathWithoutBase(t *testing.T) {
	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/pets/visits", nil, nil, nil)
	assert.EqualError(t, err, "httpclient: relative path requires BaseURL")
}
