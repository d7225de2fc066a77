package visits

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"petclinic-customers/internal/platform/httpclient"
	ports "petclinic-customers/internal/ports/visits"
)

var (
	ErrVisitsNotConfigured = errors.New("visits client not configured")
	ErrVisitsUpstream      = errors.New("visits upstream error")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client consulta al visits-service. Implementa ports/visits.Fetcher.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewClientWithHTTP permite inyectar un httpclient ya armado (tests).
func NewClientWithHTTP(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

type visitsResponse struct {
	Items []ports.Visit `json:"items"`
}

// VisitsForPets llama a GET /pets/visits?petId=1,2,3.
func (c *Client) VisitsForPets(ctx context.Context, petIDs []int) ([]ports.Visit, error) {
	if !c.IsConfigured() {
		return nil, ErrVisitsNotConfigured
	}
	if len(petIDs) == 0 {
		return []ports.Visit{}, nil
	}

	ids := make([]string, 0, len(petIDs))
	for _, id := range petIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	q := url.Values{}
	q.Set("petId", strings.Join(ids, ","))

	var out visitsResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets/visits?"+q.Encode(), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVisitsUpstream, err)
	}
	if out.Items == nil {
		out.Items = []ports.Visit{}
	}
	return out.Items, nil
}
