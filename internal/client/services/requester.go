// Package services holds one thin wrapper per backend resource. Each method
// maps to exactly one REST endpoint and goes through the shared
// authenticated client, so token refresh is never handled here.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sainaif/animalsys/internal/client/client"
)

// Requester is the part of *client.Client the services use.
type Requester interface {
	Do(ctx context.Context, method, path string, opts *client.RequestOptions) (*client.Response, error)
}

// ListParams are the query parameters accepted by list endpoints. Zero
// values are not sent.
type ListParams struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
	Search    string
	Status    string

	// Filters holds resource-specific parameters such as species or
	// animal_id.
	Filters map[string]string
}

func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	setIf(v, "sort_by", p.SortBy)
	setIf(v, "sort_order", p.SortOrder)
	setIf(v, "search", p.Search)
	setIf(v, "status", p.Status)
	for k, val := range p.Filters {
		setIf(v, k, val)
	}
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// resourcePath joins path segments, escaping each id-like segment.
func resourcePath(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func fetch[T any](ctx context.Context, r Requester, path string, query url.Values) (*T, error) {
	return call[T](ctx, r, http.MethodGet, path, &client.RequestOptions{Query: query})
}

func send[T any](ctx context.Context, r Requester, method, path string, body any) (*T, error) {
	return call[T](ctx, r, method, path, &client.RequestOptions{Body: body})
}

func call[T any](ctx context.Context, r Requester, method, path string, opts *client.RequestOptions) (*T, error) {
	resp, err := r.Do(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}
	var out T
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return &out, nil
}

// exec issues a request whose response body is not needed.
func exec(ctx context.Context, r Requester, method, path string, body any) error {
	_, err := r.Do(ctx, method, path, &client.RequestOptions{Body: body})
	return err
}

func fetchSlice[T any](ctx context.Context, r Requester, path string, query url.Values) ([]T, error) {
	out, err := fetch[[]T](ctx, r, path, query)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func fetchStats(ctx context.Context, r Requester, path string) (map[string]any, error) {
	out, err := fetch[map[string]any](ctx, r, path, nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

const dateLayout = "2006-01-02"

// dateRange encodes start_date and end_date; zero times are omitted.
func dateRange(start, end time.Time) url.Values {
	v := url.Values{}
	if !start.IsZero() {
		v.Set("start_date", start.Format(dateLayout))
	}
	if !end.IsZero() {
		v.Set("end_date", end.Format(dateLayout))
	}
	return v
}

func single(key, value string) url.Values {
	v := url.Values{}
	setIf(v, key, value)
	return v
}
