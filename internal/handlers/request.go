package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// decodeBody decodes a JSON body. An empty or null body is an empty
// request, anything that is not JSON is malformed.
func decodeBody[T any](r *http.Request) (*T, error) {
	var req *T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, services.ErrEmptyRequest
		}
		return nil, services.ErrMalformedRequest
	}
	if req == nil {
		return nil, services.ErrEmptyRequest
	}
	return req, nil
}

// queryInt64 reads an integer query parameter, falling back to def when absent.
func queryInt64(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, services.ErrMalformedRequest
	}
	return v, nil
}

// requiredQueryInt64 reads an integer query parameter that must be present.
func requiredQueryInt64(r *http.Request, name string) (int64, error) {
	if r.URL.Query().Get(name) == "" {
		return 0, services.ErrEmptyRequest
	}
	return queryInt64(r, name, 0)
}

func parsePage(r *http.Request) (models.Page, error) {
	number, err := queryInt64(r, "page", 0)
	if err != nil {
		return models.Page{}, err
	}
	size, err := queryInt64(r, "size", defaultPageSize)
	if err != nil {
		return models.Page{}, err
	}

	switch {
	case size <= 0:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}
	if number < 0 {
		number = 0
	}
	return models.Page{Number: int(number), Size: int(size)}, nil
}
