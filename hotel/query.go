package hotel

import (
	"context"
	"encoding/json"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

// SortOrder is asc or desc.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Paging struct {
	Page     int
	PageSize int
}

type Sort struct {
	OrderBy string    `json:"orderBy"`
	Order   SortOrder `json:"order"`
}

// ListQuery is the common shape of list endpoints. The API expects filters and sort
// as JSON documents inside the query string.
type ListQuery struct {
	Paging
	Search  string
	Filters map[string]any
	Sort    []Sort
}

func (q ListQuery) params() (map[string]any, error) {
	params := map[string]any{}
	if q.Page > 0 {
		params["page"] = q.Page
	}
	if q.PageSize > 0 {
		params["pageSize"] = q.PageSize
	}

	filters := make(map[string]any, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	if q.Search != "" {
		filters["search"] = q.Search
	}
	if len(filters) > 0 {
		b, err := json.Marshal(filters)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidRequest, "encode filters: %v", err)
		}
		params["filters"] = string(b)
	}

	if len(q.Sort) > 0 {
		sorts := make([]Sort, len(q.Sort))
		for i, s := range q.Sort {
			if s.Order == "" {
				s.Order = SortAsc
			}
			sorts[i] = s
		}
		b, err := json.Marshal(sorts)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidRequest, "encode sort: %v", err)
		}
		params["sort"] = string(b)
	}
	return params, nil
}

type PageMeta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPreviousPage"`
}

// Page is a paginated list result.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func list[T any](ctx context.Context, r Requester, path string, q ListQuery, public bool) (*Page[T], error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	var page Page[T]
	if public {
		err = getPublic(ctx, r, path, params, &page)
	} else {
		err = get(ctx, r, path, params, &page)
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}
