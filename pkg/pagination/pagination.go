package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/storefront/pkg/query"
)

// PageRequest selects one page of a listing, optionally narrowed by a free
// text search and ordered by sort fields.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps PageSize into [1, cfg.MaxPageSize], using
// cfg.DefaultPageSize when unset, and Page into [1, MaxPage()]. A blank
// search is dropped.
func (r *PageRequest) Normalize(cfg Config) {
	switch {
	case r.PageSize < 1:
		r.PageSize = cfg.DefaultPageSize
	case r.PageSize > cfg.MaxPageSize:
		r.PageSize = cfg.MaxPageSize
	}
	r.PageSize = max(r.PageSize, 1)

	r.Page = min(max(r.Page, 1), r.MaxPage())

	if r.Search != nil {
		s := strings.TrimSpace(*r.Search)
		if s == "" {
			r.Search = nil
		} else {
			r.Search = &s
		}
	}
}

// MaxPage is the highest page whose offset still fits in an int.
func (r *PageRequest) MaxPage() int {
	if r.PageSize < 1 {
		return math.MaxInt
	}
	return math.MaxInt / r.PageSize
}

// Offset is the number of rows before the requested page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, search and sort from a query
// string. sort is comma separated; a "-" prefix sorts descending.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	req := PageRequest{
		Page:     atoi(values.Get("page")),
		PageSize: atoi(values.Get("page_size")),
		Sort:     query.ParseSortFields(values.Get("sort")),
	}
	if values.Has("search") {
		s := values.Get("search")
		req.Search = &s
	}

	req.Normalize(cfg)
	return req
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// PageResult is one page of a listing. A page past the end has no data but
// still reports the totals.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	First      bool `json:"first"`
	Last       bool `json:"last"`
}

// NewPageResult builds a PageResult. TotalPages is at least 1 so an empty
// listing still has a first page.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 1
	if pageSize > 0 && total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		First:      page <= 1,
		Last:       page >= totalPages,
	}
}
