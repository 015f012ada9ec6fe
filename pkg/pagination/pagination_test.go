package pagination_test

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/storefront/pkg/pagination"
	"github.com/JaimeStill/storefront/pkg/query"
)

var testConfig = pagination.Config{DefaultPageSize: 12, MaxPageSize: 50}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 12},
		{"negative page", pagination.PageRequest{Page: -3, PageSize: 5}, 1, 5},
		{"clamped size", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 50},
		{"overflowing page", pagination.PageRequest{Page: math.MaxInt, PageSize: 12}, math.MaxInt / 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(testConfig)
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 12}
	if got := req.Offset(); got != 24 {
		t.Errorf("Offset() = %d, want 24", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "5")
	values.Set("search", "chair")
	values.Set("sort", "-price,name")

	req := pagination.PageRequestFromQuery(values, testConfig)

	if req.Page != 2 || req.PageSize != 5 {
		t.Errorf("page = %d/%d, want 2/5", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "chair" {
		t.Errorf("Search = %v, want chair", req.Search)
	}

	wantSort := []query.SortField{
		{Field: "price", Descending: true},
		{Field: "name"},
	}
	if diff := cmp.Diff(wantSort, req.Sort); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestPageRequestFromQuery_Empty(t *testing.T) {
	req := pagination.PageRequestFromQuery(url.Values{}, testConfig)

	if req.Page != 1 || req.PageSize != 12 {
		t.Errorf("page = %d/%d, want 1/12", req.Page, req.PageSize)
	}
	if req.Search != nil {
		t.Errorf("Search = %v, want nil", *req.Search)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		data           []string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"empty", nil, 0, 12, 1},
		{"exact", []string{"a"}, 24, 12, 2},
		{"remainder", []string{"a"}, 25, 12, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult(tt.data, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Data == nil {
				t.Error("Data should never be nil")
			}
		})
	}
}

func TestPageRequest_NormalizeSearch(t *testing.T) {
	blank, padded := "   ", "  gamer "

	req := pagination.PageRequest{Search: &blank}
	req.Normalize(testConfig)
	if req.Search != nil {
		t.Errorf("Search = %q, want nil for blank input", *req.Search)
	}

	req = pagination.PageRequest{Search: &padded}
	req.Normalize(testConfig)
	if req.Search == nil || *req.Search != "gamer" {
		t.Errorf("Search = %v, want %q", req.Search, "gamer")
	}
}

func TestNewPageResult_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		wantFirst bool
		wantLast  bool
	}{
		{"first page", 1, true, false},
		{"middle page", 2, false, false},
		{"last page", 3, false, true},
		{"past the end", 9, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, 25, tt.page, 12)
			if result.First != tt.wantFirst {
				t.Errorf("First = %v, want %v", result.First, tt.wantFirst)
			}
			if result.Last != tt.wantLast {
				t.Errorf("Last = %v, want %v", result.Last, tt.wantLast)
			}
		})
	}
}

func TestPageRequestFromQuery_HugePage(t *testing.T) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(math.MaxInt))

	req := pagination.PageRequestFromQuery(values, testConfig)

	if off := req.Offset(); off < 0 {
		t.Fatalf("Offset() = %d, want non-negative", off)
	}

	sql, _ := query.NewBuilder(query.NewProjectionMap("public", "products", "p").Project("id", "ID")).
		BuildPage(req.Page, req.PageSize)
	if strings.Contains(sql, "OFFSET -") {
		t.Errorf("BuildPage() = %q, want non-negative offset", sql)
	}

	result := pagination.NewPageResult([]string{}, 25, req.Page, req.PageSize)
	if !result.Last || len(result.Data) != 0 {
		t.Errorf("result = %+v, want empty last page", result)
	}
}
