package categories_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/JaimeStill/storefront/internal/categories"
	"github.com/JaimeStill/storefront/pkg/logging"
	"github.com/JaimeStill/storefront/pkg/openapi"
	"github.com/JaimeStill/storefront/pkg/pagination"
	"github.com/JaimeStill/storefront/pkg/routes"
)

type fakeSystem struct {
	items    map[uuid.UUID]categories.Category
	inUse    map[uuid.UUID]bool
	lastPage pagination.PageRequest
	lastName *string
}

func newFakeSystem(names ...string) *fakeSystem {
	f := &fakeSystem{
		items: make(map[uuid.UUID]categories.Category),
		inUse: make(map[uuid.UUID]bool),
	}
	for _, n := range names {
		id := uuid.New()
		f.items[id] = categories.Category{ID: id, Name: n}
	}
	return f
}

func (f *fakeSystem) List(_ context.Context, page pagination.PageRequest, filters categories.Filters) (*pagination.PageResult[categories.Category], error) {
	f.lastPage = page
	f.lastName = filters.Name
	data := make([]categories.Category, 0, len(f.items))
	for _, c := range f.items {
		data = append(data, c)
	}
	size := page.PageSize
	if size < 1 {
		size = 12
	}
	result := pagination.NewPageResult(data, len(data), max(page.Page, 1), size)
	return &result, nil
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID) (*categories.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, categories.ErrNotFound
	}
	return &c, nil
}

func (f *fakeSystem) Create(_ context.Context, cmd categories.CreateCommand) (*categories.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	for _, c := range f.items {
		if c.Name == cmd.Name {
			return nil, categories.ErrDuplicate
		}
	}
	c := categories.Category{ID: uuid.New(), Name: cmd.Name, CreatedAt: time.Now()}
	f.items[c.ID] = c
	return &c, nil
}

func (f *fakeSystem) Update(_ context.Context, id uuid.UUID, cmd categories.UpdateCommand) (*categories.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	c, ok := f.items[id]
	if !ok {
		return nil, categories.ErrNotFound
	}
	c.Name = cmd.Name
	f.items[id] = c
	return &c, nil
}

func (f *fakeSystem) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return categories.ErrNotFound
	}
	if f.inUse[id] {
		return categories.ErrInUse
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSystem) anyID() uuid.UUID {
	for id := range f.items {
		return id
	}
	return uuid.Nil
}

func newMux(sys categories.System) *http.ServeMux {
	h := categories.NewHandler(sys, logging.Discard(), pagination.Config{DefaultPageSize: 12, MaxPageSize: 100})
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "1"), h.Routes())
	return mux
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandler_List(t *testing.T) {
	sys := newFakeSystem("Livros", "Eletrônicos", "Computadores")
	rec := serve(newMux(sys), "GET", "/categories?page=1&page_size=2&name=liv", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result pagination.PageResult[categories.Category]
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want %d", result.Total, 3)
	}
	if sys.lastPage.PageSize != 2 {
		t.Errorf("PageSize = %d, want %d", sys.lastPage.PageSize, 2)
	}
	if sys.lastName == nil || *sys.lastName != "liv" {
		t.Errorf("name filter = %v, want %q", sys.lastName, "liv")
	}
}

func TestHandler_Find(t *testing.T) {
	sys := newFakeSystem("Livros")
	id := sys.anyID()
	mux := newMux(sys)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"existing", "/categories/" + id.String(), http.StatusOK},
		{"missing", "/categories/" + uuid.NewString(), http.StatusNotFound},
		{"malformed id", "/categories/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, "GET", tt.path, "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}

	rec := serve(mux, "GET", "/categories/"+id.String(), "")
	var got categories.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sys.items[id], got); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_Search(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		wantPage int
	}{
		{"empty body", "", http.StatusOK, 0},
		{"page body", `{"page": 2, "page_size": 5}`, http.StatusOK, 2},
		{"malformed body", `{"page":`, http.StatusBadRequest, 0},
		{"unknown field", `{"pages": 2}`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newFakeSystem("Livros")
			rec := serve(newMux(sys), "POST", "/categories/search", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status == http.StatusOK && sys.lastPage.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", sys.lastPage.Page, tt.wantPage)
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"created", `{"name": "Jogos"}`, http.StatusCreated},
		{"duplicate", `{"name": "Livros"}`, http.StatusConflict},
		{"blank name", `{"name": "  "}`, http.StatusUnprocessableEntity},
		{"empty body", "", http.StatusBadRequest},
		{"trailing data", `{"name": "A"} {}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newMux(newFakeSystem("Livros")), "POST", "/categories", tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestHandler_Update(t *testing.T) {
	sys := newFakeSystem("Livros")
	id := sys.anyID()
	mux := newMux(sys)

	rec := serve(mux, "PUT", "/categories/"+id.String(), `{"name": "Livros e Revistas"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := sys.items[id].Name; got != "Livros e Revistas" {
		t.Errorf("Name = %q, want %q", got, "Livros e Revistas")
	}

	rec = serve(mux, "PUT", "/categories/"+uuid.NewString(), `{"name": "Outros"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandler_Delete(t *testing.T) {
	sys := newFakeSystem("Livros", "Computadores")
	mux := newMux(sys)

	var free, used uuid.UUID
	for id, c := range sys.items {
		if c.Name == "Livros" {
			free = id
		} else {
			used = id
		}
	}
	sys.inUse[used] = true

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"deleted", free.String(), http.StatusNoContent},
		{"already deleted", free.String(), http.StatusNotFound},
		{"referenced by products", used.String(), http.StatusConflict},
		{"malformed id", "42", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, "DELETE", "/categories/"+tt.id, "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestHandler_RoutesDocumented(t *testing.T) {
	h := categories.NewHandler(newFakeSystem(), logging.Discard(), pagination.Config{DefaultPageSize: 12, MaxPageSize: 100})
	group := h.Routes()

	for _, r := range group.Routes {
		if r.OpenAPI == nil {
			t.Errorf("%s %s has no OpenAPI operation", r.Method, r.Pattern)
		}
	}
	if _, ok := group.Schemas["Category"]; !ok {
		t.Error("Category schema not registered")
	}
}
