package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pagewise/bookstore-api/internal/core/domain"
)

type stubAuthorService struct {
	listFn   func(ctx context.Context) ([]domain.Author, error)
	getFn    func(ctx context.Context, id int64) (*domain.Author, error)
	createFn func(ctx context.Context, author *domain.Author) error
	updateFn func(ctx context.Context, id int64, author domain.Author) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubAuthorService) List(ctx context.Context) ([]domain.Author, error) {
	return s.listFn(ctx)
}
func (s *stubAuthorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	return s.getFn(ctx, id)
}
func (s *stubAuthorService) Create(ctx context.Context, author *domain.Author) error {
	return s.createFn(ctx, author)
}
func (s *stubAuthorService) Update(ctx context.Context, id int64, author domain.Author) error {
	return s.updateFn(ctx, id, author)
}
func (s *stubAuthorService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newCatalogContext(t *testing.T, method, path, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	return c, rec
}

func TestAuthorHandler_List(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		listFn: func(_ context.Context) ([]domain.Author, error) {
			return []domain.Author{{ID: 1, Firstname: "Ursula", Lastname: "Le Guin"}}, nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodGet, "/api/authors", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["firstname"] != "Ursula" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAuthorHandler_Get_NotFound(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		getFn: func(_ context.Context, id int64) (*domain.Author, error) {
			return nil, domain.ErrNotFound
		},
	})

	c, rec := newCatalogContext(t, http.MethodGet, "/api/authors/42", "", map[string]string{"id": "42"})
	_ = h.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthorHandler_Get_InvalidID(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		getFn: func(_ context.Context, id int64) (*domain.Author, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodGet, "/api/authors/abc", "", map[string]string{"id": "abc"})
	_ = h.Get(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthorHandler_Create(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		createFn: func(_ context.Context, author *domain.Author) error {
			author.ID = 5
			return nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodPost, "/api/authors",
		`{"firstname":"Octavia","lastname":"Butler"}`, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(5) {
		t.Fatalf("expected assigned id in response, got %v", resp)
	}
}

func TestAuthorHandler_Create_IncompleteData(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		createFn: func(_ context.Context, _ *domain.Author) error {
			t.Fatalf("service must not be called")
			return nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodPost, "/api/authors", `{"firstname":"Solo"}`, nil)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "lastname") {
		t.Fatalf("expected violated constraint in response, got %s", rec.Body.String())
	}
}

func TestAuthorHandler_Update(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		updateFn: func(_ context.Context, id int64, author domain.Author) error {
			if id != 3 || author.ID != 3 {
				t.Fatalf("unexpected ids: %d %d", id, author.ID)
			}
			return nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodPut, "/api/authors/3",
		`{"id":3,"firstname":"Iain","lastname":"Banks"}`, map[string]string{"id": "3"})
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthorHandler_Update_IDMismatch(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		updateFn: func(_ context.Context, id int64, author domain.Author) error {
			return domain.ErrIDMismatch
		},
	})

	c, rec := newCatalogContext(t, http.MethodPut, "/api/authors/3",
		`{"id":4,"firstname":"Iain","lastname":"Banks"}`, map[string]string{"id": "3"})
	_ = h.Update(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthorHandler_Update_NotFound(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		updateFn: func(_ context.Context, id int64, author domain.Author) error {
			return domain.ErrNotFound
		},
	})

	c, rec := newCatalogContext(t, http.MethodPut, "/api/authors/99",
		`{"id":99,"firstname":"No","lastname":"Body"}`, map[string]string{"id": "99"})
	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthorHandler_Delete(t *testing.T) {
	deleted := false
	h := NewAuthorHandler(&stubAuthorService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = true
			return nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodDelete, "/api/authors/3", "", map[string]string{"id": "3"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !deleted || rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with delete, got %d", rec.Code)
	}
}

func TestAuthorHandler_Delete_NotFound(t *testing.T) {
	h := NewAuthorHandler(&stubAuthorService{
		deleteFn: func(_ context.Context, id int64) error {
			return domain.ErrNotFound
		},
	})

	c, rec := newCatalogContext(t, http.MethodDelete, "/api/authors/99", "", map[string]string{"id": "99"})
	_ = h.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
