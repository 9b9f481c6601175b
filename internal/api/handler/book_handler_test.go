package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pagewise/bookstore-api/internal/core/domain"
)

type stubBookService struct {
	listFn   func(ctx context.Context) ([]domain.Book, error)
	getFn    func(ctx context.Context, id int64) (*domain.Book, error)
	createFn func(ctx context.Context, book *domain.Book) error
	updateFn func(ctx context.Context, id int64, book domain.Book) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubBookService) List(ctx context.Context) ([]domain.Book, error) {
	return s.listFn(ctx)
}
func (s *stubBookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	return s.getFn(ctx, id)
}
func (s *stubBookService) Create(ctx context.Context, book *domain.Book) error {
	return s.createFn(ctx, book)
}
func (s *stubBookService) Update(ctx context.Context, id int64, book domain.Book) error {
	return s.updateFn(ctx, id, book)
}
func (s *stubBookService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestBookHandler_Get(t *testing.T) {
	h := NewBookHandler(&stubBookService{
		getFn: func(_ context.Context, id int64) (*domain.Book, error) {
			return &domain.Book{ID: id, Title: "Kindred", AuthorID: 2, ISBN: "9780807083697", Price: 12.5}, nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodGet, "/api/books/8", "", map[string]string{"id": "8"})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Kindred" || resp["author_id"] != float64(2) {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestBookHandler_Create_UnknownAuthor(t *testing.T) {
	h := NewBookHandler(&stubBookService{
		createFn: func(_ context.Context, book *domain.Book) error {
			return fmt.Errorf("%w: author %d does not exist", domain.ErrInvalidInput, book.AuthorID)
		},
	})

	c, rec := newCatalogContext(t, http.MethodPost, "/api/books",
		`{"title":"Orphan","author_id":42,"isbn":"123","price":1}`, nil)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookHandler_Create_MissingFields(t *testing.T) {
	h := NewBookHandler(&stubBookService{
		createFn: func(_ context.Context, _ *domain.Book) error {
			t.Fatalf("service must not be called")
			return nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodPost, "/api/books", `{"title":"No Author"}`, nil)
	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookHandler_Update_NotFound(t *testing.T) {
	h := NewBookHandler(&stubBookService{
		updateFn: func(_ context.Context, id int64, book domain.Book) error {
			return domain.ErrNotFound
		},
	})

	c, rec := newCatalogContext(t, http.MethodPut, "/api/books/99",
		`{"id":99,"title":"Ghost","author_id":1,"isbn":"123","price":1}`, map[string]string{"id": "99"})
	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookHandler_Delete(t *testing.T) {
	h := NewBookHandler(&stubBookService{
		deleteFn: func(_ context.Context, id int64) error {
			if id != 8 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	})

	c, rec := newCatalogContext(t, http.MethodDelete, "/api/books/8", "", map[string]string{"id": "8"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
