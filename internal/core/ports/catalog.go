package ports

import (
	"context"

	"github.com/pagewise/bookstore-api/internal/core/domain"
)

// AuthorService defines use-case operations on catalog authors.
type AuthorService interface {
	List(ctx context.Context) ([]domain.Author, error)
	Get(ctx context.Context, id int64) (*domain.Author, error)
	Create(ctx context.Context, author *domain.Author) error
	Update(ctx context.Context, id int64, author domain.Author) error
	Delete(ctx context.Context, id int64) error
}

// BookService defines use-case operations on catalog books.
type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int64) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) error
	Update(ctx context.Context, id int64, book domain.Book) error
	Delete(ctx context.Context, id int64) error
}
