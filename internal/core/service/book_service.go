package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

// BookService applies catalog rules on top of the generic book repository.
// Books reference authors, so mutations check the referenced author exists.
type BookService struct {
	books   ports.Repository[domain.Book]
	authors ports.Repository[domain.Author]
	log     zerolog.Logger
}

func NewBookService(
	books ports.Repository[domain.Book],
	authors ports.Repository[domain.Author],
	log zerolog.Logger,
) *BookService {
	return &BookService{books: books, authors: authors, log: log}
}

func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: book id must be positive", domain.ErrInvalidInput)
	}
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	return book, nil
}

func (s *BookService) Create(ctx context.Context, book *domain.Book) error {
	if err := s.validate(ctx, book); err != nil {
		return err
	}

	ok, err := s.books.Create(ctx, book)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	if !ok {
		return fmt.Errorf("create book: persistence rejected the record")
	}

	s.log.Info().Int64("book_id", book.ID).Int64("author_id", book.AuthorID).Msg("book created")
	return nil
}

func (s *BookService) Update(ctx context.Context, id int64, book domain.Book) error {
	if id < 1 || id != book.ID {
		return domain.ErrIDMismatch
	}
	if err := s.validate(ctx, &book); err != nil {
		return err
	}

	exists, err := s.books.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	ok, err := s.books.Update(ctx, book)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if !ok {
		return fmt.Errorf("update book: persistence rejected the record")
	}

	s.log.Info().Int64("book_id", id).Msg("book updated")
	return nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: book id must be positive", domain.ErrInvalidInput)
	}

	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if book == nil {
		return domain.ErrNotFound
	}

	ok, err := s.books.Delete(ctx, *book)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.log.Info().Int64("book_id", id).Msg("book deleted")
	return nil
}

func (s *BookService) validate(ctx context.Context, book *domain.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if book.AuthorID < 1 {
		return fmt.Errorf("%w: author id is required", domain.ErrInvalidInput)
	}

	exists, err := s.authors.Exists(ctx, book.AuthorID)
	if err != nil {
		return fmt.Errorf("validate book: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: author %d does not exist", domain.ErrInvalidInput, book.AuthorID)
	}
	return nil
}
