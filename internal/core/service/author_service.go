package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

// AuthorService applies catalog rules on top of the generic author repository.
type AuthorService struct {
	repo ports.Repository[domain.Author]
	log  zerolog.Logger
}

func NewAuthorService(repo ports.Repository[domain.Author], log zerolog.Logger) *AuthorService {
	return &AuthorService{repo: repo, log: log}
}

func (s *AuthorService) List(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (s *AuthorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: author id must be positive", domain.ErrInvalidInput)
	}
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, domain.ErrNotFound
	}
	return author, nil
}

func (s *AuthorService) Create(ctx context.Context, author *domain.Author) error {
	if strings.TrimSpace(author.Firstname) == "" || strings.TrimSpace(author.Lastname) == "" {
		return fmt.Errorf("%w: firstname and lastname are required", domain.ErrInvalidInput)
	}

	ok, err := s.repo.Create(ctx, author)
	if err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	if !ok {
		return fmt.Errorf("create author: persistence rejected the record")
	}

	s.log.Info().Int64("author_id", author.ID).Msg("author created")
	return nil
}

// Update replaces an existing author. The path id must match the payload id
// and the record must already exist; the repository does not upsert.
func (s *AuthorService) Update(ctx context.Context, id int64, author domain.Author) error {
	if id < 1 || id != author.ID {
		return domain.ErrIDMismatch
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	ok, err := s.repo.Update(ctx, author)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if !ok {
		return fmt.Errorf("update author: persistence rejected the record")
	}

	s.log.Info().Int64("author_id", id).Msg("author updated")
	return nil
}

// Delete resolves the record first and hands the full record to the
// repository, per the repository contract.
func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: author id must be positive", domain.ErrInvalidInput)
	}

	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if author == nil {
		return domain.ErrNotFound
	}

	ok, err := s.repo.Delete(ctx, *author)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.log.Info().Int64("author_id", id).Msg("author deleted")
	return nil
}
