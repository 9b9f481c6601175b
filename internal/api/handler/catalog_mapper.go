package handler

import "github.com/pagewise/bookstore-api/internal/core/domain"

// Mapping between transport DTOs and domain records. Kept separate from the
// handlers so the JSON contract is not coupled to internal model changes.

func toAuthorResponse(a domain.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
		Bio:       a.Bio,
	}
}

func toAuthorResponses(authors []domain.Author) []authorResponse {
	out := make([]authorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorResponse(a))
	}
	return out
}

func fromAuthorCreate(req authorCreateRequest) domain.Author {
	return domain.Author{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Bio:       req.Bio,
	}
}

func fromAuthorUpdate(req authorUpdateRequest) domain.Author {
	return domain.Author{
		ID:        req.ID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Bio:       req.Bio,
	}
}

func toBookResponse(b domain.Book) bookResponse {
	return bookResponse{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
		ISBN:     b.ISBN,
		Year:     b.Year,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
	}
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

func fromBookCreate(req bookCreateRequest) domain.Book {
	return domain.Book{
		Title:    req.Title,
		AuthorID: req.AuthorID,
		ISBN:     req.ISBN,
		Year:     req.Year,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    req.Price,
	}
}

func fromBookUpdate(req bookUpdateRequest) domain.Book {
	return domain.Book{
		ID:       req.ID,
		Title:    req.Title,
		AuthorID: req.AuthorID,
		ISBN:     req.ISBN,
		Year:     req.Year,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    req.Price,
	}
}
