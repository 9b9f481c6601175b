package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

// AuthorHandler handles HTTP requests for author catalog operations.
type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /api/authors.
//
// @Summary      List all authors
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   authorResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponses(authors))
}

// Get handles GET /api/authors/:id.
//
// @Summary      Get an author by id
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Author id"
// @Success      200  {object}  authorResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid author id"})
	}

	author, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "author not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// Create handles POST /api/authors.
//
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      authorCreateRequest  true  "Author details"
// @Success      201   {object}  authorResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	author := fromAuthorCreate(req)
	if err := h.service.Create(c.Request().Context(), &author); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, toAuthorResponse(author))
}

// Update handles PUT /api/authors/:id.
//
// @Summary      Update an author
// @Tags         authors
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                  true  "Author id"
// @Param        body  body  authorUpdateRequest  true  "Author details"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid author id"})
	}

	var req authorUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), id, fromAuthorUpdate(req)); err != nil {
		switch {
		case errors.Is(err, domain.ErrIDMismatch), errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "author not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/authors/:id.
//
// @Summary      Delete an author
// @Tags         authors
// @Security     BearerAuth
// @Param        id  path  int  true  "Author id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid author id"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "author not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
