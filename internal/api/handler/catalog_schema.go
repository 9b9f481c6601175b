package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Author request / response types ---

type authorCreateRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"  validate:"required"`
	Bio       string `json:"bio"`
}

type authorUpdateRequest struct {
	ID        int64  `json:"id"        validate:"required,gt=0"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"  validate:"required"`
	Bio       string `json:"bio"`
}

type authorResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio,omitempty"`
}

// --- Book request / response types ---

type bookCreateRequest struct {
	Title    string  `json:"title"     validate:"required"`
	AuthorID int64   `json:"author_id" validate:"required,gt=0"`
	ISBN     string  `json:"isbn"      validate:"required"`
	Year     int     `json:"year"      validate:"omitempty,gte=0"`
	Summary  string  `json:"summary"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"     validate:"gte=0"`
}

type bookUpdateRequest struct {
	ID       int64   `json:"id"        validate:"required,gt=0"`
	Title    string  `json:"title"     validate:"required"`
	AuthorID int64   `json:"author_id" validate:"required,gt=0"`
	ISBN     string  `json:"isbn"      validate:"required"`
	Year     int     `json:"year"      validate:"omitempty,gte=0"`
	Summary  string  `json:"summary"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"     validate:"gte=0"`
}

type bookResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	AuthorID int64   `json:"author_id"`
	ISBN     string  `json:"isbn"`
	Year     int     `json:"year,omitempty"`
	Summary  string  `json:"summary,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
}
