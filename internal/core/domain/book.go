package domain

// Book is a catalog book record referencing its author by id.
type Book struct {
	ID       int64   `json:"id" bson:"_id,omitempty"`
	Title    string  `json:"title" bson:"title"`
	AuthorID int64   `json:"author_id" bson:"author_id"`
	ISBN     string  `json:"isbn" bson:"isbn"`
	Year     int     `json:"year,omitempty" bson:"year,omitempty"`
	Summary  string  `json:"summary,omitempty" bson:"summary,omitempty"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
	Price    float64 `json:"price" bson:"price"`
}

func (b Book) EntityID() int64 { return b.ID }
