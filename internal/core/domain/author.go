package domain

// Author is a catalog author record.
type Author struct {
	ID        int64  `json:"id" bson:"_id,omitempty"`
	Firstname string `json:"firstname" bson:"firstname"`
	Lastname  string `json:"lastname" bson:"lastname"`
	Bio       string `json:"bio,omitempty" bson:"bio,omitempty"`
}

func (a Author) EntityID() int64 { return a.ID }
