package ports

import "context"

// Entity is any persisted catalog record with a stable integer identifier.
type Entity interface {
	EntityID() int64
}

// Repository is the uniform CRUD contract shared by every entity kind. One
// concrete backing implementation is instantiated per entity at composition
// time.
//
// Expected outcomes are reported without errors: FindByID returns (nil, nil)
// when no record exists, and Create/Update/Delete return false when the
// operation could not be applied (missing record, constraint violation).
// A non-nil error always means an unexpected fault such as unreachable
// storage, which callers treat as fatal for the request.
type Repository[T Entity] interface {
	// FindAll returns every record; an empty slice when none exist.
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns the record or nil when absent.
	FindByID(ctx context.Context, id int64) (*T, error)
	// Exists reports whether a record with the given id is stored. It never
	// mutates state and agrees with FindByID within a single request.
	Exists(ctx context.Context, id int64) (bool, error)
	// Create persists a new record, assigning its id in place.
	Create(ctx context.Context, entity *T) (bool, error)
	// Update replaces a record that must already exist; callers check Exists
	// first, the repository never upserts.
	Update(ctx context.Context, entity T) (bool, error)
	// Delete removes an already-resolved record, so callers FindByID first.
	Delete(ctx context.Context, entity T) (bool, error)
}

// Sequence allocates monotonically increasing ids per entity kind.
type Sequence interface {
	Next(ctx context.Context, name string) (int64, error)
}
