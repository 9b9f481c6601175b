package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pagewise/bookstore-api/internal/api/metrics"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

// Repository is the single generic CRUD engine backing every catalog entity.
// It is instantiated once per entity kind at composition time, with ids
// allocated from the shared sequence so records expose stable integer
// identifiers.
//
// Expected outcomes follow the ports.Repository contract: absence and
// recoverable persistence failures come back as nil/false, errors are
// reserved for faults such as unreachable storage.
type Repository[T ports.Entity] struct {
	coll   *mongo.Collection
	seq    ports.Sequence
	entity string
}

// NewRepository creates a Repository over the named collection. The entity
// name doubles as the sequence key and the metrics label.
func NewRepository[T ports.Entity](db *mongo.Database, entity string, seq ports.Sequence) *Repository[T] {
	return &Repository[T]{
		coll:   db.Collection(entity),
		seq:    seq,
		entity: entity,
	}
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, r.fault("find_all", fmt.Errorf("find all %s: %w", r.entity, err))
	}

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, r.fault("find_all", fmt.Errorf("decode %s: %w", r.entity, err))
	}

	metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "find_all", "ok").Inc()
	return out, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err == mongo.ErrNoDocuments {
		metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "find_by_id", "miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, r.fault("find_by_id", fmt.Errorf("find %s %d: %w", r.entity, id, err))
	}

	metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "find_by_id", "ok").Inc()
	return &entity, nil
}

func (r *Repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, r.fault("exists", fmt.Errorf("count %s %d: %w", r.entity, id, err))
	}
	return n > 0, nil
}

// Create persists the entity under a freshly allocated id and writes the id
// back into the entity.
func (r *Repository[T]) Create(ctx context.Context, entity *T) (bool, error) {
	id, err := r.seq.Next(ctx, r.entity)
	if err != nil {
		return false, r.fault("create", fmt.Errorf("allocate %s id: %w", r.entity, err))
	}

	doc, err := toDocument(entity)
	if err != nil {
		return false, r.fault("create", err)
	}
	doc["_id"] = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "create", "conflict").Inc()
			return false, nil
		}
		return false, r.fault("create", fmt.Errorf("insert %s: %w", r.entity, err))
	}

	if err := fromDocument(doc, entity); err != nil {
		return false, r.fault("create", err)
	}

	metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "create", "ok").Inc()
	return true, nil
}

// Update replaces the stored record matching the entity's id. A missing
// record yields false; the repository never upserts.
func (r *Repository[T]) Update(ctx context.Context, entity T) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": entity.EntityID()}, entity)
	if err != nil {
		return false, r.fault("update", fmt.Errorf("replace %s %d: %w", r.entity, entity.EntityID(), err))
	}
	if res.MatchedCount == 0 {
		metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "update", "miss").Inc()
		return false, nil
	}

	metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "update", "ok").Inc()
	return true, nil
}

func (r *Repository[T]) Delete(ctx context.Context, entity T) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": entity.EntityID()})
	if err != nil {
		return false, r.fault("delete", fmt.Errorf("delete %s %d: %w", r.entity, entity.EntityID(), err))
	}
	if res.DeletedCount == 0 {
		metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "delete", "miss").Inc()
		return false, nil
	}

	metrics.RepositoryOpsTotal.WithLabelValues(r.entity, "delete", "ok").Inc()
	return true, nil
}

func (r *Repository[T]) fault(op string, err error) error {
	metrics.RepositoryOpsTotal.WithLabelValues(r.entity, op, "error").Inc()
	return err
}

// toDocument round-trips an entity through bson so the repository can attach
// the allocated _id without per-entity mapping code.
func toDocument[T any](entity *T) (bson.M, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("marshal entity: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal entity: %w", err)
	}
	return doc, nil
}

func fromDocument[T any](doc bson.M, entity *T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := bson.Unmarshal(raw, entity); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	return nil
}
