package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ai-website-generator/backend/internal/projects/domain"
)

// CollectionName is the MongoDB collection holding project documents.
const CollectionName = "projects"

const createdAtIndex = "created_at_desc"

// projectDocument is the persisted layout of a project.
type projectDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Prompt    string               `bson:"prompt"`
	Code      domain.CodeStructure `bson:"code"`
	CreatedAt time.Time            `bson:"created_at"`
}

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(coll *mongo.Collection) *ProjectRepository {
	return &ProjectRepository{coll: coll}
}

// EnsureIndexes creates the index backing newest-first listing.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName(createdAtIndex),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %w", createdAtIndex, err)
	}
	return nil
}

// Insert stores p and sets p.ID to the identifier assigned by the database.
func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	doc := projectDocument{
		Prompt:    p.Prompt,
		Code:      p.Code,
		CreatedAt: p.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert project: unexpected id type %T", res.InsertedID)
	}
	p.ID = FormatID(oid)
	return nil
}

// List returns up to limit projects, newest first. Projects created in the same
// millisecond keep insertion order via the _id tie-break.
func (r *ProjectRepository) List(ctx context.Context, limit int) ([]domain.Project, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}

	var docs []projectDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}

	out := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// FindByID returns domain.ErrInvalidID without querying when id is malformed.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var d projectDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project %s: %w", id, err)
	}

	p := d.toDomain()
	return &p, nil
}

// Delete removes the project and reports how many documents were deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete project %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

func (d projectDocument) toDomain() domain.Project {
	return domain.Project{
		ID:        FormatID(d.ID),
		Prompt:    d.Prompt,
		Code:      d.Code,
		CreatedAt: d.CreatedAt.UTC(),
	}
}
