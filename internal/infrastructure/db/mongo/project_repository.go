package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workcity/project-tracker/internal/core/domain"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type clientRefDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	ClientID    primitive.ObjectID `bson:"client_id"`
	CreatedBy   primitive.ObjectID `bson:"created_by"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`

	// Client is filled only by the $lookup pipeline and never written.
	Client *clientRefDoc `bson:"client,omitempty"`
}

func (d *projectDoc) toDomain(withEmail bool) *domain.Project {
	p := &domain.Project{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Status:      domain.ProjectStatus(d.Status),
		ClientID:    hexOrEmpty(d.ClientID),
		CreatedBy:   hexOrEmpty(d.CreatedBy),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.Client != nil {
		p.Client = &domain.ClientRef{ID: d.Client.ID.Hex(), Name: d.Client.Name}
		if withEmail {
			p.Client.Email = d.Client.Email
		}
	}
	return p
}

// findPopulated runs match and joins the referenced client. A dangling
// reference keeps the project and leaves Client nil.
func (r *ProjectRepository) findPopulated(ctx context.Context, match bson.D) ([]projectDoc, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionClients},
			{Key: "localField", Value: "client_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$client"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// List returns every project with the client's name populated.
func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs, err := r.findPopulated(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]*domain.Project, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain(false))
	}
	return out, nil
}

// FindByID returns one project with the client's name and email populated.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs, err := r.findPopulated(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return docs[0].toDomain(true), nil
}

func (r *ProjectRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	out := []*domain.Project{}
	oid, ok := objectID(clientID)
	if !ok {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"client_id": oid}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects by client: %w", err)
	}
	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	for i := range docs {
		out = append(out, docs[i].toDomain(false))
	}
	return out, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	clientID, ok := objectID(p.ClientID)
	if !ok {
		return nil, domain.ErrInvalidClientReference
	}
	createdBy, ok := objectID(p.CreatedBy)
	if !ok {
		return nil, fmt.Errorf("insert project: invalid creator id %q", p.CreatedBy)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := projectDoc{
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		ClientID:    clientID,
		CreatedBy:   createdBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(false), nil
}

// Update overwrites the mutable fields and updated_at and returns the stored
// document without the populated client.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	oid, ok := objectID(p.ID)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clientID, ok := objectID(p.ClientID)
	if !ok {
		return nil, domain.ErrInvalidClientReference
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"status":      string(p.Status),
		"client_id":   clientID,
		"updated_at":  p.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d projectDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return d.toDomain(false), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the client_id index used by ListByClient.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}},
	})
	return err
}
