package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tahadev/portfolio/internal/core/domain"
)

const projectCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoProject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url"`
	LiveURL     string             `bson:"live_url,omitempty"`
	RepoURL     string             `bson:"repo_url,omitempty"`
	Category    string             `bson:"category"`
	CreatedAt   int64              `bson:"created_at"`
}

func (mp mongoProject) toDomain() *domain.Project {
	return &domain.Project{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Description: mp.Description,
		ImageURL:    mp.ImageURL,
		LiveURL:     mp.LiveURL,
		RepoURL:     mp.RepoURL,
		Category:    domain.ProjectCategory(mp.Category),
		CreatedAt:   unixToTime(mp.CreatedAt),
	}
}

func (r *MongoProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		LiveURL:     p.LiveURL,
		RepoURL:     p.RepoURL,
		Category:    string(p.Category),
		CreatedAt:   p.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	for cursor.Next(ctx) {
		var mp mongoProject
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, mp.toDomain())
	}
	return projects, cursor.Err()
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
