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

const contactCollection = "contact_messages"

type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactCollection)}
}

type mongoContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoContactRepository) Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	doc := mongoContact{
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*domain.ContactMessage
	for cursor.Next(ctx) {
		var mc mongoContact
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		messages = append(messages, &domain.ContactMessage{
			ID:        mc.ID.Hex(),
			Name:      mc.Name,
			Email:     mc.Email,
			Message:   mc.Message,
			CreatedAt: unixToTime(mc.CreatedAt),
		})
	}
	return messages, cursor.Err()
}
