package ws

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techlearn/techlearn-backend/src/models"
)

// MongoStore backs the relay with the shared messages and connections
// collections. It satisfies both MessageStore and ConnectionGate.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, m *models.Message) error {
	_, err := s.db.Collection("messages").InsertOne(ctx, m)
	return err
}

func (s *MongoStore) Accepted(ctx context.Context, recruiterID, studentID primitive.ObjectID) (bool, error) {
	err := s.db.Collection("connections").FindOne(ctx, bson.M{
		"recruiter": recruiterID,
		"student":   studentID,
		"status":    models.ConnectionStatusAccepted,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
