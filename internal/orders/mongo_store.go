package orders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

const ordersCollection = "orders"

// MongoStore persists orders in the orders collection. Items are embedded
// in the order document, so a single InsertOne covers both.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(ordersCollection)}
}

func (s *MongoStore) Create(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	_, err := s.collection.InsertOne(ctx, order)
	return err
}

func (s *MongoStore) List(ctx context.Context, page, limit int64) ([]models.Order, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	if page > 0 && limit > 0 {
		findOptions.SetSkip((page - 1) * limit).SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}

	var order models.Order
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
