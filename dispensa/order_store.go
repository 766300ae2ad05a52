package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderStore interface {
	InsertOrder(ctx context.Context, order Order) (primitive.ObjectID, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]Order, error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
}

type MongoOrderStore struct {
	coll *mongo.Collection
}

var _ OrderStore = (*MongoOrderStore)(nil)

func NewMongoOrderStore(db *mongo.Database, collection string) *MongoOrderStore {
	return &MongoOrderStore{coll: db.Collection(collection)}
}

func (s *MongoOrderStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "applicant_email", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("orders.CreateIndexes: %w", err)
	}
	return nil
}

func (s *MongoOrderStore) InsertOrder(ctx context.Context, order Order) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("orders.InsertOne: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("orders.InsertOne: unexpected id type %T", res.InsertedID)
	}

	return id, nil
}

func (s *MongoOrderStore) ListOrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	cursor, err := s.coll.Find(ctx, bson.D{{Key: "applicant_email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("orders.Find: %w", err)
	}

	orders := make([]Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return orders, nil
}

func (s *MongoOrderStore) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("orders.DeleteOne: %w", err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("orders.DeleteOne: %w", ErrNotFound)
	}

	return nil
}
