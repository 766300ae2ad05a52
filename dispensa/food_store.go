package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodStore interface {
	SearchFoods(ctx context.Context, filter FoodFilter) ([]Food, error)
	GetFood(ctx context.Context, id primitive.ObjectID) (Food, error)
	TopSellingFoods(ctx context.Context, limit int64) ([]Food, error)
	InsertFood(ctx context.Context, food Food) (primitive.ObjectID, error)
	ReplaceFood(ctx context.Context, id primitive.ObjectID, update FoodUpdate) error
	UpdateStock(ctx context.Context, id primitive.ObjectID, quantity int64) error
	DeleteFood(ctx context.Context, id primitive.ObjectID) error

	// ReserveStock takes quantity units out of stock and credits them to the
	// purchase counter, failing with ErrInsufficientStock when the stock is
	// lower than quantity.
	ReserveStock(ctx context.Context, id primitive.ObjectID, quantity int64) error
	// ReleaseStock undoes a ReserveStock.
	ReleaseStock(ctx context.Context, id primitive.ObjectID, quantity int64) error
}

type MongoFoodStore struct {
	coll *mongo.Collection
}

var _ FoodStore = (*MongoFoodStore)(nil)

func NewMongoFoodStore(db *mongo.Database, collection string) *MongoFoodStore {
	return &MongoFoodStore{coll: db.Collection(collection)}
}

func (s *MongoFoodStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "purchaseCount", Value: -1}}},
		{Keys: bson.D{{Key: "addedByEmail", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("foods.CreateIndexes: %w", err)
	}
	return nil
}

func (s *MongoFoodStore) SearchFoods(ctx context.Context, filter FoodFilter) ([]Food, error) {
	query := bson.D{}
	if filter.Name != "" {
		query = append(query, bson.E{Key: "foodName", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Name),
			Options: "i",
		}})
	}
	if filter.Email != "" {
		query = append(query, bson.E{Key: "addedByEmail", Value: filter.Email})
	}

	opts := options.Find()
	switch filter.Sort {
	case SortAscending:
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case SortDescending:
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	}

	return s.find(ctx, query, opts)
}

func (s *MongoFoodStore) GetFood(ctx context.Context, id primitive.ObjectID) (Food, error) {
	var food Food

	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return food, fmt.Errorf("foods.FindOne: %w", ErrNotFound)
		}
		return food, fmt.Errorf("foods.FindOne: %w", err)
	}

	return food, nil
}

func (s *MongoFoodStore) TopSellingFoods(ctx context.Context, limit int64) ([]Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "purchaseCount", Value: -1}}).
		SetLimit(limit)

	return s.find(ctx, bson.D{}, opts)
}

func (s *MongoFoodStore) InsertFood(ctx context.Context, food Food) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("foods.InsertOne: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("foods.InsertOne: unexpected id type %T", res.InsertedID)
	}

	return id, nil
}

func (s *MongoFoodStore) ReplaceFood(ctx context.Context, id primitive.ObjectID, update FoodUpdate) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: update}},
	)
	if err != nil {
		return fmt.Errorf("foods.UpdateOne: %w", err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("foods.UpdateOne: %w", ErrNotFound)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("foods.UpdateOne: %w", ErrNoChanges)
	}

	return nil
}

func (s *MongoFoodStore) UpdateStock(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}},
	)
	if err != nil {
		return fmt.Errorf("foods.UpdateOne: %w", err)
	}

	// an unchanged quantity is reported the same way as a missing food
	if res.ModifiedCount == 0 {
		return fmt.Errorf("foods.UpdateOne: %w", ErrNotFound)
	}

	return nil
}

func (s *MongoFoodStore) DeleteFood(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("foods.DeleteOne: %w", err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("foods.DeleteOne: %w", ErrNotFound)
	}

	return nil
}

func (s *MongoFoodStore) ReserveStock(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "quantity", Value: bson.D{{Key: "$gte", Value: quantity}}},
		},
		bson.D{{Key: "$inc", Value: bson.D{
			{Key: "quantity", Value: -quantity},
			{Key: "purchaseCount", Value: quantity},
		}}},
	)
	if err != nil {
		return fmt.Errorf("foods.UpdateOne: %w", err)
	}

	if res.MatchedCount > 0 {
		return nil
	}

	n, err := s.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("foods.CountDocuments: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("foods.UpdateOne: %w", ErrNotFound)
	}

	return fmt.Errorf("foods.UpdateOne: %w", ErrInsufficientStock)
}

func (s *MongoFoodStore) ReleaseStock(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{
			{Key: "quantity", Value: quantity},
			{Key: "purchaseCount", Value: -quantity},
		}}},
	)
	if err != nil {
		return fmt.Errorf("foods.UpdateOne: %w", err)
	}

	return nil
}

func (s *MongoFoodStore) find(ctx context.Context, query bson.D, opts *options.FindOptions) ([]Food, error) {
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("foods.Find: %w", err)
	}

	foods := make([]Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return foods, nil
}
