package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("server selection error: context deadline exceeded")

// memFoodStore keeps foods in insertion order, which stands in for
// MongoDB natural order.
type memFoodStore struct {
	mu    sync.Mutex
	foods []Food
	// failGet makes GetFood fail for these ids with errStoreDown
	failGet map[primitive.ObjectID]bool
	// failAll makes every call fail with errStoreDown
	failAll bool
}

var _ FoodStore = (*memFoodStore)(nil)

func newMemFoodStore(foods ...Food) *memFoodStore {
	return &memFoodStore{foods: foods, failGet: map[primitive.ObjectID]bool{}}
}

func (s *memFoodStore) index(id primitive.ObjectID) int {
	return slices.IndexFunc(s.foods, func(f Food) bool { return f.ID == id })
}

func (s *memFoodStore) SearchFoods(_ context.Context, filter FoodFilter) ([]Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errStoreDown
	}

	foods := make([]Food, 0)
	for _, f := range s.foods {
		if filter.Name != "" && !strings.Contains(strings.ToLower(f.FoodName), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Email != "" && f.AddedByEmail != filter.Email {
			continue
		}
		foods = append(foods, f)
	}

	switch filter.Sort {
	case SortAscending:
		slices.SortStableFunc(foods, func(a, b Food) int { return cmp.Compare(a.Price, b.Price) })
	case SortDescending:
		slices.SortStableFunc(foods, func(a, b Food) int { return cmp.Compare(b.Price, a.Price) })
	}

	return foods, nil
}

func (s *memFoodStore) GetFood(_ context.Context, id primitive.ObjectID) (Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll || s.failGet[id] {
		return Food{}, errStoreDown
	}

	i := s.index(id)
	if i < 0 {
		return Food{}, fmt.Errorf("foods.FindOne: %w", ErrNotFound)
	}
	return s.foods[i], nil
}

func (s *memFoodStore) TopSellingFoods(_ context.Context, limit int64) ([]Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errStoreDown
	}

	foods := slices.Clone(s.foods)
	slices.SortStableFunc(foods, func(a, b Food) int { return cmp.Compare(b.PurchaseCount, a.PurchaseCount) })
	if int64(len(foods)) > limit {
		foods = foods[:limit]
	}
	return foods, nil
}

func (s *memFoodStore) InsertFood(_ context.Context, food Food) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return primitive.NilObjectID, errStoreDown
	}

	food.ID = primitive.NewObjectID()
	s.foods = append(s.foods, food)
	return food.ID, nil
}

func (s *memFoodStore) ReplaceFood(_ context.Context, id primitive.ObjectID, update FoodUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errStoreDown
	}

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}

	before := s.foods[i]
	f := &s.foods[i]
	f.FoodName = update.FoodName
	f.FoodImage = update.FoodImage
	f.FoodCategory = update.FoodCategory
	f.Price = update.Price
	f.Quantity = update.Quantity
	if update.FoodOrigin != "" {
		f.FoodOrigin = update.FoodOrigin
	}
	if update.Description != "" {
		f.Description = update.Description
	}

	if *f == before {
		return ErrNoChanges
	}
	return nil
}

func (s *memFoodStore) UpdateStock(_ context.Context, id primitive.ObjectID, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errStoreDown
	}

	i := s.index(id)
	if i < 0 || s.foods[i].Quantity == quantity {
		return ErrNotFound
	}
	s.foods[i].Quantity = quantity
	return nil
}

func (s *memFoodStore) DeleteFood(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errStoreDown
	}

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.foods = slices.Delete(s.foods, i, i+1)
	return nil
}

func (s *memFoodStore) ReserveStock(_ context.Context, id primitive.ObjectID, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errStoreDown
	}

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	if s.foods[i].Quantity < quantity {
		return fmt.Errorf("foods.UpdateOne: %w", ErrInsufficientStock)
	}
	s.foods[i].Quantity -= quantity
	s.foods[i].PurchaseCount += quantity
	return nil
}

func (s *memFoodStore) ReleaseStock(_ context.Context, id primitive.ObjectID, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.foods[i].Quantity += quantity
	s.foods[i].PurchaseCount -= quantity
	return nil
}

func (s *memFoodStore) snapshot() []Food {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.foods)
}

type memOrderStore struct {
	mu         sync.Mutex
	orders     []Order
	failInsert bool
}

var _ OrderStore = (*memOrderStore)(nil)

func (s *memOrderStore) InsertOrder(_ context.Context, order Order) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInsert {
		return primitive.NilObjectID, errStoreDown
	}

	order.ID = primitive.NewObjectID()
	s.orders = append(s.orders, order)
	return order.ID, nil
}

func (s *memOrderStore) ListOrdersByEmail(_ context.Context, email string) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]Order, 0)
	for _, o := range s.orders {
		if o.ApplicantEmail == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *memOrderStore) DeleteOrder(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.orders, func(o Order) bool { return o.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	s.orders = slices.Delete(s.orders, i, i+1)
	return nil
}

func (s *memOrderStore) snapshot() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}
