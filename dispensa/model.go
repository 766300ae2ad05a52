package main

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FoodName      string             `bson:"foodName" json:"foodName"`
	FoodImage     string             `bson:"foodImage" json:"foodImage"`
	FoodCategory  string             `bson:"foodCategory" json:"foodCategory"`
	Quantity      int64              `bson:"quantity" json:"quantity"`
	Price         float64            `bson:"price" json:"price"`
	FoodOrigin    string             `bson:"foodOrigin" json:"foodOrigin"`
	Description   string             `bson:"description" json:"description"`
	AddedByName   string             `bson:"addedByName" json:"addedByName"`
	AddedByEmail  string             `bson:"addedByEmail" json:"addedByEmail"`
	AddedAt       time.Time          `bson:"addedAt" json:"addedAt"`
	PurchaseCount int64              `bson:"purchaseCount,omitempty" json:"purchaseCount,omitempty"`
}

// FoodUpdate is the $set document of a full food update. Optional fields are
// left untouched when empty.
type FoodUpdate struct {
	FoodName     string  `bson:"foodName" json:"foodName"`
	FoodImage    string  `bson:"foodImage" json:"foodImage"`
	FoodCategory string  `bson:"foodCategory" json:"foodCategory"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int64   `bson:"quantity" json:"quantity"`
	FoodOrigin   string  `bson:"foodOrigin,omitempty" json:"foodOrigin,omitempty"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
}

type SortOrder string

const (
	SortNone       SortOrder = ""
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder maps the sort query value to a SortOrder, accepting both the
// short and the long spelling. Unknown values keep storage order.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "asc", "ascending":
		return SortAscending
	case "desc", "descending":
		return SortDescending
	default:
		return SortNone
	}
}

type FoodFilter struct {
	// Name is matched as a case-insensitive substring of foodName.
	Name string
	// Email is matched exactly against addedByEmail.
	Email string
	Sort  SortOrder
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FoodID         string             `bson:"food_id" json:"food_id"`
	ApplicantEmail string             `bson:"applicant_email" json:"applicant_email"`
	FoodName       string             `bson:"foodName" json:"foodName"`
	Price          float64            `bson:"price" json:"price"`
	Quantity       int64              `bson:"quantity" json:"quantity"`
	TotalPrice     float64            `bson:"totalPrice" json:"totalPrice"`
	BuyingDate     string             `bson:"buyingDate" json:"buyingDate"`
	FoodImage      string             `bson:"foodImage" json:"foodImage"`
	OrderDate      time.Time          `bson:"orderDate" json:"orderDate"`
}
