package main

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Numeric fields are decimals so clients may send either JSON numbers or
// numeric strings.

type SearchFoodsRequest struct {
	Name  string `query:"name"`
	Email string `query:"email" validate:"omitempty,email"`
	Sort  string `query:"sort"`
}

type CreateFoodRequest struct {
	FoodName     string          `json:"foodName" validate:"required"`
	FoodImage    string          `json:"foodImage" validate:"required"`
	FoodCategory string          `json:"foodCategory" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required,gte=0,whole"`
	Price        decimal.Decimal `json:"price" validate:"required,gte=0"`
	FoodOrigin   string          `json:"foodOrigin" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	AddedByName  string          `json:"addedByName" validate:"required"`
	AddedByEmail string          `json:"addedByEmail" validate:"required"`
}

type CreateFoodResponse struct {
	Message string             `json:"message"`
	FoodID  primitive.ObjectID `json:"food"`
}

type ReplaceFoodRequest struct {
	FoodName     string          `json:"foodName" validate:"required"`
	FoodImage    string          `json:"foodImage" validate:"required"`
	FoodCategory string          `json:"foodCategory" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required,gte=0,whole"`
	FoodOrigin   string          `json:"foodOrigin"`
	Description  string          `json:"description"`
}

type ReplaceFoodResponse struct {
	Message     string     `json:"message"`
	UpdatedFood FoodUpdate `json:"updatedFood"`
}

type UpdateStockRequest struct {
	Quantity *decimal.Decimal `json:"quantity"`
}

type PlaceOrderRequest struct {
	FoodID         string          `json:"food_id" validate:"required"`
	ApplicantEmail string          `json:"applicant_email" validate:"required"`
	FoodName       string          `json:"foodName" validate:"required"`
	Price          decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity       decimal.Decimal `json:"quantity" validate:"required,gt=0,whole"`
	TotalPrice     decimal.Decimal `json:"totalPrice" validate:"required,gte=0"`
	BuyingDate     string          `json:"buyingDate" validate:"required"`
	FoodImage      string          `json:"foodImage" validate:"required"`
}

type PlacedOrder struct {
	ID         primitive.ObjectID `json:"_id"`
	FoodName   string             `json:"foodName"`
	Quantity   int64              `json:"quantity"`
	TotalPrice float64            `json:"totalPrice"`
	BuyingDate string             `json:"buyingDate"`
	FoodImage  string             `json:"foodImage"`
}

type PlaceOrderResponse struct {
	Message string      `json:"message"`
	Order   PlacedOrder `json:"order"`
}

type ListOrdersRequest struct {
	Email string `query:"email" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
