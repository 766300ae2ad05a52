package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

// PlaceOrder godoc
//
// @Summary Place an order for a food item
// @Description Takes the ordered quantity out of stock and stores a snapshot of the food.
// @Tags order
// @Accept json
// @Produce json
// @Param order body PlaceOrderRequest true "New order"
// @Success 201 {object} PlaceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /food-order [post]
func (h *MainHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err, "All fields are required.")
	}

	foodID, err := primitive.ObjectIDFromHex(req.FoodID)
	if err != nil {
		return respondError(c, invalidInput("malformed food_id %q", req.FoodID), "Invalid food_id format.")
	}
	quantity := req.Quantity.IntPart()

	if err := h.foods.ReserveStock(ctx, foodID, quantity); err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return respondError(c, err, "Not enough stock available.")
		}
		return respondError(c, err, "Food item not found.")
	}

	order := Order{
		FoodID:         foodID.Hex(),
		ApplicantEmail: req.ApplicantEmail,
		FoodName:       req.FoodName,
		Price:          req.Price.Round(2).InexactFloat64(),
		Quantity:       quantity,
		TotalPrice:     req.TotalPrice.Round(2).InexactFloat64(),
		BuyingDate:     req.BuyingDate,
		FoodImage:      req.FoodImage,
		OrderDate:      time.Now().UTC(),
	}

	order.ID, err = h.orders.InsertOrder(ctx, order)
	if err != nil {
		releaseErr := h.foods.ReleaseStock(context.WithoutCancel(ctx), foodID, quantity)
		if releaseErr != nil {
			slog.ErrorContext(ctx, "failed to release reserved stock",
				slog.String("food_id", order.FoodID),
				slog.Int64("quantity", quantity),
				slog.Any("err", releaseErr),
			)
		}
		return respondError(c, err, "Failed to place order")
	}

	h.metrics.placed.Add(ctx, 1)
	slog.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID.Hex()),
		slog.String("food_id", order.FoodID),
		slog.Int64("quantity", quantity),
	)

	if err := h.orderPubSubber.PubOrder(ctx, order); err != nil {
		slog.WarnContext(ctx, "failed to publish placed order", slog.String("order_id", order.ID.Hex()), slog.Any("err", err))
	}

	return c.JSON(http.StatusCreated, PlaceOrderResponse{
		Message: "Order placed successfully",
		Order: PlacedOrder{
			ID:         order.ID,
			FoodName:   order.FoodName,
			Quantity:   order.Quantity,
			TotalPrice: order.TotalPrice,
			BuyingDate: order.BuyingDate,
			FoodImage:  order.FoodImage,
		},
	})
}

// ListOrders godoc
//
// @Summary List the orders of a purchaser
// @Description Each order is enriched with the current name, price and image of its food when the food still exists.
// @Tags order
// @Produce json
// @Param email query string true "Purchaser email"
// @Success 200 {array} Order
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /food-order [get]
func (h *MainHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListOrdersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err, "Email is required")
	}

	orders, err := h.orders.ListOrdersByEmail(ctx, req.Email)
	if err != nil {
		return respondError(c, err, "Error fetching orders")
	}

	h.enrichOrders(ctx, orders)

	return c.JSON(http.StatusOK, orders)
}

// enrichOrders overwrites the food snapshot of every order with the current
// catalog values. Lookups are independent; one failing leaves its order as
// stored.
func (h *MainHandler) enrichOrders(ctx context.Context, orders []Order) {
	ctx, span := tracer.Start(ctx, "MainHandler.enrichOrders")
	defer span.End()
	span.SetAttributes(attribute.Int("orders.count", len(orders)))

	var g errgroup.Group
	g.SetLimit(h.catalog.EnrichmentConcurrency)

	for i := range orders {
		g.Go(func() error {
			h.enrichOrder(ctx, &orders[i])
			return nil
		})
	}

	_ = g.Wait()
}

func (h *MainHandler) enrichOrder(ctx context.Context, order *Order) {
	foodID, err := primitive.ObjectIDFromHex(order.FoodID)
	if err != nil {
		slog.WarnContext(ctx, "order references a malformed food id",
			slog.String("order_id", order.ID.Hex()),
			slog.String("food_id", order.FoodID),
		)
		h.metrics.enrichmentMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "malformed")))
		return
	}

	food, err := h.foods.GetFood(ctx, foodID)
	if err != nil {
		reason := "error"
		if errors.Is(err, ErrNotFound) {
			reason = "deleted"
		} else {
			slog.WarnContext(ctx, "failed to look up ordered food",
				slog.String("order_id", order.ID.Hex()),
				slog.String("food_id", order.FoodID),
				slog.Any("err", err),
			)
		}
		h.metrics.enrichmentMisses.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
		return
	}

	order.FoodName = food.FoodName
	order.Price = food.Price
	order.FoodImage = food.FoodImage
	if order.FoodImage == "" {
		order.FoodImage = h.catalog.DefaultFoodImage
	}
}

// DeleteOrder godoc
//
// @Summary Delete an order
// @Tags order
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /food-order/{orderId} [delete]
func (h *MainHandler) DeleteOrder(c echo.Context) error {
	id, err := parseObjectID(c, "orderId")
	if err != nil {
		return respondError(c, err, "Invalid order ID")
	}

	if err := h.orders.DeleteOrder(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Order not found")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}
