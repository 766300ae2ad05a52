package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SearchFoods godoc
//
// @Summary Search the food catalog
// @Description Filters by case-insensitive name substring and exact submitter email, optionally sorted by price.
// @Tags food
// @Produce json
// @Param name query string false "Name substring"
// @Param email query string false "Submitter email"
// @Param sort query string false "Price order" Enums(asc, desc, ascending, descending)
// @Success 200 {array} Food
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods [get]
func (h *MainHandler) SearchFoods(c echo.Context) error {
	ctx := c.Request().Context()

	var req SearchFoodsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err, "Invalid email format")
	}

	filter := FoodFilter{
		Name:  req.Name,
		Email: req.Email,
		Sort:  ParseSortOrder(req.Sort),
	}
	slog.DebugContext(ctx, "searching foods",
		slog.String("name", filter.Name),
		slog.String("sort", string(filter.Sort)),
	)

	foods, err := h.foods.SearchFoods(ctx, filter)
	if err != nil {
		return respondError(c, err, "Error fetching foods")
	}

	if len(foods) == 0 {
		return respondError(c, ErrNotFound, "No foods found")
	}

	return c.JSON(http.StatusOK, foods)
}

// GetFood godoc
//
// @Summary Get a food item
// @Tags food
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} Food
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods/{id} [get]
func (h *MainHandler) GetFood(c echo.Context) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid food ID")
	}

	food, err := h.foods.GetFood(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Food item not found")
	}

	return c.JSON(http.StatusOK, food)
}

// TopSellingFoods godoc
//
// @Summary List the best selling foods
// @Tags food
// @Produce json
// @Success 200 {array} Food
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /top-selling-foods [get]
func (h *MainHandler) TopSellingFoods(c echo.Context) error {
	foods, err := h.foods.TopSellingFoods(c.Request().Context(), h.catalog.TopSellingLimit)
	if err != nil {
		return respondError(c, err, "Failed to fetch top-selling foods")
	}

	if len(foods) == 0 {
		return respondError(c, ErrNotFound, "No top-selling foods available")
	}

	return c.JSON(http.StatusOK, foods)
}

// CreateFood godoc
//
// @Summary Add a food item
// @Tags food
// @Accept json
// @Produce json
// @Param food body CreateFoodRequest true "New food item"
// @Success 201 {object} CreateFoodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods [post]
func (h *MainHandler) CreateFood(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err, "All fields are required")
	}

	food := Food{
		FoodName:     req.FoodName,
		FoodImage:    req.FoodImage,
		FoodCategory: req.FoodCategory,
		Quantity:     req.Quantity.IntPart(),
		Price:        req.Price.Round(2).InexactFloat64(),
		FoodOrigin:   req.FoodOrigin,
		Description:  req.Description,
		AddedByName:  req.AddedByName,
		AddedByEmail: req.AddedByEmail,
		AddedAt:      time.Now().UTC(),
	}

	id, err := h.foods.InsertFood(ctx, food)
	if err != nil {
		return respondError(c, err, "Failed to add food item")
	}

	slog.InfoContext(ctx, "food item added", slog.String("food_id", id.Hex()))

	return c.JSON(http.StatusCreated, CreateFoodResponse{
		Message: "Food item added successfully!",
		FoodID:  id,
	})
}

// ReplaceFood godoc
//
// @Summary Replace a food item
// @Description Responds 304 without a body when the stored item already matches.
// @Tags food
// @Accept json
// @Produce json
// @Param id path string true "Food ID"
// @Param food body ReplaceFoodRequest true "Replacement attributes"
// @Success 200 {object} ReplaceFoodResponse
// @Success 304
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods/{id} [put]
func (h *MainHandler) ReplaceFood(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseObjectID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid food ID")
	}

	var req ReplaceFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err, "Missing required fields")
	}

	update := FoodUpdate{
		FoodName:     req.FoodName,
		FoodImage:    req.FoodImage,
		FoodCategory: req.FoodCategory,
		Price:        req.Price.Round(2).InexactFloat64(),
		Quantity:     req.Quantity.IntPart(),
		FoodOrigin:   req.FoodOrigin,
		Description:  req.Description,
	}

	if err := h.foods.ReplaceFood(ctx, id, update); err != nil {
		return respondError(c, err, "Food item not found")
	}

	return c.JSON(http.StatusOK, ReplaceFoodResponse{
		Message:     "Food item updated successfully",
		UpdatedFood: update,
	})
}

// UpdateStock godoc
//
// @Summary Set the stock of a food item
// @Tags food
// @Accept json
// @Produce json
// @Param id path string true "Food ID"
// @Param stock body UpdateStockRequest true "New quantity"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods/{id} [patch]
func (h *MainHandler) UpdateStock(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseObjectID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid food ID")
	}

	var req UpdateStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err, "Invalid quantity")
	}

	if req.Quantity == nil {
		return respondError(c, invalidInput("quantity failed required"), "Invalid quantity")
	}
	if err := h.validator.Var("quantity", req.Quantity.InexactFloat64(), "gte=0,whole"); err != nil {
		return respondError(c, err, "Invalid quantity")
	}

	if err := h.foods.UpdateStock(ctx, id, req.Quantity.IntPart()); err != nil {
		return respondError(c, err, "Food item not found")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Food stock updated successfully"})
}

// DeleteFood godoc
//
// @Summary Delete a food item
// @Tags food
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /foods/{id} [delete]
func (h *MainHandler) DeleteFood(c echo.Context) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid food ID")
	}

	if err := h.foods.DeleteFood(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Food item not found")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Food item deleted successfully"})
}
