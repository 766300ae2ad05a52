package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("dispensa")
	meter  = otel.Meter("dispensa")
)

type orderMetrics struct {
	placed           metric.Int64Counter
	enrichmentMisses metric.Int64Counter
}

func newOrderMetrics() (*orderMetrics, error) {
	placed, err := meter.Int64Counter("dispensa.orders.placed",
		metric.WithDescription("Number of orders placed"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter("dispensa.orders.enrichment.misses",
		metric.WithDescription("Order lookups that could not be enriched with catalog data"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &orderMetrics{placed: placed, enrichmentMisses: misses}, nil
}

type MainHandler struct {
	foods          FoodStore
	orders         OrderStore
	orderPubSubber OrderPubSubber
	health         *healthgo.Health
	catalog        CatalogSettings
	validator      *requestValidator
	metrics        *orderMetrics
}

func NewMainHandler(
	e *echo.Echo,
	settings *Settings,
	foods FoodStore,
	orders OrderStore,
	orderPubSubber OrderPubSubber,
	health *healthgo.Health,
) (*MainHandler, error) {
	logger := slog.Default()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: settings.HTTP.CORS.Origins,
		AllowMethods: settings.HTTP.CORS.Methods,
		AllowHeaders: settings.HTTP.CORS.Headers,
	}))
	e.Use(otelecho.Middleware(settings.App.Name,
		otelecho.WithMetricAttributeFn(func(r *http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{
				attribute.String("client.ip", r.RemoteAddr),
				attribute.String("user.agent", r.UserAgent()),
			}
		}),
		otelecho.WithEchoMetricAttributeFn(func(c echo.Context) []attribute.KeyValue {
			return []attribute.KeyValue{
				attribute.String("handler.path", c.Path()),
				attribute.String("handler.method", c.Request().Method),
			}
		}),
	))

	reqValidator := newRequestValidator()
	e.Validator = reqValidator

	metrics, err := newOrderMetrics()
	if err != nil {
		return nil, err
	}

	handler := &MainHandler{
		foods:          foods,
		orders:         orders,
		orderPubSubber: orderPubSubber,
		health:         health,
		catalog:        settings.Catalog,
		validator:      reqValidator,
		metrics:        metrics,
	}

	e.GET("/", handler.Liveness)
	e.GET("/healthz", handler.HealthCheck)

	api := e.Group(settings.HTTP.Prefix)

	api.GET("/foods", handler.SearchFoods)
	api.GET("/foods/:id", handler.GetFood)
	api.POST("/foods", handler.CreateFood)
	api.PUT("/foods/:id", handler.ReplaceFood)
	api.PATCH("/foods/:id", handler.UpdateStock)
	api.DELETE("/foods/:id", handler.DeleteFood)
	api.GET("/top-selling-foods", handler.TopSellingFoods)

	api.GET("/food-order", handler.ListOrders)
	api.POST("/food-order", handler.PlaceOrder)
	api.GET("/food-order/live", handler.GetLiveOrdersSSE)
	api.DELETE("/food-order/:orderId", handler.DeleteOrder)

	return handler, nil
}

// respondError maps err onto a status code. message is what the client sees;
// invalid input adds its detail and internal failures add the cause.
func respondError(c echo.Context, err error, message string) error {
	ctx := c.Request().Context()

	switch {
	case errors.Is(err, ErrNoChanges):
		return c.NoContent(http.StatusNotModified)
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
	case errors.Is(err, ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: message,
			Error:   inputDetail(err),
		})
	default:
		slog.ErrorContext(ctx, message, slog.Any("err", err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: message,
			Error:   err.Error(),
		})
	}
}

// bindAndValidate binds the request into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Internal != nil {
			return invalidInput("%s", httpErr.Internal.Error())
		}
		return invalidInput("%s", err.Error())
	}
	return c.Validate(req)
}

func parseObjectID(c echo.Context, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		return primitive.NilObjectID, invalidInput("malformed %s %q", param, c.Param(param))
	}
	return id, nil
}

// Liveness godoc
//
// @Summary Report that the server is running
// @Tags health
// @Produce plain
// @Success 200 {string} string "Server is running"
// @Router / [get]
func (h *MainHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running")
}

// HealthCheck godoc
//
// @Summary Check the health of the service
// @Tags health
// @Produce json
// @Success 200 {object} healthgo.Check
// @Failure 503 {object} healthgo.Check
// @Router /healthz [get]
func (h *MainHandler) HealthCheck(c echo.Context) error {
	check := h.health.Measure(c.Request().Context())

	statusCode := http.StatusOK
	if check.Status != healthgo.StatusOK {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, check)
}

// GetLiveOrdersSSE godoc
//
// @Summary Stream newly placed orders via Server-Sent Events (SSE)
// @Tags order
// @Produce text/event-stream
// @Success 200 {object} Order
// @Router /food-order/live [get]
func (h *MainHandler) GetLiveOrdersSSE(c echo.Context) error {
	ctx := c.Request().Context()
	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		slog.ErrorContext(ctx, "streaming unsupported by response writer")
		return echo.NewHTTPError(http.StatusInternalServerError, "Streaming unsupported")
	}

	ch, err := h.orderPubSubber.SubLiveOrders(ctx, flusher)
	if err != nil {
		return respondError(c, err, "Failed to subscribe to live orders")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "client closed connection")
			return h.orderPubSubber.UnsubLiveOrders(ctx, flusher)
		case order := <-ch:
			data, err := json.Marshal(order)
			if err != nil {
				slog.ErrorContext(ctx, "marshal order for SSE", slog.Any("err", err))
				continue
			}
			_, err = c.Response().Write([]byte("data: " + string(data) + "\n\n"))
			if err != nil {
				slog.ErrorContext(ctx, "write SSE", slog.Any("err", err))
				_ = h.orderPubSubber.UnsubLiveOrders(ctx, flusher)
				return err
			}
			flusher.Flush()
		}
	}
}
