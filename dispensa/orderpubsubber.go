package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// liveOrdersBuffer is how many orders a slow live subscriber may lag behind
// before new orders are dropped for it.
const liveOrdersBuffer = 16

type OrderPubSubber interface {
	PubOrder(ctx context.Context, order Order) error
	SubLiveOrders(ctx context.Context, flusher http.Flusher) (<-chan Order, error)
	UnsubLiveOrders(ctx context.Context, flusher http.Flusher) error
}

type GoChannelOrderPubSubber struct {
	liveEventSubscribers map[http.Flusher]chan Order
	mu                   sync.Mutex
}

func NewGoChannelOrderPubSubber() *GoChannelOrderPubSubber {
	return &GoChannelOrderPubSubber{
		liveEventSubscribers: make(map[http.Flusher]chan Order),
	}
}

var _ OrderPubSubber = (*GoChannelOrderPubSubber)(nil)

// PubOrder implements OrderPubSubber.
func (g *GoChannelOrderPubSubber) PubOrder(ctx context.Context, order Order) error {
	ctx, span := tracer.Start(ctx, "GoChannelOrderPubSubber.PubOrder")
	defer span.End()

	slog.InfoContext(ctx, "publishing order", slog.String("order_id", order.ID.Hex()))

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, subChan := range g.liveEventSubscribers {
		select {
		case subChan <- order:
		default:
			slog.WarnContext(ctx, "live subscriber is full, dropping order", slog.String("order_id", order.ID.Hex()))
		}
	}

	return nil
}

// SubLiveOrders implements OrderPubSubber for SSE.
func (g *GoChannelOrderPubSubber) SubLiveOrders(ctx context.Context, flusher http.Flusher) (<-chan Order, error) {
	ctx, span := tracer.Start(ctx, "GoChannelOrderPubSubber.SubLiveOrders")
	defer span.End()

	slog.InfoContext(ctx, "subscribing to live orders (SSE)")

	ch := make(chan Order, liveOrdersBuffer)
	g.mu.Lock()
	g.liveEventSubscribers[flusher] = ch
	g.mu.Unlock()
	return ch, nil
}

// UnsubLiveOrders implements OrderPubSubber for SSE.
func (g *GoChannelOrderPubSubber) UnsubLiveOrders(ctx context.Context, flusher http.Flusher) error {
	ctx, span := tracer.Start(ctx, "GoChannelOrderPubSubber.UnsubLiveOrders")
	defer span.End()

	slog.InfoContext(ctx, "unsubscribing from live orders (SSE)")

	g.mu.Lock()
	delete(g.liveEventSubscribers, flusher)
	g.mu.Unlock()
	return nil
}
