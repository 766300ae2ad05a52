package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

type NATSOrderPubSubber struct {
	nc      *nats.Conn
	subject string
	subs    map[http.Flusher]*nats.Subscription
	mu      sync.Mutex
}

var _ OrderPubSubber = (*NATSOrderPubSubber)(nil)

func NewNATSOrderPubSubber(nc *nats.Conn, subject string) *NATSOrderPubSubber {
	return &NATSOrderPubSubber{
		nc:      nc,
		subject: subject,
		subs:    make(map[http.Flusher]*nats.Subscription),
	}
}

func (n *NATSOrderPubSubber) PubOrder(ctx context.Context, order Order) error {
	ctx, span := tracer.Start(ctx, "NATSOrderPubSubber.PubOrder")
	defer span.End()

	propagator := otel.GetTextMapPropagator()
	msg := &nats.Msg{
		Subject: n.subject,
		Header:  nats.Header{},
	}
	propagator.Inject(ctx, propagation.HeaderCarrier(msg.Header))
	data, err := json.Marshal(order)
	if err != nil {
		span.RecordError(err)
		return err
	}
	msg.Data = data
	return n.nc.PublishMsg(msg)
}

// SubLiveOrders implements OrderPubSubber.
func (n *NATSOrderPubSubber) SubLiveOrders(ctx context.Context, flusher http.Flusher) (<-chan Order, error) {
	ctx, span := tracer.Start(ctx, "NATSOrderPubSubber.SubLiveOrders")
	defer span.End()

	propagator := otel.GetTextMapPropagator()

	orderCh := make(chan Order, liveOrdersBuffer)
	sub, err := n.nc.Subscribe(n.subject, func(msg *nats.Msg) {
		msgCtx := propagator.Extract(context.Background(), propagation.HeaderCarrier(msg.Header))
		var order Order

		err := json.Unmarshal(msg.Data, &order)
		if err != nil {
			slog.ErrorContext(msgCtx, "failed to unmarshal order from NATS message", slog.Any("err", err))
			return
		}

		select {
		case orderCh <- order:
		default:
			slog.WarnContext(msgCtx, "live subscriber is full, dropping order", slog.String("order_id", order.ID.Hex()))
		}
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to subscribe to NATS subject", slog.String("subject", n.subject), slog.Any("err", err))
		span.SetStatus(codes.Error, "failed to subscribe to NATS subject")
		span.RecordError(err)
		return nil, err
	}

	n.mu.Lock()
	n.subs[flusher] = sub
	n.mu.Unlock()

	return orderCh, nil
}

// UnsubLiveOrders implements OrderPubSubber.
func (n *NATSOrderPubSubber) UnsubLiveOrders(ctx context.Context, flusher http.Flusher) error {
	ctx, span := tracer.Start(ctx, "NATSOrderPubSubber.UnsubLiveOrders")
	defer span.End()

	slog.InfoContext(ctx, "unsubscribing from live orders")

	n.mu.Lock()
	sub, ok := n.subs[flusher]
	delete(n.subs, flusher)
	n.mu.Unlock()

	if !ok {
		slog.WarnContext(ctx, "no subscription found for live connection")
		return nil
	}

	return sub.Unsubscribe()
}
