// Package broadcast defines the publish capability the catalog write path
// calls after a persistence operation is acknowledged.
//
// Delivery is best-effort and live-only: there is no replay log, no
// acknowledgment, and a subscriber connecting after an event never receives
// it. Publish failures are logged by the implementation, never returned to
// the write path.
package broadcast

import (
	"encoding/json"

	"github.com/firelovers/storefront/pkg/logger"
	"github.com/firelovers/storefront/pkg/metrics"
	"github.com/firelovers/storefront/pkg/ws"
)

// Mutation types carried on catalog events.
const (
	TypeCreate = "create"
	TypeUpdate = "update"
	TypeDelete = "delete"
)

// Event is one catalog mutation. Payload carries the persisted record for
// create/update; delete events carry only the identifier (see DeletePayload).
type Event struct {
	Channel string // entity channel: "products" | "categories"
	Type    string // TypeCreate | TypeUpdate | TypeDelete
	Payload interface{}
}

// DeletePayload is the payload of a delete event: the identifier only, not
// the last-known record.
type DeletePayload struct {
	ID string `json:"id"`
}

// Publisher is the capability the write path depends on. The transport
// behind it (WebSocket hub, in-memory bus in tests) is interchangeable.
type Publisher interface {
	Publish(event Event)
}

// HubPublisher fans events out to every client of a WebSocket hub.
//
// Ordering: Publish is called synchronously after each acknowledged write,
// and the hub delivers frames in push order, so events for a single entity
// reach subscribers in write-ack order. No order is guaranteed across
// different entities.
type HubPublisher struct {
	hub *ws.Hub
}

// NewHubPublisher wraps a running hub.
func NewHubPublisher(hub *ws.Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

// frame is the wire shape sent to subscribers. The payload is flattened
// under a key named after the channel's entity ("product", "category") for
// create/update, and under "id" for delete.
type frame struct {
	Channel string      `json:"channel"`
	Type    string      `json:"type"`
	Product interface{} `json:"product,omitempty"`
	Categ   interface{} `json:"category,omitempty"`
	ID      string      `json:"id,omitempty"`
}

// Publish marshals the event and hands it to the hub. Failures are logged
// and swallowed: broadcast must never fail an already-committed write.
func (p *HubPublisher) Publish(event Event) {
	f := frame{Channel: event.Channel, Type: event.Type}

	switch payload := event.Payload.(type) {
	case DeletePayload:
		f.ID = payload.ID
	default:
		if event.Channel == "categories" {
			f.Categ = event.Payload
		} else {
			f.Product = event.Payload
		}
	}

	data, err := json.Marshal(f)
	if err != nil {
		logger.Error("broadcast: marshal event", "channel", event.Channel, "type", event.Type, "error", err)
		return
	}

	select {
	case p.hub.Broadcast <- data:
		metrics.BroadcastEvents.WithLabelValues(event.Channel, event.Type).Inc()
	default:
		// Hub buffer full — drop rather than block the request.
		logger.Warn("broadcast: hub buffer full, event dropped", "channel", event.Channel, "type", event.Type)
	}
}
