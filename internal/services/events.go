package services

import (
	"encoding/json"
	"time"

	"toko/internal/models"

	"go.uber.org/zap"
)

// Routing keys for product lifecycle events.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher delivers an encoded event under a routing key.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ProductEvent is the message published after a product write succeeds.
type ProductEvent struct {
	Type               string    `json:"type"`
	ProductID          string    `json:"productId"`
	SKU                string    `json:"sku,omitempty"`
	Name               string    `json:"name,omitempty"`
	Category           string    `json:"category,omitempty"`
	Stock              int       `json:"stock"`
	OriginalPrice      float64   `json:"originalPrice"`
	Price              float64   `json:"price"`
	DiscountPercentage int       `json:"discountPercentage"`
	OccurredAt         time.Time `json:"occurredAt"`
}

// NewProductEvent builds an event of the given type from a stored product.
func NewProductEvent(eventType string, p *models.Product, at time.Time) ProductEvent {
	return ProductEvent{
		Type:               eventType,
		ProductID:          p.ID,
		SKU:                p.SKU,
		Name:               p.Name,
		Category:           p.Category,
		Stock:              p.Stock,
		OriginalPrice:      p.OriginalPrice,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		OccurredAt:         at,
	}
}

// NopPublisher drops every event. It is used when messaging is disabled.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(string, []byte) error { return nil }

// publishEvent encodes and sends ev. Failures are logged and swallowed so a
// broker outage never undoes a committed write.
func publishEvent(publisher EventPublisher, ev ProductEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		zap.L().Warn("failed to encode product event", zap.String("type", ev.Type), zap.Error(err))
		return
	}
	if err := publisher.Publish(ev.Type, body); err != nil {
		zap.L().Warn("failed to publish product event",
			zap.String("type", ev.Type),
			zap.String("product_id", ev.ProductID),
			zap.Error(err))
		return
	}
	zap.L().Debug("published product event", zap.String("type", ev.Type), zap.String("product_id", ev.ProductID))
}
