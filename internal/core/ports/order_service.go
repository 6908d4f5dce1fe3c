package ports

import (
	"context"

	"github.com/orderdesk/console/internal/core/domain"
)

// OrderItemInput is a line item as submitted by the order form.
type OrderItemInput struct {
	Name     string
	Quantity int
	Price    float64
	Size     string
}

// CreateOrderInput carries everything the create-order form collects.
// The total is never taken from the caller; it is computed at submission.
type CreateOrderInput struct {
	TrackID      string
	ClientID     string
	Items        []OrderItemInput
	DeliveryFees float64
	Notes        string
	CreatedBy    string
}

// UpdateOrderInput carries the editable order fields. Items and fees are
// resubmitted in full; the total is recomputed.
type UpdateOrderInput struct {
	TrackID      string
	ClientID     string
	Items        []OrderItemInput
	DeliveryFees float64
	Status       domain.OrderStatus
	Notes        string
	Rating       int
}

// OrderFilter narrows List results. All filtering happens client-side over
// the cached full order set, so filtered views always agree with the
// unfiltered one.
type OrderFilter struct {
	Status    domain.OrderStatus
	ClientID  string
	CreatedBy string
}

// OrderService exposes the order use cases backed by the remote data cache.
type OrderService interface {
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
