package ports

import (
	"context"

	"github.com/orderdesk/console/internal/core/domain"
)

// ClientInput carries the client form fields for create and update.
type ClientInput struct {
	Name           string
	DefaultAddress string
	PhoneNumbers   []string
	Addresses      []string
	Rating         float64
}

// ClientStats is a client annotated with aggregates over the cached orders.
// Score ranks clients: delivered revenue dominates order count, which
// dominates rating.
type ClientStats struct {
	domain.Client
	TotalOrders    int     `json:"totalOrders"`
	DeliveredValue float64 `json:"deliveredValue"`
	Score          float64 `json:"score"`
}

// ClientService exposes client management plus the ranked statistics view.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, in ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	// Stats returns all clients ranked by Score descending, optionally
	// filtered by a search term over name, default address and phones.
	Stats(ctx context.Context, search string) ([]ClientStats, error)
}
