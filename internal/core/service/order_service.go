package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/cache"
	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

// OrderService serves order reads from the remote data cache and funnels
// mutations to the backend, invalidating the orders category afterwards.
type OrderService struct {
	backend ports.Backend
	cache   *cache.Store
	log     zerolog.Logger
}

func NewOrderService(backend ports.Backend, store *cache.Store, log zerolog.Logger) *OrderService {
	return &OrderService{backend: backend, cache: store, log: log}
}

func ordersKey() cache.Key {
	return cache.Key{Category: cache.CategoryOrders}
}

// List returns orders matching filter. The filter is applied locally over
// the cached full order set, so derived views (orders for a client, orders
// by a creator, orders in a status) always agree with the unfiltered view.
func (s *OrderService) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	orders, err := cache.GetAs(ctx, s.cache, ordersKey(), s.backend.ListOrders)
	if err != nil {
		return nil, err
	}
	if filter == (ports.OrderFilter{}) {
		return orders, nil
	}

	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && o.ClientID.RefID() != filter.ClientID {
			continue
		}
		if filter.CreatedBy != "" && o.CreatedBy.RefID() != filter.CreatedBy {
			continue
		}
		matched = append(matched, o)
	}
	return matched, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	key := cache.Key{Category: cache.CategoryOrders, ID: id}
	return cache.GetAs(ctx, s.cache, key, func(ctx context.Context) (*domain.Order, error) {
		return s.backend.GetOrder(ctx, id)
	})
}

// Create submits a new order. The total is computed here, at submission
// time, from the items and delivery fees; whatever the form displayed is
// never trusted. A fresh idempotency key shields against double submits.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	items := toItems(in.Items)
	order := &domain.Order{
		TrackID:      in.TrackID,
		ClientID:     domain.RefTo[domain.Client](in.ClientID),
		Items:        items,
		DeliveryFees: in.DeliveryFees,
		Total:        domain.OrderTotal(items, in.DeliveryFees),
		Status:       domain.StatusPending,
		Notes:        in.Notes,
		CreatedBy:    domain.RefTo[domain.User](in.CreatedBy),
	}

	created, err := s.backend.CreateOrder(ctx, order, uuid.NewString())
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryOrders)
	s.log.Info().Str("order_id", created.ID).Str("client_id", created.ClientID.RefID()).Msg("order created")
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, id string, in ports.UpdateOrderInput) (*domain.Order, error) {
	if !in.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	items := toItems(in.Items)
	order := &domain.Order{
		TrackID:      in.TrackID,
		ClientID:     domain.RefTo[domain.Client](in.ClientID),
		Items:        items,
		DeliveryFees: in.DeliveryFees,
		Total:        domain.OrderTotal(items, in.DeliveryFees),
		Status:       in.Status,
		Notes:        in.Notes,
		Rating:       in.Rating,
	}

	updated, err := s.backend.UpdateOrder(ctx, id, order)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryOrders)
	s.log.Info().Str("order_id", id).Str("status", string(in.Status)).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.CategoryOrders)
	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

func toItems(in []ports.OrderItemInput) []domain.OrderItem {
	items := make([]domain.OrderItem, len(in))
	for i, it := range in {
		items[i] = domain.OrderItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Size:     it.Size,
		}
	}
	return items
}
