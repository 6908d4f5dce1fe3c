package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/cache"
	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

const dashboardListLimit = 5

// DashboardService assembles the landing page: the backend's analytics
// snapshot plus aggregates computed locally over the cached collections.
// Everything is pure recomputation over the current cache snapshot.
type DashboardService struct {
	backend ports.Backend
	cache   *cache.Store
	log     zerolog.Logger
}

func NewDashboardService(backend ports.Backend, store *cache.Store, log zerolog.Logger) *DashboardService {
	return &DashboardService{backend: backend, cache: store, log: log}
}

func (s *DashboardService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	key := cache.Key{Category: cache.CategoryAnalytics}
	return cache.GetAs(ctx, s.cache, key, s.backend.Analytics)
}

func (s *DashboardService) Overview(ctx context.Context) (*ports.DashboardOverview, error) {
	analytics, err := s.Analytics(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := cache.GetAs(ctx, s.cache, cache.Key{Category: cache.CategoryOrders}, s.backend.ListOrders)
	if err != nil {
		return nil, err
	}
	clients, err := cache.GetAs(ctx, s.cache, cache.Key{Category: cache.CategoryClients}, s.backend.ListClients)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardOverview{
		Analytics:              analytics,
		RevenueWithoutDelivery: RevenueWithoutDelivery(orders),
		RecentOrders:           RecentOrders(orders, dashboardListLimit),
		TopClients:             TopClients(clients, orders, dashboardListLimit),
	}, nil
}

// RevenueWithoutDelivery sums (total - deliveryFees) over delivered orders.
func RevenueWithoutDelivery(orders []domain.Order) float64 {
	var sum float64
	for _, o := range orders {
		if o.Status == domain.StatusDelivered {
			sum += o.Total - o.DeliveryFees
		}
	}
	return sum
}

// RecentOrders returns up to limit orders sorted by createdAt descending.
func RecentOrders(orders []domain.Order, limit int) []domain.Order {
	recent := make([]domain.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// TopClients ranks clients by how many orders reference them, breaking ties
// by rating, and keeps the top limit entries.
func TopClients(clients []domain.Client, orders []domain.Order, limit int) []ports.TopClient {
	counts := make(map[string]int, len(clients))
	for _, o := range orders {
		counts[o.ClientID.RefID()]++
	}

	top := make([]ports.TopClient, 0, len(clients))
	for _, c := range clients {
		top = append(top, ports.TopClient{Client: c, OrderCount: counts[c.ID]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].OrderCount != top[j].OrderCount {
			return top[i].OrderCount > top[j].OrderCount
		}
		return top[i].Client.Rating > top[j].Client.Rating
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}
