package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/cache"
	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

// scoreWeightValue and scoreWeightOrders give the ranking its lexicographic
// feel: delivered revenue dominates order count, which dominates rating.
const (
	scoreWeightValue  = 1000
	scoreWeightOrders = 100
)

// ClientService serves client reads from the cache, funnels mutations to the
// backend, and computes the ranked statistics view over cached orders.
type ClientService struct {
	backend ports.Backend
	cache   *cache.Store
	log     zerolog.Logger
}

func NewClientService(backend ports.Backend, store *cache.Store, log zerolog.Logger) *ClientService {
	return &ClientService{backend: backend, cache: store, log: log}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	key := cache.Key{Category: cache.CategoryClients}
	return cache.GetAs(ctx, s.cache, key, s.backend.ListClients)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	key := cache.Key{Category: cache.CategoryClients, ID: id}
	return cache.GetAs(ctx, s.cache, key, func(ctx context.Context) (*domain.Client, error) {
		return s.backend.GetClient(ctx, id)
	})
}

func (s *ClientService) Create(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	client := fromClientInput(in)
	created, err := s.backend.CreateClient(ctx, client)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryClients)
	s.log.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, id string, in ports.ClientInput) (*domain.Client, error) {
	client := fromClientInput(in)
	updated, err := s.backend.UpdateClient(ctx, id, client)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryClients)
	s.log.Info().Str("client_id", id).Msg("client updated")
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.CategoryClients)
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// Stats annotates every client with order count, delivered revenue and the
// ranking score, sorted by score descending. The sort is stable, so tied
// clients keep the backend's order. Recomputed from the cache snapshot on
// every call.
func (s *ClientService) Stats(ctx context.Context, search string) ([]ports.ClientStats, error) {
	clients, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := cache.GetAs(ctx, s.cache, cache.Key{Category: cache.CategoryOrders}, s.backend.ListOrders)
	if err != nil {
		return nil, err
	}

	stats := make([]ports.ClientStats, 0, len(clients))
	for _, c := range clients {
		st := ports.ClientStats{Client: c}
		for _, o := range orders {
			if o.ClientID.RefID() != c.ID {
				continue
			}
			st.TotalOrders++
			if o.Status == domain.StatusDelivered {
				st.DeliveredValue += o.Total
			}
		}
		st.Score = st.DeliveredValue*scoreWeightValue + float64(st.TotalOrders)*scoreWeightOrders + c.Rating
		if search == "" || matchesClient(c, search) {
			stats = append(stats, st)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Score > stats[j].Score
	})
	return stats, nil
}

func matchesClient(c domain.Client, search string) bool {
	term := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.DefaultAddress), term) {
		return true
	}
	for _, phone := range c.PhoneNumbers {
		if strings.Contains(phone, search) {
			return true
		}
	}
	return false
}

func fromClientInput(in ports.ClientInput) *domain.Client {
	client := &domain.Client{
		Name:           in.Name,
		DefaultAddress: in.DefaultAddress,
		PhoneNumbers:   in.PhoneNumbers,
		Addresses:      in.Addresses,
		Rating:         in.Rating,
	}
	client.Normalize()
	return client
}
