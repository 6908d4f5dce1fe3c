package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/cache"
	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

// UserService manages staff accounts (the backend's employees collection).
type UserService struct {
	backend ports.Backend
	cache   *cache.Store
	log     zerolog.Logger
}

func NewUserService(backend ports.Backend, store *cache.Store, log zerolog.Logger) *UserService {
	return &UserService{backend: backend, cache: store, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	key := cache.Key{Category: cache.CategoryEmployees}
	return cache.GetAs(ctx, s.cache, key, s.backend.ListUsers)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	key := cache.Key{Category: cache.CategoryEmployees, ID: id}
	return cache.GetAs(ctx, s.cache, key, func(ctx context.Context) (*domain.User, error) {
		return s.backend.GetUser(ctx, id)
	})
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	created, err := s.backend.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryEmployees)
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("staff account created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	updated, err := s.backend.UpdateUser(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryEmployees)
	s.log.Info().Str("user_id", id).Msg("staff account updated")
	return updated, nil
}

// ChangeRole flips a staff account between admin and employee. The change
// affects future sessions only; an open session keeps its role for its
// lifetime.
func (s *UserService) ChangeRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	updated, err := s.backend.ChangeUserRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.CategoryEmployees)
	s.log.Info().Str("user_id", id).Str("role", role).Msg("staff role changed")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.CategoryEmployees)
	s.log.Info().Str("user_id", id).Msg("staff account deleted")
	return nil
}
