package service

import (
	"context"
	"sync/atomic"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

// stubBackend is an in-memory ports.Backend used across the service tests.
// Counters record how many times each list endpoint was actually hit, which
// is how the tests observe cache behaviour.
type stubBackend struct {
	loginResult *ports.LoginResult
	loginErr    error
	logoutErr   error

	orders    []domain.Order
	clients   []domain.Client
	users     []domain.User
	analytics domain.Analytics

	listOrdersCalls  int32
	listClientsCalls int32
	listUsersCalls   int32
	analyticsCalls   int32

	createdOrders  []*domain.Order
	updatedClients []*domain.Client
}

func (b *stubBackend) Login(context.Context, string, string) (*ports.LoginResult, error) {
	if b.loginErr != nil {
		return nil, b.loginErr
	}
	return b.loginResult, nil
}

func (b *stubBackend) Logout(context.Context) error {
	return b.logoutErr
}

func (b *stubBackend) ListOrders(context.Context) ([]domain.Order, error) {
	atomic.AddInt32(&b.listOrdersCalls, 1)
	return b.orders, nil
}

func (b *stubBackend) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	for i := range b.orders {
		if b.orders[i].ID == id {
			return &b.orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (b *stubBackend) CreateOrder(_ context.Context, order *domain.Order, _ string) (*domain.Order, error) {
	b.createdOrders = append(b.createdOrders, order)
	created := *order
	created.ID = "order-new"
	b.orders = append(b.orders, created)
	return &created, nil
}

func (b *stubBackend) UpdateOrder(_ context.Context, id string, order *domain.Order) (*domain.Order, error) {
	updated := *order
	updated.ID = id
	return &updated, nil
}

func (b *stubBackend) DeleteOrder(context.Context, string) error { return nil }

func (b *stubBackend) ListClients(context.Context) ([]domain.Client, error) {
	atomic.AddInt32(&b.listClientsCalls, 1)
	return b.clients, nil
}

func (b *stubBackend) GetClient(_ context.Context, id string) (*domain.Client, error) {
	for i := range b.clients {
		if b.clients[i].ID == id {
			return &b.clients[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (b *stubBackend) CreateClient(_ context.Context, client *domain.Client) (*domain.Client, error) {
	created := *client
	created.ID = "client-new"
	b.clients = append(b.clients, created)
	return &created, nil
}

func (b *stubBackend) UpdateClient(_ context.Context, id string, client *domain.Client) (*domain.Client, error) {
	updated := *client
	updated.ID = id
	b.updatedClients = append(b.updatedClients, &updated)
	return &updated, nil
}

func (b *stubBackend) DeleteClient(context.Context, string) error { return nil }

func (b *stubBackend) ListUsers(context.Context) ([]domain.User, error) {
	atomic.AddInt32(&b.listUsersCalls, 1)
	return b.users, nil
}

func (b *stubBackend) GetUser(_ context.Context, id string) (*domain.User, error) {
	for i := range b.users {
		if b.users[i].ID == id {
			return &b.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (b *stubBackend) CreateUser(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	user := domain.User{ID: "user-new", Name: in.Name, Email: in.Email, Role: in.Role}
	b.users = append(b.users, user)
	return &user, nil
}

func (b *stubBackend) UpdateUser(_ context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return &domain.User{ID: id, Name: in.Name, Email: in.Email}, nil
}

func (b *stubBackend) ChangeUserRole(_ context.Context, id, role string) (*domain.User, error) {
	return &domain.User{ID: id, Role: role}, nil
}

func (b *stubBackend) DeleteUser(context.Context, string) error { return nil }

func (b *stubBackend) Analytics(context.Context) (*domain.Analytics, error) {
	atomic.AddInt32(&b.analyticsCalls, 1)
	analytics := b.analytics
	return &analytics, nil
}
