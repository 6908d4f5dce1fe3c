package ports

import (
	"context"

	"github.com/orderdesk/console/internal/core/domain"
)

// LoginResult is the payload returned by the backend's login endpoint.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// CreateUserInput carries everything needed to create a staff account.
// Password is forwarded to the backend and never stored locally.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the mutable staff account fields.
type UpdateUserInput struct {
	Name  string
	Email string
}

// Backend is the outbound port to the order-management REST API. All calls
// attach the current bearer token when one is present; failures surface as a
// single error kind carrying a human-readable message.
type Backend interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context) error

	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// CreateOrder forwards the draft with an idempotency key so a retried
	// submission cannot create the order twice.
	CreateOrder(ctx context.Context, order *domain.Order, idempotencyKey string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	ChangeUserRole(ctx context.Context, id, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	Analytics(ctx context.Context) (*domain.Analytics, error)
}
