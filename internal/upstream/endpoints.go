package upstream

import (
	"context"
	"net/http"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

// --- Auth ---

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out ports.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, order *domain.Order, idempotencyKey string) (*domain.Order, error) {
	var hdr http.Header
	if idempotencyKey != "" {
		hdr = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", order, &out, hdr); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, order *domain.Order) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+id, order, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+id, nil, nil, nil)
}

// --- Clients ---

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	var out domain.Client
	if err := c.do(ctx, http.MethodGet, "/clients/"+id, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var out domain.Client
	if err := c.do(ctx, http.MethodPost, "/clients", client, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, client *domain.Client) (*domain.Client, error) {
	var out domain.Client
	if err := c.do(ctx, http.MethodPut, "/clients/"+id, client, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil, nil)
}

// --- Staff (the backend calls them employees) ---

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/employees/"+id, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	body := map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
		"role":     in.Role,
	}
	var out domain.User
	if err := c.do(ctx, http.MethodPost, "/employees", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	body := map[string]string{"name": in.Name, "email": in.Email}
	var out domain.User
	if err := c.do(ctx, http.MethodPut, "/employees/"+id, body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangeUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	body := map[string]string{"role": role}
	var out domain.User
	if err := c.do(ctx, http.MethodPut, "/employees/"+id+"/role", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+id, nil, nil, nil)
}

// --- Analytics ---

func (c *Client) Analytics(ctx context.Context) (*domain.Analytics, error) {
	var out domain.Analytics
	if err := c.do(ctx, http.MethodGet, "/analytics", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
