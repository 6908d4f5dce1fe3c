package ports

import (
	"context"

	"github.com/orderdesk/console/internal/core/domain"
)

// TopClient is a dashboard row: a client with their order count.
type TopClient struct {
	Client     domain.Client `json:"client"`
	OrderCount int           `json:"orderCount"`
}

// DashboardOverview bundles the server analytics snapshot with the
// aggregates computed locally over the cached collections.
type DashboardOverview struct {
	Analytics              *domain.Analytics `json:"analytics"`
	RevenueWithoutDelivery float64           `json:"revenueWithoutDelivery"`
	RecentOrders           []domain.Order    `json:"recentOrders"`
	TopClients             []TopClient       `json:"topClients"`
}

// DashboardService computes the landing-page aggregates. All values are
// recomputed from the current cache snapshot on every call.
type DashboardService interface {
	Analytics(ctx context.Context) (*domain.Analytics, error)
	Overview(ctx context.Context) (*DashboardOverview, error)
}
