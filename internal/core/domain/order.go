package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusReturned  OrderStatus = "returned"
)

// ValidStatus reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// OrderItem is a single line item on an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Size     string  `json:"size"`
}

// Order is the core aggregate served by the backend. ClientID and CreatedBy
// may arrive either as bare ids or as embedded documents; see Ref.
type Order struct {
	ID           string      `json:"_id"`
	OrderID      string      `json:"orderId"`
	TrackID      string      `json:"trackId"`
	ClientID     Ref[Client] `json:"clientId"`
	Items        []OrderItem `json:"items"`
	DeliveryFees float64     `json:"deliveryFees"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	Rating       int         `json:"rating,omitempty"`
	CreatedBy    Ref[User]   `json:"createdBy"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OrderTotal computes the order total at submission time:
// the sum of price*quantity over all items plus delivery fees.
// Views never re-derive it from items.
func OrderTotal(items []OrderItem, deliveryFees float64) float64 {
	total := deliveryFees
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
