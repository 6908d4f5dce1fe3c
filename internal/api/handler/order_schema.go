package handler

// Request types for the orders surface. Totals are never accepted from the
// form; the service computes them at submission time.

type orderItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Size     string  `json:"size"`
}

type createOrderRequest struct {
	TrackID      string             `json:"trackId"`
	ClientID     string             `json:"clientId"     validate:"required"`
	Items        []orderItemRequest `json:"items"        validate:"required,min=1,dive"`
	DeliveryFees float64            `json:"deliveryFees" validate:"gte=0"`
	Notes        string             `json:"notes"`
}

type updateOrderRequest struct {
	TrackID      string             `json:"trackId"`
	ClientID     string             `json:"clientId"     validate:"required"`
	Items        []orderItemRequest `json:"items"        validate:"required,min=1,dive"`
	DeliveryFees float64            `json:"deliveryFees" validate:"gte=0"`
	Status       string             `json:"status"       validate:"required,oneof=pending shipped delivered cancelled returned"`
	Notes        string             `json:"notes"`
	Rating       int                `json:"rating"       validate:"omitempty,min=1,max=5"`
}
