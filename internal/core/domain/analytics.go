package domain

// Analytics is the aggregate snapshot computed server-side by the backend.
type Analytics struct {
	TotalOrders       int     `json:"totalOrders"`
	DeliveredOrders   int     `json:"deliveredOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	NetProfit         float64 `json:"netProfit"`
	ReturnedOrders    int     `json:"returnedOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}
