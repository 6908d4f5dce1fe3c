package domain

import "testing"

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{Name: "shirt", Price: 10, Quantity: 2},
		{Name: "cap", Price: 5, Quantity: 1},
	}

	if got := OrderTotal(items, 20); got != 45 {
		t.Fatalf("expected total 45, got %v", got)
	}
}

func TestOrderTotal_NoItems(t *testing.T) {
	if got := OrderTotal(nil, 15); got != 15 {
		t.Fatalf("expected delivery fees only, got %v", got)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if OrderStatus("archived").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
