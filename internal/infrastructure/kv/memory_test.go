package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/orderdesk/console/internal/core/ports"
)

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Get(ctx, "token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := m.Set(ctx, "token", "tok-1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, err := m.Get(ctx, "token")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if v != "tok-1" {
		t.Fatalf("got %q", v)
	}

	if err := m.Delete(ctx, "token", "user"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := m.Get(ctx, "token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("deleted key still readable: %v", err)
	}
}
