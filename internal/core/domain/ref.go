package domain

import (
	"encoding/json"
	"fmt"
)

// Ref is a foreign-key field the backend may populate either as a bare id
// string or as the fully embedded related document. Decoding resolves both
// shapes; RefID is the uniform accessor used everywhere downstream.
type Ref[T any] struct {
	// ID is always set after a successful decode.
	ID string
	// Embedded is non-nil only when the backend populated the reference.
	Embedded *T
}

// RefID returns the referenced id regardless of which shape was received.
func (r Ref[T]) RefID() string {
	return r.ID
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("ref: empty value")
	}
	if string(b) == "null" {
		*r = Ref[T]{}
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}

	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return fmt.Errorf("ref: embedded document: %w", err)
	}
	var id struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("ref: embedded id: %w", err)
	}
	r.ID = id.ID
	r.Embedded = &value
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}
	return json.Marshal(r.ID)
}

// RefTo builds a bare-id reference, the shape used on writes.
func RefTo[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}
