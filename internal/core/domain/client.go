package domain

import "time"

// Client is a customer of the business, with a default delivery address
// picked out of the full address book.
type Client struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	DefaultAddress string    `json:"defaultAddress"`
	PhoneNumbers   []string  `json:"phoneNumbers"`
	Addresses      []string  `json:"addresses"`
	Rating         float64   `json:"rating"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Normalize appends DefaultAddress to Addresses when it is missing. Existing
// records that violate the invariant are left as read; only writes going
// through this service are normalized.
func (c *Client) Normalize() {
	if c.DefaultAddress == "" {
		return
	}
	for _, a := range c.Addresses {
		if a == c.DefaultAddress {
			return
		}
	}
	c.Addresses = append(c.Addresses, c.DefaultAddress)
}
