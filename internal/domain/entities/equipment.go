package entities

import "time"

// Equipment is one catalog item available for proposals.
//
// Storage model (DynamoDB):
//   - PK: id
//
// UnitPrice and Quantity are the catalog defaults; each proposal freezes its
// own negotiated values into a ProposalLineItem.
type Equipment struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	IllustrationPath string    `json:"illustration_path"`
	UnitPrice        float64   `json:"unit_price"`
	Quantity         int       `json:"quantity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
