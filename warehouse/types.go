// Package warehouse is a fixture package used by the analyzer and generator
// tests. It exercises shapes that need more than a plain record.
package warehouse

import (
	"iter"
	"maps"
	"time"

	"shape-generator/store"
)

// Bin is a storage location.
type Bin struct {
	Aisle int `json:"aisle"`
	Shelf int `json:"shelf"`
	Slot  int `json:"slot"`
}

// Pallet is a unit of stored goods.
type Pallet struct {
	ID       uint              `json:"id"`
	Location Bin               `json:"location"`
	Product  store.Product     `json:"product"`
	Size     store.Dimensions  `json:"size"`
	Received *time.Time        `json:"received,omitempty"`
	Labels   map[string]string `json:"labels"`
}

// Quantity is anything that can be counted or weighed.
type Quantity interface {
	~int | ~float64
}

// Stock is generic over the measure of its amount, which leaves the arity
// probe unable to decide how the field is initialised.
type Stock[Q Quantity] struct {
	Product store.Product
	Amount  Q
}

// Reading is generic without a union constraint.
type Reading[T any] struct {
	Value T
	At    time.Time
}

// Manifest lists shipped pallets. Its fields are private; it is visited
// through StaticVisit.
type Manifest struct {
	pallets []Pallet
}

// StaticVisit calls visit once per pallet.
func (m Manifest) StaticVisit(visit func(i int, p Pallet)) {
	for i, p := range m.pallets {
		visit(i, p)
	}
}

// Inventory counts stock per SKU.
type Inventory struct {
	counts map[string]int
}

// All iterates over SKU and count pairs.
func (inv Inventory) All() iter.Seq2[string, int] {
	return maps.All(inv.counts)
}

// Shipment already declares a Fields method, which clashes with the
// generated accessor.
type Shipment struct {
	From Bin
	To   Bin
}

// Fields returns the addresses as text.
func (s Shipment) Fields() []string { return nil }

// Signal is never serialised.
type Signal chan struct{}
