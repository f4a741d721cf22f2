// Package store is a fixture package of plain records used by the analyzer
// and generator tests.
package store

import (
	"time"
)

// 1. Money is a currency amount split into whole units and nanos.
type Money struct {
	Units int64 `json:"units"`
	Nanos int32 `json:"nanos"`
}

// 2. Product represents an individual item available for sale.
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       Money     `json:"price"`
	Inventory   int       `json:"inventory_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// 3. OrderLine is a specific product line within an order.
type OrderLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// 4. Order keeps an optimistic-locking counter hidden from other packages,
// so it cannot be built field by field outside this package.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	Lines      Cart        `json:"lines"`
	OrderedAt  time.Time   `json:"ordered_at"`

	version int
}

// Version returns the optimistic-locking counter.
func (o *Order) Version() int { return o.version }

// 5. OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// 6. Cart is the list of lines of an order.
type Cart []OrderLine

// 7. Dimensions of a parcel in millimetres: width, height, depth.
type Dimensions [3]float64

// 8. Discount is an optional amount off.
type Discount struct {
	amount Money
	set    bool
}

// Get returns the discount and whether there is one.
func (d Discount) Get() (Money, bool) { return d.amount, d.set }

// 9. Ledger has more columns than a tuple can hold.
type Ledger struct {
	C0, C1, C2, C3, C4, C5, C6, C7, C8, C9, C10 int64
}

// 10. Hook is notified when an order changes state.
type Hook func(Order)
