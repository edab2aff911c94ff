package order

import "time"

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses lists every order status.
var ValidStatuses = []Status{StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled}

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// transitions maps each status to the states it may move into.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransition reports whether an order in status s may move to target.
func (s Status) CanTransition(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// OrderItem is one line of an order. Items are stored denormalized with the
// order so later product edits do not rewrite history.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is a customer purchase managed through the dashboard.
type Order struct {
	ID            string // UUID
	Number        string // human-facing order number, e.g. ORD-1A2B3C4D
	CustomerName  string
	CustomerEmail string
	Status        Status
	Items         []OrderItem
	Total         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
