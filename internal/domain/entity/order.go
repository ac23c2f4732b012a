package entity

import "time"

// Order statuses. Transitions are driven by the admin back-office; the
// delivery timeline shown to customers is a static mock derived from them.
const (
	StatusProcessing = "Processing"
	StatusConfirmed  = "Confirmed"
	StatusOnTheWay   = "On the way"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusProcessing, StatusConfirmed, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a priced line of an order. Price is the unit price captured
// from the catalog at checkout time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	Image     string  `json:"image"`
}

// TimelineStep is one entry of the mock delivery timeline.
type TimelineStep struct {
	Status    string    `json:"status"`
	Time      time.Time `json:"time"`
	Completed bool      `json:"completed"`
}

// Order is a placed (simulated-payment) order.
type Order struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Status      string         `json:"status"`
	Items       []OrderItem    `json:"items"`
	Subtotal    float64        `json:"subtotal"`
	DeliveryFee float64        `json:"deliveryFee"`
	Total       float64        `json:"total"`
	Address     string         `json:"address"`
	PaymentRef  string         `json:"paymentRef"`
	Timeline    []TimelineStep `json:"timeline"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Ongoing reports whether the order is still in flight.
func (o *Order) Ongoing() bool {
	switch o.Status {
	case StatusProcessing, StatusConfirmed, StatusOnTheWay:
		return true
	}
	return false
}
