package domain

// OrderStatus is the lifecycle state of an order, as defined by the catalog
// backend.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// AllowedTransitions defines the legal order status state machine.
// DELIVERED and CANCELLED are terminal.
func AllowedTransitions() map[OrderStatus][]OrderStatus {
	return map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusShipping, OrderStatusCancelled},
		OrderStatusShipping:  {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	}
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return len(AllowedTransitions()[s]) == 0
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range AllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in one step.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return AllowedTransitions()[s]
}

// OrderItem is a line item snapshot taken at purchase time.
type OrderItem struct {
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductType     string  `json:"productType"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	OldPrice        float64 `json:"oldPrice"`
	ImageURL        string  `json:"imageUrl"`
}

// Order mirrors the catalog backend's admin order representation.
type Order struct {
	OrderID         int64       `json:"orderId"`
	ShippingAddress string      `json:"shippingAddress"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
	CreatedBy       string      `json:"createdBy"`
	UpdatedBy       string      `json:"updatedBy,omitempty"`
}
