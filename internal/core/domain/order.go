package domain

// Order statuses as reported by the order service.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order mirrors the order service's DTO.
type Order struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	ProductID       string  `json:"productId"`
	Quantity        int     `json:"quantity"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status,omitempty"`
	ShippingAddress string  `json:"shippingAddress,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}
