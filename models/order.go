package models

// OrderStatus is the order lifecycle. Orders are created as placed and
// never advanced by this service.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPacked    OrderStatus = "packed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// GuestUserID is the sentinel owner for orders placed without signing in.
const GuestUserID = "guest"

// Order is an immutable record of a checkout. Items are a by-value
// snapshot of the cart at placement time.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Items         []CartItem  `json:"items"`
	Total         int         `json:"total"`
	Status        OrderStatus `json:"status"`
	Date          string      `json:"date"`
	PaymentMethod string      `json:"payment_method"`
}
