package session

import "time"

// User is the mocked identity record. Present = logged in.
type User struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Favorites []int   `json:"favorites"`
	Orders    []Order `json:"orders"`
}

// OrderStatus tracks an order through fulfilment
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// PaymentMethod is how the customer chose to pay
type PaymentMethod string

const (
	PayCard   PaymentMethod = "card"
	PayCash   PaymentMethod = "cash"
	PayOnline PaymentMethod = "online"
)

// Order is a placed order kept on the user record
type Order struct {
	ID              string        `json:"id"`
	Date            time.Time     `json:"date"`
	Status          OrderStatus   `json:"status"`
	Items           []OrderItem   `json:"items"`
	TotalPrice      float64       `json:"total_price"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
}

// OrderItem snapshots one cart line at order time: unlike the live
// cart, an order keeps the name and unit price it was placed with.
type OrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}

// Address is the shipping address collected at checkout
type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}
