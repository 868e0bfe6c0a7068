package model

import (
	"time"

	"github.com/google/uuid"

	"robot-rental-admin/internal/enums"
)

// Order types. Rental orders additionally carry rental dates.
const (
	TypeSales  = "sales"
	TypeRental = "rental"
)

var AllowedOrderTypes = []string{TypeSales, TypeRental}

// Monetary amounts are integer cents throughout. The amount equation
// Subtotal + ShippingFee - Discount == TotalAmount is checked exactly,
// never within a tolerance.
type Order struct {
	ID              uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string              `json:"order_number" gorm:"uniqueIndex"`
	Type            string              `json:"type"`
	CustomerID      uuid.UUID           `json:"customer_id" gorm:"type:uuid"`
	Status          enums.OrderStatus   `json:"status"`
	PaymentStatus   enums.PaymentStatus `json:"payment_status"`
	Subtotal        int64               `json:"subtotal"`
	ShippingFee     int64               `json:"shipping_fee"`
	Discount        int64               `json:"discount"`
	TotalAmount     int64               `json:"total_amount"`
	RentalStartDate *time.Time          `json:"rental_start_date"`
	RentalEndDate   *time.Time          `json:"rental_end_date"`
	DeliveryAddress string              `json:"delivery_address"`
	ContactPhone    string              `json:"contact_phone"`
	ContactEmail    string              `json:"contact_email"`
	Notes           string              `json:"notes"`
	Items           []OrderItem         `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;index"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderLog records every status change for audit. Logs are pruned by the
// housekeeping job after the retention window.
type OrderLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `json:"order_id" gorm:"type:uuid;index"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Operator   string    `json:"operator"`
	Remark     string    `json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
}

func (OrderLog) TableName() string {
	return "order_logs"
}
