package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
}

type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	OrderNumber        string              `json:"order_number"`
	Type               string              `json:"type"`
	CustomerID         uuid.UUID           `json:"customer_id"`
	Status             string              `json:"status"`
	StatusLabel        string              `json:"status_label"`
	PaymentStatus      string              `json:"payment_status"`
	PaymentStatusLabel string              `json:"payment_status_label"`
	Subtotal           int64               `json:"subtotal"`
	ShippingFee        int64               `json:"shipping_fee"`
	Discount           int64               `json:"discount"`
	TotalAmount        int64               `json:"total_amount"`
	RentalStartDate    *time.Time          `json:"rental_start_date"`
	RentalEndDate      *time.Time          `json:"rental_end_date"`
	DeliveryAddress    string              `json:"delivery_address"`
	ContactPhone       string              `json:"contact_phone"`
	ContactEmail       string              `json:"contact_email"`
	Notes              string              `json:"notes"`
	Items              []OrderItemResponse `json:"items"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// BatchStatusResult reports per-ID outcomes of a batch status update.
type BatchStatusResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

func (o *Order) ToResponse() *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return &OrderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		Type:               o.Type,
		CustomerID:         o.CustomerID,
		Status:             string(o.Status),
		StatusLabel:        o.Status.Label(),
		PaymentStatus:      string(o.PaymentStatus),
		PaymentStatusLabel: o.PaymentStatus.Label(),
		Subtotal:           o.Subtotal,
		ShippingFee:        o.ShippingFee,
		Discount:           o.Discount,
		TotalAmount:        o.TotalAmount,
		RentalStartDate:    o.RentalStartDate,
		RentalEndDate:      o.RentalEndDate,
		DeliveryAddress:    o.DeliveryAddress,
		ContactPhone:       o.ContactPhone,
		ContactEmail:       o.ContactEmail,
		Notes:              o.Notes,
		Items:              items,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
