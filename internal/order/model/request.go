package model

type OrderItemRequest struct {
	ProductName string `json:"product_name" validate:"required,max=200"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice   int64  `json:"unit_price" validate:"required,gt=0"`
	TotalPrice  int64  `json:"total_price" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	OrderNumber     string             `json:"order_number" validate:"required"`
	Type            string             `json:"type" validate:"required"`
	CustomerID      string             `json:"customer_id" validate:"required,uuid"`
	Subtotal        int64              `json:"subtotal" validate:"gte=0"`
	ShippingFee     int64              `json:"shipping_fee" validate:"gte=0"`
	Discount        int64              `json:"discount" validate:"gte=0"`
	TotalAmount     int64              `json:"total_amount" validate:"gte=0"`
	RentalStartDate string             `json:"rental_start_date"`
	RentalEndDate   string             `json:"rental_end_date"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	ContactPhone    string             `json:"contact_phone"`
	ContactEmail    string             `json:"contact_email"`
	Notes           string             `json:"notes" validate:"omitempty,max=1000"`
	Items           []OrderItemRequest `json:"items" validate:"required,dive"`
}

type UpdateOrderStatusRequest struct {
	Status   string `json:"status" validate:"required,order_status"`
	Operator string `json:"operator" validate:"omitempty,max=100"`
	Remark   string `json:"remark" validate:"omitempty,max=500"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type BatchUpdateStatusRequest struct {
	IDs      []string `json:"ids" validate:"required"`
	Status   string   `json:"status" validate:"required,order_status"`
	Operator string   `json:"operator" validate:"omitempty,max=100"`
}

type OrderFilterRequest struct {
	Keyword   string `form:"keyword"`
	Status    string `form:"status"`
	Type      string `form:"type"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}
