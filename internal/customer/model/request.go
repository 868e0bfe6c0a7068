package model

type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Type         string `json:"type" validate:"required,customer_type"`
	ContactPhone string `json:"contact_phone" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateCustomerRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=200"`
	Type         *string `json:"type" validate:"omitempty,customer_type"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

type CustomerFilterRequest struct {
	Keyword  string `form:"keyword"`
	Type     string `form:"type"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
