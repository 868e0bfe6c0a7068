package model

import (
	"time"

	"github.com/google/uuid"

	"robot-rental-admin/internal/enums"
)

type Customer struct {
	ID           uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string             `json:"name"`
	Type         enums.CustomerType `json:"type"`
	ContactPhone string             `json:"contact_phone"`
	ContactEmail string             `json:"contact_email"`
	Address      string             `json:"address"`
	Notes        string             `json:"notes"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
