package database

import (
	adminmodel "robot-rental-admin/internal/admin/model"
	charitymodel "robot-rental-admin/internal/charity/model"
	customermodel "robot-rental-admin/internal/customer/model"
	devicemodel "robot-rental-admin/internal/device/model"
	ordermodel "robot-rental-admin/internal/order/model"
	rentalmodel "robot-rental-admin/internal/rental/model"
)

// Migrate creates or updates the schema for every entity table.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&adminmodel.AdminUser{},
		&customermodel.Customer{},
		&devicemodel.Device{},
		&ordermodel.Order{},
		&ordermodel.OrderItem{},
		&ordermodel.OrderLog{},
		&rentalmodel.Rental{},
		&charitymodel.CharityInstitution{},
		&charitymodel.CharityActivity{},
	)
}
