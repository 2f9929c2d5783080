package controllers

import (
	"scholarhub/models"

	"gorm.io/gorm"
)

// Controller carries the dependencies every handler needs. The database
// handle and the payment provider are injected so tests can substitute an
// in-memory database and a fake provider.
type Controller struct {
	DB          *gorm.DB
	Payments    PaymentProvider
	TokenSecret []byte
}

func New(db *gorm.DB, payments PaymentProvider, tokenSecret []byte) *Controller {
	return &Controller{DB: db, Payments: payments, TokenSecret: tokenSecret}
}

// MigrateModels runs the database migrations.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Scholarship{},
		&models.Application{},
		&models.Review{},
	)
}
