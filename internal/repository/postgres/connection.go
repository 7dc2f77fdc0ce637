package postgres

import (
	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/ayune/ayune-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.SkinType{},
		&domain.SkinConcern{},
		&domain.Brand{},
		&domain.Category{},
		&domain.Account{},
		&domain.Credential{},
		&domain.Doctor{},
		&domain.Product{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Account:    NewAccountRepository(db),
		Credential: NewCredentialRepository(db),
		Doctor:     NewDoctorRepository(db),
		Product:    NewProductRepository(db),
	}
}
