package postgres

import (
	"context"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *doctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	var doctor domain.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	var doctors []*domain.Doctor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	return r.db.WithContext(ctx).
		Model(&domain.Doctor{}).
		Where("id = ?", doctor.ID).
		Select("name", "image", "specialty", "history", "schedule", "price", "is_available", "rating", "updated_at").
		Updates(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Doctor{}, "id = ?", id).Error
}
