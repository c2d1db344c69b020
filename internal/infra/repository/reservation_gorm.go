package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/weecompany/reservas-api/internal/domain/reservation"
	"github.com/weecompany/reservas-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) FindAllWithOwners(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("date_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) FindByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) Update(
	ctx context.Context,
	res *models.Reservation,
) error {

	tx := r.db.WithContext(ctx).Save(res)
	if tx.Error != nil {
		return tx.Error
	}
	// The row can vanish between the existence check and the write.
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReservationGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	tx := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	// A concurrent delete can win the race after the existence check.
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
