package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/barshopapp/barshop-api/internal/domain/payment"
	"github.com/barshopapp/barshop-api/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *PaymentGormRepository) GetPaymentByAppointment(
	ctx context.Context,
	appointmentID uuid.UUID,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) ListPayments(
	ctx context.Context,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *PaymentGormRepository) CollectionsSince(
	ctx context.Context,
	since time.Time,
	bucketFormat string,
) ([]domain.CollectionRow, error) {

	// bucketFormat is one of our own to_char patterns, never user input
	bucket := fmt.Sprintf("to_char(payment_date, '%s')", bucketFormat)

	var rows []domain.CollectionRow
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select(bucket+" AS date, customer_type, COUNT(*) AS count, SUM(amount) AS total_amount").
		Where("status = ? AND payment_date >= ?", "completed", since).
		Group(bucket + ", customer_type").
		Order("date DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *PaymentGormRepository) CollectionTotalsSince(
	ctx context.Context,
	since time.Time,
) ([]domain.CollectionTotal, error) {

	var totals []domain.CollectionTotal
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("customer_type, COUNT(*) AS count, SUM(amount) AS total_amount").
		Where("status = ? AND payment_date >= ?", "completed", since).
		Group("customer_type").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	return totals, nil
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
