package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/theomoutet/coach-portal/internal/middleware"
	"github.com/theomoutet/coach-portal/internal/models"
	"github.com/theomoutet/coach-portal/internal/portal"
	ucaccount "github.com/theomoutet/coach-portal/internal/usecase/account"
	ucadmin "github.com/theomoutet/coach-portal/internal/usecase/admin"
	ucclient "github.com/theomoutet/coach-portal/internal/usecase/client"
)

type PortalGormRepository struct {
	db *gorm.DB
}

func NewPortalGormRepository(db *gorm.DB) *PortalGormRepository {
	return &PortalGormRepository{db: db}
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *PortalGormRepository) ProfileByID(
	ctx context.Context,
	id string,
) (*models.UserProfile, error) {

	var profile models.UserProfile
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, portal.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *PortalGormRepository) RoleOf(
	ctx context.Context,
	userID string,
) (models.Role, error) {

	profile, err := r.ProfileByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}

func (r *PortalGormRepository) ClientProfiles(
	ctx context.Context,
) ([]models.UserProfile, error) {

	var profiles []models.UserProfile
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleClient).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *PortalGormRepository) CreateProfile(
	ctx context.Context,
	profile *models.UserProfile,
) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// UpdateProfile writes all mutable fields in a single update call. Role is
// deliberately not among them.
func (r *PortalGormRepository) UpdateProfile(
	ctx context.Context,
	profile *models.UserProfile,
) error {
	return r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"full_name":  profile.FullName,
			"email":      profile.Email,
			"phone":      profile.Phone,
			"address":    profile.Address,
			"birth_date": profile.BirthDate,
		}).Error
}

// DeleteProfile removes the profile row. Appointments, invoices and session
// logs follow through ON DELETE CASCADE; weight logs carry no foreign key and
// are cleaned up in the same transaction.
func (r *PortalGormRepository) DeleteProfile(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).
			Delete(&models.WeightLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).
			Delete(&models.UserProfile{}).Error
	})
}

// --------------------------------------------------
// Weight logs
// --------------------------------------------------

func (r *PortalGormRepository) WeightLogsForClient(
	ctx context.Context,
	clientID string,
) ([]models.WeightLog, error) {

	var logs []models.WeightLog
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC, created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PortalGormRepository) CreateWeightLog(
	ctx context.Context,
	log *models.WeightLog,
) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *PortalGormRepository) LastWeight(
	ctx context.Context,
	clientID string,
) (*float64, error) {

	var log models.WeightLog
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC, created_at DESC").
		First(&log).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log.Weight, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *PortalGormRepository) AppointmentsForClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *PortalGormRepository) AllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("date_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Invoices
// --------------------------------------------------

func (r *PortalGormRepository) Invoices(
	ctx context.Context,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *PortalGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *PortalGormRepository) SetInvoiceFileKey(
	ctx context.Context,
	invoiceID string,
	fileKey string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", invoiceID).
		Update("file_key", fileKey).Error
}

func (r *PortalGormRepository) DeleteInvoice(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Invoice{}).Error
}

// --------------------------------------------------
// Session audit
// --------------------------------------------------

func (r *PortalGormRepository) RecordLogout(
	ctx context.Context,
	log *models.SessionLog,
) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *PortalGormRepository) SessionLogs(
	ctx context.Context,
) ([]models.SessionLog, error) {

	var logs []models.SessionLog
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Compile-time checks
var (
	_ portal.ProfileStore      = (*PortalGormRepository)(nil)
	_ portal.SessionAuditStore = (*PortalGormRepository)(nil)
	_ middleware.ProfileRoles  = (*PortalGormRepository)(nil)
	_ ucaccount.ProfileStore   = (*PortalGormRepository)(nil)
	_ ucclient.Repository      = (*PortalGormRepository)(nil)
	_ ucadmin.Repository       = (*PortalGormRepository)(nil)
)
