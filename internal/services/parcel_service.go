package services

import (
	"context"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/notify"
	"speedxpress/internal/repositories"

	"go.uber.org/zap"
)

// ParcelService handles business logic related to parcels.
type ParcelService struct {
	parcels  repositories.ParcelRepository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewParcelService creates a new ParcelService.
func NewParcelService(parcels repositories.ParcelRepository, notifier notify.Notifier, logger *zap.Logger) *ParcelService {
	return &ParcelService{parcels: parcels, notifier: notifier, logger: logger}
}

// CreateParcel stores a new unpaid parcel and emails the sender. Payment
// state supplied by the client is ignored.
func (s *ParcelService) CreateParcel(ctx context.Context, parcel *models.Parcel) (string, error) {
	parcel.ID = ""
	parcel.Paid = false
	parcel.PaymentID = ""
	if parcel.Status == "" {
		parcel.Status = models.ParcelCreated
	} else if _, err := models.ParseParcelStatus(string(parcel.Status)); err != nil {
		return "", apperr.Wrap(apperr.KindInvalidArgument, err.Error(), err)
	}

	if err := s.parcels.Create(ctx, parcel); err != nil {
		return "", err
	}
	s.logger.Info("parcel created",
		zap.String("parcelId", parcel.ID),
		zap.String("senderEmail", parcel.SenderEmail),
		zap.Float64("total", parcel.TotalChargeAmount))

	sendMail(ctx, s.notifier, s.logger, parcel.SenderEmail, notify.SubjectParcelCreated, notify.ParcelCreated(parcel))
	return parcel.ID, nil
}

// GetParcel returns one parcel by id.
func (s *ParcelService) GetParcel(ctx context.Context, id string) (*models.Parcel, error) {
	return s.parcels.GetByID(ctx, id)
}

// ListBySender returns the parcels created by senderEmail.
func (s *ParcelService) ListBySender(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	return s.parcels.ListBySender(ctx, senderEmail)
}

// ListByDistrict returns parcels bound for district. An empty status
// matches every status.
func (s *ParcelService) ListByDistrict(ctx context.Context, district, status string) ([]models.Parcel, error) {
	var st models.ParcelStatus
	if status != "" {
		parsed, err := models.ParseParcelStatus(status)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidArgument, err.Error(), err)
		}
		st = parsed
	}
	return s.parcels.ListByDistrict(ctx, district, st)
}

// ListAll returns every parcel.
func (s *ParcelService) ListAll(ctx context.Context) ([]models.Parcel, error) {
	return s.parcels.ListAll(ctx)
}

// UpdateStatus moves a parcel to status and emails the sender.
func (s *ParcelService) UpdateStatus(ctx context.Context, id, status string) error {
	st, err := models.ParseParcelStatus(status)
	if err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, err.Error(), err)
	}
	if err := s.parcels.UpdateStatus(ctx, id, st); err != nil {
		return err
	}
	s.logger.Info("parcel status updated", zap.String("parcelId", id), zap.String("status", string(st)))

	parcel, err := s.parcels.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("reload parcel for notification failed", zap.String("parcelId", id), zap.Error(err))
		return nil
	}
	sendMail(ctx, s.notifier, s.logger, parcel.SenderEmail, notify.SubjectParcelStatus, notify.ParcelStatusChanged(parcel))
	return nil
}
