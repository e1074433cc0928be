package services

import (
	"context"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/notify"
	"speedxpress/internal/payments"
	"speedxpress/internal/repositories"

	"go.uber.org/zap"
)

// PaymentService charges parcels through the card processor.
type PaymentService struct {
	parcels   repositories.ParcelRepository
	processor payments.Processor
	notifier  notify.Notifier
	currency  string
	logger    *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(parcels repositories.ParcelRepository, processor payments.Processor, notifier notify.Notifier, currency string, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		parcels:   parcels,
		processor: processor,
		notifier:  notifier,
		currency:  currency,
		logger:    logger,
	}
}

// PayParcel charges the parcel's total and marks it paid. A parcel that is
// already paid is rejected before the processor is contacted.
func (s *PaymentService) PayParcel(ctx context.Context, req models.PaymentRequest) (*payments.ChargeResult, error) {
	parcel, err := s.parcels.GetByID(ctx, req.ParcelID)
	if err != nil {
		return nil, err
	}
	if parcel.Paid {
		return nil, apperr.New(apperr.KindConflict, "parcel is already paid")
	}

	amount := payments.ToMinorUnits(parcel.TotalChargeAmount)
	if amount <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "parcel has no amount to charge")
	}

	result, err := s.processor.Charge(ctx, payments.ChargeRequest{
		AmountMinor:  amount,
		Currency:     s.currency,
		SourceToken:  req.Token.ID,
		ReceiptEmail: parcel.CustomerInfo.Email,
		Description:  "The amount paid by " + parcel.CustomerInfo.Name,
		OrderID:      parcel.ID,
	})
	if err != nil {
		s.logger.Warn("charge failed", zap.String("parcelId", parcel.ID), zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}

	if err := s.parcels.MarkPaid(ctx, parcel.ID, result.TransactionID); err != nil {
		// The card has been charged; this needs manual reconciliation.
		s.logger.Error("charge succeeded but parcel was not marked paid",
			zap.String("parcelId", parcel.ID),
			zap.String("transactionId", result.TransactionID),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("parcel paid",
		zap.String("parcelId", parcel.ID),
		zap.String("transactionId", result.TransactionID),
		zap.Int64("amount", amount))

	sendMail(ctx, s.notifier, s.logger, req.Token.Email, notify.SubjectPayment, notify.PaymentReceived(parcel.ID, req.Token))
	return result, nil
}
