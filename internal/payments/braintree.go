package payments

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"speedxpress/internal/apperr"

	"github.com/braintree-go/braintree-go"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const maxChargeRetries = 3

// BraintreeConfig holds gateway credentials.
type BraintreeConfig struct {
	Environment       string
	MerchantID        string
	PublicKey         string
	PrivateKey        string
	MerchantAccountID string
}

// transactionGateway is the slice of the Braintree gateway used for sales.
type transactionGateway interface {
	Create(ctx context.Context, tx *braintree.TransactionRequest) (*braintree.Transaction, error)
	Search(ctx context.Context, query *braintree.SearchQuery) (*braintree.TransactionSearchResult, error)
}

// BraintreeProcessor charges payment-method nonces as immediate-settlement
// sales.
type BraintreeProcessor struct {
	transactions      transactionGateway
	merchantAccountID string
	logger            *zap.Logger
}

// NewBraintreeProcessor initializes the Braintree SDK gateway.
func NewBraintreeProcessor(cfg BraintreeConfig, logger *zap.Logger) *BraintreeProcessor {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}
	gateway := braintree.New(env, cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey)
	return &BraintreeProcessor{
		transactions:      gateway.Transaction(),
		merchantAccountID: cfg.MerchantAccountID,
		logger:            logger,
	}
}

func (p *BraintreeProcessor) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.AmountMinor <= 0 {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "charge amount must be positive, got %d", req.AmountMinor)
	}
	if req.SourceToken == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "payment token is required")
	}

	// Braintree expects NewDecimal(unscaled, scale): 50000 minor units at
	// scale 2 is 500.00.
	txReq := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(req.AmountMinor, 2),
		PaymentMethodNonce: req.SourceToken,
		OrderId:            req.OrderID,
		MerchantAccountId:  p.merchantAccountID,
		Customer: &braintree.CustomerRequest{
			Email: req.ReceiptEmail,
		},
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	var tx *braintree.Transaction
	attempt := 0
	op := func() error {
		attempt++
		var err error
		tx, err = p.transactions.Create(ctx, txReq)
		if err != nil {
			var btErr *braintree.BraintreeError
			if errors.As(err, &btErr) {
				// Validation errors and declines will not succeed on retry.
				return backoff.Permanent(apperr.Wrap(apperr.KindPaymentDeclined, "payment was declined", err))
			}
			p.logger.Warn("braintree charge attempt failed",
				zap.String("orderId", req.OrderID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			if neverSent(err) {
				return err
			}

			// The sale may have reached the gateway before the response was
			// lost. Nonces are single-use, so never resend; look the sale up.
			prior, lookupErr := p.findSale(ctx, req.OrderID)
			if lookupErr != nil {
				p.logger.Error("braintree charge outcome unknown",
					zap.String("orderId", req.OrderID),
					zap.NamedError("lookupError", lookupErr),
					zap.Error(err))
				return backoff.Permanent(err)
			}
			if prior == nil {
				return backoff.Permanent(err)
			}
			p.logger.Info("recovered braintree sale after lost response",
				zap.String("orderId", req.OrderID),
				zap.String("transactionId", prior.Id))
			tx = prior
		}
		if declined(tx.Status) {
			return backoff.Permanent(apperr.Wrap(apperr.KindPaymentDeclined, "payment was declined",
				fmt.Errorf("transaction %s %s: %s", tx.Id, tx.Status, tx.ProcessorResponseText)))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxChargeRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		if apperr.Is(err, apperr.KindPaymentDeclined) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "payment processor unavailable", err)
	}

	return &ChargeResult{
		TransactionID: tx.Id,
		Status:        string(tx.Status),
		Amount:        FormatMinorUnits(req.AmountMinor),
		Currency:      strings.ToLower(req.Currency),
	}, nil
}

func declined(status braintree.TransactionStatus) bool {
	switch status {
	case braintree.TransactionStatusProcessorDeclined,
		braintree.TransactionStatusGatewayRejected,
		braintree.TransactionStatusFailed,
		braintree.TransactionStatusVoided:
		return true
	}
	return false
}

// findSale returns the settled-or-pending sale recorded under orderID, or
// nil when the gateway has none.
func (p *BraintreeProcessor) findSale(ctx context.Context, orderID string) (*braintree.Transaction, error) {
	if orderID == "" {
		return nil, nil
	}
	query := new(braintree.SearchQuery)
	query.AddTextField("order-id").Is = orderID
	result, err := p.transactions.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, tx := range result.Transactions {
		if !declined(tx.Status) {
			return tx, nil
		}
	}
	return nil, nil
}

// neverSent reports whether err happened before the request could reach the
// gateway, which makes resending the nonce safe.
func neverSent(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}
