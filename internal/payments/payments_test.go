package payments

import (
	"context"
	"errors"
	"net"
	"testing"

	"speedxpress/internal/apperr"

	"github.com/braintree-go/braintree-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTransactions struct {
	mock.Mock
}

func (m *MockTransactions) Create(ctx context.Context, tx *braintree.TransactionRequest) (*braintree.Transaction, error) {
	args := m.Called(ctx, tx)
	if t := args.Get(0); t != nil {
		return t.(*braintree.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactions) Search(ctx context.Context, query *braintree.SearchQuery) (*braintree.TransactionSearchResult, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.(*braintree.TransactionSearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// timeoutError is a read timeout after the request was written.
type timeoutError struct{}

func (timeoutError) Error() string   { return "read tcp 10.0.0.1:443: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func newTestProcessor(m *MockTransactions) *BraintreeProcessor {
	return &BraintreeProcessor{transactions: m, merchantAccountID: "acct", logger: zap.NewNop()}
}

func TestToMinorUnits(t *testing.T) {
	assert.EqualValues(t, 50000, ToMinorUnits(500))
	assert.EqualValues(t, 1999, ToMinorUnits(19.99))
	assert.EqualValues(t, 1, ToMinorUnits(0.005))
	assert.EqualValues(t, 0, ToMinorUnits(0))
	assert.Equal(t, "500.00", FormatMinorUnits(50000))
}

func TestBraintreeChargeSuccess(t *testing.T) {
	m := new(MockTransactions)
	m.On("Create", mock.Anything, mock.MatchedBy(func(req *braintree.TransactionRequest) bool {
		return req.Type == "sale" &&
			req.Amount.Unscaled == 50000 && req.Amount.Scale == 2 &&
			req.PaymentMethodNonce == "nonce-1" &&
			req.OrderId == "parcel-1" &&
			req.MerchantAccountId == "acct" &&
			req.Options.SubmitForSettlement
	})).Return(&braintree.Transaction{Id: "txn_1", Status: braintree.TransactionStatusSubmittedForSettlement}, nil).Once()

	res, err := newTestProcessor(m).Charge(context.Background(), ChargeRequest{
		AmountMinor: 50000,
		Currency:    "USD",
		SourceToken: "nonce-1",
		OrderID:     "parcel-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "txn_1", res.TransactionID)
	assert.Equal(t, "500.00", res.Amount)
	assert.Equal(t, "usd", res.Currency)
	m.AssertExpectations(t)
}

func TestBraintreeChargeDeclinedIsNotRetried(t *testing.T) {
	m := new(MockTransactions)
	m.On("Create", mock.Anything, mock.Anything).
		Return(&braintree.Transaction{Id: "txn_2", Status: braintree.TransactionStatusProcessorDeclined, ProcessorResponseText: "Do Not Honor"}, nil).Once()

	_, err := newTestProcessor(m).Charge(context.Background(), ChargeRequest{AmountMinor: 100, SourceToken: "n"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPaymentDeclined))
	m.AssertNumberOfCalls(t, "Create", 1)
}

func TestBraintreeChargeDialErrorIsRetried(t *testing.T) {
	m := new(MockTransactions)
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	m.On("Create", mock.Anything, mock.Anything).Return(nil, dialErr).Once()
	m.On("Create", mock.Anything, mock.Anything).
		Return(&braintree.Transaction{Id: "txn_3", Status: braintree.TransactionStatusSettling}, nil).Once()

	res, err := newTestProcessor(m).Charge(context.Background(), ChargeRequest{AmountMinor: 100, SourceToken: "n", OrderID: "parcel-1"})
	require.NoError(t, err)
	assert.Equal(t, "txn_3", res.TransactionID)
	m.AssertNumberOfCalls(t, "Create", 2)
	m.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestBraintreeChargeLostResponseRecoversSale(t *testing.T) {
	m := new(MockTransactions)
	m.On("Create", mock.Anything, mock.Anything).Return(nil, &net.OpError{Op: "read", Net: "tcp", Err: timeoutError{}}).Once()
	m.On("Search", mock.Anything, mock.Anything).Return(&braintree.TransactionSearchResult{
		Transactions: []*braintree.Transaction{
			{Id: "txn_old", Status: braintree.TransactionStatusProcessorDeclined},
			{Id: "txn_4", Status: braintree.TransactionStatusSubmittedForSettlement},
		},
	}, nil).Once()

	res, err := newTestProcessor(m).Charge(context.Background(), ChargeRequest{AmountMinor: 100, SourceToken: "n", OrderID: "parcel-1"})
	require.NoError(t, err)
	assert.Equal(t, "txn_4", res.TransactionID)
	m.AssertNumberOfCalls(t, "Create", 1)
}

func TestBraintreeChargeLostResponseWithoutSaleIsUnavailable(t *testing.T) {
	m := new(MockTransactions)
	m.On("Create", mock.Anything, mock.Anything).Return(nil, &net.OpError{Op: "read", Net: "tcp", Err: timeoutError{}}).Once()
	m.On("Search", mock.Anything, mock.Anything).Return(&braintree.TransactionSearchResult{}, nil).Once()

	_, err := newTestProcessor(m).Charge(context.Background(), ChargeRequest{AmountMinor: 100, SourceToken: "n", OrderID: "parcel-1"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
	assert.False(t, apperr.Is(err, apperr.KindPaymentDeclined))
	m.AssertNumberOfCalls(t, "Create", 1)
}

func TestBraintreeChargeGatewayErrorIsDeclined(t *testing.T) {
	m := new(MockTransactions)
	m.On("Create", mock.Anything, mock.Anything).Return(nil, &braintree.BraintreeError{ErrorMessage: "Cannot use a payment_method_nonce more than once."}).Once()

	_, err := newTestProcessor(m).Charge(context.Background(), ChargeRequest{AmountMinor: 100, SourceToken: "n", OrderID: "parcel-1"})
	assert.True(t, apperr.Is(err, apperr.KindPaymentDeclined))
	m.AssertNumberOfCalls(t, "Create", 1)
	m.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestBraintreeChargeRejectsBadRequest(t *testing.T) {
	m := new(MockTransactions)
	p := newTestProcessor(m)

	_, err := p.Charge(context.Background(), ChargeRequest{AmountMinor: 0, SourceToken: "n"})
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))

	_, err = p.Charge(context.Background(), ChargeRequest{AmountMinor: 100})
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))

	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
