package models

// Card describes the card behind a payment token, as reported by the client.
type Card struct {
	Brand   string `json:"brand"`
	Country string `json:"country"`
	Funding string `json:"funding"`
	Last4   string `json:"last4" validate:"omitempty,len=4,numeric"`
}

// PaymentToken is the client-side tokenized payment method. ID is the
// single-use source token handed to the card processor.
type PaymentToken struct {
	ID    string `json:"id" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type"`
	Card  Card   `json:"card"`
}

// PaymentRequest asks to charge the total of one parcel.
type PaymentRequest struct {
	ParcelID string       `json:"parcelId" validate:"required"`
	Token    PaymentToken `json:"token"`
}
