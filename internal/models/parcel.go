package models

import (
	"fmt"
	"time"
)

// ParcelStatus tracks a parcel through delivery.
type ParcelStatus string

const (
	ParcelCreated        ParcelStatus = "created"
	ParcelPickedUp       ParcelStatus = "picked-up"
	ParcelInTransit      ParcelStatus = "in-transit"
	ParcelOutForDelivery ParcelStatus = "out-for-delivery"
	ParcelDelivered      ParcelStatus = "delivered"
	ParcelReturned       ParcelStatus = "returned"
	ParcelCancelled      ParcelStatus = "cancelled"
)

// ParseParcelStatus validates s against the known statuses.
func ParseParcelStatus(s string) (ParcelStatus, error) {
	switch st := ParcelStatus(s); st {
	case ParcelCreated, ParcelPickedUp, ParcelInTransit, ParcelOutForDelivery,
		ParcelDelivered, ParcelReturned, ParcelCancelled:
		return st, nil
	}
	return "", fmt.Errorf("invalid parcel status: %q", s)
}

// CustomerInfo is the recipient snapshot embedded in a parcel.
type CustomerInfo struct {
	Name         string `json:"name" gorm:"type:varchar(255)" bson:"name" validate:"required,max=255"`
	Email        string `json:"email" gorm:"type:varchar(255)" bson:"email" validate:"required,email"`
	Phone        string `json:"phone" gorm:"type:varchar(32)" bson:"phone,omitempty"`
	Division     string `json:"division" gorm:"type:varchar(100)" bson:"division"`
	District     string `json:"district" gorm:"type:varchar(100);index" bson:"district" validate:"required"`
	Address      string `json:"address" gorm:"type:varchar(500)" bson:"address" validate:"required"`
	MerchantName string `json:"merchantName" gorm:"type:varchar(255)" bson:"merchantName,omitempty"`
}

// Parcel is created once, then mutated only through status updates and
// payment confirmation.
type Parcel struct {
	ID                string       `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id,omitempty"`
	CustomerInfo      CustomerInfo `json:"customerInfo" gorm:"embedded;embeddedPrefix:customer_" bson:"customerInfo"`
	Weight            float64      `json:"weight" bson:"weight" validate:"gte=0"`
	Date              string       `json:"date" gorm:"type:varchar(32)" bson:"date"`
	Time              string       `json:"time" gorm:"type:varchar(32)" bson:"time"`
	DeliveryFee       float64      `json:"deliveryFee" bson:"deliveryFee" validate:"gte=0"`
	TotalChargeAmount float64      `json:"TotalchargeAmount" gorm:"column:total_charge_amount" bson:"TotalchargeAmount" validate:"gt=0"`
	Paid              bool         `json:"paid" gorm:"not null;default:false" bson:"paid"`
	PaymentID         string       `json:"paymentId,omitempty" gorm:"type:varchar(64)" bson:"paymentId,omitempty"`
	Status            ParcelStatus `json:"status" gorm:"type:varchar(32);index" bson:"status"`
	SenderEmail       string       `json:"senderEmail" gorm:"index;type:varchar(255)" bson:"senderEmail" validate:"required,email"`
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt" bson:"updatedAt"`
}
