package notify

import (
	"fmt"

	"speedxpress/internal/models"
)

const outro = "Visit Our Website speedxpress.com"

const (
	SubjectParcelCreated = "Place Order Successfully"
	SubjectParcelStatus  = "Place Was Accepted"
	SubjectShopCreated   = "Shop Created Successfully"
	SubjectPayment       = "Parcel Payment Successfully"
)

// Entry is one labelled cell of the email table.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Template is the variable part of a notification email. The renderer adds
// branding and the fixed outro.
type Template struct {
	Name  string    `json:"name"`
	Intro string    `json:"intro"`
	Rows  [][]Entry `json:"rows"`
}

func info(format string, args ...interface{}) []Entry {
	return []Entry{{Key: "Info", Value: fmt.Sprintf(format, args...)}}
}

func parcelRows(p *models.Parcel) [][]Entry {
	c := p.CustomerInfo
	paid := "Unpaid"
	if p.Paid {
		paid = "Paid"
	}
	sender := c.MerchantName
	if sender == "" {
		sender = "Sender"
	}
	return [][]Entry{
		{{Key: "Parcel Information", Value: "Time: " + p.Time}},
		info("Date: %s", p.Date),
		info("Status: %s", paid),
		info("Address: %s, %s, %s", c.Division, c.District, c.Address),
		info("Parcel Weight: %g", p.Weight),
		info("Fee: %g, Total: %g", p.DeliveryFee, p.TotalChargeAmount),
		info("SenderName: %s", sender),
		info("SenderEmail: %s", p.SenderEmail),
	}
}

// ParcelCreated is sent once a parcel is stored.
func ParcelCreated(p *models.Parcel) Template {
	return Template{
		Name:  p.CustomerInfo.Name,
		Intro: fmt.Sprintf("Your parcel was created. ID: %s", p.ID),
		Rows:  parcelRows(p),
	}
}

// ParcelStatusChanged is sent after a status update.
func ParcelStatusChanged(p *models.Parcel) Template {
	rows := parcelRows(p)
	rows = append(rows, info("Delivery Status: %s", p.Status))
	return Template{
		Name:  p.CustomerInfo.Name,
		Intro: fmt.Sprintf("Your parcel is now %s. ID: %s", p.Status, p.ID),
		Rows:  rows,
	}
}

// ShopCreated confirms a new shop to its owner.
func ShopCreated(s *models.Shop) Template {
	return Template{
		Name:  s.OwnerName,
		Intro: "Your Shop has Created",
		Rows: [][]Entry{{
			{Key: "ShopName", Value: s.ShopName},
			{Key: "ShopEmail", Value: s.ShopEmail},
			{Key: "Address", Value: fmt.Sprintf("%s, %s", s.District, s.ShopAddress)},
			{Key: "Number", Value: s.PhoneNumber},
		}},
	}
}

// PaymentReceived is the receipt sent to the payer.
func PaymentReceived(parcelID string, token models.PaymentToken) Template {
	return Template{
		Name:  token.Email,
		Intro: fmt.Sprintf("Payment Successfully. Parcel ID: %s", parcelID),
		Rows: [][]Entry{{
			{Key: "Status", Value: "Paid"},
			{Key: "Payment", Value: token.Type},
			{Key: "Brand", Value: token.Card.Brand},
			{Key: "Country", Value: token.Card.Country},
			{Key: "Card", Value: token.Card.Funding},
			{Key: "Last4", Value: token.Card.Last4},
		}},
	}
}
