package models

import "time"

// AccountType is the role recorded on a user. It is informational only:
// routes do not branch on it beyond filtering listings.
type AccountType string

const (
	AccountAdmin    AccountType = "admin"
	AccountMerchant AccountType = "merchant"
	AccountEmployee AccountType = "employee"
	AccountCustomer AccountType = "customer"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountAdmin, AccountMerchant, AccountEmployee, AccountCustomer:
		return true
	}
	return false
}

// User is the identity record, unique by email.
type User struct {
	ID          string      `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id,omitempty"`
	Email       string      `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" bson:"email"`
	AccountType AccountType `json:"account_type" gorm:"type:varchar(20);index" bson:"account_type,omitempty" validate:"omitempty,oneof=admin merchant employee customer"`
	Name        string      `json:"name" gorm:"type:varchar(255)" bson:"name,omitempty" validate:"omitempty,max=255"`
	Phone       string      `json:"phone" gorm:"type:varchar(32)" bson:"phone,omitempty" validate:"omitempty,max=32"`
	PhotoURL    string      `json:"photoURL" gorm:"type:varchar(1024)" bson:"photoURL,omitempty" validate:"omitempty,url"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}
