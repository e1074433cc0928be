package models

import "time"

// Customer is a parcel recipient registered by a merchant, unique by email.
type Customer struct {
	ID            string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id,omitempty"`
	Email         string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" bson:"email"`
	MerchantEmail string    `json:"merchantEmail" gorm:"index;type:varchar(255)" bson:"merchantEmail,omitempty" validate:"omitempty,email"`
	Name          string    `json:"name" gorm:"type:varchar(255)" bson:"name,omitempty"`
	Phone         string    `json:"phone" gorm:"type:varchar(32)" bson:"phone,omitempty"`
	Division      string    `json:"division" gorm:"type:varchar(100)" bson:"division,omitempty"`
	District      string    `json:"district" gorm:"type:varchar(100)" bson:"district,omitempty"`
	Address       string    `json:"address" gorm:"type:varchar(500)" bson:"address,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
