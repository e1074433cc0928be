package models

import "time"

// Shop belongs to the merchant whose email is ShopEmail.
type Shop struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id,omitempty"`
	ShopName    string    `json:"shopName" gorm:"type:varchar(255)" bson:"shopName" validate:"required,max=255"`
	OwnerName   string    `json:"ownerName" gorm:"type:varchar(255)" bson:"ownerName" validate:"required,max=255"`
	ShopNumber  string    `json:"shopNumber" gorm:"type:varchar(64)" bson:"shopNumber"`
	ShopAddress string    `json:"shopAddress" gorm:"type:varchar(500)" bson:"shopAddress"`
	ShopEmail   string    `json:"shopEmail" gorm:"index;type:varchar(255)" bson:"shopEmail" validate:"required,email"`
	District    string    `json:"district" gorm:"type:varchar(100)" bson:"district"`
	PhoneNumber string    `json:"phoneNumber" gorm:"type:varchar(32)" bson:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ShopProfile is the editable subset of a shop.
type ShopProfile struct {
	ShopName    string `json:"shopName" validate:"omitempty,max=255"`
	OwnerName   string `json:"ownerName" validate:"omitempty,max=255"`
	ShopNumber  string `json:"shopNumber" validate:"omitempty,max=64"`
	ShopAddress string `json:"shopAddress" validate:"omitempty,max=500"`
}
