package models

import "time"

// Product represents a catalog record.
//
// Price is what the customer is charged; OriginalPrice is the list price it
// was derived from and the base for every later repricing. DiscountPercentage
// is never set directly, it follows from Stock.
type Product struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name               string    `json:"name" gorm:"type:varchar(200);not null"`
	Description        string    `json:"description" gorm:"type:text"`
	Category           string    `json:"category,omitempty" gorm:"type:varchar(100)"`
	ImageURL           string    `json:"imageUrl,omitempty" gorm:"type:varchar(500)"`
	Stock              int       `json:"stock" gorm:"not null;default:0"`
	OriginalPrice      float64   `json:"originalPrice" gorm:"type:decimal(10,2)"`
	Price              float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountPercentage int       `json:"discountPercentage" gorm:"not null;default:0"`
	SKU                string    `json:"sku" gorm:"type:varchar(50);uniqueIndex"`
	IsActive           bool      `json:"isActive" gorm:"not null"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
