package models

import "time"

// DefaultProductImage is used when a product is created without an image URL.
const DefaultProductImage = "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"

// CreditProduct is a catalog entry describing a loan offering.
// Products are created once and never updated by this application;
// CreatedAt and UpdatedAt are stamped at insert time only.
type CreditProduct struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"not null;index" json:"name"`
	Description    string    `gorm:"not null" json:"description"`
	MinAmount      float64   `gorm:"not null" json:"minAmount"`
	MaxAmount      float64   `gorm:"not null" json:"maxAmount"`
	InterestRate   float64   `gorm:"not null" json:"interestRate"` // annual, percent
	MaxTerm        int       `gorm:"not null" json:"maxTerm"`      // months
	Requirements   string    `json:"requirements"`
	Image          string    `json:"image"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	IdempotencyKey string    `gorm:"uniqueIndex" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateProductInput is the payload for registering a new credit product.
type CreateProductInput struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	MinAmount      float64 `json:"minAmount"`
	MaxAmount      float64 `json:"maxAmount"`
	InterestRate   float64 `json:"interestRate"`
	MaxTerm        int     `json:"maxTerm"`
	Requirements   string  `json:"requirements"`
	Image          string  `json:"image"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

// ProductBounds holds the slider limits derived from the loaded catalog.
type ProductBounds struct {
	MinAmount   float64 `json:"minAmount"`
	MaxAmount   float64 `json:"maxAmount"`
	MinInterest float64 `json:"minInterest"`
	MaxInterest float64 `json:"maxInterest"`
}
