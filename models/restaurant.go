package models

import "github.com/shopspring/decimal"

type Restaurant struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"not null"`
	Image        string          `json:"image"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"delivery_time"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	Cuisine      string          `json:"cuisine"`
	Featured     bool            `json:"featured" gorm:"default:false"`
}

// MenuItem carries no restaurant foreign key: the demo dataset renders
// the same menu for whichever restaurant is selected.
type MenuItem struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Popular     bool            `json:"popular" gorm:"default:false"`
}
