package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Units accepted for feed stock quantities.
const (
	UnitKg   = "kg"
	UnitBags = "bags"
	UnitTons = "tons"
)

// FeedStock captures a feed purchase held in inventory.
type FeedStock struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FeedType     string             `bson:"feedType" json:"feedType"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Unit         string             `bson:"unit" json:"unit"`
	Supplier     string             `bson:"supplier" json:"supplier"`
	PurchaseDate time.Time          `bson:"purchaseDate" json:"purchaseDate"`
	ExpiryDate   time.Time          `bson:"expiryDate" json:"expiryDate"`
	CostPerUnit  float64            `bson:"costPerUnit" json:"costPerUnit"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// FeedStockUpdate carries the mutable fields of a partial stock update.
// Nil members are left untouched.
type FeedStockUpdate struct {
	FeedType     *string    `json:"feedType"`
	Quantity     *float64   `json:"quantity"`
	Unit         *string    `json:"unit"`
	Supplier     *string    `json:"supplier"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	CostPerUnit  *float64   `json:"costPerUnit"`
}

// Validate applies the store's field constraints before a write is accepted.
func (f *FeedStock) Validate() error {
	var verr ValidationError

	if f.FeedType == "" {
		verr.Add("feedType", "feedType is required")
	}
	if f.Quantity < 0 {
		verr.Add("quantity", "quantity must not be negative")
	}
	if f.Supplier == "" {
		verr.Add("supplier", "supplier is required")
	}
	if f.PurchaseDate.IsZero() {
		verr.Add("purchaseDate", "purchaseDate is required")
	}
	if f.ExpiryDate.IsZero() {
		verr.Add("expiryDate", "expiryDate is required")
	}
	if f.CostPerUnit < 0 {
		verr.Add("costPerUnit", "costPerUnit must not be negative")
	}

	if f.Unit == "" {
		f.Unit = UnitKg
	}
	switch f.Unit {
	case UnitKg, UnitBags, UnitTons:
	default:
		verr.Add("unit", "unit must be kg, bags or tons")
	}

	return verr.OrNil()
}

// Validate checks the populated fields of a partial update.
func (u *FeedStockUpdate) Validate() error {
	var verr ValidationError

	if u.FeedType != nil && *u.FeedType == "" {
		verr.Add("feedType", "feedType must not be empty")
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		verr.Add("quantity", "quantity must not be negative")
	}
	if u.Supplier != nil && *u.Supplier == "" {
		verr.Add("supplier", "supplier must not be empty")
	}
	if u.CostPerUnit != nil && *u.CostPerUnit < 0 {
		verr.Add("costPerUnit", "costPerUnit must not be negative")
	}
	if u.Unit != nil {
		switch *u.Unit {
		case UnitKg, UnitBags, UnitTons:
		default:
			verr.Add("unit", "unit must be kg, bags or tons")
		}
	}

	return verr.OrNil()
}
