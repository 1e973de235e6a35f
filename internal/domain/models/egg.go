package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection time slots for egg production records.
const (
	CollectionMorning   = "Morning"
	CollectionAfternoon = "Afternoon"
	CollectionEvening   = "Evening"
)

// EggProduction captures one egg collection entry.
type EggProduction struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date           time.Time          `bson:"date" json:"date"`
	TotalEggs      int                `bson:"totalEggs" json:"totalEggs"`
	BrokenEggs     int                `bson:"brokenEggs" json:"brokenEggs"`
	CollectionTime string             `bson:"collectionTime" json:"collectionTime"`
	Notes          string             `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate applies the store's field constraints before a write is accepted.
func (e *EggProduction) Validate() error {
	var verr ValidationError

	if e.Date.IsZero() {
		verr.Add("date", "date is required")
	}
	if e.TotalEggs < 0 {
		verr.Add("totalEggs", "totalEggs must not be negative")
	}
	if e.BrokenEggs < 0 {
		verr.Add("brokenEggs", "brokenEggs must not be negative")
	}
	if e.BrokenEggs > e.TotalEggs && e.TotalEggs >= 0 {
		verr.Add("brokenEggs", "brokenEggs must not exceed totalEggs")
	}

	if e.CollectionTime == "" {
		e.CollectionTime = CollectionMorning
	}
	switch e.CollectionTime {
	case CollectionMorning, CollectionAfternoon, CollectionEvening:
	default:
		verr.Add("collectionTime", "collectionTime must be Morning, Afternoon or Evening")
	}

	return verr.OrNil()
}
