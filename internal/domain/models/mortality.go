package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Age groups tracked in mortality records.
const (
	AgeGroupChick    = "Chick"
	AgeGroupJuvenile = "Juvenile"
	AgeGroupAdult    = "Adult"
)

// Mortality captures a bird-loss incident.
type Mortality struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      time.Time          `bson:"date" json:"date"`
	Count     int                `bson:"count" json:"count"`
	AgeGroup  string             `bson:"ageGroup" json:"ageGroup"`
	Cause     string             `bson:"cause" json:"cause"`
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate applies the store's field constraints before a write is accepted.
func (m *Mortality) Validate() error {
	var verr ValidationError

	if m.Date.IsZero() {
		verr.Add("date", "date is required")
	}
	if m.Count < 1 {
		verr.Add("count", "count must be at least 1")
	}
	switch m.AgeGroup {
	case AgeGroupChick, AgeGroupJuvenile, AgeGroupAdult:
	case "":
		verr.Add("ageGroup", "ageGroup is required")
	default:
		verr.Add("ageGroup", "ageGroup must be Chick, Juvenile or Adult")
	}
	if m.Cause == "" {
		verr.Add("cause", "cause is required")
	}

	return verr.OrNil()
}
