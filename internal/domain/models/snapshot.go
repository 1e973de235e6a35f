package models

import "time"

// DailySnapshot is the once-a-day dashboard picture persisted by the
// scheduler for historical reference.
type DailySnapshot struct {
	Date        time.Time `bson:"date" json:"date"`
	Eggs        int       `bson:"eggs_collected" json:"eggs_collected"`
	FeedStock   float64   `bson:"feed_stock" json:"feed_stock"`
	Mortality   int       `bson:"mortality" json:"mortality"`
	ActiveBirds int       `bson:"active_birds" json:"active_birds"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
