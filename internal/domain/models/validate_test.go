package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEggProductionValidate(t *testing.T) {
	valid := EggProduction{Date: time.Now(), TotalEggs: 100, BrokenEggs: 20}
	require.NoError(t, valid.Validate())
	assert.Equal(t, CollectionMorning, valid.CollectionTime, "collectionTime should default to Morning")

	negative := EggProduction{Date: time.Now(), TotalEggs: -1}
	err := negative.Validate()
	require.Error(t, err)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "totalEggs", verr.Fields[0].Field)

	negativeBroken := EggProduction{Date: time.Now(), TotalEggs: 10, BrokenEggs: -1}
	require.Error(t, negativeBroken.Validate())

	brokenExceedsTotal := EggProduction{Date: time.Now(), TotalEggs: 10, BrokenEggs: 11}
	err = brokenExceedsTotal.Validate()
	require.Error(t, err)
	verr, _ = AsValidationError(err)
	assert.Equal(t, "brokenEggs", verr.Fields[0].Field)

	badSlot := EggProduction{Date: time.Now(), TotalEggs: 10, CollectionTime: "Midnight"}
	require.Error(t, badSlot.Validate())

	missingDate := EggProduction{TotalEggs: 10}
	require.Error(t, missingDate.Validate())
}

func TestFeedStockValidate(t *testing.T) {
	valid := FeedStock{
		FeedType:     "Layer Mash",
		Quantity:     50,
		Supplier:     "AgroSupplies",
		PurchaseDate: time.Now(),
		ExpiryDate:   time.Now().AddDate(0, 6, 0),
		CostPerUnit:  12.5,
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, UnitKg, valid.Unit, "unit should default to kg")

	negative := valid
	negative.Quantity = -5
	require.Error(t, negative.Validate())

	badUnit := valid
	badUnit.Unit = "liters"
	require.Error(t, badUnit.Validate())

	missing := FeedStock{}
	err := missing.Validate()
	require.Error(t, err)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(verr.Fields), 4)
}

func TestFeedStockUpdateValidate(t *testing.T) {
	qty := -1.0
	update := FeedStockUpdate{Quantity: &qty}
	require.Error(t, update.Validate())

	good := 20.0
	update = FeedStockUpdate{Quantity: &good}
	require.NoError(t, update.Validate())

	empty := FeedStockUpdate{}
	require.NoError(t, empty.Validate())
}

func TestMortalityValidate(t *testing.T) {
	valid := Mortality{Date: time.Now(), Count: 2, AgeGroup: AgeGroupChick, Cause: "Disease"}
	require.NoError(t, valid.Validate())

	zeroCount := Mortality{Date: time.Now(), Count: 0, AgeGroup: AgeGroupAdult, Cause: "Disease"}
	require.Error(t, zeroCount.Validate())

	badGroup := Mortality{Date: time.Now(), Count: 1, AgeGroup: "Elder", Cause: "Disease"}
	require.Error(t, badGroup.Validate())

	missingCause := Mortality{Date: time.Now(), Count: 1, AgeGroup: AgeGroupAdult}
	require.Error(t, missingCause.Validate())
}

func TestUserValidate(t *testing.T) {
	valid := User{Username: "  kadiatou ", Password: "hash", Email: "k@example.com"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "kadiatou", valid.Username, "username should be trimmed")
	assert.Equal(t, RoleManager, valid.Role, "role should default to manager")

	badRole := User{Username: "a", Password: "hash", Email: "a@example.com", Role: "owner"}
	require.Error(t, badRole.Validate())

	missing := User{}
	require.Error(t, missing.Validate())
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())

	stamp, err := ParseDate("2024-03-15T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, stamp.Hour())

	_, err = ParseDate("")
	require.Error(t, err)

	_, err = ParseDate("15/03/2024")
	require.Error(t, err)
}
