package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "safarihub/internal/errors"
)

func validTourInput() map[string]string {
	return map[string]string{
		"title":       "Masai Mara Classic",
		"description": "Three days in the Mara.",
		"duration":    "3 days",
		"price":       "450",
		"location":    "Masai Mara",
	}
}

func failingField(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	ve, ok := err.(*apperrors.ValidationError)
	require.True(t, ok, "expected ValidationError, got %T", err)
	return ve.Field
}

func TestTourValidate_AppliesDefaults(t *testing.T) {
	values, err := Tours.Validate(validTourInput(), false)
	require.NoError(t, err)

	assert.Equal(t, "Easy", values["difficulty"])
	assert.Equal(t, 10, values["maxParticipants"])
	assert.True(t, decimal.NewFromInt(450).Equal(values["price"].(decimal.Decimal)))
}

func TestTourValidate_TrimsStrings(t *testing.T) {
	input := validTourInput()
	input["title"] = "  Masai Mara Classic  "
	values, err := Tours.Validate(input, false)
	require.NoError(t, err)
	assert.Equal(t, "Masai Mara Classic", values["title"])
}

func TestTourValidate_RequiredFields(t *testing.T) {
	for _, field := range []string{"title", "description", "duration", "price", "location"} {
		t.Run(field+" missing", func(t *testing.T) {
			input := validTourInput()
			delete(input, field)
			_, err := Tours.Validate(input, false)
			assert.Equal(t, field, failingField(t, err))
		})
		t.Run(field+" whitespace", func(t *testing.T) {
			input := validTourInput()
			input[field] = "   "
			_, err := Tours.Validate(input, false)
			assert.Equal(t, field, failingField(t, err))
		})
	}
}

func TestTourValidate_Constraints(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantField string
	}{
		{"bad difficulty", "difficulty", "Extreme", "difficulty"},
		{"negative price", "price", "-5", "price"},
		{"non-numeric price", "price", "lots", "price"},
		{"zero participants", "maxParticipants", "0", "maxParticipants"},
		{"fractional participants", "maxParticipants", "2.5", "maxParticipants"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTourInput()
			input[tt.field] = tt.value
			_, err := Tours.Validate(input, false)
			assert.Equal(t, tt.wantField, failingField(t, err))
		})
	}
}

func TestRentalValidate_VehicleTypeEnum(t *testing.T) {
	input := map[string]string{
		"vehicleName": "Land Cruiser 76",
		"description": "Pop-top safari cruiser.",
		"vehicleType": "Motorcycle",
		"pricePerDay": "120",
		"capacity":    "7",
	}
	_, err := Rentals.Validate(input, false)
	assert.Equal(t, "vehicleType", failingField(t, err))

	input["vehicleType"] = "Jeep"
	values, err := Rentals.Validate(input, false)
	require.NoError(t, err)
	assert.Equal(t, "Jeep", values["vehicleType"])
	assert.Equal(t, 7, values["capacity"])
}

func TestPackageValidate_SplitsCommaLists(t *testing.T) {
	input := map[string]string{
		"name":         "Coast and Crater",
		"price":        "1650",
		"destinations": "Ngorongoro , Diani,,  Lamu ",
	}
	values, err := Packages.Validate(input, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ngorongoro", "Diani", "Lamu"}, values["destinations"])
}

func TestValidate_PartialSkipsAbsentFields(t *testing.T) {
	values, err := Tours.Validate(map[string]string{"price": "20"}, true)
	require.NoError(t, err)

	require.Len(t, values, 1)
	assert.True(t, decimal.NewFromInt(20).Equal(values["price"].(decimal.Decimal)))
	// No defaults sneak in during a partial update.
	_, hasDifficulty := values["difficulty"]
	assert.False(t, hasDifficulty)
}

func TestValidate_PartialStillChecksSuppliedFields(t *testing.T) {
	_, err := Tours.Validate(map[string]string{"title": "  "}, true)
	assert.Equal(t, "title", failingField(t, err))

	_, err = Rentals.Validate(map[string]string{"vehicleType": "Tank"}, true)
	assert.Equal(t, "vehicleType", failingField(t, err))
}

func TestValidate_FirstFailingFieldWins(t *testing.T) {
	// Both title and price are invalid; fields are checked in declaration
	// order so title is reported.
	input := validTourInput()
	input["title"] = ""
	input["price"] = "-1"
	_, err := Tours.Validate(input, false)
	assert.Equal(t, "title", failingField(t, err))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , b ,"))
	assert.Empty(t, SplitList("  ,  "))
}
