package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wheelspin-backend/internal/features/wheel/models"
)

func TestValidateWheelName(t *testing.T) {
	assert.NoError(t, ValidateWheelName("Friday raffle"))
	assert.Error(t, ValidateWheelName("   "))
	assert.Error(t, ValidateWheelName(strings.Repeat("я", MaxWheelNameLength+1)))
	assert.NoError(t, ValidateWheelName(strings.Repeat("я", MaxWheelNameLength)))
}

func TestValidateWinnersCount(t *testing.T) {
	assert.NoError(t, ValidateWinnersCount(1))
	assert.Error(t, ValidateWinnersCount(0))
	assert.Error(t, ValidateWinnersCount(-2))
}

func TestValidateEntries(t *testing.T) {
	field, err := ValidateEntries(nil)
	assert.Error(t, err)
	assert.Equal(t, "entries", field)

	field, err = ValidateEntries([]models.Entry{{Label: "A", Weight: 1}, {Label: "", Weight: 1}})
	assert.Error(t, err)
	assert.Equal(t, "entries[1].label", field)

	field, err = ValidateEntries([]models.Entry{{Label: "A", Weight: 0}})
	assert.Error(t, err)
	assert.Equal(t, "entries[0].weight", field)

	field, err = ValidateEntries([]models.Entry{{Label: "A", Weight: 3}})
	assert.NoError(t, err)
	assert.Empty(t, field)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Alice", SanitizeString("  Al\x00ice "))
}
