package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2024-08-08T19:00")
	assert.NoError(t, err)
	assert.Equal(t, "2024-08-08T19:00", FormatDateTime(dt))
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "2024-08-08", "19:00", "yesterday", "2024-13-40T25:61"} {
		_, err := ParseDateTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestSlotOf(t *testing.T) {
	dt, err := ParseDateTime("2024-08-08T19:00")
	assert.NoError(t, err)

	date, slot := SlotOf(dt)
	assert.Equal(t, "2024-08-08", date)
	assert.Equal(t, "19:00", slot)
}
