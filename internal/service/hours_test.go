package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkedHours(t *testing.T) {
	tests := []struct {
		name      string
		duration  string
		scheduled float64
		want      float64
	}{
		{"PlainHours", "3 hours", 5, 3},
		{"DecimalNoSpace", "2.5hrs", 5, 2.5},
		{"LeadingWhitespace", "  4", 5, 4},
		{"BareNumber", "6", 5, 6},
		{"FreeText", "full day", 5, 5},
		{"Empty", "", 5, 5},
		{"Zero", "0 hours", 5, 5},
		{"Negative", "-2 hours", 5, 5},
		{"NumberAfterText", "about 3 hours", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseWorkedHours(tt.duration, tt.scheduled), 0.001)
		})
	}
}

func TestFormatHoursText(t *testing.T) {
	assert.Equal(t, "3.00 hours", FormatHoursText(3))
	assert.Equal(t, "2.50 hours", FormatHoursText(2.5))
	assert.Equal(t, "0.00 hours", FormatHoursText(0))
}
