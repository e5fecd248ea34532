package service

import (
	"fmt"
	"regexp"
	"strconv"
)

// leadingDecimal matches a decimal number at the start of a worked-hours
// description, e.g. "3 hours", "2.5hrs", " 4".
var leadingDecimal = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// parseWorkedHours extracts the numeric hours from a free-text work
// duration. If no positive number leads the text, the event's scheduled
// duration is used instead.
func parseWorkedHours(workDuration string, scheduledHours float64) float64 {
	m := leadingDecimal.FindStringSubmatch(workDuration)
	if m == nil {
		return scheduledHours
	}
	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil || hours <= 0 {
		return scheduledHours
	}
	return hours
}

// FormatHoursText renders hours the way certificates print them.
func FormatHoursText(hours float64) string {
	return fmt.Sprintf("%.2f hours", hours)
}
