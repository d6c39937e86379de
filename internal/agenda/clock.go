package agenda

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// secondsPerDay is the spreadsheet serial-time base: a cell value of 1.0
// spans a full day, 0.5 is noon.
const secondsPerDay = 86400

// ToClockString converts a fractional-day spreadsheet serial into a
// zero-padded HH:MM string. Values are truncated, never rounded, and
// hours are not wrapped at 24: a serial covering more than one day
// yields an hour field above 23.
//
// Non-numeric input passes through unchanged, so cells that already hold
// formatted text ("09:00", "TBD") survive the import untouched.
func ToClockString(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return raw
	}

	total := int64(v * secondsPerDay)
	hours := total / 3600
	minutes := (total % 3600) / 60

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
