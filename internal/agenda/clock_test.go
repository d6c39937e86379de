package agenda

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestToClockString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Fractional-day serials. Values here are exactly representable
		// in binary so the truncation is deterministic.
		{name: "midnight", input: "0", want: "00:00"},
		{name: "morning meeting", input: "0.375", want: "09:00"},
		{name: "noon", input: "0.5", want: "12:00"},
		{name: "early morning half hour", input: "0.0625", want: "01:30"},
		{name: "evening", input: "0.75", want: "18:00"},
		{name: "last minute of the day", input: "0.999988425925926", want: "23:59"},

		// Hours are not wrapped at 24 for serials past one day
		{name: "one and a half days", input: "1.5", want: "36:00"},
		{name: "two days", input: "2", want: "48:00"},

		// Surrounding whitespace is tolerated on numeric cells
		{name: "padded serial", input: " 0.25 ", want: "06:00"},

		// Non-numeric input passes through unchanged
		{name: "already formatted", input: "09:00", want: "09:00"},
		{name: "free text", input: "TBD", want: "TBD"},
		{name: "empty", input: "", want: ""},
		{name: "NaN literal", input: "NaN", want: "NaN"},
		{name: "infinity literal", input: "+Inf", want: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToClockString(tt.input)
			if got != tt.want {
				t.Errorf("ToClockString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestToClockString_WithinDayBounds checks that any serial inside a single
// day produces a well-formed clock string with minutes in 00..59 and hours
// in 00..23.
func TestToClockString_WithinDayBounds(t *testing.T) {
	clockRe := regexp.MustCompile(`^\d{2}:\d{2}$`)

	for i := 0; i < 1440; i++ {
		serial := float64(i) / 1440.0
		got := ToClockString(strconv.FormatFloat(serial, 'g', -1, 64))

		if !clockRe.MatchString(got) {
			t.Fatalf("serial %v: got %q, want HH:MM", serial, got)
		}

		parts := strings.SplitN(got, ":", 2)
		hours, _ := strconv.Atoi(parts[0])
		minutes, _ := strconv.Atoi(parts[1])

		if hours < 0 || hours > 23 {
			t.Fatalf("serial %v: hours %d out of range", serial, hours)
		}
		if minutes < 0 || minutes > 59 {
			t.Fatalf("serial %v: minutes %d out of range", serial, minutes)
		}
	}
}

func TestToClockString_TruncatesNotRounds(t *testing.T) {
	// 0.3756944444 is ~09:00:59.99; truncation keeps it at 09:00
	got := ToClockString(fmt.Sprintf("%v", 32459.0/86400.0))
	if got != "09:00" {
		t.Errorf("ToClockString(09:00:59 serial) = %q, want %q", got, "09:00")
	}
}
