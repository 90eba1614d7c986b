package utils

import (
	"fmt"
	"strings"
	"time"
)

// HumanizeDuration formats d as e.g. "1 day(s), 2 hour(s), 0 minute(s) and 5 second(s)".
// Leading zero units are left out, fractions of a second are dropped.
func HumanizeDuration(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}

	units := []struct {
		name  string
		value int64
	}{
		{"day(s)", total / 86400},
		{"hour(s)", total / 3600 % 24},
		{"minute(s)", total / 60 % 60},
		{"second(s)", total % 60},
	}

	for len(units) > 1 && units[0].value == 0 {
		units = units[1:]
	}

	parts := make([]string, 0, len(units))
	for _, unit := range units {
		parts = append(parts, fmt.Sprintf("%d %s", unit.value, unit.name))
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
