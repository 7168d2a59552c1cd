package utils

import (
	"fmt"
	"time"
)

// FormatTime renders an elapsed duration for the command line output.
// Sub-second runs keep millisecond precision; longer ones are split into
// days, hours, minutes and seconds, dropping the leading zero units.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := total / 3600 % 24
	minutes := total / 60 % 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd:%dh:%dm:%ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh:%dm:%ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm:%ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
