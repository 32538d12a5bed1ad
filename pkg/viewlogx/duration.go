package viewlogx

import (
	"fmt"
	"time"
)

// humanizeDuration renders an elapsed time in the largest unit that keeps
// the number readable: ns, µs, ms, or s.
func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}
