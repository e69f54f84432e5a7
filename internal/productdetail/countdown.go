package productdetail

import (
	"context"
	"fmt"
	"time"
)

// Countdown emits the time left until end right away and then every tick,
// closing the channel after emitting zero or when ctx is done.
func Countdown(ctx context.Context, end time.Time, tick time.Duration) <-chan time.Duration {
	if tick <= 0 {
		tick = time.Second
	}
	out := make(chan time.Duration, 1)

	go func() {
		defer close(out)
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		for {
			left := time.Until(end)
			if left < 0 {
				left = 0
			}
			select {
			case out <- left:
			case <-ctx.Done():
				return
			}
			if left == 0 {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// FormatRemaining renders a countdown value as "2d 03h 04m 05s", dropping leading zero units
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "ended"
	}
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02dh %02dm %02ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
