package reservation

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before its end")

// Interval is a half-open time range [start, end). Two back-to-back
// intervals sharing a boundary do not overlap.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// Days returns the number of charged rental days, rounding partial days up.
// Any interval shorter than a day still counts as one day.
func (iv Interval) Days() int64 {
	d := iv.Duration()
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

func (iv Interval) EstimateTotalCents(dailyRateCents int64) int64 {
	return iv.Days() * dailyRateCents
}
