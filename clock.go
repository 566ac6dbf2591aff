package expiringcache

import "time"

// Clock supplies the current time to a cache.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock (with its monotonic component).
var SystemClock Clock = systemClock{}
