package services

import "time"

// now is a test seam for the wall clock.
var now = time.Now

// idClock hands out creation-time ids (milliseconds since the Unix epoch),
// nudged forward when two creations land in the same millisecond so ids stay
// strictly increasing within a process and insertion order stays recoverable.
type idClock struct {
	last int64
}

func (c *idClock) next(t time.Time) int64 {
	id := t.UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}
