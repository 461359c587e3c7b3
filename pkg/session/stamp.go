package session

import "time"

// Clock returns the current time. Tests swap it for a fixed clock.
type Clock func() time.Time

// stamper hands out millisecond stamps that never repeat within one aggregate.
type stamper struct {
	last int64
}

func (s *stamper) next(now time.Time) int64 {
	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return ms
}
