package tracker

import (
	"time"

	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/internal/timeutil"
)

// Change modifies one aspect of a session during Edit.
type Change func(*models.Session)

// SetStart moves the start of the session to t.
func SetStart(t time.Time) Change {
	return func(s *models.Session) {
		s.Start = t.UnixMilli()
	}
}

// SetStop moves the end of the session to t.
func SetStop(t time.Time) Change {
	return func(s *models.Session) {
		s.Stop = t.UnixMilli()
	}
}

// SetStartDate moves the start to another calendar day, keeping the clock
// time.
func SetStartDate(year int, month time.Month, day int) Change {
	return func(s *models.Session) {
		s.Start = timeutil.WithDate(s.Start, year, month, day)
	}
}

// SetStopDate moves the end to another calendar day, keeping the clock time.
func SetStopDate(year int, month time.Month, day int) Change {
	return func(s *models.Session) {
		s.Stop = timeutil.WithDate(s.Stop, year, month, day)
	}
}

// SetStartClock changes the hour and minute of the start, keeping the day.
func SetStartClock(hour, minute int) Change {
	return func(s *models.Session) {
		s.Start = timeutil.WithClock(s.Start, hour, minute)
	}
}

// SetStopClock changes the hour and minute of the end, keeping the day.
func SetStopClock(hour, minute int) Change {
	return func(s *models.Session) {
		s.Stop = timeutil.WithClock(s.Stop, hour, minute)
	}
}

func SetRating(rating int) Change {
	return func(s *models.Session) {
		s.Rating = rating
	}
}

func SetComment(comment string) Change {
	return func(s *models.Session) {
		s.Comment = comment
	}
}
