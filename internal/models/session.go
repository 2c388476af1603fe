// Package models defines the sleep session value type.
package models

import (
	"errors"
	"time"
)

const (
	MinRating = 0
	MaxRating = 5
)

var (
	ErrRangeOrder  = errors.New("sleep must stop after it starts")
	ErrRatingRange = errors.New("rating must be between 0 and 5")
)

// Session is one recorded sleep interval. Start and Stop are Unix epoch
// milliseconds.
type Session struct {
	Comment string `json:"comment"`
	ID      int64  `json:"id"`
	Start   int64  `json:"start"`
	Stop    int64  `json:"stop"`
	Rating  int    `json:"rating"`
}

// StartTime returns the start of the session in local time.
func (s *Session) StartTime() time.Time {
	return time.UnixMilli(s.Start)
}

// StopTime returns the end of the session in local time.
func (s *Session) StopTime() time.Time {
	return time.UnixMilli(s.Stop)
}

// Duration returns the length of the session.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.Stop-s.Start) * time.Millisecond
}

// Validate checks the invariants a closed session must satisfy before it is
// committed.
func (s *Session) Validate() error {
	if s.Start >= s.Stop {
		return ErrRangeOrder
	}

	if s.Rating < MinRating || s.Rating > MaxRating {
		return ErrRatingRange
	}

	return nil
}

// Less orders sessions most recent first. Sessions starting at the same
// instant fall back to the higher id first.
func Less(a, b *Session) bool {
	if a.Start != b.Start {
		return a.Start > b.Start
	}

	return a.ID > b.ID
}

// Stats summarises a set of sessions.
type Stats struct {
	Total         time.Duration `json:"total"`
	Average       time.Duration `json:"average"`
	Count         int           `json:"count"`
	Rated         int           `json:"rated"`
	AverageRating float64       `json:"average_rating"`
}

// Summarise computes statistics over sessions. Unrated sessions do not count
// towards the average rating.
func Summarise(sessions []Session) Stats {
	var st Stats

	var ratingSum int

	for i := range sessions {
		s := &sessions[i]

		st.Count++
		st.Total += s.Duration()

		if s.Rating > 0 {
			st.Rated++
			ratingSum += s.Rating
		}
	}

	if st.Count > 0 {
		st.Average = st.Total / time.Duration(st.Count)
	}

	if st.Rated > 0 {
		st.AverageRating = float64(ratingSum) / float64(st.Rated)
	}

	return st
}
