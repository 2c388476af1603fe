package ui

import (
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/internal/timeutil"
)

const (
	NoSessionsMsg = "No sleep sessions recorded yet"
	unrated       = "-"
)

// Rating renders a rating as filled and empty stars. Zero is shown as
// unrated.
func Rating(r int) string {
	if r <= models.MinRating {
		return unrated
	}

	return ratingColor(r)(strings.Repeat("★", r)) +
		strings.Repeat("☆", models.MaxRating-r)
}

// Comment flattens a multi-line comment onto one table row.
func Comment(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	return strings.ReplaceAll(s, "\r", " ")
}

// SessionRows builds the table rows for sessions, header included.
func SessionRows(sessions []models.Session, twentyFourHour bool) [][]string {
	rows := make([][]string, 0, len(sessions)+1)

	rows = append(rows, []string{
		"ID", "START", "STOP", "DURATION", "RATING", "COMMENT",
	})

	for i := range sessions {
		sess := &sessions[i]

		rows = append(rows, []string{
			strconv.FormatInt(sess.ID, 10),
			timeutil.FormatInstant(sess.Start, twentyFourHour),
			timeutil.FormatInstant(sess.Stop, twentyFourHour),
			Cyan(timeutil.FormatDuration(sess.Duration())),
			Rating(sess.Rating),
			Comment(sess.Comment),
		})
	}

	return rows
}

// PrintSessions prints a table of sessions, or a notice when there are none.
func PrintSessions(w io.Writer, sessions []models.Session, twentyFourHour bool) error {
	if len(sessions) == 0 {
		pterm.Info.Println(NoSessionsMsg)
		return nil
	}

	return PrintTable(SessionRows(sessions, twentyFourHour), w)
}

// PrintSession prints every field of a single session.
func PrintSession(w io.Writer, sess *models.Session, twentyFourHour bool) error {
	comment := sess.Comment
	if comment == "" {
		comment = unrated
	}

	rows := [][]string{
		{"FIELD", "VALUE"},
		{"ID", strconv.FormatInt(sess.ID, 10)},
		{"Start", timeutil.FormatInstant(sess.Start, twentyFourHour)},
		{"Stop", timeutil.FormatInstant(sess.Stop, twentyFourHour)},
		{"Duration", Cyan(timeutil.FormatDuration(sess.Duration()))},
		{"Rating", Rating(sess.Rating)},
		{"Comment", comment},
	}

	return PrintTable(rows, w)
}

// PrintStats prints a summary of all sessions.
func PrintStats(w io.Writer, st models.Stats) error {
	if st.Count == 0 {
		pterm.Info.Println(NoSessionsMsg)
		return nil
	}

	avgRating := unrated
	if st.Rated > 0 {
		avgRating = strconv.FormatFloat(st.AverageRating, 'f', 1, 64) +
			" / " + strconv.Itoa(models.MaxRating)
	}

	rows := [][]string{
		{"SUMMARY", ""},
		{"Sessions", strconv.Itoa(st.Count)},
		{"Total sleep", Green(timeutil.FormatDuration(st.Total))},
		{"Average sleep", Green(timeutil.FormatDuration(st.Average))},
		{"Rated sessions", strconv.Itoa(st.Rated)},
		{"Average rating", avgRating},
	}

	return PrintTable(rows, w)
}
