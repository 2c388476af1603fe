package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/doze/internal/models"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	m.Run()
}

func TestRating(t *testing.T) {
	testCases := []struct {
		Want   string
		Rating int
	}{
		{Rating: 0, Want: "-"},
		{Rating: 1, Want: "★☆☆☆☆"},
		{Rating: 5, Want: "★★★★★"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Rating(tc.Rating))
	}
}

func TestComment(t *testing.T) {
	assert.Equal(t, "woke up at 3 back asleep", Comment("woke up at 3\r\nback\nasleep"))
}

func TestSessionRows(t *testing.T) {
	sessions := []models.Session{
		{ID: 2, Start: 3_600_000, Stop: 30_600_000, Rating: 4, Comment: "deep\nsleep"},
		{ID: 1, Start: 0, Stop: 2_700_000},
	}

	rows := SessionRows(sessions, true)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, []string{"2", "7h 30m", "★★★★☆", "deep sleep"}, []string{
		rows[1][0], rows[1][3], rows[1][4], rows[1][5],
	})
	assert.Equal(t, []string{"1", "45m", "-", ""}, []string{
		rows[2][0], rows[2][3], rows[2][4], rows[2][5],
	})
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer

	err := PrintStats(&buf, models.Stats{
		Count:         2,
		Rated:         1,
		AverageRating: 4,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "4.0 / 5")
}
