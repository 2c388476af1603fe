// Package ui renders sleep sessions and summaries for the terminal.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects lighter shades that read better on dark terminals.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// ratingColor picks the colour of a rating: good nights are green and poor
// ones red.
func ratingColor(r int) func(any) string {
	switch {
	case r >= 4:
		return Green
	case r == 3:
		return Yellow
	default:
		return Red
	}
}
