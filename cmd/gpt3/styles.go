package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleBold    = lipgloss.NewStyle().Bold(true)
	styleFaint   = lipgloss.NewStyle().Faint(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	numberColor  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
)

// styleStatus colors an HTTP status code by its class.
func styleStatus(code int) string {
	s := lipgloss.NewStyle()
	switch {
	case code == 0:
		return styleWarning.Render("ERR")
	case code >= 400:
		s = styleWarning
	case code >= 200 && code < 300:
		s = styleOK
	}
	return s.Render(fmt.Sprint(code))
}
