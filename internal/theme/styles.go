package theme

import (
	"github.com/charmbracelet/lipgloss"

	"planpilot/internal/config"
	"planpilot/internal/domain"
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	IDStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WaitStyle = lipgloss.NewStyle().
			Foreground(ColorWait)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Executor badge styles
var (
	ExecutorAIStyle = lipgloss.NewStyle().
			Foreground(ColorExecutorAI)

	ExecutorHumanStyle = lipgloss.NewStyle().
				Foreground(ColorExecutorHuman)
)

// StatusStyle creates a style with the given foreground color
func StatusStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Palette renders statuses with the configured icons and colors
type Palette struct {
	status *config.StatusConfig
}

// NewPalette creates a Palette from status configuration
func NewPalette(status *config.StatusConfig) *Palette {
	return &Palette{status: status}
}

// Status renders the status icon in its color
func (p *Palette) Status(s domain.Status) string {
	return StatusStyle(p.status.GetColor(s)).Render(p.status.GetIcon(s))
}

// StatusWord renders the status name in its color
func (p *Palette) StatusWord(s domain.Status) string {
	return StatusStyle(p.status.GetColor(s)).Render(string(s))
}

// Wait renders the wait icon
func (p *Palette) Wait() string {
	return WaitStyle.Render(p.status.WaitIcon)
}

// Executor renders an executor badge
func (p *Palette) Executor(e domain.Executor) string {
	if e == domain.ExecutorHuman {
		return ExecutorHumanStyle.Render(string(e))
	}
	return ExecutorAIStyle.Render(string(e))
}
