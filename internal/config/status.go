package config

import "planpilot/internal/domain"

// StatusConfig holds the icons and colors used to render statuses
type StatusConfig struct {
	Colors   map[domain.Status]string
	Icons    map[domain.Status]string
	WaitIcon string
}

// NewStatusConfig creates a StatusConfig from display settings, filling
// blanks with the defaults
func NewStatusConfig(d DisplaySettings) *StatusConfig {
	def := DefaultSettings().Display
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}

	return &StatusConfig{
		Colors: map[domain.Status]string{
			domain.StatusDone: pick(d.DoneColor, def.DoneColor),
			domain.StatusTodo: pick(d.TodoColor, def.TodoColor),
		},
		Icons: map[domain.Status]string{
			domain.StatusDone: pick(d.DoneIcon, def.DoneIcon),
			domain.StatusTodo: pick(d.TodoIcon, def.TodoIcon),
		},
		WaitIcon: pick(d.WaitIcon, def.WaitIcon),
	}
}

// GetIcon returns the icon for a given status, or empty string if not found
func (c *StatusConfig) GetIcon(status domain.Status) string {
	return c.Icons[status]
}

// GetColor returns the color for a given status. Unknown statuses get the
// todo color.
func (c *StatusConfig) GetColor(status domain.Status) string {
	if color, ok := c.Colors[status]; ok {
		return color
	}
	return c.Colors[domain.StatusTodo]
}
