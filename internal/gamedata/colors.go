package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a colour name ("gold") or hex string ("#FFD700" or "FFD700")
// to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}

	// Bare hex without the leading #
	if len(s) == 6 {
		if _, err := strconv.ParseUint(s, 16, 32); err == nil {
			s = "#" + s
		}
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", s)
	}

	color := tcell.GetColor(s)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return color, nil
}

// AccentColor returns the colour for a room accent, falling back to white.
func AccentColor(s string) tcell.Color {
	color, err := ParseColor(s)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
