package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cardhall/internal/entity"
	"github.com/samdwyer/cardhall/internal/game"
	"github.com/samdwyer/cardhall/internal/gamedata"
)

const cardPanelWidth = 26

// Renderer draws the session to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the header, the log, the battle cards (if any) and the input line.
func (r *Renderer) Render(s game.Snapshot, log []string, input string, status string) {
	width, height := r.screen.Frame()

	// Header: room name in its accent colour, then exits
	header := tcell.StyleDefault.Foreground(gamedata.AccentColor(s.Color)).Bold(true)
	r.screen.DrawText(0, 0, width, s.Room+"  ["+s.Image+"]", header)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawText(0, 1, width, "Exits: "+strings.Join(s.Exits, ", "), dim)

	logWidth := width
	if s.Battle != nil && width > cardPanelWidth*2 {
		logWidth = width - cardPanelWidth - 1
		r.renderCard(logWidth+1, 3, s.Battle.Player, s.Battle.Turn == "player")
		r.renderCard(logWidth+1, 9, s.Battle.Enemy, s.Battle.Turn == "enemy")
	}

	// Log fills the middle, newest lines at the bottom
	top, bottom := 3, height-3
	lines := wrapAll(log, logWidth)
	if visible := bottom - top; visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range lines {
		r.screen.DrawText(0, top+i, logWidth, line, plain)
	}

	if status != "" {
		r.screen.DrawText(0, height-2, width, status, dim)
	}
	prompt := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText(0, height-1, width, "> "+input+"_", prompt)

	r.screen.Show()
}

// renderCard draws a small boxed card with name, power and health.
func (r *Renderer) renderCard(x, y int, c entity.CardSnapshot, active bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if active {
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	border := "+" + strings.Repeat("-", cardPanelWidth-2) + "+"
	r.screen.DrawText(x, y, cardPanelWidth, border, style)
	r.screen.DrawText(x, y+1, cardPanelWidth, "| "+pad(c.Name, cardPanelWidth-4)+" |", style)
	r.screen.DrawText(x, y+2, cardPanelWidth, "| "+pad(fmt.Sprintf("Power:  %d", c.Power), cardPanelWidth-4)+" |", style)

	hp := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if c.Health <= 0 {
		hp = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	r.screen.DrawText(x, y+3, cardPanelWidth, "| "+pad(fmt.Sprintf("Health: %d", c.Health), cardPanelWidth-4)+" |", hp)
	r.screen.DrawText(x, y+4, cardPanelWidth, border, style)
}

func pad(s string, n int) string {
	if len([]rune(s)) >= n {
		return string([]rune(s)[:n])
	}
	return s + strings.Repeat(" ", n-len([]rune(s)))
}

// wrapAll splits every entry on newlines and wraps it to width.
func wrapAll(entries []string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, e := range entries {
		for _, line := range strings.Split(e, "\n") {
			out = append(out, wrap(line, width)...)
		}
	}
	return out
}

func wrap(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	cur := ""
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case len([]rune(cur))+1+len([]rune(w)) <= width:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
		for len([]rune(cur)) > width {
			out = append(out, string([]rune(cur)[:width]))
			cur = string([]rune(cur)[width:])
		}
	}
	return append(out, cur)
}
