// Package ui provides the terminal front end using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen is the terminal surface the app draws on and reads input from.
type Screen struct {
	tty       tcell.Screen
	closeOnce sync.Once
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	tty, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(tty)
}

// NewScreenFrom takes over an uninitialized tcell screen, such as a
// simulation screen.
func NewScreenFrom(tty tcell.Screen) (*Screen, error) {
	if err := tty.Init(); err != nil {
		return nil, err
	}
	tty.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	tty.Clear()
	return &Screen{tty: tty}, nil
}

// Close restores the terminal. Calling it more than once is a no-op.
func (s *Screen) Close() {
	s.closeOnce.Do(s.tty.Fini)
}

// PollEvent blocks for the next input, resize or interrupt event.
// It returns nil once the screen has been closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.tty.PollEvent()
}

// Interrupt wakes PollEvent with an *tcell.EventInterrupt carrying data.
// Safe to call from any goroutine.
func (s *Screen) Interrupt(data any) error {
	return s.tty.PostEvent(tcell.NewEventInterrupt(data))
}

// Frame clears the back buffer and returns its dimensions.
func (s *Screen) Frame() (width, height int) {
	s.tty.Clear()
	return s.tty.Size()
}

// DrawText writes text at (x, y), one rune per cell, clipped to width cells.
func (s *Screen) DrawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			return
		}
		s.tty.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// Show flushes the back buffer to the terminal.
func (s *Screen) Show() {
	s.tty.Show()
}

// Sync repaints everything, used after a resize.
func (s *Screen) Sync() {
	s.tty.Sync()
}
