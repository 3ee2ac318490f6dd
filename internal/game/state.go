// Package game provides the exploration session: player actions, battles and
// the command interpreter.
package game

// Mode represents what the player is currently doing.
type Mode int

const (
	// ModeExplore is the default mode: moving, talking and picking things up.
	ModeExplore Mode = iota
	// ModeBattle is active while a card battle is in progress.
	ModeBattle
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}
