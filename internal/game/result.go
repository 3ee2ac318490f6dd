package game

import (
	"github.com/samdwyer/cardhall/internal/combat"
	"github.com/samdwyer/cardhall/internal/entity"
)

// EventType identifies what a presentation layer should react to.
type EventType string

const (
	EventRoomChanged     EventType = "roomChanged"
	EventItemTaken       EventType = "itemTaken"
	EventCharacterSpoken EventType = "characterSpoken"
	EventBattleStarted   EventType = "battleStarted"
	EventBattleTurn      EventType = "battleTurn"
	EventBattleEnded     EventType = "battleEnded"
)

// Event is emitted alongside a Result for observers. Payload is one of the
// *Payload types below, matching Type.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// RoomChangedPayload accompanies EventRoomChanged. Observers should clear any
// transient log they keep for the previous room.
type RoomChangedPayload struct {
	Room  string `json:"room"`
	Image string `json:"image"`
	Color string `json:"color,omitempty"`
}

// ItemTakenPayload accompanies EventItemTaken.
type ItemTakenPayload struct {
	Item  string `json:"item"`
	Image string `json:"image"`
}

// CharacterSpokenPayload accompanies EventCharacterSpoken.
type CharacterSpokenPayload struct {
	Character string `json:"character"`
	Image     string `json:"image"`
}

// BattleStartedPayload accompanies EventBattleStarted.
type BattleStartedPayload struct {
	Opponent string              `json:"opponent"`
	Player   entity.CardSnapshot `json:"player"`
	Enemy    entity.CardSnapshot `json:"enemy"`
}

// BattleTurnPayload accompanies EventBattleTurn.
type BattleTurnPayload struct {
	Attacker string              `json:"attacker"`
	Damage   int                 `json:"damage"`
	Next     string              `json:"next"`
	Player   entity.CardSnapshot `json:"player"`
	Enemy    entity.CardSnapshot `json:"enemy"`
}

// BattleEndedPayload accompanies EventBattleEnded.
type BattleEndedPayload struct {
	Opponent string              `json:"opponent"`
	Winner   string              `json:"winner"`
	Damage   int                 `json:"damage"`
	Player   entity.CardSnapshot `json:"player"`
	Enemy    entity.CardSnapshot `json:"enemy"`
	Reward   string              `json:"reward,omitempty"`
}

// Result is what every action returns.
type Result struct {
	Message      string
	StateChanged bool
	Event        *Event
	Err          error // one of the Err* sentinels, nil on success
}

// OK reports whether the action succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

func fail(err error, message string) Result {
	return Result{Message: message, Err: err}
}

func changed(message string, ev *Event) Result {
	return Result{Message: message, StateChanged: true, Event: ev}
}

func sideName(s combat.Side) string {
	return s.String()
}
