package world

import (
	"github.com/samdwyer/cardhall/internal/entity"
)

// Gate blocks entry to a room until the player holds every required item.
type Gate struct {
	Room     *Room
	Requires []string // exact item names
	Message  string   // shown when the player is turned away
}

// Missing returns the required item names not satisfied by has, in declaration order.
func (g *Gate) Missing(has func(name string) bool) []string {
	var missing []string
	for _, name := range g.Requires {
		if !has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// World is the room graph plus everything living in it.
// It is built once at startup and owns all rooms, characters and items.
type World struct {
	Start      *Room
	PlayerName string
	PlayerCard *entity.Card // template stats, never damaged

	rooms      map[string]*Room
	roomOrder  []*Room
	characters map[string]*entity.Character
	gates      map[*Room]*Gate
}

func newWorld() *World {
	return &World{
		rooms:      make(map[string]*Room),
		characters: make(map[string]*entity.Character),
		gates:      make(map[*Room]*Gate),
	}
}

// Room returns the room with the given name, or nil.
func (w *World) Room(name string) *Room {
	return w.rooms[name]
}

// Rooms returns all rooms in declaration order.
func (w *World) Rooms() []*Room {
	return w.roomOrder
}

// Character returns the character with the given name, or nil.
func (w *World) Character(name string) *entity.Character {
	return w.characters[name]
}

// Characters returns all characters keyed by name.
func (w *World) Characters() map[string]*entity.Character {
	return w.characters
}

// GateFor returns the gate guarding room, or nil if entry is free.
func (w *World) GateFor(room *Room) *Gate {
	return w.gates[room]
}

// AddGate guards room with the given gate.
func (w *World) AddGate(g *Gate) {
	w.gates[g.Room] = g
}

// RoomOf returns the room the character stands in, or nil.
func (w *World) RoomOf(c *entity.Character) *Room {
	for _, r := range w.roomOrder {
		for _, rc := range r.Characters {
			if rc == c {
				return r
			}
		}
	}
	return nil
}
