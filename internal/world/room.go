// Package world provides the room graph the player explores.
package world

import (
	"sort"
	"strings"

	"github.com/samdwyer/cardhall/internal/entity"
)

// Room is a named location with characters, items and one-way exits.
type Room struct {
	Name        string
	Description string
	Image       string // image tag for the presentation layer (e.g., "main.png")
	Color       string // optional hex accent colour
	Characters  []*entity.Character
	Items       []*entity.Item

	exits map[string]*Room
}

// NewRoom creates an empty room with no exits.
func NewRoom(name, description, image string) *Room {
	return &Room{
		Name:        name,
		Description: description,
		Image:       image,
		exits:       make(map[string]*Room),
	}
}

// NormalizeDirection returns the canonical exit key for a direction.
// Both Connect and Exit go through it so lookups are case-insensitive.
func NormalizeDirection(direction string) string {
	return strings.ToLower(strings.TrimSpace(direction))
}

// Connect registers a one-way exit from r to target.
// A reverse edge must be added separately.
func (r *Room) Connect(direction string, target *Room) {
	r.exits[NormalizeDirection(direction)] = target
}

// Exit returns the room reached by going in the given direction.
func (r *Room) Exit(direction string) (*Room, bool) {
	target, ok := r.exits[NormalizeDirection(direction)]
	return target, ok
}

// Exits returns the room's exit keys in sorted order.
func (r *Room) Exits() []string {
	keys := make([]string, 0, len(r.exits))
	for k := range r.exits {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns "<name>: <description>".
func (r *Room) Describe() string {
	return r.Name + ": " + r.Description
}

// FindCharacter returns the character with the given name, ignoring case.
func (r *Room) FindCharacter(name string) *entity.Character {
	for _, c := range r.Characters {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// FindItem returns the first item with the given name, ignoring case.
func (r *Room) FindItem(name string) *entity.Item {
	for _, it := range r.Items {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// AddItem places an item in the room.
func (r *Room) AddItem(item *entity.Item) {
	r.Items = append(r.Items, item)
}

// RemoveItem takes the given item instance out of the room.
// Returns false if the item was not there.
func (r *Room) RemoveItem(item *entity.Item) bool {
	for i, it := range r.Items {
		if it == item {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}
