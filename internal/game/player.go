package game

import (
	"strings"

	"github.com/samdwyer/cardhall/internal/combat"
	"github.com/samdwyer/cardhall/internal/entity"
	"github.com/samdwyer/cardhall/internal/world"
)

// Encounter is an active battle plus the character being fought.
type Encounter struct {
	*combat.Battle
	Opponent *entity.Character
}

// Player is the explorer: position, inventory, card and at most one battle.
type Player struct {
	Name      string
	Room      *world.Room
	Inventory []*entity.Item
	Card      *entity.Card // template stats; battles fight with a copy
	Battle    *Encounter
}

// NewPlayer creates a player standing in room.
func NewPlayer(name string, room *world.Room, card *entity.Card) *Player {
	return &Player{
		Name:      name,
		Room:      room,
		Inventory: []*entity.Item{},
		Card:      card,
	}
}

// HasItem reports whether the inventory holds an item with exactly this name.
func (p *Player) HasItem(name string) bool {
	for _, it := range p.Inventory {
		if it.Name == name {
			return true
		}
	}
	return false
}

// addItem appends item unless one with the same name is already carried.
func (p *Player) addItem(item *entity.Item) bool {
	if p.HasItem(item.Name) {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}

// ItemNames returns inventory item names in acquisition order.
func (p *Player) ItemNames() []string {
	names := make([]string, len(p.Inventory))
	for i, it := range p.Inventory {
		names[i] = it.Name
	}
	return names
}

// InBattle reports whether a battle is in progress.
func (p *Player) InBattle() bool {
	return p.Battle != nil
}

// imageTag derives the presentation image name for a character or item.
func imageTag(name string) string {
	return strings.ToLower(name) + ".png"
}
