// Package entity provides the game's collectibles, battle cards and characters.
package entity

// Item is a named collectible. Items are never mutated after the world is built.
type Item struct {
	Name        string
	Description string
}

// NewItem creates a new item.
func NewItem(name, description string) *Item {
	return &Item{Name: name, Description: description}
}
