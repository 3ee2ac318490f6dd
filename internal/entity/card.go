package entity

import "fmt"

// Card is a combat stat block used in battles.
// Health is not floored; an overkill attack leaves it negative.
type Card struct {
	Name   string
	Power  int
	Health int
}

// NewCard creates a new card with the given template stats.
func NewCard(name string, power, health int) *Card {
	return &Card{
		Name:   name,
		Power:  power,
		Health: health,
	}
}

// Clone returns a fresh copy of the card's current stats.
func (c *Card) Clone() *Card {
	return &Card{
		Name:   c.Name,
		Power:  c.Power,
		Health: c.Health,
	}
}

// Attack deals this card's power to the opponent and returns the damage dealt.
func (c *Card) Attack(opponent *Card) int {
	opponent.TakeDamage(c.Power)
	return c.Power
}

// TakeDamage reduces health by the exact amount.
func (c *Card) TakeDamage(amount int) {
	c.Health -= amount
}

// IsDefeated returns true once health has dropped to zero or below.
func (c *Card) IsDefeated() bool {
	return c.Health <= 0
}

// Snapshot returns a value copy suitable for handing to observers.
func (c *Card) Snapshot() CardSnapshot {
	return CardSnapshot{Name: c.Name, Power: c.Power, Health: c.Health}
}

// CardSnapshot is an immutable view of a card at a point in time.
type CardSnapshot struct {
	Name   string `json:"name"`
	Power  int    `json:"power"`
	Health int    `json:"health"`
}

// String returns a short "Name (power/health)" summary.
func (s CardSnapshot) String() string {
	return fmt.Sprintf("%s (%d/%d)", s.Name, s.Power, s.Health)
}
