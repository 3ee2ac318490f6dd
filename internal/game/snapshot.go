package game

import (
	"github.com/samdwyer/cardhall/internal/entity"
)

// CharacterView is a read-only view of a character for presentation.
type CharacterView struct {
	Name      string `json:"name"`
	Defeated  bool   `json:"defeated"`
	CanBattle bool   `json:"canBattle"`
}

// BattleView is a read-only view of the active battle.
type BattleView struct {
	Opponent string              `json:"opponent"`
	Turn     string              `json:"turn"`
	Player   entity.CardSnapshot `json:"player"`
	Enemy    entity.CardSnapshot `json:"enemy"`
}

// Snapshot is everything a presentation layer needs to draw the session.
type Snapshot struct {
	Player      string              `json:"player"`
	Mode        string              `json:"mode"`
	Room        string              `json:"room"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Color       string              `json:"color,omitempty"`
	Exits       []string            `json:"exits"`
	Characters  []CharacterView     `json:"characters"`
	Items       []string            `json:"items"`
	Inventory   []string            `json:"inventory"`
	Card        entity.CardSnapshot `json:"card"`
	Battle      *BattleView         `json:"battle,omitempty"`
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	room := p.Room

	s := Snapshot{
		Player:      p.Name,
		Mode:        g.Mode().String(),
		Room:        room.Name,
		Description: room.Description,
		Image:       room.Image,
		Color:       room.Color,
		Exits:       room.Exits(),
		Characters:  make([]CharacterView, 0, len(room.Characters)),
		Items:       make([]string, 0, len(room.Items)),
		Inventory:   p.ItemNames(),
		Card:        p.Card.Snapshot(),
	}
	for _, c := range room.Characters {
		s.Characters = append(s.Characters, CharacterView{
			Name:      c.Name,
			Defeated:  c.Defeated(),
			CanBattle: c.CanBattle(),
		})
	}
	for _, it := range room.Items {
		s.Items = append(s.Items, it.Name)
	}
	if enc := p.Battle; enc != nil {
		s.Battle = &BattleView{
			Opponent: enc.Opponent.Name,
			Turn:     enc.Turn.String(),
			Player:   enc.PlayerCard.Snapshot(),
			Enemy:    enc.EnemyCard.Snapshot(),
		}
	}
	return s
}
