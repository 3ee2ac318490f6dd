package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cardhall/internal/entity"
	"github.com/samdwyer/cardhall/internal/gamedata"
	"github.com/samdwyer/cardhall/internal/telemetry"
)

// ErrInvalidWorld is wrapped by every error Build returns.
var ErrInvalidWorld = errors.New("invalid world definition")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWorld, fmt.Sprintf(format, args...))
}

// Build constructs the world from its definition.
//
// defeated is the ledger snapshot read at startup: every character whose name
// maps to true starts out defeated. An already-defeated character's unclaimed
// reward is left in its room so it can still be picked up.
func Build(ctx context.Context, def gamedata.WorldDef, defeated map[string]bool) (*World, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	defer span.End()

	w := newWorld()
	items := gamedata.NewItemRegistry(def.Items)

	newItem := func(name string) (*entity.Item, error) {
		d := items.GetByName(name)
		if d == nil {
			return nil, invalid("unknown item %q", name)
		}
		return entity.NewItem(d.Name, d.Description), nil
	}

	// Characters
	for _, cd := range def.Characters {
		if cd.Name == "" {
			return nil, invalid("character with empty name")
		}
		if _, dup := w.characters[cd.Name]; dup {
			return nil, invalid("duplicate character %q", cd.Name)
		}
		var card *entity.Card
		if cd.Card != nil {
			if cd.Card.Power <= 0 || cd.Card.Health <= 0 {
				return nil, invalid("character %q card needs positive power and health", cd.Name)
			}
			card = entity.NewCard(cd.Card.Name, cd.Card.Power, cd.Card.Health)
		}
		c := entity.NewCharacter(cd.Name, entity.Dialogue{
			Default:    cd.Dialogue.Default,
			PostBattle: cd.Dialogue.PostBattle,
		}, card)
		if cd.Reward != "" {
			reward, err := newItem(cd.Reward)
			if err != nil {
				return nil, err
			}
			c.Reward = reward
		}
		if defeated[cd.Name] {
			c.MarkDefeated()
		}
		w.characters[cd.Name] = c
	}

	// Rooms
	placed := make(map[string]string)
	for _, rd := range def.Rooms {
		if rd.Name == "" {
			return nil, invalid("room with empty name")
		}
		if _, dup := w.rooms[rd.Name]; dup {
			return nil, invalid("duplicate room %q", rd.Name)
		}
		room := NewRoom(rd.Name, rd.Description, rd.Image)
		room.Color = rd.Color

		for _, name := range rd.Characters {
			c := w.characters[name]
			if c == nil {
				return nil, invalid("room %q references unknown character %q", rd.Name, name)
			}
			if other, ok := placed[name]; ok {
				return nil, invalid("character %q placed in both %q and %q", name, other, rd.Name)
			}
			placed[name] = rd.Name
			room.Characters = append(room.Characters, c)
			if c.Defeated() && c.Reward != nil {
				room.AddItem(c.ClaimReward())
			}
		}
		for _, name := range rd.Items {
			it, err := newItem(name)
			if err != nil {
				return nil, err
			}
			room.AddItem(it)
		}

		w.rooms[rd.Name] = room
		w.roomOrder = append(w.roomOrder, room)
	}

	// Exits, once every room exists
	exitCount := 0
	for _, rd := range def.Rooms {
		from := w.rooms[rd.Name]
		for direction, to := range rd.Exits {
			target := w.rooms[to]
			if target == nil {
				return nil, invalid("room %q exit %q leads to unknown room %q", rd.Name, direction, to)
			}
			if NormalizeDirection(direction) == "" {
				return nil, invalid("room %q has an exit with an empty direction", rd.Name)
			}
			from.Connect(direction, target)
			exitCount++
		}
	}

	w.Start = w.rooms[def.Start]
	if w.Start == nil {
		return nil, invalid("unknown start room %q", def.Start)
	}

	if def.Player.Card.Power <= 0 || def.Player.Card.Health <= 0 {
		return nil, invalid("player card needs positive power and health")
	}
	w.PlayerName = def.Player.Name
	w.PlayerCard = entity.NewCard(def.Player.Card.Name, def.Player.Card.Power, def.Player.Card.Health)

	if gd := def.Gate; gd != nil {
		room := w.rooms[gd.Room]
		if room == nil {
			return nil, invalid("gate guards unknown room %q", gd.Room)
		}
		for _, name := range gd.Requires {
			if items.GetByName(name) == nil {
				return nil, invalid("gate requires unknown item %q", name)
			}
		}
		w.AddGate(&Gate{
			Room:     room,
			Requires: append([]string(nil), gd.Requires...),
			Message:  gd.Message,
		})
	}

	restored := 0
	for _, c := range w.characters {
		if c.Defeated() {
			restored++
		}
	}
	span.SetAttributes(
		attribute.Int("world.rooms", len(w.rooms)),
		attribute.Int("world.exits", exitCount),
		attribute.Int("world.characters", len(w.characters)),
		attribute.Int("world.defeated_restored", restored),
	)

	return w, nil
}
