package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cardhall/internal/gamedata"
	"github.com/samdwyer/cardhall/internal/ledger"
	"github.com/samdwyer/cardhall/internal/telemetry"
	"github.com/samdwyer/cardhall/internal/world"
)

const defaultGatedMessage = "You aren't ready for that room yet... collect the items it requires first."

// Options configures a Game.
type Options struct {
	// Ledger records victories. A nil Ledger keeps defeats in memory only.
	Ledger ledger.Store
	// Logger receives structured session logs. Defaults to slog.Default().
	Logger *slog.Logger
	// PlayerName overrides the name from the world definition.
	PlayerName string
}

// Game is a single-player session. It is not safe for concurrent use: every
// action runs to completion before the next one is accepted.
type Game struct {
	world  *world.World
	player *Player
	ledger ledger.Store
	logger *slog.Logger
}

// New creates a session on an already built world.
func New(w *world.World, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	name := opts.PlayerName
	if name == "" {
		name = w.PlayerName
	}
	return &Game{
		world:  w,
		player: NewPlayer(name, w.Start, w.PlayerCard),
		ledger: opts.Ledger,
		logger: logger,
	}
}

// Start reads the defeat ledger once, builds the world from def with prior
// defeats restored, and returns a new session in the start room.
func Start(ctx context.Context, def gamedata.WorldDef, opts Options) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	defeated := ledger.LoadOrEmpty(ctx, opts.Ledger, opts.Logger)

	w, err := world.Build(ctx, def, defeated)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("build world: %w", err)
	}

	g := New(w, opts)
	span.SetAttributes(
		attribute.String("player.name", g.player.Name),
		attribute.String("start_room", w.Start.Name),
		attribute.Int("ledger.entries", len(defeated)),
	)
	return g, nil
}

// World returns the world the session plays in.
func (g *Game) World() *world.World {
	return g.world
}

// Player returns the session's player.
func (g *Game) Player() *Player {
	return g.player
}

// Mode reports whether the player is exploring or battling.
func (g *Game) Mode() Mode {
	if g.player.InBattle() {
		return ModeBattle
	}
	return ModeExplore
}

// Look describes the current room.
func (g *Game) Look() Result {
	return Result{Message: g.player.Room.Describe()}
}

// Move follows the exit in the given direction.
func (g *Game) Move(ctx context.Context, direction string) Result {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.move")
	defer span.End()

	from := g.player.Room
	span.SetAttributes(
		attribute.String("from", from.Name),
		attribute.String("direction", direction),
	)

	target, ok := from.Exit(direction)
	if !ok {
		span.SetAttributes(attribute.Bool("failed", true))
		return fail(ErrNotFound, fmt.Sprintf("You can't go to %s from here.", direction))
	}

	if gate := g.world.GateFor(target); gate != nil {
		if missing := gate.Missing(g.player.HasItem); len(missing) > 0 {
			span.SetAttributes(
				attribute.Bool("gated", true),
				attribute.StringSlice("missing", missing),
			)
			g.logger.Debug("gated move refused", "room", target.Name, "missing", missing)
			msg := gate.Message
			if msg == "" {
				msg = defaultGatedMessage
			}
			return fail(ErrProgressionGated, msg)
		}
	}

	g.player.Room = target
	span.SetAttributes(attribute.String("to", target.Name))

	return changed(
		fmt.Sprintf("You move to the %s. %s", target.Name, target.Describe()),
		&Event{Type: EventRoomChanged, Payload: RoomChangedPayload{
			Room:  target.Name,
			Image: target.Image,
			Color: target.Color,
		}},
	)
}

// Take picks up an item from the current room.
func (g *Game) Take(itemName string) Result {
	room := g.player.Room
	item := room.FindItem(itemName)
	if item == nil {
		return fail(ErrNotFound, fmt.Sprintf("No item named %s here.", itemName))
	}
	if g.player.HasItem(item.Name) {
		return fail(ErrAlreadyCarried, fmt.Sprintf("You already have a %s.", item.Name))
	}

	room.RemoveItem(item)
	g.player.addItem(item)

	return changed(
		fmt.Sprintf("You picked up %s.", item.Name),
		&Event{Type: EventItemTaken, Payload: ItemTakenPayload{
			Item:  item.Name,
			Image: imageTag(item.Name),
		}},
	)
}

// Talk speaks to a character in the current room.
func (g *Game) Talk(characterName string) Result {
	c := g.player.Room.FindCharacter(characterName)
	if c == nil {
		return fail(ErrNotFound, fmt.Sprintf("No one named %s here.", characterName))
	}
	return Result{
		Message: c.Talk(),
		Event: &Event{Type: EventCharacterSpoken, Payload: CharacterSpokenPayload{
			Character: c.Name,
			Image:     imageTag(c.Name),
		}},
	}
}

// Inventory lists what the player is carrying.
func (g *Game) Inventory() Result {
	if len(g.player.Inventory) == 0 {
		return Result{Message: "Your inventory is empty."}
	}
	return Result{Message: "You are carrying: " + strings.Join(g.player.ItemNames(), ", ")}
}
