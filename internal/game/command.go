package game

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cardhall/internal/telemetry"
)

const unknownCommandMessage = "Unknown command."

// Command is a parsed line of player input.
type Command struct {
	Verb   string // lower-cased first word
	Target string // remaining words joined by single spaces
}

// ParseCommand splits input into a verb and a (possibly multi-word) target.
func ParseCommand(input string) Command {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{
		Verb:   strings.ToLower(fields[0]),
		Target: strings.Join(fields[1:], " "),
	}
}

// Execute interprets one line of input and runs the matching action.
//
// Recognised verbs: look, go <direction>, talk <name>, take <item>,
// battle <name>, attack and inventory. Anything else returns
// ErrUnknownCommand without touching the session.
func (g *Game) Execute(ctx context.Context, input string) Result {
	cmd := ParseCommand(input)

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.command")
	defer span.End()
	span.SetAttributes(
		attribute.String("verb", cmd.Verb),
		attribute.String("target", cmd.Target),
	)

	res := g.dispatch(ctx, cmd)

	span.SetAttributes(attribute.Bool("state_changed", res.StateChanged))
	if res.Err != nil {
		span.SetAttributes(attribute.String("error", res.Err.Error()))
	}
	return res
}

func (g *Game) dispatch(ctx context.Context, cmd Command) Result {
	switch cmd.Verb {
	case "look":
		return g.Look()
	case "inventory":
		return g.Inventory()
	case "attack":
		return g.Attack(ctx)
	case "go":
		if cmd.Target == "" {
			return fail(ErrNotFound, "Go where?")
		}
		return g.Move(ctx, cmd.Target)
	case "talk":
		if cmd.Target == "" {
			return fail(ErrNotFound, "Talk to whom?")
		}
		return g.Talk(cmd.Target)
	case "take":
		if cmd.Target == "" {
			return fail(ErrNotFound, "Take what?")
		}
		return g.Take(cmd.Target)
	case "battle":
		if cmd.Target == "" {
			return fail(ErrNotFound, "Battle whom?")
		}
		return g.StartBattle(ctx, cmd.Target)
	default:
		return fail(ErrUnknownCommand, unknownCommandMessage)
	}
}
