package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cardhall/internal/combat"
	"github.com/samdwyer/cardhall/internal/telemetry"
)

// StartBattle challenges a character in the current room.
//
// Only one battle may be active at a time: a second challenge is rejected
// with ErrBattleAlreadyActive and the running battle is left untouched.
func (g *Game) StartBattle(ctx context.Context, characterName string) Result {
	if g.player.InBattle() {
		return fail(ErrBattleAlreadyActive,
			fmt.Sprintf("You are already battling %s!", g.player.Battle.Opponent.Name))
	}

	opponent := g.player.Room.FindCharacter(characterName)
	if opponent == nil {
		return fail(ErrNotFound, fmt.Sprintf("No one named %s here to battle.", characterName))
	}
	if opponent.Defeated() {
		return fail(ErrAlreadyDefeated, fmt.Sprintf("%s has already been defeated.", opponent.Name))
	}
	if !opponent.CanBattle() {
		return fail(ErrMissingBattleCard, fmt.Sprintf("%s doesn't have a battle card.", opponent.Name))
	}

	battle := combat.NewBattle(g.player.Card, opponent.Card)
	g.player.Battle = &Encounter{Battle: battle, Opponent: opponent}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("opponent", opponent.Name),
		attribute.String("room", g.player.Room.Name),
		attribute.Int("player.power", battle.PlayerCard.Power),
		attribute.Int("player.health", battle.PlayerCard.Health),
		attribute.Int("enemy.power", battle.EnemyCard.Power),
		attribute.Int("enemy.health", battle.EnemyCard.Health),
	)
	span.End()

	g.logger.Info("battle started", "opponent", opponent.Name, "room", g.player.Room.Name)

	return changed(
		fmt.Sprintf("You challenge %s to a battle! Type 'attack' to fight.", opponent.Name),
		&Event{Type: EventBattleStarted, Payload: BattleStartedPayload{
			Opponent: opponent.Name,
			Player:   battle.PlayerCard.Snapshot(),
			Enemy:    battle.EnemyCard.Snapshot(),
		}},
	)
}

// Attack plays the player's turn. It refuses while the enemy's reply is pending.
func (g *Game) Attack(ctx context.Context) Result {
	if !g.player.InBattle() {
		return fail(ErrNoActiveBattle, "You are not in a battle.")
	}
	if g.player.Battle.Turn != combat.SidePlayer {
		return fail(ErrNotYourTurn,
			fmt.Sprintf("Wait for %s to make a move.", g.player.Battle.Opponent.Name))
	}
	return g.PlayTurn(ctx)
}

// PlayTurn advances the active battle by exactly one attack, by whichever side
// is due. On a terminal outcome the battle is detached from the player; a
// player victory marks the opponent defeated, writes it to the ledger and
// hands over the opponent's reward.
func (g *Game) PlayTurn(ctx context.Context) Result {
	enc := g.player.Battle
	if enc == nil {
		return fail(ErrNoActiveBattle, "You are not in a battle.")
	}

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.turn")
	defer span.End()

	res, err := enc.PlayTurn()
	if err != nil {
		// A finished battle is never left attached
		g.player.Battle = nil
		return fail(ErrNoActiveBattle, "You are not in a battle.")
	}

	span.SetAttributes(
		attribute.String("attacker", res.Attacker.String()),
		attribute.String("opponent", enc.Opponent.Name),
		attribute.Int("damage", res.Damage),
		attribute.Int("turn", enc.TurnCount),
		attribute.Int("player.health", res.PlayerHealth),
		attribute.Int("enemy.health", res.EnemyHealth),
	)

	if !res.Outcome.Terminal() {
		return changed(res.Message, &Event{Type: EventBattleTurn, Payload: BattleTurnPayload{
			Attacker: sideName(res.Attacker),
			Damage:   res.Damage,
			Next:     sideName(enc.Turn),
			Player:   enc.PlayerCard.Snapshot(),
			Enemy:    enc.EnemyCard.Snapshot(),
		}})
	}

	return g.endBattle(ctx, enc, res)
}

func (g *Game) endBattle(ctx context.Context, enc *Encounter, res combat.TurnResult) Result {
	g.player.Battle = nil

	winner, _ := enc.Winner()
	payload := BattleEndedPayload{
		Opponent: enc.Opponent.Name,
		Winner:   sideName(winner),
		Damage:   res.Damage,
		Player:   enc.PlayerCard.Snapshot(),
		Enemy:    enc.EnemyCard.Snapshot(),
	}
	message := res.Message

	if res.Outcome == combat.OutcomePlayerWon {
		opponent := enc.Opponent
		opponent.MarkDefeated()
		if g.ledger != nil {
			if err := g.ledger.SaveDefeated(ctx, opponent.Name); err != nil {
				g.logger.Warn("failed to record defeat", "character", opponent.Name, "error", err)
			}
		}

		if reward := opponent.ClaimReward(); reward != nil {
			if g.player.addItem(reward) {
				message += fmt.Sprintf("\n%s hands you the %s.", opponent.Name, reward.Name)
			} else {
				// Already carrying one; leave it where the opponent stands
				room := g.world.RoomOf(opponent)
				if room == nil {
					room = g.player.Room
				}
				room.AddItem(reward)
			}
			payload.Reward = reward.Name
		}
		g.logger.Info("battle won", "opponent", opponent.Name, "turns", enc.TurnCount)
	} else {
		g.logger.Info("battle lost", "opponent", enc.Opponent.Name, "turns", enc.TurnCount)
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", res.Outcome.String()),
		attribute.String("opponent", enc.Opponent.Name),
		attribute.Int("turns_taken", enc.TurnCount),
		attribute.Int("player_hp_remaining", enc.PlayerCard.Health),
	)
	span.End()

	return changed(message, &Event{Type: EventBattleEnded, Payload: payload})
}
