// Package combat provides the turn-based card battle engine.
package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/cardhall/internal/entity"
)

// ErrBattleOver is returned by PlayTurn once the battle has a winner.
var ErrBattleOver = errors.New("battle is already over")

// Side identifies one of the two cards in a battle.
type Side int

const (
	// SidePlayer is the player's card.
	SidePlayer Side = iota
	// SideEnemy is the opponent's card.
	SideEnemy
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Outcome is the result state of a battle.
type Outcome int

const (
	// OutcomeInProgress - nobody has won yet
	OutcomeInProgress Outcome = iota
	// OutcomePlayerWon - the enemy card was driven to zero health
	OutcomePlayerWon
	// OutcomeEnemyWon - the player card was driven to zero health
	OutcomeEnemyWon
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomePlayerWon:
		return "player_won"
	case OutcomeEnemyWon:
		return "enemy_won"
	default:
		return "unknown"
	}
}

// Terminal returns true if the battle has ended.
func (o Outcome) Terminal() bool {
	return o == OutcomePlayerWon || o == OutcomeEnemyWon
}

// Battle is a duel between two battle-scoped cards.
//
// The state machine is PlayerTurn -> EnemyTurn -> PlayerTurn ... until one
// card reaches zero health, which moves it to PlayerWon or EnemyWon. Damage is
// the attacker's power, exactly; there is no defense, variance or healing.
type Battle struct {
	PlayerCard *entity.Card
	EnemyCard  *entity.Card
	Turn       Side
	Outcome    Outcome
	TurnCount  int
}

// NewBattle starts a battle between fresh copies of the two template cards.
// The templates themselves are never damaged.
func NewBattle(playerTemplate, enemyTemplate *entity.Card) *Battle {
	return &Battle{
		PlayerCard: playerTemplate.Clone(),
		EnemyCard:  enemyTemplate.Clone(),
		Turn:       SidePlayer,
		Outcome:    OutcomeInProgress,
	}
}

// TurnResult describes one resolved attack.
type TurnResult struct {
	Attacker     Side
	Damage       int
	PlayerHealth int
	EnemyHealth  int
	Outcome      Outcome
	Message      string // human-readable description
}

// PlayTurn resolves exactly one attack by the side whose turn it is.
func (b *Battle) PlayTurn() (TurnResult, error) {
	if b.Outcome.Terminal() {
		return TurnResult{}, ErrBattleOver
	}

	attacker, defender := b.PlayerCard, b.EnemyCard
	if b.Turn == SideEnemy {
		attacker, defender = b.EnemyCard, b.PlayerCard
	}

	damage := attacker.Attack(defender)
	b.TurnCount++

	result := TurnResult{
		Attacker: b.Turn,
		Damage:   damage,
		Message:  fmt.Sprintf("%s attacks %s for %d damage!", attacker.Name, defender.Name, damage),
	}

	switch {
	case defender.IsDefeated() && b.Turn == SidePlayer:
		b.Outcome = OutcomePlayerWon
		result.Message += "\n" + defender.Name + " is defeated! You win!"
	case defender.IsDefeated():
		b.Outcome = OutcomeEnemyWon
		result.Message += "\n" + defender.Name + " is defeated! You lose!"
	default:
		if b.Turn == SidePlayer {
			b.Turn = SideEnemy
		} else {
			b.Turn = SidePlayer
		}
		result.Message += fmt.Sprintf("\n%s HP: %d, %s HP: %d",
			b.PlayerCard.Name, b.PlayerCard.Health, b.EnemyCard.Name, b.EnemyCard.Health)
	}

	result.PlayerHealth = b.PlayerCard.Health
	result.EnemyHealth = b.EnemyCard.Health
	result.Outcome = b.Outcome
	return result, nil
}

// Winner returns the winning side, or false while the battle is in progress.
func (b *Battle) Winner() (Side, bool) {
	switch b.Outcome {
	case OutcomePlayerWon:
		return SidePlayer, true
	case OutcomeEnemyWon:
		return SideEnemy, true
	default:
		return 0, false
	}
}
