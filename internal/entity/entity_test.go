package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardCloneIsIndependent(t *testing.T) {
	template := NewCard("Hero Knight", 10, 40)
	fresh := template.Clone()

	fresh.TakeDamage(15)

	assert.Equal(t, 40, template.Health)
	assert.Equal(t, 25, fresh.Health)
}

func TestCardAttackAllowsNegativeHealth(t *testing.T) {
	attacker := NewCard("Hero Knight", 10, 40)
	target := NewCard("Goblin", 8, 5)

	dealt := attacker.Attack(target)

	assert.Equal(t, 10, dealt)
	assert.Equal(t, -5, target.Health)
	assert.True(t, target.IsDefeated())
}

func TestCardIsDefeatedAtZero(t *testing.T) {
	tests := []struct {
		health   int
		expected bool
	}{
		{1, false},
		{0, true},
		{-3, true},
	}

	for _, tt := range tests {
		c := NewCard("Test", 1, tt.health)
		if got := c.IsDefeated(); got != tt.expected {
			t.Errorf("Card{Health: %d}.IsDefeated() = %v, want %v", tt.health, got, tt.expected)
		}
	}
}

func TestCardSnapshotString(t *testing.T) {
	s := NewCard("Luna", 9, 32).Snapshot()
	assert.Equal(t, "Luna (9/32)", s.String())
}

func TestCharacterTalk(t *testing.T) {
	luna := NewCharacter("Luna", Dialogue{
		Default:    "Welcome!",
		PostBattle: "You fought bravely.",
	}, NewCard("Luna", 9, 32))

	assert.Equal(t, `Luna says: "Welcome!"`, luna.Talk())

	luna.MarkDefeated()
	assert.True(t, luna.Defeated())
	assert.Equal(t, `Luna says: "You fought bravely."`, luna.Talk())
}

func TestCharacterTalkWithoutPostBattleLine(t *testing.T) {
	guard := NewCharacter("Guard", Dialogue{Default: "Stay vigilant, stranger."}, nil)
	guard.MarkDefeated()

	assert.Equal(t, "Stay vigilant, stranger.", guard.Line())
	assert.False(t, guard.CanBattle())
}

func TestCharacterClaimReward(t *testing.T) {
	medallion := NewItem("Starter Medallion", "Awarded for defeating Luna.")
	luna := NewCharacter("Luna", Dialogue{Default: "Hi"}, nil)
	luna.Reward = medallion

	assert.Same(t, medallion, luna.ClaimReward())
	assert.Nil(t, luna.ClaimReward())
}
