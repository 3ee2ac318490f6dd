package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{"look", Command{Verb: "look"}},
		{"  GO   North ", Command{Verb: "go", Target: "North"}},
		{"take starter   medallion", Command{Verb: "take", Target: "starter medallion"}},
		{"Battle Luna", Command{Verb: "battle", Target: "Luna"}},
		{"", Command{}},
		{"   ", Command{}},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.input)
		if got != tt.expected {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.Snapshot()

	for _, input := range []string{"dance", "", "north", "fly away"} {
		res := g.Execute(context.Background(), input)
		assert.ErrorIs(t, res.Err, ErrUnknownCommand, input)
		assert.Equal(t, "Unknown command.", res.Message)
		assert.False(t, res.StateChanged)
	}

	assert.Equal(t, before, g.Snapshot())
}

func TestExecuteDispatch(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()

	res := g.Execute(ctx, "LOOK")
	assert.Equal(t, g.Player().Room.Describe(), res.Message)

	res = g.Execute(ctx, "talk luna")
	assert.Contains(t, res.Message, "Luna says:")

	res = g.Execute(ctx, "take booster")
	assert.True(t, res.StateChanged)

	res = g.Execute(ctx, "Inventory")
	assert.Equal(t, "You are carrying: Booster", res.Message)

	res = g.Execute(ctx, "battle luna")
	require.True(t, res.OK())
	assert.Equal(t, EventBattleStarted, res.Event.Type)

	res = g.Execute(ctx, "attack")
	require.True(t, res.OK())
	assert.Equal(t, EventBattleTurn, res.Event.Type)

	res = g.Execute(ctx, "go north")
	require.True(t, res.OK())
	assert.Equal(t, "North Wing", g.Player().Room.Name)
}

func TestExecuteMissingTarget(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()

	tests := map[string]string{
		"go":     "Go where?",
		"talk":   "Talk to whom?",
		"take":   "Take what?",
		"battle": "Battle whom?",
	}
	for input, msg := range tests {
		res := g.Execute(ctx, input)
		assert.ErrorIs(t, res.Err, ErrNotFound, input)
		assert.Equal(t, msg, res.Message)
		assert.False(t, res.StateChanged)
	}
}
