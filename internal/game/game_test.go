package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cardhall/internal/entity"
	"github.com/samdwyer/cardhall/internal/gamedata"
	"github.com/samdwyer/cardhall/internal/ledger"
)

var medallions = []string{
	"Starter Medallion",
	"Northern Medallion",
	"Eastern Medallion",
	"Southern Medallion",
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T, store ledger.Store) *Game {
	t.Helper()
	g, err := Start(context.Background(), gamedata.MustLoadWorld(), Options{
		Ledger: store,
		Logger: quietLogger(),
	})
	require.NoError(t, err)
	return g
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeExplore, "explore"},
		{ModeBattle, "battle"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.mode.String()
		if got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestStartPlacesPlayerInStartRoom(t *testing.T) {
	g := newTestGame(t, nil)

	assert.Equal(t, "Main Lobby", g.Player().Room.Name)
	assert.Equal(t, "Hero", g.Player().Name)
	assert.Empty(t, g.Player().Inventory)
	assert.Equal(t, ModeExplore, g.Mode())
}

func TestStartPlayerNameOverride(t *testing.T) {
	g, err := Start(context.Background(), gamedata.MustLoadWorld(), Options{
		PlayerName: "Sam",
		Logger:     quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam", g.Player().Name)
}

func TestLook(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Look()
	assert.True(t, res.OK())
	assert.False(t, res.StateChanged)
	assert.Equal(t, g.Player().Room.Describe(), res.Message)
}

func TestMoveUnknownDirection(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()

	for _, dir := range []string{"up", "lobby", "northwest", ""} {
		res := g.Move(ctx, dir)
		if !errors.Is(res.Err, ErrNotFound) {
			t.Errorf("Move(%q) error = %v, want ErrNotFound", dir, res.Err)
		}
		assert.False(t, res.StateChanged)
		assert.Nil(t, res.Event)
		assert.Equal(t, "Main Lobby", g.Player().Room.Name)
	}
}

func TestMoveEmitsRoomChanged(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Move(context.Background(), "NORTH")
	require.True(t, res.OK())
	assert.True(t, res.StateChanged)
	assert.Equal(t, "North Wing", g.Player().Room.Name)
	assert.Contains(t, res.Message, "You move to the North Wing. North Wing: ")

	require.NotNil(t, res.Event)
	assert.Equal(t, EventRoomChanged, res.Event.Type)
	payload, ok := res.Event.Payload.(RoomChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "north.png", payload.Image)

	res = g.Move(context.Background(), "lobby")
	require.True(t, res.OK())
	assert.Equal(t, "Main Lobby", g.Player().Room.Name)
}

func TestGatedRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("all items", func(t *testing.T) {
		g := newTestGame(t, nil)
		for _, name := range medallions {
			g.Player().addItem(entity.NewItem(name, ""))
		}

		res := g.Move(ctx, "west")
		require.True(t, res.OK(), res.Message)
		assert.Equal(t, "West Wing", g.Player().Room.Name)
	})

	for _, omitted := range medallions {
		t.Run("without "+omitted, func(t *testing.T) {
			g := newTestGame(t, nil)
			for _, name := range medallions {
				if name != omitted {
					g.Player().addItem(entity.NewItem(name, ""))
				}
			}

			res := g.Move(ctx, "west")
			if !errors.Is(res.Err, ErrProgressionGated) {
				t.Fatalf("Move(west) error = %v, want ErrProgressionGated", res.Err)
			}
			assert.False(t, res.StateChanged)
			assert.Equal(t, "Main Lobby", g.Player().Room.Name)
			assert.Contains(t, res.Message, "collect all the available medallions")
		})
	}

	t.Run("names are exact", func(t *testing.T) {
		g := newTestGame(t, nil)
		for _, name := range medallions {
			g.Player().addItem(entity.NewItem(name, ""))
		}
		g.Player().Inventory[0] = entity.NewItem("starter medallion", "")

		res := g.Move(ctx, "west")
		assert.ErrorIs(t, res.Err, ErrProgressionGated)
	})
}

func TestTake(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Take("booster")
	require.True(t, res.OK())
	assert.True(t, res.StateChanged)
	assert.Equal(t, "You picked up Booster.", res.Message)
	require.NotNil(t, res.Event)
	assert.Equal(t, EventItemTaken, res.Event.Type)
	assert.Equal(t, ItemTakenPayload{Item: "Booster", Image: "booster.png"}, res.Event.Payload)

	assert.Equal(t, []string{"Booster"}, g.Player().ItemNames())
	assert.Nil(t, g.Player().Room.FindItem("Booster"))

	// Already removed from the room
	res = g.Take("Booster")
	assert.ErrorIs(t, res.Err, ErrNotFound)
	assert.False(t, res.StateChanged)
	assert.Equal(t, []string{"Booster"}, g.Player().ItemNames())
}

func TestTakeDuplicateNameStaysInRoom(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()

	require.True(t, g.Take("Booster").OK())
	require.True(t, g.Move(ctx, "north").OK())

	res := g.Take("Booster")
	assert.ErrorIs(t, res.Err, ErrAlreadyCarried)
	assert.False(t, res.StateChanged)
	assert.NotNil(t, g.Player().Room.FindItem("Booster"))
	assert.Len(t, g.Player().Inventory, 1)
}

func TestTalk(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Talk("GUARD")
	require.True(t, res.OK())
	assert.False(t, res.StateChanged)
	assert.Equal(t, `Guard says: "Stay vigilant, stranger."`, res.Message)
	require.NotNil(t, res.Event)
	assert.Equal(t, EventCharacterSpoken, res.Event.Type)

	res = g.Talk("Lorenzo")
	assert.ErrorIs(t, res.Err, ErrNotFound)
	assert.Equal(t, "No one named Lorenzo here.", res.Message)
}

func TestInventory(t *testing.T) {
	g := newTestGame(t, nil)

	assert.Equal(t, "Your inventory is empty.", g.Inventory().Message)

	g.Take("Booster")
	g.Player().addItem(entity.NewItem("Starter Medallion", ""))

	assert.Equal(t, "You are carrying: Booster, Starter Medallion", g.Inventory().Message)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, nil)

	s := g.Snapshot()
	assert.Equal(t, "Main Lobby", s.Room)
	assert.Equal(t, "explore", s.Mode)
	assert.Equal(t, []string{"east", "north", "south", "west"}, s.Exits)
	assert.Equal(t, []string{"Booster"}, s.Items)
	require.Len(t, s.Characters, 3)
	assert.Equal(t, CharacterView{Name: "Luna", CanBattle: true}, s.Characters[0])
	assert.Nil(t, s.Battle)

	g.StartBattle(context.Background(), "Luna")
	s = g.Snapshot()
	assert.Equal(t, "battle", s.Mode)
	require.NotNil(t, s.Battle)
	assert.Equal(t, "player", s.Battle.Turn)
	assert.Equal(t, 32, s.Battle.Enemy.Health)
}
