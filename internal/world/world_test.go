package world

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cardhall/internal/entity"
	"github.com/samdwyer/cardhall/internal/gamedata"
)

func TestRoomConnectIsCaseInsensitive(t *testing.T) {
	lobby := NewRoom("Main Lobby", "A lobby.", "main.png")
	north := NewRoom("North Wing", "Cold.", "north.png")

	lobby.Connect("North", north)

	for _, dir := range []string{"north", "NORTH", " North "} {
		got, ok := lobby.Exit(dir)
		if !ok || got != north {
			t.Errorf("Exit(%q) = %v, %v; want North Wing", dir, got, ok)
		}
	}

	// Exits are one-way
	_, ok := north.Exit("south")
	assert.False(t, ok)
	assert.Equal(t, []string{"north"}, lobby.Exits())
}

func TestRoomDescribe(t *testing.T) {
	r := NewRoom("Main Lobby", "A bustling lobby.", "main.png")
	assert.Equal(t, "Main Lobby: A bustling lobby.", r.Describe())
}

func TestRoomItems(t *testing.T) {
	r := NewRoom("Hall", "", "")
	a := entity.NewItem("Booster", "")
	b := entity.NewItem("Booster", "")
	r.AddItem(a)
	r.AddItem(b)

	assert.Same(t, a, r.FindItem("booster"))
	assert.True(t, r.RemoveItem(a))
	assert.False(t, r.RemoveItem(a))
	assert.Same(t, b, r.FindItem("BOOSTER"))
	assert.True(t, r.RemoveItem(b))
	assert.Nil(t, r.FindItem("booster"))
}

func TestBuildDefaultWorld(t *testing.T) {
	w, err := Build(context.Background(), gamedata.MustLoadWorld(), nil)
	require.NoError(t, err)

	require.NotNil(t, w.Start)
	assert.Equal(t, "Main Lobby", w.Start.Name)
	assert.Len(t, w.Rooms(), 5)

	north, ok := w.Start.Exit("north")
	require.True(t, ok)
	assert.Equal(t, "North Wing", north.Name)

	back, ok := north.Exit("lobby")
	require.True(t, ok)
	assert.Same(t, w.Start, back)

	luna := w.Start.FindCharacter("luna")
	require.NotNil(t, luna)
	assert.Equal(t, 9, luna.Card.Power)
	assert.Equal(t, 32, luna.Card.Health)
	assert.False(t, luna.Defeated())
	require.NotNil(t, luna.Reward)
	assert.Equal(t, "Starter Medallion", luna.Reward.Name)
	assert.Same(t, w.Start, w.RoomOf(luna))

	west := w.Room("West Wing")
	gate := w.GateFor(west)
	require.NotNil(t, gate)
	assert.Len(t, gate.Requires, 4)
	assert.Nil(t, w.GateFor(w.Start))

	assert.Equal(t, "Hero Knight", w.PlayerCard.Name)
	assert.Equal(t, 10, w.PlayerCard.Power)
	assert.Equal(t, 40, w.PlayerCard.Health)
}

func TestBuildRestoresDefeated(t *testing.T) {
	w, err := Build(context.Background(), gamedata.MustLoadWorld(), map[string]bool{
		"Luna":    true,
		"Lorenzo": false,
		"Nobody":  true,
	})
	require.NoError(t, err)

	luna := w.Character("Luna")
	assert.True(t, luna.Defeated())
	assert.Nil(t, luna.Reward, "reward moves to the room for an already beaten character")
	assert.NotNil(t, w.Start.FindItem("Starter Medallion"))

	assert.False(t, w.Character("Lorenzo").Defeated())
	assert.Nil(t, w.Room("North Wing").FindItem("Northern Medallion"))
}

func TestBuildRejectsBadData(t *testing.T) {
	base := func() gamedata.WorldDef {
		return gamedata.WorldDef{
			Start:  "A",
			Player: gamedata.PlayerDef{Name: "P", Card: gamedata.CardDef{Name: "P", Power: 1, Health: 1}},
			Items:  []gamedata.ItemDef{{Name: "Key"}},
			Characters: []gamedata.CharacterDef{
				{Name: "Npc", Dialogue: gamedata.DialogueDef{Default: "hi"}},
			},
			Rooms: []gamedata.RoomDef{
				{Name: "A", Characters: []string{"Npc"}, Items: []string{"Key"}, Exits: map[string]string{"b": "B"}},
				{Name: "B"},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(d *gamedata.WorldDef)
	}{
		{"unknown start", func(d *gamedata.WorldDef) { d.Start = "Z" }},
		{"unknown exit", func(d *gamedata.WorldDef) { d.Rooms[1].Exits = map[string]string{"x": "Z"} }},
		{"unknown item", func(d *gamedata.WorldDef) { d.Rooms[1].Items = []string{"Gem"} }},
		{"unknown character", func(d *gamedata.WorldDef) { d.Rooms[1].Characters = []string{"Ghost"} }},
		{"character placed twice", func(d *gamedata.WorldDef) { d.Rooms[1].Characters = []string{"Npc"} }},
		{"duplicate room", func(d *gamedata.WorldDef) { d.Rooms[1].Name = "A" }},
		{"bad player card", func(d *gamedata.WorldDef) { d.Player.Card.Health = 0 }},
		{"gate unknown room", func(d *gamedata.WorldDef) { d.Gate = &gamedata.GateDef{Room: "Z"} }},
		{"gate unknown item", func(d *gamedata.WorldDef) {
			d.Gate = &gamedata.GateDef{Room: "B", Requires: []string{"Gem"}}
		}},
		{"unknown reward", func(d *gamedata.WorldDef) { d.Characters[0].Reward = "Gem" }},
		{"bad character card", func(d *gamedata.WorldDef) {
			d.Characters[0].Card = &gamedata.CardDef{Name: "Npc", Power: 0, Health: 5}
		}},
	}

	_, err := Build(context.Background(), base(), nil)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(&d)
			_, err := Build(context.Background(), d, nil)
			if !errors.Is(err, ErrInvalidWorld) {
				t.Errorf("Build() error = %v, want ErrInvalidWorld", err)
			}
		})
	}
}

func TestGateMissing(t *testing.T) {
	g := &Gate{Requires: []string{"A", "B", "C"}}
	have := map[string]bool{"B": true}

	missing := g.Missing(func(name string) bool { return have[name] })
	assert.Equal(t, []string{"A", "C"}, missing)
}
