package entity

// Dialogue holds what a character says before and after being defeated.
type Dialogue struct {
	Default    string
	PostBattle string // empty when the character has nothing new to say
}

// Character is a non-player character. Name is its unique key.
type Character struct {
	Name     string
	Dialogue Dialogue
	Card     *Card // template stats; nil if the character does not battle
	Reward   *Item // granted to the player on the defeating battle, nil once claimed

	defeated bool
}

// NewCharacter creates a new character. card may be nil.
func NewCharacter(name string, dialogue Dialogue, card *Card) *Character {
	return &Character{
		Name:     name,
		Dialogue: dialogue,
		Card:     card,
	}
}

// Defeated reports whether the character has lost a battle.
func (c *Character) Defeated() bool {
	return c.defeated
}

// MarkDefeated flags the character as defeated. It never resets.
func (c *Character) MarkDefeated() {
	c.defeated = true
}

// CanBattle returns true if the character has a battle card.
func (c *Character) CanBattle() bool {
	return c.Card != nil
}

// Line returns the dialogue text for the character's current state.
func (c *Character) Line() string {
	if c.defeated && c.Dialogue.PostBattle != "" {
		return c.Dialogue.PostBattle
	}
	return c.Dialogue.Default
}

// Talk returns the character's line framed as speech.
func (c *Character) Talk() string {
	return c.Name + ` says: "` + c.Line() + `"`
}

// ClaimReward hands over the reward item, leaving the character without one.
func (c *Character) ClaimReward() *Item {
	reward := c.Reward
	c.Reward = nil
	return reward
}
