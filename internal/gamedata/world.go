package gamedata

// =============================================================================
// WORLD DATA
// =============================================================================
//
// The world is declared in world.json (or an external file with the same
// shape). Rooms, characters and items reference each other by name:
//
//   - Room.Characters lists character names standing in the room
//   - Room.Items lists item names; each entry becomes its own instance
//   - Room.Exits maps a direction to a room name (one-way)
//   - Character.Reward names the item handed over when the character is beaten
//   - Gate.Requires lists item names that must all be carried to enter Gate.Room

// CardDef defines the template stats of a battle card.
type CardDef struct {
	Name   string `json:"name" yaml:"name"`
	Power  int    `json:"power" yaml:"power"`
	Health int    `json:"health" yaml:"health"`
}

// ItemDef defines a collectible item.
type ItemDef struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// DialogueDef defines what a character says.
type DialogueDef struct {
	Default    string `json:"default" yaml:"default"`
	PostBattle string `json:"postBattle,omitempty" yaml:"postBattle,omitempty"`
}

// CharacterDef defines a non-player character.
type CharacterDef struct {
	Name     string      `json:"name" yaml:"name"`
	Dialogue DialogueDef `json:"dialogue" yaml:"dialogue"`
	Card     *CardDef    `json:"card,omitempty" yaml:"card,omitempty"`     // nil for characters who don't battle
	Reward   string      `json:"reward,omitempty" yaml:"reward,omitempty"` // item name, optional
}

// RoomDef defines a location.
type RoomDef struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Image       string            `json:"image" yaml:"image"`
	Color       string            `json:"color,omitempty" yaml:"color,omitempty"` // hex accent colour
	Characters  []string          `json:"characters,omitempty" yaml:"characters,omitempty"`
	Items       []string          `json:"items,omitempty" yaml:"items,omitempty"`
	Exits       map[string]string `json:"exits,omitempty" yaml:"exits,omitempty"`
}

// GateDef defines an item-gated room.
type GateDef struct {
	Room     string   `json:"room" yaml:"room"`
	Requires []string `json:"requires" yaml:"requires"`
	Message  string   `json:"message" yaml:"message"`
}

// PlayerDef defines the player's name and template card.
type PlayerDef struct {
	Name string  `json:"name" yaml:"name"`
	Card CardDef `json:"card" yaml:"card"`
}

// WorldDef represents the structure of world.json.
type WorldDef struct {
	Start      string         `json:"start" yaml:"start"`
	Player     PlayerDef      `json:"player" yaml:"player"`
	Items      []ItemDef      `json:"items" yaml:"items"`
	Characters []CharacterDef `json:"characters" yaml:"characters"`
	Rooms      []RoomDef      `json:"rooms" yaml:"rooms"`
	Gate       *GateDef       `json:"gate,omitempty" yaml:"gate,omitempty"`
}

// LoadWorld loads the world definition from the embedded world.json file.
func LoadWorld() (WorldDef, error) {
	return Load[WorldDef]("world.json")
}

// MustLoadWorld loads the world definition, panicking on error.
func MustLoadWorld() WorldDef {
	def, err := LoadWorld()
	if err != nil {
		panic(err)
	}
	return def
}

// LoadWorldFile loads a world definition from a JSON or YAML file on disk.
func LoadWorldFile(path string) (WorldDef, error) {
	return LoadFile[WorldDef](path)
}
