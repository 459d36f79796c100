package battle

import (
	"github.com/KirkDiggler/rpg-arena/internal/engine/arena"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
)

// Event types published on the bus. The source of every event is the player
// combatant and the target is the enemy; combatant IDs are prefixed with the battle ID.
const (
	EventBattleStarted = "arena.battle.started"
	EventTurnResolved  = "arena.turn.resolved"
	EventBattleEnded   = "arena.battle.ended"
)

// FighterSpec names the catalog records a combatant is built from
type FighterSpec struct {
	Name   string
	Class  string
	Weapon string
	Armor  string
}

// ListCatalogInput is the request for listing catalog names
type ListCatalogInput struct{}

// ListCatalogOutput contains the sorted names of every catalog record
type ListCatalogOutput struct {
	Classes []string
	Weapons []string
	Armors  []string
}

// StartBattleInput defines the two fighters
type StartBattleInput struct {
	Player FighterSpec
	Enemy  FighterSpec
}

// StartBattleOutput describes the battle that was created
type StartBattleOutput struct {
	BattleID string
	// Messages are the equip confirmations, player first
	Messages []string
	Player   arena.Snapshot
	Enemy    arena.Snapshot
	Running  bool
}

// ActionInput identifies the battle an action applies to
type ActionInput struct {
	BattleID string
}

// ActionOutput contains the result of one compound turn
type ActionOutput struct {
	BattleID string
	Turn     *arena.TurnResult
}

// GetBattleResultInput identifies a battle
type GetBattleResultInput struct {
	BattleID string
}

// GetBattleResultOutput contains the terminal summary
type GetBattleResultOutput struct {
	BattleID string
	Result   *arena.BattleResult
}

// EndBattleInput identifies the battle to discard
type EndBattleInput struct {
	BattleID string
}

// EndBattleOutput reports whether the discarded battle had finished
type EndBattleOutput struct {
	WasRunning bool
}

// GetRecordInput identifies a stored record
type GetRecordInput struct {
	BattleID string
}

// GetRecordOutput contains a stored record
type GetRecordOutput struct {
	Record *battles.Record
}

// ListRecordsInput bounds the listing
type ListRecordsInput struct {
	Limit int
}

// ListRecordsOutput contains records, newest first
type ListRecordsOutput struct {
	Records []*battles.Record
}
