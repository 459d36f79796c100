package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-arena/internal/engine/arena"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
)

// Fighter names the catalog records of one side
type Fighter struct {
	Name   string `json:"name"`
	Class  string `json:"class"`
	Weapon string `json:"weapon"`
	Armor  string `json:"armor"`
}

// StartBattleRequest creates a battle
type StartBattleRequest struct {
	Player Fighter `json:"player"`
	Enemy  Fighter `json:"enemy"`
}

// BattleRequest addresses an existing battle
type BattleRequest struct {
	BattleID string `json:"battle_id"`
}

// ListRecordsRequest bounds a record listing
type ListRecordsRequest struct {
	Limit int `json:"limit"`
}

// Snapshot is one side's display state
type Snapshot struct {
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Stamina float64 `json:"stamina"`
}

// CatalogResponse lists every selectable record
type CatalogResponse struct {
	Classes []string `json:"classes"`
	Weapons []string `json:"weapons"`
	Armors  []string `json:"armors"`
}

// StartBattleResponse describes a new battle
type StartBattleResponse struct {
	BattleID string   `json:"battle_id"`
	Messages []string `json:"messages"`
	Player   Snapshot `json:"player"`
	Enemy    Snapshot `json:"enemy"`
	Running  bool     `json:"running"`
}

// TurnResponse is the result of one action
type TurnResponse struct {
	BattleID    string   `json:"battle_id"`
	Message     string   `json:"message"`
	Messages    []string `json:"messages"`
	Player      Snapshot `json:"player"`
	Enemy       Snapshot `json:"enemy"`
	BattleEnded bool     `json:"battle_ended"`
	Outcome     string   `json:"outcome,omitempty"`
	Winner      string   `json:"winner,omitempty"`
}

// BattleResultResponse is the terminal summary
type BattleResultResponse struct {
	BattleID string `json:"battle_id"`
	Outcome  string `json:"outcome"`
	Winner   string `json:"winner,omitempty"`
	Message  string `json:"message"`
	Turns    int    `json:"turns"`
}

// EndBattleResponse confirms a discarded battle
type EndBattleResponse struct {
	BattleID   string `json:"battle_id"`
	WasRunning bool   `json:"was_running"`
}

// Record is a stored finished battle
type Record struct {
	BattleID    string    `json:"battle_id"`
	PlayerName  string    `json:"player_name"`
	PlayerClass string    `json:"player_class"`
	EnemyName   string    `json:"enemy_name"`
	EnemyClass  string    `json:"enemy_class"`
	Outcome     string    `json:"outcome"`
	Winner      string    `json:"winner,omitempty"`
	Message     string    `json:"message"`
	Turns       int       `json:"turns"`
	Log         []string  `json:"log"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
}

// RecordsResponse lists records newest first
type RecordsResponse struct {
	Records []Record `json:"records"`
}

func (r *StartBattleRequest) toInput() *battle.StartBattleInput {
	return &battle.StartBattleInput{
		Player: battle.FighterSpec(r.Player),
		Enemy:  battle.FighterSpec(r.Enemy),
	}
}

func toSnapshot(s arena.Snapshot) Snapshot {
	return Snapshot(s)
}

func toCatalogResponse(out *battle.ListCatalogOutput) *CatalogResponse {
	return &CatalogResponse{
		Classes: out.Classes,
		Weapons: out.Weapons,
		Armors:  out.Armors,
	}
}

func toStartBattleResponse(out *battle.StartBattleOutput) *StartBattleResponse {
	return &StartBattleResponse{
		BattleID: out.BattleID,
		Messages: out.Messages,
		Player:   toSnapshot(out.Player),
		Enemy:    toSnapshot(out.Enemy),
		Running:  out.Running,
	}
}

func toTurnResponse(out *battle.ActionOutput) *TurnResponse {
	turn := out.Turn
	return &TurnResponse{
		BattleID:    out.BattleID,
		Message:     turn.Message(),
		Messages:    turn.Messages,
		Player:      toSnapshot(turn.Player),
		Enemy:       toSnapshot(turn.Enemy),
		BattleEnded: turn.BattleEnded,
		Outcome:     string(turn.Outcome),
		Winner:      turn.Winner,
	}
}

func toBattleResultResponse(out *battle.GetBattleResultOutput) *BattleResultResponse {
	return &BattleResultResponse{
		BattleID: out.BattleID,
		Outcome:  string(out.Result.Outcome),
		Winner:   out.Result.Winner,
		Message:  out.Result.Message,
		Turns:    out.Result.Turns,
	}
}

func toRecord(r *battles.Record) Record {
	return Record{
		BattleID:    r.ID,
		PlayerName:  r.PlayerName,
		PlayerClass: r.PlayerClass,
		EnemyName:   r.EnemyName,
		EnemyClass:  r.EnemyClass,
		Outcome:     r.Outcome,
		Winner:      r.Winner,
		Message:     r.Message,
		Turns:       r.Turns,
		Log:         r.Log,
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
	}
}

func toRecordsResponse(records []*battles.Record) *RecordsResponse {
	out := &RecordsResponse{Records: make([]Record, 0, len(records))}
	for _, r := range records {
		out.Records = append(out.Records, toRecord(r))
	}
	return out
}

// encode carries a DTO as a protobuf Struct through its JSON form
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	msg := &structpb.Struct{}
	if err := msg.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return msg, nil
}

// decode reads a DTO out of a protobuf Struct. A nil message decodes to the zero value.
func decode(msg *structpb.Struct, v any) error {
	if msg == nil {
		return nil
	}

	data, err := msg.MarshalJSON()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	return nil
}
