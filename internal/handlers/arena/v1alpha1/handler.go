package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
)

// HandlerConfig holds dependencies for the arena handler
type HandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler implements the arena gRPC service and the HTTP routes
type Handler struct {
	battleService battle.Service
}

// Ensure Handler implements ArenaServiceServer
var _ ArenaServiceServer = (*Handler)(nil)

// NewHandler creates a new arena handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService: cfg.BattleService,
	}, nil
}

// ListCatalog returns the selectable class, weapon and armor names
func (h *Handler) ListCatalog(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.battleService.ListCatalog(ctx, &battle.ListCatalogInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(toCatalogResponse(out))
}

// StartBattle creates a battle between two catalog-built fighters
func (h *Handler) StartBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in StartBattleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.StartBattle(ctx, in.toInput())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(toStartBattleResponse(out))
}

// PlayerHit resolves a player attack and the enemy reply
func (h *Handler) PlayerHit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.action(ctx, req, h.battleService.PlayerHit)
}

// PlayerUseSkill resolves the player's skill and the enemy reply
func (h *Handler) PlayerUseSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.action(ctx, req, h.battleService.PlayerUseSkill)
}

// PassTurn lets only the enemy act
func (h *Handler) PassTurn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.action(ctx, req, h.battleService.PassTurn)
}

// GetBattleResult returns the terminal summary of a finished battle
func (h *Handler) GetBattleResult(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in BattleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.GetBattleResult(ctx, &battle.GetBattleResultInput{BattleID: in.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(toBattleResultResponse(out))
}

// EndBattle discards a battle
func (h *Handler) EndBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in BattleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.EndBattle(ctx, &battle.EndBattleInput{BattleID: in.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(&EndBattleResponse{BattleID: in.BattleID, WasRunning: out.WasRunning})
}

// GetRecord returns the stored record of a finished battle
func (h *Handler) GetRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in BattleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.GetRecord(ctx, &battle.GetRecordInput{BattleID: in.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	record := toRecord(out.Record)
	return respond(&record)
}

// ListRecords returns recently finished battles
func (h *Handler) ListRecords(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListRecordsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.ListRecords(ctx, &battle.ListRecordsInput{Limit: in.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(toRecordsResponse(out.Records))
}

type actionFunc func(context.Context, *battle.ActionInput) (*battle.ActionOutput, error)

func (h *Handler) action(ctx context.Context, req *structpb.Struct, fn actionFunc) (*structpb.Struct, error) {
	var in BattleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := fn(ctx, &battle.ActionInput{BattleID: in.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(toTurnResponse(out))
}

func respond(v any) (*structpb.Struct, error) {
	msg, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return msg, nil
}
