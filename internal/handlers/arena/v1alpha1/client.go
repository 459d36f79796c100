package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client is a typed client for the arena gRPC service
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// ListCatalog returns the selectable records
func (c *Client) ListCatalog(ctx context.Context) (*CatalogResponse, error) {
	var out CatalogResponse
	if err := c.call(ctx, MethodListCatalog, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartBattle creates a battle
func (c *Client) StartBattle(ctx context.Context, req *StartBattleRequest) (*StartBattleResponse, error) {
	var out StartBattleResponse
	if err := c.call(ctx, MethodStartBattle, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayerHit attacks with the player's weapon
func (c *Client) PlayerHit(ctx context.Context, battleID string) (*TurnResponse, error) {
	return c.turn(ctx, MethodPlayerHit, battleID)
}

// PlayerUseSkill spends the player's skill
func (c *Client) PlayerUseSkill(ctx context.Context, battleID string) (*TurnResponse, error) {
	return c.turn(ctx, MethodPlayerUseSkill, battleID)
}

// PassTurn lets only the enemy act
func (c *Client) PassTurn(ctx context.Context, battleID string) (*TurnResponse, error) {
	return c.turn(ctx, MethodPassTurn, battleID)
}

// GetBattleResult returns the terminal summary
func (c *Client) GetBattleResult(ctx context.Context, battleID string) (*BattleResultResponse, error) {
	var out BattleResultResponse
	if err := c.call(ctx, MethodGetBattleResult, &BattleRequest{BattleID: battleID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EndBattle discards a battle
func (c *Client) EndBattle(ctx context.Context, battleID string) (*EndBattleResponse, error) {
	var out EndBattleResponse
	if err := c.call(ctx, MethodEndBattle, &BattleRequest{BattleID: battleID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecord returns a stored record
func (c *Client) GetRecord(ctx context.Context, battleID string) (*Record, error) {
	var out Record
	if err := c.call(ctx, MethodGetRecord, &BattleRequest{BattleID: battleID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecords returns recently finished battles
func (c *Client) ListRecords(ctx context.Context, limit int) (*RecordsResponse, error) {
	var out RecordsResponse
	if err := c.call(ctx, MethodListRecords, &ListRecordsRequest{Limit: limit}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) turn(ctx context.Context, method, battleID string) (*TurnResponse, error) {
	var out TurnResponse
	if err := c.call(ctx, method, &BattleRequest{BattleID: battleID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, method string, req, resp any) error {
	in, err := encode(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return err
	}

	return decode(out, resp)
}
