package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

func playOut(t *testing.T, cfg *config.Server) string {
	t.Helper()

	// regen keeps the warrior swinging; its plate shrugs off the staff
	cfg.Battle.StaminaRegen = 5

	deps, err := buildDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(deps.close)

	svc, err := newBattleService(cfg, deps, idgen.NewSequential("test"))
	require.NoError(t, err)

	ctx := context.Background()
	started, err := svc.StartBattle(ctx, &battle.StartBattleInput{
		Player: battle.FighterSpec{Name: "Hero", Class: "Warrior", Weapon: "Axe", Armor: "Plate"},
		Enemy:  battle.FighterSpec{Name: "Rat", Class: "Mage", Weapon: "Staff", Armor: "T-shirt"},
	})
	require.NoError(t, err)

	input := &battle.ActionInput{BattleID: started.BattleID}
	for i := 0; i < 100; i++ {
		out, err := svc.PlayerHit(ctx, input)
		require.NoError(t, err)
		if out.Turn.BattleEnded {
			break
		}
	}

	list, err := svc.ListRecords(ctx, &battle.ListRecordsInput{})
	require.NoError(t, err)
	require.Len(t, list.Records, 1)
	return list.Records[0].Outcome
}

func TestBuildDependencies_Memory(t *testing.T) {
	cfg := config.DefaultServer()
	seed := uint64(7)
	cfg.Battle.Seed = &seed

	assert.Equal(t, "player", playOut(t, &cfg))
}

func TestBuildDependencies_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.DefaultServer()
	cfg.Redis.Address = mr.Addr()
	seed := uint64(7)
	cfg.Battle.Seed = &seed

	assert.Equal(t, "player", playOut(t, &cfg))
	assert.True(t, mr.Exists("battle_record:test_1"))
}

func TestBuildDependencies_BadCatalog(t *testing.T) {
	cfg := config.DefaultServer()
	cfg.CatalogPath = t.TempDir() + "/missing.yaml"

	_, err := buildDependencies(&cfg)
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	cfg := config.DefaultServer()
	cfg.HTTPPort = 9000

	cmd := serverCmd
	require.NoError(t, cmd.Flags().Set("port", "6000"))
	t.Cleanup(func() {
		grpcPort = 50051
		_ = cmd.Flags().Set("port", "50051")
	})

	require.NoError(t, applyFlags(cmd, &cfg))
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, 9000, cfg.HTTPPort, "unset flags keep the file value")
}
