// Package battle runs arena battles on behalf of the transports: it builds
// combatants from the catalog, keeps one engine per live battle, and stores a
// record once a battle ends.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/engine/arena"
	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/catalog"
)

// Service defines the battle operations exposed to transports
type Service interface {
	// ListCatalog returns the names a fighter can be built from
	ListCatalog(ctx context.Context, input *ListCatalogInput) (*ListCatalogOutput, error)

	// StartBattle builds both fighters and starts a new battle
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// PlayerHit attacks with the player's weapon, then the enemy replies
	PlayerHit(ctx context.Context, input *ActionInput) (*ActionOutput, error)

	// PlayerUseSkill spends the player's skill, then the enemy replies
	PlayerUseSkill(ctx context.Context, input *ActionInput) (*ActionOutput, error)

	// PassTurn skips the player's action; only the enemy acts
	PassTurn(ctx context.Context, input *ActionInput) (*ActionOutput, error)

	// GetBattleResult returns the terminal summary of a finished battle
	GetBattleResult(ctx context.Context, input *GetBattleResultInput) (*GetBattleResultOutput, error)

	// EndBattle discards a battle, finished or not
	EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error)

	// GetRecord reads the stored record of a finished battle
	GetRecord(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error)

	// ListRecords returns recently finished battles
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Catalog     catalog.Repository
	Records     battles.Repository
	EventBus    events.EventBus
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// StaminaRegen is restored to both sides after every running turn
	StaminaRegen float64
	// SkillChance is the enemy's percent chance to use its skill; zero means the default
	SkillChance int
	// SessionTTL is how long a battle is kept in memory after its last turn;
	// zero means DefaultSessionTTL. Finished battles stay readable through their record.
	SessionTTL time.Duration
}

// DefaultSessionTTL bounds how long an idle or finished battle stays in memory
const DefaultSessionTTL = 30 * time.Minute

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Records == nil {
		vb.RequiredField("Records")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateNonNegative("StaminaRegen", c.StaminaRegen, vb)
	if c.SkillChance < 0 || c.SkillChance > 100 {
		vb.Field("SkillChance", "must be between 0 and 100")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog  catalog.Repository
	records  battles.Repository
	eventBus events.EventBus
	roller   dice.Roller
	idGen    idgen.Generator
	clock    clock.Clock

	staminaRegen float64
	skillChance  int
	sessionTTL   time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
}

// session is one live battle. Its mutex serializes every action on the arena.
type session struct {
	mu sync.Mutex

	id          string
	arena       *arena.Arena
	playerClass string
	enemyClass  string
	startedAt   time.Time

	// unix nanos of the last turn that changed the battle; read without mu by the sweep
	lastActive atomic.Int64
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sessionTTL := cfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &orchestrator{
		catalog:      cfg.Catalog,
		records:      cfg.Records,
		eventBus:     cfg.EventBus,
		roller:       cfg.Roller,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		staminaRegen: cfg.StaminaRegen,
		skillChance:  cfg.SkillChance,
		sessionTTL:   sessionTTL,
		sessions:     make(map[string]*session),
	}, nil
}

func (o *orchestrator) ListCatalog(_ context.Context, _ *ListCatalogInput) (*ListCatalogOutput, error) {
	return &ListCatalogOutput{
		Classes: o.catalog.ListClasses(),
		Weapons: o.catalog.ListWeapons(),
		Armors:  o.catalog.ListArmors(),
	}, nil
}

func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateFighter("player", input.Player, vb)
	validateFighter("enemy", input.Enemy, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battleID := o.idGen.Generate()

	policy, err := combat.NewAutonomousPolicy(&combat.AutonomousConfig{
		Roller: o.roller,
		Chance: o.skillChance,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create enemy policy")
	}

	player, playerMsgs, err := o.buildFighter(battleID, combat.KindPlayer, input.Player, combat.DirectPolicy{})
	if err != nil {
		return nil, err
	}
	enemy, enemyMsgs, err := o.buildFighter(battleID, combat.KindEnemy, input.Enemy, policy)
	if err != nil {
		return nil, err
	}

	a, err := arena.New(&arena.Config{StaminaRegen: o.staminaRegen})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create arena")
	}
	if err := a.StartGame(player, enemy); err != nil {
		return nil, errors.Wrap(err, "failed to start battle")
	}

	now := o.clock.Now()
	sess := &session{
		id:          battleID,
		arena:       a,
		playerClass: input.Player.Class,
		enemyClass:  input.Enemy.Class,
		startedAt:   now,
	}
	sess.lastActive.Store(now.UnixNano())

	o.mu.Lock()
	o.sweepLocked(now)
	o.sessions[battleID] = sess
	o.mu.Unlock()

	slog.Info("Battle started",
		"battle_id", battleID,
		"player", player.Name(),
		"player_class", input.Player.Class,
		"enemy", enemy.Name(),
		"enemy_class", input.Enemy.Class,
	)
	o.publish(ctx, EventBattleStarted, a)

	return &StartBattleOutput{
		BattleID: battleID,
		Messages: append(playerMsgs, enemyMsgs...),
		Player:   arena.Snapshot{Name: player.Name(), Health: player.Health(), Stamina: player.Stamina()},
		Enemy:    arena.Snapshot{Name: enemy.Name(), Health: enemy.Health(), Stamina: enemy.Stamina()},
		Running:  a.GameIsRunning(),
	}, nil
}

func (o *orchestrator) PlayerHit(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	return o.act(ctx, input, "hit", (*arena.Arena).PlayerHit)
}

func (o *orchestrator) PlayerUseSkill(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	return o.act(ctx, input, "use_skill", (*arena.Arena).PlayerUseSkill)
}

func (o *orchestrator) PassTurn(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	return o.act(ctx, input, "pass_turn", (*arena.Arena).NextTurn)
}

func (o *orchestrator) GetBattleResult(ctx context.Context, input *GetBattleResultInput) (*GetBattleResultOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	sess, err := o.session(input.BattleID)
	if errors.IsNotFound(err) {
		return o.storedResult(ctx, input.BattleID)
	}
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	result, err := sess.arena.BattleResult()
	if err != nil {
		return nil, errors.Wrapf(err, "battle %s has no result", input.BattleID)
	}

	return &GetBattleResultOutput{
		BattleID: input.BattleID,
		Result:   result,
	}, nil
}

func (o *orchestrator) EndBattle(_ context.Context, input *EndBattleInput) (*EndBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	o.mu.Lock()
	sess, ok := o.sessions[input.BattleID]
	delete(o.sessions, input.BattleID)
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID)
	}

	sess.mu.Lock()
	running := sess.arena.GameIsRunning()
	sess.mu.Unlock()

	slog.Info("Battle discarded",
		"battle_id", input.BattleID,
		"was_running", running,
	)

	return &EndBattleOutput{WasRunning: running}, nil
}

func (o *orchestrator) GetRecord(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	out, err := o.records.Get(ctx, battles.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get record for battle %s", input.BattleID)
	}

	return &GetRecordOutput{Record: out.Record}, nil
}

func (o *orchestrator) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if input == nil {
		input = &ListRecordsInput{}
	}

	out, err := o.records.ListRecent(ctx, battles.ListRecentInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return &ListRecordsOutput{Records: out.Records}, nil
}

// act runs one arena action under the session lock. Only the turn that ends
// the battle saves a record; later calls get the terminal summary untouched.
func (o *orchestrator) act(
	ctx context.Context,
	input *ActionInput,
	action string,
	fn func(*arena.Arena) (*arena.TurnResult, error),
) (*ActionOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	sess, err := o.session(input.BattleID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	wasRunning := sess.arena.GameIsRunning()

	turn, err := fn(sess.arena)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", action)
	}

	if wasRunning {
		sess.lastActive.Store(o.clock.Now().UnixNano())
		slog.Debug("Turn resolved",
			"battle_id", sess.id,
			"action", action,
			"turn", sess.arena.Turns(),
			"battle_ended", turn.BattleEnded,
		)
		o.publish(ctx, EventTurnResolved, sess.arena)

		if turn.BattleEnded {
			o.finish(ctx, sess)
		}
	}

	return &ActionOutput{
		BattleID: sess.id,
		Turn:     turn,
	}, nil
}

// finish stores the record of a battle that just ended. A failed save is
// logged; the battle itself is already decided and stays playable.
func (o *orchestrator) finish(ctx context.Context, sess *session) {
	result, err := sess.arena.BattleResult()
	if err != nil {
		slog.Error("Ended battle has no result", "battle_id", sess.id, "error", err)
		return
	}

	player := sess.arena.Player()
	enemy := sess.arena.Enemy()
	record := &battles.Record{
		ID:          sess.id,
		PlayerName:  player.Name(),
		PlayerClass: sess.playerClass,
		EnemyName:   enemy.Name(),
		EnemyClass:  sess.enemyClass,
		Outcome:     string(result.Outcome),
		Winner:      result.Winner,
		Message:     result.Message,
		Turns:       result.Turns,
		Log:         sess.arena.Log(),
		StartedAt:   sess.startedAt,
		EndedAt:     o.clock.Now(),
	}

	if _, err := o.records.Save(ctx, battles.SaveInput{Record: record}); err != nil {
		slog.Error("Failed to save battle record",
			"battle_id", sess.id,
			"error", err,
		)
	}

	slog.Info("Battle ended",
		"battle_id", sess.id,
		"outcome", result.Outcome,
		"winner", result.Winner,
		"turns", result.Turns,
	)
	o.publish(ctx, EventBattleEnded, sess.arena)
}

func (o *orchestrator) publish(ctx context.Context, eventType string, a *arena.Arena) {
	event := events.NewGameEvent(eventType, a.Player(), a.Enemy())
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish battle event",
			"event", eventType,
			"error", err,
		)
	}
}

// storedResult answers for a battle that is no longer held in memory
func (o *orchestrator) storedResult(ctx context.Context, battleID string) (*GetBattleResultOutput, error) {
	out, err := o.records.Get(ctx, battles.GetInput{ID: battleID})
	if errors.IsNotFound(err) {
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get record for battle %s", battleID)
	}

	record := out.Record
	return &GetBattleResultOutput{
		BattleID: battleID,
		Result: &arena.BattleResult{
			Outcome: arena.Outcome(record.Outcome),
			Winner:  record.Winner,
			Message: record.Message,
			Turns:   record.Turns,
		},
	}, nil
}

// sweepLocked drops sessions idle for longer than the session TTL. Callers hold o.mu.
func (o *orchestrator) sweepLocked(now time.Time) {
	cutoff := now.Add(-o.sessionTTL).UnixNano()
	for id, sess := range o.sessions {
		if sess.lastActive.Load() < cutoff {
			delete(o.sessions, id)
			slog.Debug("Battle evicted", "battle_id", id)
		}
	}
}

func (o *orchestrator) session(battleID string) (*session, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	sess, ok := o.sessions[battleID]
	if !ok {
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}
	return sess, nil
}

func (o *orchestrator) buildFighter(
	battleID string,
	kind combat.Kind,
	spec FighterSpec,
	policy combat.ActionPolicy,
) (*combat.Combatant, []string, error) {
	class, err := o.catalog.GetClass(spec.Class)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid %s class", kind)
	}
	weapon, err := o.catalog.GetWeapon(spec.Weapon)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid %s weapon", kind)
	}
	armor, err := o.catalog.GetArmor(spec.Armor)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid %s armor", kind)
	}

	c, err := combat.New(&combat.Config{
		ID:     battleID + ":" + string(kind),
		Name:   spec.Name,
		Kind:   kind,
		Class:  class,
		Policy: policy,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s", kind)
	}

	return c, []string{c.EquipWeapon(weapon), c.EquipArmor(armor)}, nil
}

func validateFighter(prefix string, spec FighterSpec, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(prefix+".name", spec.Name, vb)
	errors.ValidateRequired(prefix+".class", spec.Class, vb)
	errors.ValidateRequired(prefix+".weapon", spec.Weapon, vb)
	errors.ValidateRequired(prefix+".armor", spec.Armor, vb)
}
