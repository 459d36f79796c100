package combat

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

const (
	// DefaultSkillChance is the percent chance an autonomous combatant spends its skill on a hit
	DefaultSkillChance = 10

	// draws come from [0, percentDie)
	percentDie = 100
)

// ActionPolicy decides and resolves what a combatant does when asked to hit
type ActionPolicy interface {
	Attack(self, target *Combatant) string
}

// DirectPolicy always attacks; skills are only used on explicit command
type DirectPolicy struct{}

// Attack resolves a plain weapon attack
func (DirectPolicy) Attack(self, target *Combatant) string {
	return self.Strike(target)
}

// AutonomousConfig holds the dependencies for an autonomous policy
type AutonomousConfig struct {
	Roller dice.Roller
	// Chance is the percent chance to use the skill; zero means DefaultSkillChance
	Chance int
}

// Validate ensures all required dependencies are provided
func (c *AutonomousConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Chance < 0 || c.Chance > percentDie {
		vb.Fieldf("Chance", "must be between 0 and %d", percentDie)
	}

	return vb.Build()
}

// AutonomousPolicy drives the computer opponent: before every attack it may
// spend its skill instead, otherwise it falls back to a plain attack.
type AutonomousPolicy struct {
	roller dice.Roller
	chance int
}

// NewAutonomousPolicy creates a policy drawing from the given roller
func NewAutonomousPolicy(cfg *AutonomousConfig) (*AutonomousPolicy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid autonomous policy config")
	}

	chance := cfg.Chance
	if chance == 0 {
		chance = DefaultSkillChance
	}

	return &AutonomousPolicy{
		roller: cfg.Roller,
		chance: chance,
	}, nil
}

// Attack uses the skill when the roll allows it, otherwise strikes
func (p *AutonomousPolicy) Attack(self, target *Combatant) string {
	if p.shouldUseSkill(self) {
		return self.UseSkill(target)
	}
	return self.Strike(target)
}

// shouldUseSkill is evaluated fresh on every hit while the skill is unused
func (p *AutonomousPolicy) shouldUseSkill(self *Combatant) bool {
	if self.skillUsed || self.class.Skill == nil {
		return false
	}
	if self.stamina < self.class.Skill.StaminaCost() {
		return false
	}

	roll, err := p.roller.Roll(percentDie)
	if err != nil {
		slog.Warn("Skill roll failed, falling back to attack",
			"combatant", self.name,
			"error", err,
		)
		return false
	}

	// Roll returns 1..100
	return roll-1 < p.chance
}
