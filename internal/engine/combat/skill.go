package combat

import "fmt"

// Skill is a one-shot special action bound to a unit class.
// Whether it was used is tracked on the combatant, not on the skill.
type Skill interface {
	Name() string
	StaminaCost() float64
	Use(user, target *Combatant) string
}

// EffectFunc applies a skill to the target and/or the user and describes what happened.
// The stamina cost has already been paid when it runs.
type EffectFunc func(user, target *Combatant) string

type skill struct {
	name        string
	staminaCost float64
	effect      EffectFunc
}

// NewSkill creates a skill from an arbitrary effect
func NewSkill(name string, staminaCost float64, effect EffectFunc) Skill {
	return &skill{
		name:        name,
		staminaCost: staminaCost,
		effect:      effect,
	}
}

// NewStrikeSkill creates a skill that deals fixed damage to the target, ignoring armor
func NewStrikeSkill(name string, damage, staminaCost float64) Skill {
	return NewSkill(name, staminaCost, func(user, target *Combatant) string {
		dealt := target.GetDamage(damage)
		return fmt.Sprintf("%s uses %s and deals %s damage to the opponent.",
			user.Name(), name, formatPoints(dealt))
	})
}

// NewExhaustSkill creates a skill that drains the target's stamina
func NewExhaustSkill(name string, drain, staminaCost float64) Skill {
	return NewSkill(name, staminaCost, func(user, target *Combatant) string {
		drained := target.DrainStamina(drain)
		return fmt.Sprintf("%s uses %s and drains %s stamina from the opponent.",
			user.Name(), name, formatPoints(drained))
	})
}

func (s *skill) Name() string {
	return s.name
}

func (s *skill) StaminaCost() float64 {
	return s.staminaCost
}

// Use pays the stamina cost and applies the effect, or reports that the user is too tired
func (s *skill) Use(user, target *Combatant) string {
	if user.stamina < s.staminaCost {
		return fmt.Sprintf("%s tried to use %s but did not have enough stamina.", user.Name(), s.name)
	}

	user.stamina -= s.staminaCost
	return s.effect(user, target)
}
