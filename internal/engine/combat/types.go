// Package combat holds the unit model and the damage and stamina arithmetic
// used by arena battles.
package combat

import (
	"math"
	"strconv"
)

// UnitClass is the immutable template a combatant is built from.
// Templates are shared between combatants and must never be mutated.
type UnitClass struct {
	Name              string
	MaxHealth         float64
	MaxStamina        float64
	AttackMultiplier  float64
	StaminaMultiplier float64
	ArmorMultiplier   float64
	Skill             Skill
}

// Weapon describes raw damage and the stamina spent per hit
type Weapon struct {
	Name          string
	Damage        float64
	StaminaPerHit float64
}

// Armor describes mitigation and the stamina spent to absorb a hit
type Armor struct {
	Name           string
	Defence        float64
	StaminaPerTurn float64
}

// RoundPoints rounds a health or stamina value to one decimal for display
func RoundPoints(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatPoints renders a value the way it is shown in battle messages: 3, 2.5
func formatPoints(v float64) string {
	return strconv.FormatFloat(RoundPoints(v), 'f', -1, 64)
}
