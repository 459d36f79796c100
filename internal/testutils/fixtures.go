package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
)

// Default fixture stats keep the arithmetic easy to follow in tests:
// every multiplier is 1, a sword hit costs 2 stamina and deals 5,
// mail absorbs 2 for 1 stamina.
const (
	TestMaxHealth  = 100.0
	TestMaxStamina = 50.0
)

// FixedRoller is a dice.Roller that always reports the same percent draw.
// Roll returns Draw+1 because dice are 1-based.
type FixedRoller struct {
	Draw  int
	Calls int
}

// Roll returns the fixed draw
func (r *FixedRoller) Roll(_ int) (int, error) {
	r.Calls++
	return r.Draw + 1, nil
}

// RollN returns count copies of the fixed draw
func (r *FixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.Draw + 1
	}
	return out, nil
}

// NeverRoller never lets an autonomous combatant use its skill
func NeverRoller() *FixedRoller {
	return &FixedRoller{Draw: 99}
}

// CreateTestClass returns a unit class with all multipliers at 1
func CreateTestClass(name string) *combat.UnitClass {
	return &combat.UnitClass{
		Name:              name,
		MaxHealth:         TestMaxHealth,
		MaxStamina:        TestMaxStamina,
		AttackMultiplier:  1,
		StaminaMultiplier: 1,
		ArmorMultiplier:   1,
		Skill:             combat.NewStrikeSkill("Test Blast", 10, 5),
	}
}

// CreateTestWeapon returns the default sword
func CreateTestWeapon() *combat.Weapon {
	return &combat.Weapon{Name: "Sword", Damage: 5, StaminaPerHit: 2}
}

// CreateTestArmor returns the default mail
func CreateTestArmor() *combat.Armor {
	return &combat.Armor{Name: "Mail", Defence: 2, StaminaPerTurn: 1}
}

// CombatantOptions overrides the fixture defaults
type CombatantOptions struct {
	Class  *combat.UnitClass
	Weapon *combat.Weapon
	Armor  *combat.Armor
	Policy combat.ActionPolicy
	// Unequipped skips equipping weapon and armor
	Unequipped bool
}

// CreateTestCombatant builds an equipped combatant. Enemies default to an
// autonomous policy that never uses its skill on its own.
func CreateTestCombatant(t *testing.T, name string, kind combat.Kind, opts *CombatantOptions) *combat.Combatant {
	t.Helper()

	if opts == nil {
		opts = &CombatantOptions{}
	}
	class := opts.Class
	if class == nil {
		class = CreateTestClass("Tester")
	}
	policy := opts.Policy
	if policy == nil {
		policy = combat.DirectPolicy{}
		if kind == combat.KindEnemy {
			autonomous, err := combat.NewAutonomousPolicy(&combat.AutonomousConfig{Roller: NeverRoller()})
			require.NoError(t, err)
			policy = autonomous
		}
	}

	c, err := combat.New(&combat.Config{
		ID:     string(kind) + "-" + name,
		Name:   name,
		Kind:   kind,
		Class:  class,
		Policy: policy,
	})
	require.NoError(t, err)

	if opts.Unequipped {
		return c
	}

	weapon := opts.Weapon
	if weapon == nil {
		weapon = CreateTestWeapon()
	}
	armor := opts.Armor
	if armor == nil {
		armor = CreateTestArmor()
	}
	c.EquipWeapon(weapon)
	c.EquipArmor(armor)

	return c
}
