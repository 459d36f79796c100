package combat

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Kind tells which side of the arena a combatant fights on
type Kind string

// Combatant kinds
const (
	KindPlayer Kind = "player"
	KindEnemy  Kind = "enemy"
)

// Config holds what is needed to create a combatant
type Config struct {
	ID     string
	Name   string
	Kind   Kind
	Class  *UnitClass
	Policy ActionPolicy
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.ID == "" {
		vb.RequiredField("ID")
	}
	if c.Name == "" {
		vb.RequiredField("Name")
	}
	if c.Kind != KindPlayer && c.Kind != KindEnemy {
		vb.InvalidField("Kind", fmt.Sprintf("unknown kind %q", c.Kind))
	}
	if c.Class == nil {
		vb.RequiredField("Class")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}

	return vb.Build()
}

// Combatant is the mutable runtime state of one fighting unit.
// It lives for a single battle.
type Combatant struct {
	id     string
	name   string
	kind   Kind
	class  *UnitClass
	policy ActionPolicy

	weapon *Weapon
	armor  *Armor

	// full precision, only rounded for display
	health  float64
	stamina float64

	skillUsed bool
}

// Ensure Combatant can take part in toolkit events
var _ core.Entity = (*Combatant)(nil)

// New creates a combatant at full health and stamina with nothing equipped
func New(cfg *Config) (*Combatant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combatant config")
	}

	return &Combatant{
		id:      cfg.ID,
		name:    cfg.Name,
		kind:    cfg.Kind,
		class:   cfg.Class,
		policy:  cfg.Policy,
		health:  cfg.Class.MaxHealth,
		stamina: cfg.Class.MaxStamina,
	}, nil
}

// GetID returns the combatant's identifier
func (c *Combatant) GetID() string {
	return c.id
}

// GetType returns the combatant's side
func (c *Combatant) GetType() string {
	return string(c.kind)
}

// Name returns the display name
func (c *Combatant) Name() string {
	return c.name
}

// Kind returns the side the combatant fights on
func (c *Combatant) Kind() Kind {
	return c.kind
}

// Class returns the shared class template
func (c *Combatant) Class() *UnitClass {
	return c.class
}

// Weapon returns the equipped weapon, nil when none
func (c *Combatant) Weapon() *Weapon {
	return c.weapon
}

// Armor returns the equipped armor, nil when none
func (c *Combatant) Armor() *Armor {
	return c.armor
}

// Health returns current health rounded to one decimal, never below zero
func (c *Combatant) Health() float64 {
	return RoundPoints(math.Max(c.health, 0))
}

// Stamina returns current stamina rounded to one decimal
func (c *Combatant) Stamina() float64 {
	return RoundPoints(c.stamina)
}

// IsDefeated reports whether health has reached zero
func (c *Combatant) IsDefeated() bool {
	return c.health <= 0
}

// SkillUsed reports whether the class skill has been spent this battle
func (c *Combatant) SkillUsed() bool {
	return c.skillUsed
}

// Equipped reports whether both weapon and armor are present
func (c *Combatant) Equipped() bool {
	return c.weapon != nil && c.armor != nil
}

// EquipWeapon replaces the current weapon
func (c *Combatant) EquipWeapon(weapon *Weapon) string {
	c.weapon = weapon
	return fmt.Sprintf("%s is equipped with the weapon %s", c.name, weapon.Name)
}

// EquipArmor replaces the current armor
func (c *Combatant) EquipArmor(armor *Armor) string {
	c.armor = armor
	return fmt.Sprintf("%s is equipped with the armor %s", c.name, armor.Name)
}

// GetDamage subtracts a positive amount from health and returns it rounded.
// Zero and negative amounts change nothing and return 0.
func (c *Combatant) GetDamage(amount float64) float64 {
	if amount > 0 {
		c.health -= amount
		return RoundPoints(amount)
	}
	return 0
}

// DrainStamina removes up to amount stamina, never going below zero, and returns what was removed
func (c *Combatant) DrainStamina(amount float64) float64 {
	if amount <= 0 || c.stamina <= 0 {
		return 0
	}
	drained := math.Min(amount, c.stamina)
	c.stamina -= drained
	return drained
}

// Regenerate restores stamina scaled by the class multiplier, capped at the class maximum
func (c *Combatant) Regenerate(amount float64) {
	if amount <= 0 {
		return
	}
	c.stamina = math.Min(c.stamina+amount*c.class.StaminaMultiplier, c.class.MaxStamina)
}

// Hit resolves this combatant's attack through its action policy
func (c *Combatant) Hit(target *Combatant) string {
	c.mustBeEquipped()
	target.mustBeEquipped()

	return c.policy.Attack(c, target)
}

// Strike resolves a plain weapon attack. When the combatant is too tired to
// swing nothing changes at all; otherwise the blow is resolved and classified.
func (c *Combatant) Strike(target *Combatant) string {
	if c.stamina*c.class.StaminaMultiplier < c.weapon.StaminaPerHit {
		return fmt.Sprintf("%s tried to use %s but did not have enough stamina.", c.name, c.weapon.Name)
	}

	damage := c.computeAndApplyDamage(target)
	if damage > 0 {
		return fmt.Sprintf("%s using %s pierces the opponent's %s and deals %s damage.",
			c.name, c.weapon.Name, target.armor.Name, formatPoints(damage))
	}
	return fmt.Sprintf("%s using %s strikes, but the opponent's %s stops the blow.",
		c.name, c.weapon.Name, target.armor.Name)
}

// computeAndApplyDamage always charges the attacker for the swing, even if
// that drives stamina negative. The target only mitigates when it can afford
// its armor's stamina cost.
func (c *Combatant) computeAndApplyDamage(target *Combatant) float64 {
	c.stamina -= c.weapon.StaminaPerHit * c.class.StaminaMultiplier
	damage := c.weapon.Damage * c.class.AttackMultiplier

	guardCost := target.armor.StaminaPerTurn * target.class.StaminaMultiplier
	if target.stamina > guardCost {
		target.stamina -= guardCost
		damage -= target.armor.Defence * target.class.ArmorMultiplier
	}

	return target.GetDamage(math.Max(damage, 0))
}

// UseSkill spends the class skill against the target. The skill is consumed
// even when its effect fails for lack of stamina.
func (c *Combatant) UseSkill(target *Combatant) string {
	c.mustBeEquipped()
	target.mustBeEquipped()

	if c.skillUsed {
		return "Skill already used."
	}
	if c.class.Skill == nil {
		return fmt.Sprintf("%s has no skill to use.", c.name)
	}

	c.skillUsed = true
	return c.class.Skill.Use(c, target)
}

// mustBeEquipped guards the setup contract: acting unequipped is a caller bug, not a game outcome
func (c *Combatant) mustBeEquipped() {
	if !c.Equipped() {
		panic(fmt.Sprintf("combat: %s must have a weapon and armor equipped before acting", c.name))
	}
}
