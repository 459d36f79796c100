// Package catalog serves the static class, weapon and armor tables the
// arena builds combatants from. Records are built once and shared by pointer;
// callers must treat them as read-only.
package catalog

import (
	_ "embed"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Skill kinds understood by the loader
const (
	SkillKindStrike  = "strike"
	SkillKindExhaust = "exhaust"
)

// Repository looks up immutable catalog records by name
type Repository interface {
	GetClass(name string) (*combat.UnitClass, error)
	GetWeapon(name string) (*combat.Weapon, error)
	GetArmor(name string) (*combat.Armor, error)
	ListClasses() []string
	ListWeapons() []string
	ListArmors() []string
}

type skillData struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	Amount      float64 `yaml:"amount"`
	StaminaCost float64 `yaml:"stamina_cost"`
}

type classData struct {
	Name              string     `yaml:"name"`
	MaxHealth         float64    `yaml:"max_health"`
	MaxStamina        float64    `yaml:"max_stamina"`
	AttackMultiplier  float64    `yaml:"attack_multiplier"`
	StaminaMultiplier float64    `yaml:"stamina_multiplier"`
	ArmorMultiplier   float64    `yaml:"armor_multiplier"`
	Skill             *skillData `yaml:"skill"`
}

type weaponData struct {
	Name          string  `yaml:"name"`
	Damage        float64 `yaml:"damage"`
	StaminaPerHit float64 `yaml:"stamina_per_hit"`
}

type armorData struct {
	Name           string  `yaml:"name"`
	Defence        float64 `yaml:"defence"`
	StaminaPerTurn float64 `yaml:"stamina_per_turn"`
}

type fileData struct {
	Classes []classData  `yaml:"classes"`
	Weapons []weaponData `yaml:"weapons"`
	Armors  []armorData  `yaml:"armors"`
}

type catalog struct {
	classes map[string]*combat.UnitClass
	weapons map[string]*combat.Weapon
	armors  map[string]*combat.Armor
}

// Default returns the catalog compiled into the binary
func Default() (Repository, error) {
	return NewFromYAML(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (Repository, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	repo, err := NewFromYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return repo, nil
}

// NewFromYAML parses and validates a catalog document
func NewFromYAML(data []byte) (Repository, error) {
	var doc fileData
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog yaml")
	}

	c := &catalog{
		classes: make(map[string]*combat.UnitClass, len(doc.Classes)),
		weapons: make(map[string]*combat.Weapon, len(doc.Weapons)),
		armors:  make(map[string]*combat.Armor, len(doc.Armors)),
	}

	for i, d := range doc.Classes {
		class, err := d.build()
		if err != nil {
			return nil, errors.Wrapf(err, "classes[%d]", i)
		}
		if _, ok := c.classes[class.Name]; ok {
			return nil, errors.InvalidArgumentf("duplicate class %q", class.Name)
		}
		c.classes[class.Name] = class
	}

	for i, d := range doc.Weapons {
		if err := d.validate(); err != nil {
			return nil, errors.Wrapf(err, "weapons[%d]", i)
		}
		if _, ok := c.weapons[d.Name]; ok {
			return nil, errors.InvalidArgumentf("duplicate weapon %q", d.Name)
		}
		c.weapons[d.Name] = &combat.Weapon{Name: d.Name, Damage: d.Damage, StaminaPerHit: d.StaminaPerHit}
	}

	for i, d := range doc.Armors {
		if err := d.validate(); err != nil {
			return nil, errors.Wrapf(err, "armors[%d]", i)
		}
		if _, ok := c.armors[d.Name]; ok {
			return nil, errors.InvalidArgumentf("duplicate armor %q", d.Name)
		}
		c.armors[d.Name] = &combat.Armor{Name: d.Name, Defence: d.Defence, StaminaPerTurn: d.StaminaPerTurn}
	}

	if len(c.classes) == 0 || len(c.weapons) == 0 || len(c.armors) == 0 {
		return nil, errors.InvalidArgument("catalog needs at least one class, weapon and armor")
	}

	return c, nil
}

func (c *catalog) GetClass(name string) (*combat.UnitClass, error) {
	class, ok := c.classes[name]
	if !ok {
		return nil, errors.NotFoundf("class %s not found", name)
	}
	return class, nil
}

func (c *catalog) GetWeapon(name string) (*combat.Weapon, error) {
	weapon, ok := c.weapons[name]
	if !ok {
		return nil, errors.NotFoundf("weapon %s not found", name)
	}
	return weapon, nil
}

func (c *catalog) GetArmor(name string) (*combat.Armor, error) {
	armor, ok := c.armors[name]
	if !ok {
		return nil, errors.NotFoundf("armor %s not found", name)
	}
	return armor, nil
}

func (c *catalog) ListClasses() []string {
	return sortedKeys(c.classes)
}

func (c *catalog) ListWeapons() []string {
	return sortedKeys(c.weapons)
}

func (c *catalog) ListArmors() []string {
	return sortedKeys(c.armors)
}

func (d *classData) build() (*combat.UnitClass, error) {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", d.Name, vb)
	errors.ValidatePositive("max_health", d.MaxHealth, vb)
	errors.ValidateNonNegative("max_stamina", d.MaxStamina, vb)
	errors.ValidateNonNegative("attack_multiplier", d.AttackMultiplier, vb)
	errors.ValidateNonNegative("stamina_multiplier", d.StaminaMultiplier, vb)
	errors.ValidateNonNegative("armor_multiplier", d.ArmorMultiplier, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	class := &combat.UnitClass{
		Name:              d.Name,
		MaxHealth:         d.MaxHealth,
		MaxStamina:        d.MaxStamina,
		AttackMultiplier:  d.AttackMultiplier,
		StaminaMultiplier: d.StaminaMultiplier,
		ArmorMultiplier:   d.ArmorMultiplier,
	}

	if d.Skill != nil {
		skill, err := d.Skill.build()
		if err != nil {
			return nil, errors.Wrapf(err, "skill of %s", d.Name)
		}
		class.Skill = skill
	}

	return class, nil
}

func (d *skillData) build() (combat.Skill, error) {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", d.Name, vb)
	errors.ValidateNonNegative("amount", d.Amount, vb)
	errors.ValidateNonNegative("stamina_cost", d.StaminaCost, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	switch d.Kind {
	case SkillKindStrike:
		return combat.NewStrikeSkill(d.Name, d.Amount, d.StaminaCost), nil
	case SkillKindExhaust:
		return combat.NewExhaustSkill(d.Name, d.Amount, d.StaminaCost), nil
	default:
		return nil, errors.InvalidArgumentf("unknown skill kind %q", d.Kind)
	}
}

func (d *weaponData) validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", d.Name, vb)
	errors.ValidateNonNegative("damage", d.Damage, vb)
	errors.ValidateNonNegative("stamina_per_hit", d.StaminaPerHit, vb)

	return vb.Build()
}

func (d *armorData) validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", d.Name, vb)
	errors.ValidateNonNegative("defence", d.Defence, vb)
	errors.ValidateNonNegative("stamina_per_turn", d.StaminaPerTurn, vb)

	return vb.Build()
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
