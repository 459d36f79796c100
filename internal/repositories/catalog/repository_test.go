package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/catalog"
)

const smallCatalog = `
classes:
  - name: Knight
    max_health: 80
    max_stamina: 40
    attack_multiplier: 1
    stamina_multiplier: 1
    armor_multiplier: 1.5
    skill:
      name: Shield Bash
      kind: strike
      amount: 8
      stamina_cost: 4
  - name: Monk
    max_health: 70
    max_stamina: 60
    attack_multiplier: 0.9
    stamina_multiplier: 0.7
    armor_multiplier: 1
weapons:
  - name: Mace
    damage: 4
    stamina_per_hit: 2
armors:
  - name: Robe
    defence: 0.5
    stamina_per_turn: 0.2
`

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestDefault_LoadsEmbeddedTables() {
	repo, err := catalog.Default()
	s.Require().NoError(err)

	s.Equal([]string{"Mage", "Thief", "Warrior"}, repo.ListClasses())
	s.Equal([]string{"Axe", "Knife", "Staff", "Sword"}, repo.ListWeapons())
	s.Equal([]string{"Chainmail", "Leather", "Plate", "T-shirt"}, repo.ListArmors())

	warrior, err := repo.GetClass("Warrior")
	s.Require().NoError(err)
	s.Equal(60.0, warrior.MaxHealth)
	s.Equal(30.0, warrior.MaxStamina)
	s.Equal(0.8, warrior.AttackMultiplier)
	s.Equal(0.9, warrior.StaminaMultiplier)
	s.Equal(1.2, warrior.ArmorMultiplier)
	s.Require().NotNil(warrior.Skill)
	s.Equal("Ferocious Kick", warrior.Skill.Name())
	s.Equal(6.0, warrior.Skill.StaminaCost())

	axe, err := repo.GetWeapon("Axe")
	s.Require().NoError(err)
	s.Equal(&combat.Weapon{Name: "Axe", Damage: 3.6, StaminaPerHit: 2.5}, axe)

	shirt, err := repo.GetArmor("T-shirt")
	s.Require().NoError(err)
	s.Equal(&combat.Armor{Name: "T-shirt"}, shirt)
}

func (s *CatalogTestSuite) TestRecordsAreShared() {
	repo, err := catalog.Default()
	s.Require().NoError(err)

	first, err := repo.GetClass("Thief")
	s.Require().NoError(err)
	second, err := repo.GetClass("Thief")
	s.Require().NoError(err)

	s.Same(first, second)
}

func (s *CatalogTestSuite) TestUnknownNames() {
	repo, err := catalog.Default()
	s.Require().NoError(err)

	_, err = repo.GetClass("Bard")
	s.True(errors.IsNotFound(err))

	_, err = repo.GetWeapon("Bow")
	s.True(errors.IsNotFound(err))

	_, err = repo.GetArmor("Cloak")
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestNewFromYAML() {
	repo, err := catalog.NewFromYAML([]byte(smallCatalog))
	s.Require().NoError(err)

	s.Equal([]string{"Knight", "Monk"}, repo.ListClasses())

	monk, err := repo.GetClass("Monk")
	s.Require().NoError(err)
	s.Nil(monk.Skill)
}

func (s *CatalogTestSuite) TestSkillKinds() {
	repo, err := catalog.Default()
	s.Require().NoError(err)

	mage, err := repo.GetClass("Mage")
	s.Require().NoError(err)

	user, err := combat.New(&combat.Config{
		ID: "p", Name: "Merlin", Kind: combat.KindPlayer, Class: mage, Policy: combat.DirectPolicy{},
	})
	s.Require().NoError(err)
	target, err := combat.New(&combat.Config{
		ID: "e", Name: "Orc", Kind: combat.KindEnemy, Class: mage, Policy: combat.DirectPolicy{},
	})
	s.Require().NoError(err)

	msg := mage.Skill.Use(user, target)

	s.Equal("Merlin uses Draining Hex and drains 15 stamina from the opponent.", msg)
	s.Equal(25.0, target.Stamina())
	s.Equal(32.0, user.Stamina())
}

func (s *CatalogTestSuite) TestNewFromYAML_Invalid() {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed yaml",
			doc:  "classes: [",
		},
		{
			name: "empty catalog",
			doc:  "classes: []",
		},
		{
			name: "non-positive health",
			doc: `
classes: [{name: A, max_health: 0}]
weapons: [{name: W, damage: 1}]
armors: [{name: R}]`,
		},
		{
			name: "unknown skill kind",
			doc: `
classes: [{name: A, max_health: 1, skill: {name: S, kind: heal}}]
weapons: [{name: W, damage: 1}]
armors: [{name: R}]`,
		},
		{
			name: "duplicate weapon",
			doc: `
classes: [{name: A, max_health: 1}]
weapons: [{name: W, damage: 1}, {name: W, damage: 2}]
armors: [{name: R}]`,
		},
		{
			name: "negative defence",
			doc: `
classes: [{name: A, max_health: 1}]
weapons: [{name: W, damage: 1}]
armors: [{name: R, defence: -1}]`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.NewFromYAML([]byte(tc.doc))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *CatalogTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "catalog.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(smallCatalog), 0o600))

	repo, err := catalog.LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]string{"Mace"}, repo.ListWeapons())

	_, err = catalog.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}
