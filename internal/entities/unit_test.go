package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
)

type UnitTestSuite struct {
	suite.Suite
	model *entities.ModelDefinition
}

func TestUnitSuite(t *testing.T) {
	suite.Run(t, new(UnitTestSuite))
}

func (s *UnitTestSuite) SetupTest() {
	s.model = &entities.ModelDefinition{
		ID:          "m1",
		IsGenerated: true,
		Name:        "Battle Brother",
		Quality:     3,
		Defense:     4,
		Traits:      []string{"Veteran"},
		InnateRules: []armyforge.SpecialRule{{Key: "hero", Name: "Hero"}},
		Loadout: []*entities.LoadoutEntry{
			{ID: "e1", Name: "Rifle", Quantity: 1, IncludeInName: true, Source: &armyforge.Gain{Name: "Rifle", Type: armyforge.KindWeapon}},
			{ID: "e2", Name: "Pistol", Quantity: 0, Source: &armyforge.Gain{Name: "Pistol", Type: armyforge.KindWeapon}},
		},
	}
}

func (s *UnitTestSuite) TestSetQuantityZeroClearsIncludeInName() {
	e := s.model.Entry("e1")
	s.Require().NotNil(e)

	e.SetQuantity(0)
	s.False(e.IncludeInName)
	s.False(e.Equipped())

	e.SetQuantity(2)
	s.False(e.IncludeInName, "raising quantity must not restore include-in-name")
	s.True(e.Equipped())
}

func (s *UnitTestSuite) TestEquippedSkipsZeroQuantity() {
	eq := s.model.Equipped()
	s.Require().Len(eq, 1)
	s.Equal("e1", eq[0].ID)
}

func (s *UnitTestSuite) TestCloneRegeneratesIDs() {
	cp := s.model.Clone(idgen.NewSequential("x"))

	s.Equal("x_1", cp.ID)
	s.False(cp.IsGenerated)
	s.Require().Len(cp.Loadout, 2)
	s.Equal("x_2", cp.Loadout[0].ID)
	s.Equal("x_3", cp.Loadout[1].ID)

	cp.Loadout[0].SetQuantity(0)
	cp.Traits[0] = "Changed"
	s.Equal(1, s.model.Loadout[0].Quantity)
	s.True(s.model.Loadout[0].IncludeInName)
	s.Equal("Veteran", s.model.Traits[0])
	s.NotSame(s.model.Loadout[0].Source, cp.Loadout[0].Source)
}

func (s *UnitTestSuite) TestUnitLookupsAndHero() {
	unit := &entities.UnitProfile{ID: "u1", Models: []*entities.ModelDefinition{s.model}}
	s.Same(s.model, unit.Model("m1"))
	s.Nil(unit.Model("missing"))
	s.True(unit.IsHero())

	s.model.InnateRules = []armyforge.SpecialRule{{Name: "Hero"}}
	s.False(unit.IsHero())

	s.False((&entities.UnitProfile{}).IsHero())
}
