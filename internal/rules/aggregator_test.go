package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/rules"
	"github.com/KirkDiggler/opr-tts-api/internal/testutils"
)

type AggregatorTestSuite struct {
	suite.Suite
	aggregator *rules.Aggregator
	cfg        entities.OutputConfig
	captain    *entities.ModelDefinition
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

func (s *AggregatorTestSuite) SetupTest() {
	agg, err := rules.NewAggregator(&rules.Config{
		Dictionary: rules.NewDictionary(testutils.CoreRules(), testutils.ArmyRules()),
	})
	s.Require().NoError(err)
	s.aggregator = agg
	s.cfg = entities.DefaultOutputConfig()

	pistol := testutils.CaptainUnit().Loadout[0]
	armour := testutils.CaptainUnit().Loadout[1]
	s.captain = &entities.ModelDefinition{
		ID:          "cap-1",
		Name:        "Captain",
		Quality:     3,
		Defense:     3,
		InnateRules: testutils.CaptainUnit().Rules,
		Loadout: []*entities.LoadoutEntry{
			{ID: "e1", Name: "Heavy Pistol", Quantity: 1, Source: &pistol},
			{ID: "e2", Name: "Combat Armour", Quantity: 1, Source: &armour},
		},
	}
}

func (s *AggregatorTestSuite) ruleNamed(res *rules.Result, name string) *rules.Rule {
	for i := range res.Rules {
		if res.Rules[i].Name == name {
			return &res.Rules[i]
		}
	}
	return nil
}

func (s *AggregatorTestSuite) TestNewAggregatorValidation() {
	_, err := rules.NewAggregator(nil)
	s.Error(err)

	_, err = rules.NewAggregator(&rules.Config{})
	s.Error(err)
	s.Contains(err.Error(), "Dictionary")
}

func (s *AggregatorTestSuite) TestToughStacksAcrossInnateAndNestedItem() {
	res := s.aggregator.Aggregate(s.captain, s.cfg)

	count := 0
	for _, r := range res.Rules {
		if r.Name == "Tough" {
			count++
		}
	}
	s.Equal(1, count)

	tough := s.ruleNamed(res, "Tough")
	s.Require().NotNil(tough)
	s.Equal(6, tough.Rating)
	s.True(tough.ShowRating)
	s.True(tough.IsCore)
	s.Equal("Tough (6)", tough.DisplayName())
	s.Equal(6, res.ToughRating)
}

func (s *AggregatorTestSuite) TestSortedByName() {
	res := s.aggregator.Aggregate(s.captain, s.cfg)

	names := make([]string, 0, len(res.Rules))
	for _, r := range res.Rules {
		names = append(names, r.Name)
	}
	s.Equal([]string{"AP", "Hero", "Tough"}, names)
}

func (s *AggregatorTestSuite) TestAttachedRuleRatingIsNotShown() {
	res := s.aggregator.Aggregate(s.captain, s.cfg)

	ap := s.ruleNamed(res, "AP")
	s.Require().NotNil(ap)
	s.Equal(1, ap.Rating)
	s.False(ap.ShowRating)
	s.Equal("AP", ap.DisplayName())
}

func (s *AggregatorTestSuite) TestUnequippedEntriesContributeNothing() {
	s.captain.Loadout[1].SetQuantity(0)

	res := s.aggregator.Aggregate(s.captain, s.cfg)

	s.Equal(3, s.ruleNamed(res, "Tough").Rating)
	s.Equal(3, res.ToughRating)

	s.captain.Loadout[0].SetQuantity(0)
	res = s.aggregator.Aggregate(s.captain, s.cfg)
	s.Nil(s.ruleNamed(res, "AP"))
}

func (s *AggregatorTestSuite) TestAggregateIsIdempotent() {
	first := s.aggregator.Aggregate(s.captain, s.cfg)
	second := s.aggregator.Aggregate(s.captain, s.cfg)

	s.Equal(first, second)
	s.Equal(armyforge.Rating("3"), s.captain.InnateRules[1].Rating)
	s.Equal(armyforge.Rating("3"), s.captain.Loadout[1].Source.Content[0].Rating)
}

func (s *AggregatorTestSuite) TestIncludeToggles() {
	cfg := s.cfg
	cfg.IncludeCoreSpecialRules = false

	res := s.aggregator.Aggregate(s.captain, cfg)
	s.Empty(res.Rules)
	s.Equal(0, res.ToughRating)
	s.Equal(0, res.CasterRating)

	s.captain.InnateRules = append(s.captain.InnateRules, armyforge.SpecialRule{Name: "Shield Drone"})
	res = s.aggregator.Aggregate(s.captain, cfg)
	s.Require().Len(res.Rules, 1)
	s.Equal("Shield Drone", res.Rules[0].Name)
	s.False(res.Rules[0].IsCore)

	cfg.IncludeCoreSpecialRules = true
	cfg.IncludeArmySpecialRules = false
	res = s.aggregator.Aggregate(s.captain, cfg)
	s.Nil(s.ruleNamed(res, "Shield Drone"))
	s.NotNil(s.ruleNamed(res, "Tough"))
	s.Equal(6, res.ToughRating)
}

func (s *AggregatorTestSuite) TestShortDescriptions() {
	cfg := s.cfg
	cfg.UseShorterCoreRules = true
	s.Equal("Must take X wounds before being killed.", s.ruleNamed(s.aggregator.Aggregate(s.captain, cfg), "Tough").Definition)

	cfg.UseShorterCoreRules = false
	s.Contains(s.ruleNamed(s.aggregator.Aggregate(s.captain, cfg), "Tough").Definition, "If a model with tough joins")

	hero := s.ruleNamed(s.aggregator.Aggregate(s.captain, s.cfg), "Hero")
	s.Equal(testutils.CoreRules()[2].Description, hero.Definition, "falls back to the full text")
}

func (s *AggregatorTestSuite) TestMissingTextUsesPlaceholder() {
	s.captain.InnateRules = append(s.captain.InnateRules, armyforge.SpecialRule{Name: "Unheard Of", Rating: "x"})

	res := s.aggregator.Aggregate(s.captain, s.cfg)

	r := s.ruleNamed(res, "Unheard Of")
	s.Require().NotNil(r)
	s.Equal(rules.MissingDescription, r.Definition)
	s.Equal(0, r.Rating)
	s.Equal("Unheard Of", r.DisplayName())
	s.Equal([]string{"Unheard Of"}, res.Missing)
}

func (s *AggregatorTestSuite) TestCasterTotal() {
	model := &entities.ModelDefinition{
		InnateRules: []armyforge.SpecialRule{{Key: "caster", Name: "Caster", Rating: "2"}},
		Loadout: []*entities.LoadoutEntry{{
			Quantity: 1,
			Source: &armyforge.Gain{Name: "Staff", Type: armyforge.KindItem, Content: []armyforge.Gain{
				{Name: "Caster", Type: armyforge.KindRule, Rating: "1"},
			}},
		}},
	}

	res := s.aggregator.Aggregate(model, s.cfg)

	s.Equal(3, res.CasterRating)
	s.Equal(0, res.ToughRating)
	s.Equal("Caster (3)", s.ruleNamed(res, "Caster").DisplayName())
}

func (s *AggregatorTestSuite) TestRulesOnNestedContentAreCollected() {
	drone := testutils.SupportUnit().Loadout[0]
	model := &entities.ModelDefinition{
		Loadout: []*entities.LoadoutEntry{{Quantity: 1, Source: &drone}},
	}

	res := s.aggregator.Aggregate(model, s.cfg)

	s.Require().Len(res.Rules, 1)
	s.Equal("AP", res.Rules[0].Name)
	s.False(res.Rules[0].ShowRating)
}

func (s *AggregatorTestSuite) TestNamelessRulesDoNotCollapse() {
	model := &entities.ModelDefinition{
		InnateRules: []armyforge.SpecialRule{{Rating: "1"}, {Rating: "2"}},
	}

	res := s.aggregator.Aggregate(model, s.cfg)

	s.Require().Len(res.Rules, 1, "same empty name folds in the final merge")
	s.Equal(3, res.Rules[0].Rating)
}

func (s *AggregatorTestSuite) TestNilModel() {
	res := s.aggregator.Aggregate(nil, s.cfg)
	s.Empty(res.Rules)
}
