package formatter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/formatter"
	"github.com/KirkDiggler/opr-tts-api/internal/loadout"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
	"github.com/KirkDiggler/opr-tts-api/internal/rules"
	"github.com/KirkDiggler/opr-tts-api/internal/testutils"
)

type FormatterTestSuite struct {
	suite.Suite
	formatter *formatter.Formatter
	cfg       entities.OutputConfig
	brothers  *entities.UnitProfile
	captain   *entities.UnitProfile
	support   *entities.UnitProfile
}

func TestFormatterSuite(t *testing.T) {
	suite.Run(t, new(FormatterTestSuite))
}

func (s *FormatterTestSuite) SetupTest() {
	agg, err := rules.NewAggregator(&rules.Config{
		Dictionary: rules.NewDictionary(testutils.CoreRules(), testutils.ArmyRules()),
	})
	s.Require().NoError(err)

	f, err := formatter.New(&formatter.Config{Aggregator: agg})
	s.Require().NoError(err)
	s.formatter = f

	n, err := loadout.NewNormalizer(&loadout.Config{IDGenerator: idgen.NewSequential("id")})
	s.Require().NoError(err)
	profiles := n.BuildProfiles(testutils.ArmyList())
	s.Require().Len(profiles, 3)
	s.brothers, s.captain, s.support = profiles[0], profiles[1], profiles[2]

	s.cfg = entities.DefaultOutputConfig()
}

func (s *FormatterTestSuite) lines(text string) []string {
	return strings.Split(text, "\r\n")
}

func (s *FormatterTestSuite) TestNewValidation() {
	_, err := formatter.New(nil)
	s.Error(err)
	_, err = formatter.New(&formatter.Config{})
	s.Error(err)
}

func (s *FormatterTestSuite) TestModelName() {
	model := s.brothers.Models[0]
	cfg := s.cfg

	s.Equal("Red Squads (Battle Brother)", formatter.ModelName(s.brothers, model, cfg))

	cfg.SwapCustomNameBracketing = true
	s.Equal("Battle Brother (Red Squads)", formatter.ModelName(s.brothers, model, cfg))

	cfg.CompletelyReplaceNameWithCustomName = true
	s.Equal("Red Squad", formatter.ModelName(s.brothers, model, cfg))

	s.Equal("Captain", formatter.ModelName(s.captain, s.captain.Models[0], cfg))
	s.Equal("2x Psy Adepts", formatter.ModelName(s.support, s.support.Models[0], cfg))

	single := *s.brothers
	single.ModelCount = 1
	cfg.CompletelyReplaceNameWithCustomName = false
	s.Equal("Red Squads (Battle Brother)", formatter.ModelName(&single, model, cfg), "swap only applies to multi-model units")
}

func (s *FormatterTestSuite) TestWeaponInNameAppearsOnce() {
	model := s.brothers.Models[0]
	rifle := model.Loadout[0]
	s.Require().Equal("Rifle", rifle.Name)
	s.Require().Equal(1, rifle.Quantity)
	rifle.IncludeInName = true

	out := s.formatter.Format(s.brothers, model, s.cfg)

	lines := s.lines(out.NameOutput)
	s.Equal("[b]Red Squads (Battle Brother)[/b] w/ Rifle", lines[0])
	s.Equal(1, strings.Count(lines[0], "Rifle"))
	s.Equal("Red Squads (Battle Brother) w/ Rifle", out.Name)
}

func (s *FormatterTestSuite) TestNameLines() {
	model := s.brothers.Models[0]

	out := s.formatter.Format(s.brothers, model, s.cfg)

	lines := s.lines(out.NameOutput)
	s.Require().Len(lines, 4)
	s.Equal("[2ecc71][b]Q3[/b]+[-] / [3498db][b]D4[/b]+[-]", lines[1])
	s.Equal("[sup][e74c3c]Rifle, CCW, Shield Drone[-][/sup]", lines[2])
	s.Equal("[sup][f1c40f]Shield Drone[-][/sup]", lines[3])
	s.Equal("Rifle, CCW, Shield Drone", out.LoadoutCSV)
}

func (s *FormatterTestSuite) TestNameListsCanBeTurnedOff() {
	cfg := s.cfg
	cfg.IncludeWeaponsListInName = false
	cfg.IncludeSpecialRulesListInName = false

	out := s.formatter.Format(s.brothers, s.brothers.Models[0], cfg)

	s.Len(s.lines(out.NameOutput), 2)
}

func (s *FormatterTestSuite) TestQuantityPrefixInName() {
	model := s.brothers.Models[0]
	model.Loadout[1].SetQuantity(2)
	model.Loadout[1].IncludeInName = true

	out := s.formatter.Format(s.brothers, model, s.cfg)

	s.Contains(s.lines(out.NameOutput)[0], " w/ 2x CCW")
	s.Contains(out.LoadoutCSV, "2x CCW")
}

func (s *FormatterTestSuite) TestToughStackingRendersOnce() {
	out := s.formatter.Format(s.captain, s.captain.Models[0], s.cfg)

	s.Equal(1, strings.Count(out.DescriptionOutput, "Tough"))
	s.Contains(out.DescriptionOutput, "[f1c40f]Tough (6)[-]\n[sup]Must take X wounds before being killed.[/sup]")
	s.Equal(6, out.ToughValue)
	s.Equal(0, out.CasterValue)
}

func (s *FormatterTestSuite) TestToughRatingInName() {
	cfg := s.cfg
	cfg.IncludeToughRatingInName = true

	out := s.formatter.Format(s.captain, s.captain.Models[0], cfg)
	s.Equal("[b]Captain[/b] [e67e22](6)[-]", s.lines(out.NameOutput)[0])
	s.Equal("Captain", out.Name)

	out = s.formatter.Format(s.brothers, s.brothers.Models[0], cfg)
	s.NotContains(s.lines(out.NameOutput)[0], "[e67e22]")
}

func (s *FormatterTestSuite) TestToughRatingInNameFollowsCoreRulesToggle() {
	cfg := s.cfg
	cfg.IncludeToughRatingInName = true
	cfg.IncludeCoreSpecialRules = false

	out := s.formatter.Format(s.captain, s.captain.Models[0], cfg)

	s.Equal("[b]Captain[/b]", s.lines(out.NameOutput)[0])
	s.NotContains(out.DescriptionOutput, "Tough")
	s.Equal(0, out.ToughValue)
}

func (s *FormatterTestSuite) TestDescriptionBlocks() {
	out := s.formatter.Format(s.captain, s.captain.Models[0], s.cfg)

	s.True(strings.HasPrefix(out.DescriptionOutput, "[e74c3c]Heavy Pistol[-]\n[sup](12'', A1, AP(1))[/sup]\r\n"))

	apText := formatter.InsertLineBreaks(testutils.CoreRules()[0].Description)
	s.Contains(out.DescriptionOutput, "[f1c40f]AP[-]\n[sup]"+apText+"[/sup]")
	s.Contains(out.DescriptionOutput, "[f1c40f]Hero[-]\n[sup]Heroes may deploy")

	ap := strings.Index(out.DescriptionOutput, "[f1c40f]AP[-]")
	hero := strings.Index(out.DescriptionOutput, "[f1c40f]Hero[-]")
	tough := strings.Index(out.DescriptionOutput, "[f1c40f]Tough (6)[-]")
	s.Less(ap, hero)
	s.Less(hero, tough)
}

func (s *FormatterTestSuite) TestLongRuleTextIsWrapped() {
	cfg := s.cfg
	cfg.UseShorterCoreRules = false

	out := s.formatter.Format(s.captain, s.captain.Models[0], cfg)

	s.Contains(out.DescriptionOutput, "is removed last.")
	s.Contains(out.DescriptionOutput, "then it\r\nis removed")
	for _, line := range strings.Split(out.DescriptionOutput, "\n") {
		line = strings.TrimSuffix(line, "\r")
		s.LessOrEqual(len([]rune(line)), formatter.LineWidth+len("[sup][/sup]"), line)
	}
}

func (s *FormatterTestSuite) TestFullTextToggles() {
	cfg := s.cfg
	cfg.IncludeFullCoreRulesText = false

	out := s.formatter.Format(s.captain, s.captain.Models[0], cfg)
	s.Contains(out.DescriptionOutput, "[f1c40f]Tough (6)[-]")
	s.NotContains(out.DescriptionOutput, "wounds")

	out = s.formatter.Format(s.brothers, s.brothers.Models[0], cfg)
	s.Contains(out.DescriptionOutput, "[f1c40f]Shield Drone[-]\n[sup]This model and its unit")

	cfg.IncludeFullArmyRulesText = false
	out = s.formatter.Format(s.brothers, s.brothers.Models[0], cfg)
	s.NotContains(out.DescriptionOutput, "This model and its unit")
}

func (s *FormatterTestSuite) TestNestedWeaponUsesOwnProfile() {
	out := s.formatter.Format(s.support, s.support.Models[0], s.cfg)

	s.Contains(out.DescriptionOutput, "[e74c3c]Pulse Carbine[-]\n[sup](18'', A2, AP(1))[/sup]")
	s.Equal(1, out.CasterValue)
}

func (s *FormatterTestSuite) TestNestedWeaponFallsBackToParentDefinition() {
	model := s.support.Models[0]
	drone := model.Loadout[0]
	drone.Source.Content[0] = armyforge.Gain{Name: "Pulse Carbine", Type: armyforge.KindWeapon}

	out := s.formatter.Format(s.support, model, s.cfg)
	s.Contains(out.DescriptionOutput, "[e74c3c]Pulse Carbine[-]\n[sup](18'', A2, AP(1))[/sup]")

	drone.Source.Content[0].Name = "Burst Cannon"
	out = s.formatter.Format(s.support, model, s.cfg)
	s.Contains(out.DescriptionOutput, "[e74c3c]Burst Cannon[-]\n[sup]"+formatter.MissingWeaponDefinition+"[/sup]")
}

func (s *FormatterTestSuite) TestDisableSmallTextStripsEverything() {
	cfg := s.cfg
	cfg.DisableSmallText = true
	cfg.IncludeCampaignTraits = true

	for _, unit := range []*entities.UnitProfile{s.brothers, s.captain, s.support} {
		out := s.formatter.Format(unit, unit.Models[0], cfg)
		for _, text := range []string{out.NameOutput, out.DescriptionOutput} {
			s.NotContains(text, "[sup]")
			s.NotContains(text, "[/sup]")
		}
	}
}

func (s *FormatterTestSuite) TestDisableSmallTextKeepsNormalizedQuotes() {
	cfg := s.cfg
	cfg.DisableSmallText = true
	model := s.captain.Models[0]
	model.Loadout[0].Definition = "(12”, A1, AP(1))"

	out := s.formatter.Format(s.captain, model, cfg)

	s.True(strings.HasPrefix(out.DescriptionOutput, "[e74c3c]Heavy Pistol[-]\n(12'', A1, AP(1))\r\n"))
}

func (s *FormatterTestSuite) TestCampaignLines() {
	cfg := s.cfg
	cfg.IncludeCampaignXP = true
	cfg.IncludeCampaignTraits = true

	out := s.formatter.Format(s.captain, s.captain.Models[0], cfg)

	s.Contains(out.NameOutput, "[9b59b6]XP: 4[-]")
	s.Contains(out.NameOutput, "[sup][9b59b6]Headstrong[-][/sup]")
}

func (s *FormatterTestSuite) TestUnequippedLoadoutIsLeftOut() {
	model := s.captain.Models[0]
	for _, e := range model.Loadout {
		e.SetQuantity(0)
	}

	out := s.formatter.Format(s.captain, model, s.cfg)

	s.Equal("", out.LoadoutCSV)
	s.NotContains(out.DescriptionOutput, "Heavy Pistol")
	s.Equal(3, out.ToughValue)
	s.Len(s.lines(out.NameOutput), 3, "empty weapon list line is dropped")
}

func (s *FormatterTestSuite) TestQuotesNormalised() {
	model := s.captain.Models[0]
	model.Loadout[0].Definition = "(12\", A1)"

	out := s.formatter.Format(s.captain, model, s.cfg)

	s.Contains(out.DescriptionOutput, "(12'', A1)")
	s.NotContains(out.DescriptionOutput, `"`)
}
