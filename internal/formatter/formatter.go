// Package formatter renders a model's loadout and rules into the name and
// description text of a tabletop object.
//
// The markup is the tabletop's own: [rrggbb]text[-] colours a span, [b]..[/b]
// is bold and [sup]..[/sup] is small text. Lines are joined with "\r\n".
package formatter

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/loadout"
	"github.com/KirkDiggler/opr-tts-api/internal/rules"
	"github.com/KirkDiggler/opr-tts-api/internal/specialrules"
)

// MissingWeaponDefinition stands in for a nested weapon with no profile
const MissingWeaponDefinition = "[[Weapon definition missing]]"

const lineSep = "\r\n"

// Output is the rendered text for one model
type Output struct {
	// Name is the plain model name including any " w/ ..." suffix
	Name              string
	LoadoutCSV        string
	NameOutput        string
	DescriptionOutput string
	ToughValue        int
	CasterValue       int
	// MissingRules names rules rendered with placeholder text
	MissingRules []string
}

// Config holds the dependencies for the formatter
type Config struct {
	Aggregator *rules.Aggregator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Aggregator == nil {
		vb.RequiredField("Aggregator")
	}

	return vb.Build()
}

// Formatter renders models
type Formatter struct {
	aggregator *rules.Aggregator
}

// New creates a new formatter
func New(cfg *Config) (*Formatter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Formatter{aggregator: cfg.Aggregator}, nil
}

// ModelName picks the displayed name from the unit's original and custom
// names according to the bracketing settings.
func ModelName(unit *entities.UnitProfile, model *entities.ModelDefinition, cfg entities.OutputConfig) string {
	if cfg.CompletelyReplaceNameWithCustomName && unit.CustomNameSingular != "" {
		return unit.CustomNameSingular
	}

	if cfg.SwapCustomNameBracketing && unit.ModelCount > 1 {
		if unit.CustomName != "" {
			return fmt.Sprintf("%s (%s)", model.Name, unit.CustomName)
		}
		return unit.OriginalName
	}

	if unit.CustomName != "" {
		return fmt.Sprintf("%s (%s)", unit.CustomName, model.Name)
	}
	return unit.OriginalName
}

// Format renders the name and description text for a model of unit
func (f *Formatter) Format(unit *entities.UnitProfile, model *entities.ModelDefinition, cfg entities.OutputConfig) *Output {
	var (
		weaponColour = colour(cfg.WeaponColour)
		rulesColour  = colour(cfg.SpecialRulesColour)
	)

	equipped := model.Equipped()
	agg := f.aggregator.Aggregate(model, cfg)

	name := ModelName(unit, model, cfg)
	nameLine := "[b]" + name + "[/b]"

	var named []string
	for _, e := range equipped {
		if e.IncludeInName {
			named = append(named, quantityName(e.Quantity, e.Name))
		}
	}
	if len(named) > 0 {
		suffix := " w/ " + strings.Join(named, ", ")
		name += suffix
		nameLine += suffix
	}

	if cfg.IncludeToughRatingInName && agg.ToughRating >= 1 {
		nameLine += fmt.Sprintf(" [%s](%d)[-]", colour(cfg.ToughColour), agg.ToughRating)
	}

	loadoutNames := make([]string, 0, len(equipped))
	for _, e := range equipped {
		loadoutNames = append(loadoutNames, quantityName(e.Quantity, e.Name))
	}
	loadoutCSV := strings.Join(loadoutNames, ", ")

	nameLines := []string{
		nameLine,
		fmt.Sprintf("[%s][b]Q%d[/b]+[-] / [%s][b]D%d[/b]+[-]",
			colour(cfg.QualityColour), model.Quality, colour(cfg.DefenseColour), model.Defense),
	}
	if cfg.IncludeWeaponsListInName && loadoutCSV != "" {
		nameLines = append(nameLines, fmt.Sprintf("[sup][%s]%s[-][/sup]", weaponColour, loadoutCSV))
	}
	if cfg.IncludeSpecialRulesListInName {
		if csv := rulesCSV(agg.Rules); csv != "" {
			nameLines = append(nameLines, fmt.Sprintf("[sup][%s]%s[-][/sup]", rulesColour, csv))
		}
	}
	nameLines = append(nameLines, campaignLines(model, cfg)...)

	description := joinNonEmpty(
		weaponsBlock(equipped, weaponColour),
		rulesBlock(agg.Rules, cfg, rulesColour),
	)
	nameOutput := joinNonEmpty(nameLines...)

	nameOutput = NormalizeQuotes(nameOutput)
	description = NormalizeQuotes(description)
	if cfg.DisableSmallText {
		nameOutput = StripSmallText(nameOutput)
		description = StripSmallText(description)
	}

	return &Output{
		Name:              NormalizeQuotes(name),
		LoadoutCSV:        NormalizeQuotes(loadoutCSV),
		NameOutput:        nameOutput,
		DescriptionOutput: description,
		ToughValue:        agg.ToughRating,
		CasterValue:       agg.CasterRating,
		MissingRules:      agg.Missing,
	}
}

// weaponsBlock lists equipped weapons, then weapons nested inside equipped
// items. A nested weapon without its own profile borrows the one its parent
// item spells out in its definition.
func weaponsBlock(equipped []*entities.LoadoutEntry, weaponColour string) string {
	var lines []string
	for _, e := range equipped {
		if e.Source != nil && e.Source.Type == armyforge.KindWeapon {
			lines = append(lines, weaponText(weaponColour, e.Quantity, e.Name, e.Definition))
		}
	}

	fallback := make(map[string]string)
	for _, e := range equipped {
		for k, v := range specialrules.DefinitionsByName(unwrapParens(e.Definition)) {
			fallback[k] = v
		}
	}

	for _, e := range equipped {
		if e.Source == nil {
			continue
		}
		for i := range e.Source.Content {
			c := &e.Source.Content[i]
			if c.Type != armyforge.KindWeapon {
				continue
			}
			def := MissingWeaponDefinition
			switch {
			case c.HasStats():
				def = loadout.DefinitionText(c)
			case fallback[c.Name] != "":
				def = fallback[c.Name]
			}
			qty := c.Count
			if qty < 1 {
				qty = 1
			}
			lines = append(lines, weaponText(weaponColour, qty, c.Name, def))
		}
	}

	return strings.Join(lines, lineSep)
}

func weaponText(weaponColour string, qty int, name, definition string) string {
	return fmt.Sprintf("[%s]%s[-]\n[sup]%s[/sup]", weaponColour, quantityName(qty, name), definition)
}

func rulesBlock(aggregated []rules.Rule, cfg entities.OutputConfig, rulesColour string) string {
	lines := make([]string, 0, len(aggregated))
	for _, r := range aggregated {
		full := cfg.IncludeFullArmyRulesText
		if r.IsCore {
			full = cfg.IncludeFullCoreRulesText
		}
		if full {
			lines = append(lines, fmt.Sprintf("[%s]%s[-]\n[sup]%s[/sup]",
				rulesColour, r.DisplayName(), InsertLineBreaks(r.Definition)))
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s]%s[-]", rulesColour, r.DisplayName()))
	}
	return strings.Join(lines, lineSep)
}

func rulesCSV(aggregated []rules.Rule) string {
	parts := make([]string, 0, len(aggregated))
	for _, r := range aggregated {
		if r.ShowRating && r.Rating != 0 {
			parts = append(parts, fmt.Sprintf("%s(%d)", r.Name, r.Rating))
			continue
		}
		parts = append(parts, r.Name)
	}
	return strings.Join(parts, ", ")
}

func campaignLines(model *entities.ModelDefinition, cfg entities.OutputConfig) []string {
	var lines []string
	c := colour(cfg.CampaignColour)
	if cfg.IncludeCampaignXP && model.XP > 0 {
		lines = append(lines, fmt.Sprintf("[%s]XP: %d[-]", c, model.XP))
	}
	if cfg.IncludeCampaignTraits && len(model.Traits) > 0 {
		lines = append(lines, fmt.Sprintf("[sup][%s]%s[-][/sup]", c, strings.Join(model.Traits, ", ")))
	}
	return lines
}

func quantityName(qty int, name string) string {
	if qty > 1 {
		return fmt.Sprintf("%dx %s", qty, name)
	}
	return name
}

func colour(hex string) string {
	return strings.TrimPrefix(strings.TrimSpace(hex), "#")
}

func unwrapParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, lineSep)
}
