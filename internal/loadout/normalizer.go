// Package loadout turns a unit's Army Forge equipment graph into the
// per-model loadout entries the rest of the converter works with.
package loadout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gertd/go-pluralize"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
	"github.com/KirkDiggler/opr-tts-api/internal/specialrules"
)

// Config holds the dependencies for the normalizer
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Normalizer builds unit profiles and loadout entries from Army Forge units
type Normalizer struct {
	ids    idgen.Generator
	plural *pluralize.Client
}

// NewNormalizer creates a new normalizer
func NewNormalizer(cfg *Config) (*Normalizer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Normalizer{
		ids:    cfg.IDGenerator,
		plural: pluralize.NewClient(),
	}, nil
}

// Quantity is the per-model count of an item the unit carries count of in
// total. It is never less than 1.
func Quantity(count, unitSize int) int {
	if unitSize < 1 {
		unitSize = 1
	}
	q := count / unitSize
	if q < 1 {
		return 1
	}
	return q
}

// Singular singularises a display name
func (n *Normalizer) Singular(s string) string {
	if s == "" {
		return s
	}
	return n.plural.Singular(s)
}

// Normalize flattens the unit's loadout into entries for its default model.
//
// Rows repeating a label already seen are dropped. Upgrades whose only gain
// is a single rule, and which are not already in the loadout, are added as
// their own entry so they can be toggled independently.
func (n *Normalizer) Normalize(unit *armyforge.Unit) []*entities.LoadoutEntry {
	entries := make([]*entities.LoadoutEntry, 0, len(unit.Loadout))
	labels := make(map[string]struct{})
	present := make(map[string]struct{})

	for i := range unit.Loadout {
		g := &unit.Loadout[i]
		if label, ok := g.DisplayLabel(); ok {
			if _, dup := labels[label]; dup {
				continue
			}
			labels[label] = struct{}{}
		}
		if id, ok := g.Identity(); ok {
			present[id] = struct{}{}
		}

		entries = append(entries, &entities.LoadoutEntry{
			ID:         n.ids.Generate(),
			Name:       n.Singular(g.Name),
			Definition: DefinitionText(g),
			Quantity:   Quantity(g.Count, unit.Size),
			Source:     g.Clone(),
		})
	}

	for _, su := range unit.SelectedUpgrades {
		if !su.Option.GrantsSingleRule() {
			continue
		}
		gain := su.Option.Gains[0]
		id, ok := gain.Identity()
		if ok {
			if _, exists := present[id]; exists {
				continue
			}
			present[id] = struct{}{}
		}

		name := gain.Label
		if name == "" {
			name = gain.Name
		}
		if name == "" {
			name = su.Option.Label
		}
		entries = append(entries, &entities.LoadoutEntry{
			ID:         n.ids.Generate(),
			Name:       n.Singular(name),
			Definition: "",
			Quantity:   1,
			Source: &armyforge.Gain{
				Name:    gain.Name,
				Label:   su.Option.Label,
				Content: []armyforge.Gain{*gain.Clone()},
			},
		})
	}

	return entries
}

// BuildProfiles creates one profile per unit, ordered by sort id, each with a
// single generated model.
func (n *Normalizer) BuildProfiles(list *armyforge.ListState) []*entities.UnitProfile {
	if list == nil {
		return nil
	}

	units := make([]*armyforge.Unit, len(list.Units))
	for i := range list.Units {
		units[i] = &list.Units[i]
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].SortID < units[j].SortID
	})

	profiles := make([]*entities.UnitProfile, 0, len(units))
	for _, u := range units {
		profiles = append(profiles, n.BuildProfile(u))
	}
	return profiles
}

// BuildProfile creates the profile and default model for one unit
func (n *Normalizer) BuildProfile(unit *armyforge.Unit) *entities.UnitProfile {
	model := &entities.ModelDefinition{
		ID:           n.ids.Generate(),
		IsGenerated:  true,
		Name:         n.Singular(strings.TrimSpace(specialrules.StripQuantityPrefix(unit.Name))),
		OriginalName: unit.Name,
		Quality:      unit.Quality.Int(),
		Defense:      unit.Defense.Int(),
		XP:           unit.XP,
		Traits:       append([]string(nil), unit.Traits...),
		InnateRules:  append([]armyforge.SpecialRule(nil), unit.InnateRules()...),
		Loadout:      n.Normalize(unit),
	}

	profile := &entities.UnitProfile{
		ID:               n.ids.Generate(),
		OriginalName:     unit.Name,
		CustomName:       unit.CustomName,
		ModelCount:       unit.Size,
		SortID:           unit.SortID,
		SelectionID:      unit.SelectionID,
		JoinToUnit:       unit.JoinToUnit,
		Combined:         unit.Combined,
		LoadoutCSVHelper: n.LoadoutCSVHelper(unit),
		Models:           []*entities.ModelDefinition{model},
	}
	if unit.CustomName != "" {
		profile.CustomNameSingular = n.Singular(unit.CustomName)
	}

	return profile
}

// LoadoutCSVHelper summarises the unit-wide loadout as "2x Rifle, 1x Medkit",
// followed by any single-rule upgrades.
func (n *Normalizer) LoadoutCSVHelper(unit *armyforge.Unit) string {
	chunks := make([]string, 0, len(unit.Loadout))
	for _, g := range unit.Loadout {
		chunks = append(chunks, fmt.Sprintf("%dx %s", g.Count, g.Name))
	}
	for _, su := range unit.SelectedUpgrades {
		if su.Option.GrantsSingleRule() {
			chunks = append(chunks, "1x "+n.Singular(su.Option.Label))
		}
	}
	return strings.Join(chunks, ", ")
}
