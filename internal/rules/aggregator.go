// Package rules works out which special rules apply to a model, merges
// duplicates and sums their ratings.
package rules

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
)

// MissingDescription stands in for rule text Army Forge did not supply
const MissingDescription = "[[Rule description missing]]"

// Rule names with totals reported alongside the output
const (
	ToughRuleName  = "Tough"
	CasterRuleName = "Caster"
)

// Rule is one aggregated special rule
type Rule struct {
	Name       string
	Definition string
	Rating     int
	ShowRating bool
	IsCore     bool
}

// DisplayName is the name with its rating appended when it should be shown
func (r Rule) DisplayName() string {
	if r.ShowRating && r.Rating != 0 {
		return fmt.Sprintf("%s (%d)", r.Name, r.Rating)
	}
	return r.Name
}

// Result is the outcome of aggregating one model
type Result struct {
	// Rules are sorted by name, one per name, filtered by the include toggles
	Rules        []Rule
	ToughRating  int
	CasterRating int
	// Missing lists rule names with no text in the dictionary
	Missing []string
}

// Config holds the dependencies for the aggregator
type Config struct {
	Dictionary *Dictionary
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dictionary == nil {
		vb.RequiredField("Dictionary")
	}

	return vb.Build()
}

// Aggregator collects and merges a model's rules. It never mutates the
// model or the dictionary, so repeated calls give identical results.
type Aggregator struct {
	dict *Dictionary
}

// NewAggregator creates a new aggregator
func NewAggregator(cfg *Config) (*Aggregator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Aggregator{dict: cfg.Dictionary}, nil
}

type candidate struct {
	ref        armyforge.SpecialRule
	showRating bool
}

type resolved struct {
	Rule
	included bool
}

// Aggregate resolves the rules for a model under the given output settings.
//
// Loadout rules come only from equipped entries; innate rules always apply
// and always show their rating. Tough and Caster totals only count rules the
// include toggles keep.
func (a *Aggregator) Aggregate(model *entities.ModelDefinition, cfg entities.OutputConfig) *Result {
	result := &Result{}
	if model == nil {
		return result
	}

	fromLoadout := dedupe(loadoutCandidates(model))
	fromUnit := make([]candidate, 0, len(model.InnateRules))
	for _, r := range model.InnateRules {
		fromUnit = append(fromUnit, candidate{ref: r, showRating: true})
	}
	fromUnit = dedupe(fromUnit)

	all := make([]resolved, 0, len(fromLoadout)+len(fromUnit))
	missing := make(map[string]struct{})
	for _, c := range append(fromLoadout, fromUnit...) {
		r := a.resolve(c, cfg)
		if r.Definition == MissingDescription {
			if _, seen := missing[r.Name]; !seen {
				missing[r.Name] = struct{}{}
				result.Missing = append(result.Missing, r.Name)
			}
		}
		all = append(all, r)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	folded := fold(all)
	for _, r := range folded {
		if !r.included {
			continue
		}
		switch r.Name {
		case ToughRuleName:
			result.ToughRating += r.Rating
		case CasterRuleName:
			result.CasterRating += r.Rating
		}
		result.Rules = append(result.Rules, r.Rule)
	}

	return result
}

// loadoutCandidates gathers, from equipped entries only: each entry's own
// rules, nested rule and defense items (which show their rating), and the
// rules attached to every nested item.
func loadoutCandidates(model *entities.ModelDefinition) []candidate {
	equipped := model.Equipped()
	var out []candidate

	for _, e := range equipped {
		if e.Source == nil {
			continue
		}
		for _, r := range e.Source.SpecialRules {
			out = append(out, candidate{ref: r})
		}
	}
	for _, e := range equipped {
		if e.Source == nil {
			continue
		}
		for i := range e.Source.Content {
			c := &e.Source.Content[i]
			if c.Type.IsRuleLike() {
				out = append(out, candidate{ref: c.AsRule(), showRating: true})
			}
		}
	}
	for _, e := range equipped {
		if e.Source == nil {
			continue
		}
		for _, c := range e.Source.Content {
			for _, r := range c.SpecialRules {
				out = append(out, candidate{ref: r})
			}
		}
	}

	return out
}

// dedupe keeps the first candidate per identity. Candidates without one are
// all kept.
func dedupe(in []candidate) []candidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]candidate, 0, len(in))
	for _, c := range in {
		if id, ok := c.ref.Identity(); ok {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
		}
		out = append(out, c)
	}
	return out
}

func (a *Aggregator) resolve(c candidate, cfg entities.OutputConfig) resolved {
	isCore := a.dict.IsCore(c.ref.Name)
	included := cfg.IncludeCoreSpecialRules
	if !isCore {
		included = cfg.IncludeArmySpecialRules
	}

	definition := MissingDescription
	if def, ok := a.dict.Lookup(c.ref); ok {
		switch {
		case cfg.UseShorterCoreRules && def.ShortDescription != "":
			definition = def.ShortDescription
		case def.Description != "":
			definition = def.Description
		}
	}

	return resolved{
		Rule: Rule{
			Name:       c.ref.Name,
			Definition: definition,
			Rating:     c.ref.Rating.Int(),
			ShowRating: c.showRating,
			IsCore:     isCore,
		},
		included: included,
	}
}

// fold merges sorted rules sharing a name, summing ratings. The merged rule
// keeps the first definition and shows its rating if any source did.
func fold(sorted []resolved) []resolved {
	out := make([]resolved, 0, len(sorted))
	index := make(map[string]int, len(sorted))
	for _, r := range sorted {
		if i, ok := index[r.Name]; ok {
			out[i].Rating += r.Rating
			out[i].ShowRating = out[i].ShowRating || r.ShowRating
			out[i].included = out[i].included || r.included
			continue
		}
		index[r.Name] = len(out)
		out = append(out, r)
	}
	return out
}
