package entities

import (
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
)

// LoadoutEntry is one distinct piece of a model's loadout. Quantity is per
// model; an entry with quantity 0 is unequipped and never named.
type LoadoutEntry struct {
	ID            string
	Name          string
	Definition    string
	Quantity      int
	IncludeInName bool
	Source        *armyforge.Gain
}

// SetQuantity updates the quantity, clearing IncludeInName when it drops to 0
func (e *LoadoutEntry) SetQuantity(quantity int) {
	e.Quantity = quantity
	if quantity <= 0 {
		e.IncludeInName = false
	}
}

// Equipped reports whether the model currently carries the entry
func (e *LoadoutEntry) Equipped() bool {
	return e.Quantity > 0
}

// ModelDefinition is one distinct model variant within a unit
type ModelDefinition struct {
	ID           string
	IsGenerated  bool
	Name         string
	OriginalName string
	Quality      int
	Defense      int
	XP           int
	Traits       []string
	InnateRules  []armyforge.SpecialRule
	Loadout      []*LoadoutEntry
}

// Entry finds a loadout entry by id
func (m *ModelDefinition) Entry(entryID string) *LoadoutEntry {
	for _, e := range m.Loadout {
		if e.ID == entryID {
			return e
		}
	}
	return nil
}

// Equipped returns the entries with a quantity above 0, in loadout order
func (m *ModelDefinition) Equipped() []*LoadoutEntry {
	out := make([]*LoadoutEntry, 0, len(m.Loadout))
	for _, e := range m.Loadout {
		if e.Equipped() {
			out = append(out, e)
		}
	}
	return out
}

// Clone copies the model under a new id. Every loadout entry gets a fresh id
// too, so edits on the copy never reach the original. The copy is always
// user-owned.
func (m *ModelDefinition) Clone(ids idgen.Generator) *ModelDefinition {
	out := &ModelDefinition{
		ID:           ids.Generate(),
		IsGenerated:  false,
		Name:         m.Name,
		OriginalName: m.OriginalName,
		Quality:      m.Quality,
		Defense:      m.Defense,
		XP:           m.XP,
		Traits:       append([]string(nil), m.Traits...),
		InnateRules:  append([]armyforge.SpecialRule(nil), m.InnateRules...),
		Loadout:      make([]*LoadoutEntry, len(m.Loadout)),
	}
	for i, e := range m.Loadout {
		out.Loadout[i] = &LoadoutEntry{
			ID:            ids.Generate(),
			Name:          e.Name,
			Definition:    e.Definition,
			Quantity:      e.Quantity,
			IncludeInName: e.IncludeInName,
			Source:        e.Source.Clone(),
		}
	}
	return out
}

// UnitProfile is one army list entry and the models the user has defined for it
type UnitProfile struct {
	ID                 string
	OriginalName       string
	CustomName         string
	CustomNameSingular string
	ModelCount         int
	SortID             int
	SelectionID        string
	JoinToUnit         string
	Combined           bool
	LoadoutCSVHelper   string
	Models             []*ModelDefinition
}

// Model finds a model by id
func (u *UnitProfile) Model(modelID string) *ModelDefinition {
	for _, m := range u.Models {
		if m.ID == modelID {
			return m
		}
	}
	return nil
}

// IsHero reports whether the unit's first model carries the hero rule
func (u *UnitProfile) IsHero() bool {
	if len(u.Models) == 0 {
		return false
	}
	for _, r := range u.Models[0].InnateRules {
		if r.Key == "hero" {
			return true
		}
	}
	return false
}
