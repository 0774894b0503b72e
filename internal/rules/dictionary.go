package rules

import (
	"strings"

	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
)

// Dictionary resolves rule references to their text. It is seeded from the
// game system's core rules followed by the list's army rules; core membership
// is tracked separately because it only decides inclusion and which
// full-text toggle applies.
type Dictionary struct {
	defs   []armyforge.RuleDefinition
	byName map[string]int
	core   map[string]struct{}
}

// NewDictionary builds a dictionary. The inputs are copied.
func NewDictionary(core, army []armyforge.RuleDefinition) *Dictionary {
	d := &Dictionary{
		defs:   make([]armyforge.RuleDefinition, 0, len(core)+len(army)),
		byName: make(map[string]int, len(core)+len(army)),
		core:   make(map[string]struct{}, len(core)),
	}
	for _, def := range core {
		d.core[def.Name] = struct{}{}
		d.add(def)
	}
	for _, def := range army {
		d.add(def)
	}
	return d
}

// add keeps the first definition seen for a name
func (d *Dictionary) add(def armyforge.RuleDefinition) {
	d.defs = append(d.defs, def)
	key := strings.ToLower(def.Name)
	if _, ok := d.byName[key]; !ok {
		d.byName[key] = len(d.defs) - 1
	}
}

// IsCore reports whether name is exactly the name of a core rule
func (d *Dictionary) IsCore(name string) bool {
	_, ok := d.core[name]
	return ok
}

// Lookup finds a reference's definition, matching its key against rule
// names first and then its name, both case-insensitively.
func (d *Dictionary) Lookup(ref armyforge.SpecialRule) (armyforge.RuleDefinition, bool) {
	if ref.Key != "" {
		if i, ok := d.byName[strings.ToLower(ref.Key)]; ok {
			return d.defs[i], true
		}
	}
	if ref.Name != "" {
		if i, ok := d.byName[strings.ToLower(ref.Name)]; ok {
			return d.defs[i], true
		}
	}
	return armyforge.RuleDefinition{}, false
}

// Len is the number of definitions, duplicates included
func (d *Dictionary) Len() int {
	return len(d.defs)
}
