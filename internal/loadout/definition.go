package loadout

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
)

// DefinitionText renders the parenthetical shown after a loadout entry's
// name, e.g. (A2, AP(1)).
func DefinitionText(g *armyforge.Gain) string {
	if g == nil {
		return ""
	}
	switch g.Type {
	case armyforge.KindItem:
		return itemDefinition(g)
	case armyforge.KindWeapon, armyforge.KindRule, armyforge.KindDefense, armyforge.KindUnknown:
		return profileDefinition(g)
	}
	return profileDefinition(g)
}

// itemDefinition strips the item's own name out of its label. Items without
// a label are described by their contents.
func itemDefinition(g *armyforge.Gain) string {
	label := g.Label
	if label == "" {
		names := make([]string, 0, len(g.Content))
		for _, c := range g.Content {
			names = append(names, c.Name)
		}
		label = "(" + strings.Join(names, ", ") + ")"
	}
	if g.Name != "" {
		label = strings.Replace(label, g.Name, "", 1)
	}
	return strings.TrimSpace(label)
}

func profileDefinition(g *armyforge.Gain) string {
	chunks := make([]string, 0, 2+len(g.SpecialRules))
	if g.Range > 0 {
		chunks = append(chunks, fmt.Sprintf("%d''", g.Range))
	}
	if g.Attacks > 0 {
		chunks = append(chunks, fmt.Sprintf("A%d", g.Attacks))
	}
	for _, sr := range g.SpecialRules {
		chunks = append(chunks, RuleText(sr))
	}
	return "(" + strings.Join(chunks, ", ") + ")"
}

// RuleText renders a rule reference as Name or Name(rating)
func RuleText(sr armyforge.SpecialRule) string {
	if sr.Rating.IsSet() {
		return fmt.Sprintf("%s(%s)", sr.Name, strings.TrimSpace(string(sr.Rating)))
	}
	return sr.Name
}
