// Package armyforge holds the Army Forge list export as it arrives on the
// wire. Nothing here is mutated after decoding.
package armyforge

import "strings"

// ListState is the exported army list
type ListState struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	GameSystem   GameSystem       `json:"gameSystem"`
	Points       int              `json:"points"`
	PointsLimit  int              `json:"pointsLimit,omitempty"`
	CampaignMode bool             `json:"campaignMode,omitempty"`
	Units        []Unit           `json:"units"`
	SpecialRules []RuleDefinition `json:"specialRules"`
}

// Unit is one army list entry together with the player's selections
type Unit struct {
	ID               string            `json:"id"`
	ArmyID           string            `json:"armyId"`
	SortID           int               `json:"sortId"`
	Name             string            `json:"name"`
	Size             int               `json:"size"`
	Cost             int               `json:"cost"`
	Quality          Rating            `json:"quality"`
	Defense          Rating            `json:"defense"`
	Rules            []SpecialRule     `json:"rules,omitempty"`
	SpecialRules     []SpecialRule     `json:"specialRules,omitempty"`
	Loadout          []Gain            `json:"loadout"`
	SelectedUpgrades []SelectedUpgrade `json:"selectedUpgrades"`
	SelectionID      string            `json:"selectionId"`
	CustomName       string            `json:"customName,omitempty"`
	JoinToUnit       string            `json:"joinToUnit,omitempty"`
	Combined         bool              `json:"combined"`
	XP               int               `json:"xp"`
	Traits           []string          `json:"traits"`
	Notes            string            `json:"notes,omitempty"`
}

// InnateRules returns the unit's own special rules. Newer exports carry them
// under "rules", older ones under "specialRules".
func (u *Unit) InnateRules() []SpecialRule {
	if len(u.Rules) > 0 {
		return u.Rules
	}
	return u.SpecialRules
}

// SelectedUpgrade is one upgrade option the player picked
type SelectedUpgrade struct {
	InstanceID string        `json:"instanceId"`
	Upgrade    Upgrade       `json:"upgrade"`
	Option     UpgradeOption `json:"option"`
}

// Upgrade is the upgrade section an option belongs to
type Upgrade struct {
	UID   string `json:"uid"`
	Label string `json:"label,omitempty"`
	Type  string `json:"type"`
}

// UpgradeOption is the chosen option and what it grants
type UpgradeOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Cost  int    `json:"cost"`
	Gains []Gain `json:"gains"`
}

// GrantsSingleRule reports whether the option's only gain is one rule
func (o *UpgradeOption) GrantsSingleRule() bool {
	return len(o.Gains) == 1 && o.Gains[0].Type == KindRule
}

// SpecialRule references a named rule with an optional rating
type SpecialRule struct {
	Key       string `json:"key,omitempty"`
	Name      string `json:"name"`
	Rating    Rating `json:"rating,omitempty"`
	Type      Kind   `json:"type,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// RuleDefinition is the canonical text for a rule
type RuleDefinition struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription,omitempty"`
	HasRating        bool   `json:"hasRating,omitempty"`
}

// CommonRules is the body of the common rules endpoint
type CommonRules struct {
	Rules []RuleDefinition `json:"rules"`
}

// Identity is the rule's key if present, else its name, lowercased. The
// second return is false when the rule has neither.
func (r SpecialRule) Identity() (string, bool) {
	switch {
	case r.Key != "":
		return strings.ToLower(r.Key), true
	case r.Name != "":
		return strings.ToLower(r.Name), true
	default:
		return "", false
	}
}
