package armyforge

// Gain is a single piece of equipment or rule grant. Items nest further
// gains in Content. Count is unit-wide, not per model.
type Gain struct {
	ID           string        `json:"id,omitempty"`
	Key          string        `json:"key,omitempty"`
	Name         string        `json:"name"`
	Label        string        `json:"label,omitempty"`
	Type         Kind          `json:"type"`
	Count        int           `json:"count"`
	Range        int           `json:"range,omitempty"`
	Attacks      int           `json:"attacks,omitempty"`
	Rating       Rating        `json:"rating,omitempty"`
	SpecialRules []SpecialRule `json:"specialRules,omitempty"`
	Content      []Gain        `json:"content,omitempty"`
}

// Identity resolves id, then key, then name. The second return is false when
// the gain has none of them; such a gain must never match another.
func (g *Gain) Identity() (string, bool) {
	switch {
	case g.ID != "":
		return g.ID, true
	case g.Key != "":
		return g.Key, true
	case g.Name != "":
		return g.Name, true
	default:
		return "", false
	}
}

// DisplayLabel is the label used to collapse repeated loadout rows
func (g *Gain) DisplayLabel() (string, bool) {
	if g.Label != "" {
		return g.Label, true
	}
	if g.Name != "" {
		return g.Name, true
	}
	return "", false
}

// AsRule views a rule-kind gain as a rule reference
func (g *Gain) AsRule() SpecialRule {
	return SpecialRule{
		Key:    g.Key,
		Name:   g.Name,
		Rating: g.Rating,
		Type:   g.Type,
	}
}

// HasStats reports whether the gain has anything to put in a profile
func (g *Gain) HasStats() bool {
	return g.Range > 0 || g.Attacks > 0 || len(g.SpecialRules) > 0
}

// Clone returns a deep copy
func (g *Gain) Clone() *Gain {
	if g == nil {
		return nil
	}
	out := *g
	if g.SpecialRules != nil {
		out.SpecialRules = append([]SpecialRule(nil), g.SpecialRules...)
	}
	if g.Content != nil {
		out.Content = make([]Gain, len(g.Content))
		for i := range g.Content {
			out.Content[i] = *g.Content[i].Clone()
		}
	}
	return &out
}
