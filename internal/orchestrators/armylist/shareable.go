package armylist

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/store"
)

func (o *orchestrator) BuildShareableOutput(_ context.Context, input *BuildShareableOutputInput) (*BuildShareableOutputOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument(errSessionRequired)
	}

	session := input.Session
	cfg := o.outputConfig(input.OutputConfig)
	units := session.Store.Units()

	out := &entities.ShareableOutput{
		GameSystem: session.GameSystem,
		ListName:   session.ListName,
		Units:      make([]entities.SharedUnit, 0, len(units)),
	}

	for _, unit := range units {
		models := make([]entities.ModelOutput, 0, len(unit.Models))
		for _, model := range unit.Models {
			rendered := o.render(session, unit, model, cfg)
			models = append(models, entities.ModelOutput{
				Name:                 rendered.Name,
				LoadoutCSV:           rendered.LoadoutCSV,
				TTSNameOutput:        rendered.NameOutput,
				TTSDescriptionOutput: rendered.DescriptionOutput,
				OriginalToughValue:   rendered.ToughValue,
				OriginalCasterValue:  rendered.CasterValue,
			})
		}

		out.Units = append(out.Units, entities.SharedUnit{
			Name:             SharedUnitName(session.Store, unit),
			UnitID:           o.ids.Generate(),
			SelectionID:      unit.SelectionID,
			ModelDefinitions: models,
		})
	}

	shareJoinedUnitIDs(session.Store, out.Units)

	return &BuildShareableOutputOutput{Output: out}, nil
}

// SharedUnitName is the unit label in a shareable output:
// "#<index> custom (original)" followed by what it is joined to or combined
// with, e.g. "#1 Captain (joined to #2 Red Squads (Battle Brothers))".
func SharedUnitName(st *store.Store, unit *entities.UnitProfile) string {
	return sharedUnitName(st, unit, map[string]bool{})
}

func sharedUnitName(st *store.Store, unit *entities.UnitProfile, seen map[string]bool) string {
	name := unit.OriginalName
	if unit.CustomName != "" {
		name = fmt.Sprintf("%s (%s)", unit.CustomName, unit.OriginalName)
	}
	name = fmt.Sprintf("#%d %s", st.UnitIndex(unit.SelectionID), name)

	if unit.JoinToUnit == "" || seen[unit.SelectionID] {
		return name
	}
	target := st.UnitBySelection(unit.JoinToUnit)
	if target == nil {
		return name
	}
	seen[unit.SelectionID] = true

	joinText := "combined with"
	if unit.IsHero() {
		joinText = "joined to"
	}
	return fmt.Sprintf("%s (%s %s)", name, joinText, sharedUnitName(st, target, seen))
}

// shareJoinedUnitIDs gives every joined or combined unit the unit id of the
// unit at the end of its join chain.
func shareJoinedUnitIDs(st *store.Store, units []entities.SharedUnit) {
	bySelection := make(map[string]string, len(units))
	for _, u := range units {
		if u.SelectionID != "" {
			bySelection[u.SelectionID] = u.UnitID
		}
	}

	for i := range units {
		root := units[i].SelectionID
		seen := map[string]bool{}
		for {
			profile := st.UnitBySelection(root)
			if profile == nil || profile.JoinToUnit == "" || seen[root] {
				break
			}
			if _, ok := bySelection[profile.JoinToUnit]; !ok {
				break
			}
			seen[root] = true
			root = profile.JoinToUnit
		}
		if id, ok := bySelection[root]; ok {
			units[i].UnitID = id
		}
	}
}
