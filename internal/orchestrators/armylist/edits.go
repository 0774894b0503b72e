package armylist

import (
	"context"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
)

// ApplyEdits applies loadout changes to each unit's first model, then makes
// the requested copies of it. Edits stop at the first failure; edits before
// it stay applied.
func (o *orchestrator) ApplyEdits(_ context.Context, input *ApplyEditsInput) (*ApplyEditsOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument(errSessionRequired)
	}
	st := input.Session.Store

	for _, edit := range input.Loadout {
		unit, model, err := firstModel(input.Session, edit.SelectionID)
		if err != nil {
			return nil, err
		}
		entry := entryByName(model, edit.EntryName)
		if entry == nil {
			return nil, errors.NotFoundf("loadout entry %q not found", edit.EntryName).
				WithMeta("selection_id", edit.SelectionID)
		}

		if edit.Quantity != nil {
			if err := st.UpdateLoadoutQuantity(unit.ID, model.ID, entry.ID, *edit.Quantity); err != nil {
				return nil, err
			}
		}
		if edit.IncludeInName != nil {
			if err := st.UpdateLoadoutIncludeInName(unit.ID, model.ID, entry.ID, *edit.IncludeInName); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range input.Copies {
		if c.Copies < 0 {
			return nil, errors.InvalidArgumentf("copies must not be negative, got %d", c.Copies)
		}
		unit, model, err := firstModel(input.Session, c.SelectionID)
		if err != nil {
			return nil, err
		}
		for i := 0; i < c.Copies; i++ {
			if _, err := st.DuplicateModel(unit.ID, model.ID); err != nil {
				return nil, err
			}
		}
	}

	return &ApplyEditsOutput{}, nil
}

func firstModel(session *Session, selectionID string) (*entities.UnitProfile, *entities.ModelDefinition, error) {
	unit := session.Store.UnitBySelection(selectionID)
	if unit == nil {
		return nil, nil, errors.NotFoundf("unit with selection %q not found", selectionID).
			WithMeta("selection_id", selectionID)
	}
	if len(unit.Models) == 0 {
		return nil, nil, errors.FailedPrecondition("unit has no models").
			WithMeta("selection_id", selectionID)
	}
	return unit, unit.Models[0], nil
}

func entryByName(model *entities.ModelDefinition, name string) *entities.LoadoutEntry {
	for _, e := range model.Loadout {
		if e.Name == name {
			return e
		}
	}
	return nil
}
