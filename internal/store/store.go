// Package store holds the unit profiles of one imported army list and the
// edits a user makes to them.
//
// A Store is owned by a single caller and is not safe for concurrent use.
// Every mutation is a single field or slice change with no partial failure.
package store

import (
	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
)

// Config holds the dependencies for the store
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

// Store is the mutable collection of unit profiles
type Store struct {
	ids   idgen.Generator
	units []*entities.UnitProfile
}

// New creates an empty store
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Store{ids: cfg.IDGenerator}, nil
}

// Replace swaps in a freshly imported set of units. With keepUserModels set,
// user-duplicated models of units that survive the import (matched by
// selection id) are carried over after the new generated model.
func (s *Store) Replace(units []*entities.UnitProfile, keepUserModels bool) {
	if keepUserModels {
		for _, u := range units {
			old := s.UnitBySelection(u.SelectionID)
			if old == nil {
				continue
			}
			for _, m := range old.Models {
				if !m.IsGenerated {
					u.Models = append(u.Models, m)
				}
			}
		}
	}
	s.units = units
}

// Units returns the units in import order
func (s *Store) Units() []*entities.UnitProfile {
	return s.units
}

// Unit finds a unit by id
func (s *Store) Unit(unitID string) (*entities.UnitProfile, error) {
	for _, u := range s.units {
		if u.ID == unitID {
			return u, nil
		}
	}
	return nil, errors.NotFoundf("unit %s not found", unitID).WithMeta("unit_id", unitID)
}

// UnitBySelection finds a unit by its Army Forge selection id
func (s *Store) UnitBySelection(selectionID string) *entities.UnitProfile {
	if selectionID == "" {
		return nil
	}
	for _, u := range s.units {
		if u.SelectionID == selectionID {
			return u
		}
	}
	return nil
}

// UnitIndex is the 1-based position of the unit with the selection id, or 0
func (s *Store) UnitIndex(selectionID string) int {
	for i, u := range s.units {
		if u.SelectionID == selectionID {
			return i + 1
		}
	}
	return 0
}

// Model finds a model within a unit
func (s *Store) Model(unitID, modelID string) (*entities.ModelDefinition, error) {
	unit, err := s.Unit(unitID)
	if err != nil {
		return nil, err
	}
	m := unit.Model(modelID)
	if m == nil {
		return nil, errors.NotFoundf("model %s not found", modelID).
			WithMeta("unit_id", unitID).
			WithMeta("model_id", modelID)
	}
	return m, nil
}

func (s *Store) entry(unitID, modelID, entryID string) (*entities.LoadoutEntry, error) {
	m, err := s.Model(unitID, modelID)
	if err != nil {
		return nil, err
	}
	e := m.Entry(entryID)
	if e == nil {
		return nil, errors.NotFoundf("loadout entry %s not found", entryID).
			WithMeta("unit_id", unitID).
			WithMeta("model_id", modelID).
			WithMeta("entry_id", entryID)
	}
	return e, nil
}

// UpdateLoadoutQuantity sets an entry's per-model quantity. Dropping it to 0
// also takes the entry out of the name.
func (s *Store) UpdateLoadoutQuantity(unitID, modelID, entryID string, quantity int) error {
	if quantity < 0 {
		return errors.InvalidArgumentf("quantity must not be negative, got %d", quantity)
	}
	e, err := s.entry(unitID, modelID, entryID)
	if err != nil {
		return err
	}
	e.SetQuantity(quantity)
	return nil
}

// UpdateLoadoutIncludeInName toggles whether an entry is listed in the name.
// Unequipped entries cannot be included.
func (s *Store) UpdateLoadoutIncludeInName(unitID, modelID, entryID string, include bool) error {
	e, err := s.entry(unitID, modelID, entryID)
	if err != nil {
		return err
	}
	if include && !e.Equipped() {
		return errors.FailedPrecondition("cannot include an unequipped loadout entry in the name").
			WithMeta("entry_id", entryID)
	}
	e.IncludeInName = include
	return nil
}

// DuplicateModel appends a user-owned copy of a model to its unit
func (s *Store) DuplicateModel(unitID, modelID string) (*entities.ModelDefinition, error) {
	unit, err := s.Unit(unitID)
	if err != nil {
		return nil, err
	}
	m := unit.Model(modelID)
	if m == nil {
		return nil, errors.NotFoundf("model %s not found", modelID).WithMeta("model_id", modelID)
	}

	dup := m.Clone(s.ids)
	unit.Models = append(unit.Models, dup)
	return dup, nil
}

// DeleteModel removes a model. Removing a unit's last model is allowed.
func (s *Store) DeleteModel(unitID, modelID string) error {
	unit, err := s.Unit(unitID)
	if err != nil {
		return err
	}
	for i, m := range unit.Models {
		if m.ID == modelID {
			unit.Models = append(unit.Models[:i], unit.Models[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("model %s not found", modelID).WithMeta("model_id", modelID)
}
