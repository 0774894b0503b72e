package armylist

import (
	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/formatter"
	"github.com/KirkDiggler/opr-tts-api/internal/rules"
	"github.com/KirkDiggler/opr-tts-api/internal/store"
)

// Session is one imported army list and the user's edits to it. A session
// is owned by a single caller.
type Session struct {
	ListID     string
	ListName   string
	GameSystem armyforge.GameSystem
	Store      *store.Store
	Dictionary *rules.Dictionary

	formatter *formatter.Formatter
}

// ImportArmyListInput identifies the list to import. ArmyID wins over
// ShareLink when both are set.
type ImportArmyListInput struct {
	ShareLink string
	ArmyID    string
	Beta      bool
	// Session re-imports into an existing session instead of starting fresh
	Session        *Session
	KeepUserModels bool
}

// ImportArmyListOutput holds the imported session
type ImportArmyListOutput struct {
	Session *Session
}

// RenderModelInput selects one model to render
type RenderModelInput struct {
	Session *Session
	UnitID  string
	ModelID string
	// OutputConfig overrides the service default when set
	OutputConfig *entities.OutputConfig
}

// RenderModelOutput holds the rendered text
type RenderModelOutput struct {
	Output *formatter.Output
}

// ApplyEditsInput carries user edits for a session
type ApplyEditsInput struct {
	Session *Session
	Loadout []LoadoutEdit
	Copies  []ModelCopies
}

// LoadoutEdit changes one entry on a unit's first model, matched by entry name
type LoadoutEdit struct {
	SelectionID   string `json:"selectionId"`
	EntryName     string `json:"entryName"`
	Quantity      *int   `json:"quantity,omitempty"`
	IncludeInName *bool  `json:"includeInName,omitempty"`
}

// ModelCopies duplicates a unit's first model
type ModelCopies struct {
	SelectionID string `json:"selectionId"`
	Copies      int    `json:"copies"`
}

// ApplyEditsOutput is empty; edits are applied to the session in place
type ApplyEditsOutput struct{}

// BuildShareableOutputInput selects the session to bundle
type BuildShareableOutputInput struct {
	Session      *Session
	OutputConfig *entities.OutputConfig
}

// BuildShareableOutputOutput holds the bundle
type BuildShareableOutputOutput struct {
	Output *entities.ShareableOutput
}

// SaveShareableOutputInput holds the bundle to persist
type SaveShareableOutputInput struct {
	Output *entities.ShareableOutput
}

// SaveShareableOutputOutput holds the stored list
type SaveShareableOutputOutput struct {
	SharedList *entities.SharedList
}

// GetSharedListInput identifies a stored list
type GetSharedListInput struct {
	ListID string
}

// GetSharedListOutput holds the stored list
type GetSharedListOutput struct {
	SharedList *entities.SharedList
}

// ConvertInput runs import, edits and bundling in one call
type ConvertInput struct {
	ShareLink    string
	ArmyID       string
	Beta         bool
	OutputConfig *entities.OutputConfig
	Loadout      []LoadoutEdit
	Copies       []ModelCopies
	// Save persists the bundle and returns its id
	Save bool
}

// ConvertOutput holds the bundle and, when saved, the stored list
type ConvertOutput struct {
	Output     *entities.ShareableOutput
	SharedList *entities.SharedList
}
