package entities

import "github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"

// ShareableOutput is the rendered list handed to the tabletop mod. The JSON
// field names are what the mod reads.
type ShareableOutput struct {
	GameSystem armyforge.GameSystem `json:"gameSystem"`
	ListName   string               `json:"listName"`
	Units      []SharedUnit         `json:"units"`
}

// SharedUnit is one unit in a shareable output. Joined and combined units
// share the UnitID of the unit they attach to.
type SharedUnit struct {
	Name             string        `json:"name"`
	UnitID           string        `json:"unitId"`
	SelectionID      string        `json:"selectionId"`
	ModelDefinitions []ModelOutput `json:"modelDefinitions"`
}

// ModelOutput is the rendered text for one model definition
type ModelOutput struct {
	Name                 string `json:"name"`
	LoadoutCSV           string `json:"loadoutCSV"`
	TTSNameOutput        string `json:"ttsNameOutput"`
	TTSDescriptionOutput string `json:"ttsDescriptionOutput"`
	OriginalToughValue   int    `json:"originalToughValue"`
	OriginalCasterValue  int    `json:"originalCasterValue"`
}

// SharedList is a persisted shareable output
type SharedList struct {
	ID        string           `json:"listId"`
	List      *ShareableOutput `json:"listJson"`
	CreatedAt int64            `json:"createdAt"`
}
