package testutils

import (
	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
)

// Selection ids used by the fixture list
const (
	SelectionBattleBrothers = "sel-bb"
	SelectionCaptain        = "sel-cap"
	SelectionSupport        = "sel-sup"
)

// CoreRules is a small slice of the Grimdark Future common rules
func CoreRules() []armyforge.RuleDefinition {
	return []armyforge.RuleDefinition{
		{Name: "AP", Description: "Targets get -X to Defense rolls when blocking hits from this weapon."},
		{Name: "Caster", Description: "Gets X spell tokens at the beginning of each round, but can't hold more than 6 tokens at once."},
		{Name: "Hero", Description: "Heroes may deploy as part of one multi-model unit without another hero."},
		{
			Name:             "Tough",
			Description:      "This model must take X wounds before being killed. If a model with tough joins a unit without it, then it is removed last.",
			ShortDescription: "Must take X wounds before being killed.",
		},
	}
}

// ArmyRules are the list-specific rules of the fixture list
func ArmyRules() []armyforge.RuleDefinition {
	return []armyforge.RuleDefinition{
		{Name: "Shield Drone", Description: "This model and its unit get +1 to Defense rolls against shooting."},
	}
}

// ArmyList returns a small exported list: a five model squad with a custom
// name and a rule upgrade, a hero joined to it, and a caster support unit.
// Units are deliberately out of sort order.
func ArmyList() *armyforge.ListState {
	return &armyforge.ListState{
		ID:           "vMl2gUoSh9JN",
		Name:         "Strike Force",
		GameSystem:   armyforge.GameSystemGrimdarkFuture,
		Points:       495,
		SpecialRules: ArmyRules(),
		Units: []armyforge.Unit{
			CaptainUnit(),
			BattleBrothersUnit(),
			SupportUnit(),
		},
	}
}

// BattleBrothersUnit is a five model squad carrying five rifles
func BattleBrothersUnit() armyforge.Unit {
	return armyforge.Unit{
		ID:          "bb",
		SortID:      1,
		Name:        "Battle Brothers",
		Size:        5,
		Quality:     "3",
		Defense:     "4",
		SelectionID: SelectionBattleBrothers,
		CustomName:  "Red Squads",
		Loadout: []armyforge.Gain{
			{
				ID:      "w-rifle",
				Name:    "Rifles",
				Label:   "Rifles (24'', A1)",
				Type:    armyforge.KindWeapon,
				Count:   5,
				Range:   24,
				Attacks: 1,
			},
			{
				ID:      "w-rifle",
				Name:    "Rifles",
				Label:   "Rifles (24'', A1)",
				Type:    armyforge.KindWeapon,
				Count:   5,
				Range:   24,
				Attacks: 1,
			},
			{
				ID:      "w-ccw",
				Name:    "CCWs",
				Label:   "CCWs (A1)",
				Type:    armyforge.KindWeapon,
				Count:   5,
				Attacks: 1,
			},
		},
		SelectedUpgrades: []armyforge.SelectedUpgrade{
			{
				InstanceID: "up-1",
				Upgrade:    armyforge.Upgrade{UID: "sec-1", Type: "upgradeRule"},
				Option: armyforge.UpgradeOption{
					ID:    "opt-1",
					Label: "Shield Drones",
					Cost:  10,
					Gains: []armyforge.Gain{
						{ID: "r-shield-drone", Key: "shield-drone", Name: "Shield Drone", Label: "Shield Drones", Type: armyforge.KindRule, Count: 1},
					},
				},
			},
		},
	}
}

// CaptainUnit is a hero with Tough(3) and an item granting another Tough(3)
func CaptainUnit() armyforge.Unit {
	return armyforge.Unit{
		ID:          "cap",
		SortID:      2,
		Name:        "Captain",
		Size:        1,
		Quality:     "3",
		Defense:     "3",
		SelectionID: SelectionCaptain,
		JoinToUnit:  SelectionBattleBrothers,
		XP:          4,
		Traits:      []string{"Headstrong"},
		Rules: []armyforge.SpecialRule{
			{Key: "hero", Name: "Hero"},
			{Key: "tough", Name: "Tough", Rating: "3"},
		},
		Loadout: []armyforge.Gain{
			{
				ID:           "w-pistol",
				Name:         "Heavy Pistol",
				Label:        "Heavy Pistol (12'', A1, AP(1))",
				Type:         armyforge.KindWeapon,
				Count:        1,
				Range:        12,
				Attacks:      1,
				SpecialRules: []armyforge.SpecialRule{{Key: "ap", Name: "AP", Rating: "1", Type: armyforge.KindRule}},
			},
			{
				ID:    "i-armour",
				Name:  "Combat Armour",
				Label: "Combat Armour (Tough(3))",
				Type:  armyforge.KindItem,
				Count: 1,
				Content: []armyforge.Gain{
					{Key: "tough", Name: "Tough", Type: armyforge.KindRule, Rating: "3"},
				},
			},
		},
	}
}

// SupportUnit is a two model caster unit with a drone item granting a weapon
func SupportUnit() armyforge.Unit {
	return armyforge.Unit{
		ID:          "sup",
		SortID:      3,
		Name:        "2x Psy Adepts",
		Size:        2,
		Quality:     "4",
		Defense:     "5",
		SelectionID: SelectionSupport,
		Rules: []armyforge.SpecialRule{
			{Key: "caster", Name: "Caster", Rating: "1"},
		},
		Loadout: []armyforge.Gain{
			{
				ID:    "i-drone",
				Name:  "Gun Drone",
				Label: "Gun Drone (Pulse Carbine (18'', A2, AP(1)))",
				Type:  armyforge.KindItem,
				Count: 1,
				Content: []armyforge.Gain{
					{
						Name:         "Pulse Carbine",
						Type:         armyforge.KindWeapon,
						Range:        18,
						Attacks:      2,
						SpecialRules: []armyforge.SpecialRule{{Key: "ap", Name: "AP", Rating: "1", Type: armyforge.KindRule}},
					},
				},
			},
		},
	}
}
