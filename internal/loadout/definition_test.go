package loadout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/loadout"
)

func TestDefinitionText(t *testing.T) {
	testCases := []struct {
		name     string
		gain     *armyforge.Gain
		expected string
	}{
		{
			name: "weapon with range attacks and rules",
			gain: &armyforge.Gain{
				Name: "Rifle", Type: armyforge.KindWeapon, Range: 24, Attacks: 1,
				SpecialRules: []armyforge.SpecialRule{{Name: "AP", Rating: "1"}, {Name: "Reliable"}},
			},
			expected: "(24'', A1, AP(1), Reliable)",
		},
		{
			name:     "melee weapon omits range",
			gain:     &armyforge.Gain{Name: "CCW", Type: armyforge.KindWeapon, Attacks: 2},
			expected: "(A2)",
		},
		{
			name:     "item strips its own name",
			gain:     &armyforge.Gain{Name: "Combat Armour", Label: "Combat Armour (Tough(3))", Type: armyforge.KindItem},
			expected: "(Tough(3))",
		},
		{
			name: "item without label uses content names",
			gain: &armyforge.Gain{Name: "Drone", Type: armyforge.KindItem, Content: []armyforge.Gain{
				{Name: "Carbine"}, {Name: "Shield Wall"},
			}},
			expected: "(Carbine, Shield Wall)",
		},
		{
			name: "rule kind uses chunks",
			gain: &armyforge.Gain{Name: "Psy", Type: armyforge.KindRule,
				SpecialRules: []armyforge.SpecialRule{{Name: "Caster", Rating: "2"}}},
			expected: "(Caster(2))",
		},
		{
			name:     "defense kind with nothing",
			gain:     &armyforge.Gain{Name: "Shield", Type: armyforge.KindDefense},
			expected: "()",
		},
		{
			name:     "unknown kind falls back to chunks",
			gain:     &armyforge.Gain{Name: "Odd", Range: 6},
			expected: "(6'')",
		},
		{
			name:     "nil",
			gain:     nil,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, loadout.DefinitionText(tc.gain))
		})
	}
}
