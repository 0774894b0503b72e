package armyforge

import (
	"encoding/json"
)

// Kind is the closed set of loadout source types Army Forge emits.
type Kind int

// Kind values. KindUnknown covers absent or unrecognised type tags.
const (
	KindUnknown Kind = iota
	KindWeapon
	KindItem
	KindRule
	KindDefense
)

const (
	tagWeapon  = "ArmyBookWeapon"
	tagItem    = "ArmyBookItem"
	tagRule    = "ArmyBookRule"
	tagDefense = "ArmyBookDefense"
)

// String returns the upstream type tag
func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return tagWeapon
	case KindItem:
		return tagItem
	case KindRule:
		return tagRule
	case KindDefense:
		return tagDefense
	default:
		return ""
	}
}

// IsRuleLike reports whether the kind grants a special rule rather than gear
func (k Kind) IsRuleLike() bool {
	return k == KindRule || k == KindDefense
}

// KindFromString converts an upstream type tag into a Kind
func KindFromString(s string) Kind {
	switch s {
	case tagWeapon:
		return KindWeapon
	case tagItem:
		return KindItem
	case tagRule:
		return KindRule
	case tagDefense:
		return KindDefense
	default:
		return KindUnknown
	}
}

// MarshalJSON writes the upstream type tag
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON reads the upstream type tag. Unknown tags decode to KindUnknown.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*k = KindUnknown
		return nil
	}
	*k = KindFromString(s)
	return nil
}
