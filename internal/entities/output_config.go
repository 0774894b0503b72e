package entities

// OutputConfig controls what the formatter includes and how it is coloured.
// Colours are hex strings with or without the leading '#'.
type OutputConfig struct {
	IncludeCoreSpecialRules             bool `yaml:"include_core_special_rules" json:"includeCoreSpecialRules"`
	IncludeArmySpecialRules             bool `yaml:"include_army_special_rules" json:"includeArmySpecialRules"`
	UseShorterCoreRules                 bool `yaml:"use_shorter_core_rules" json:"useShorterVersionOfCoreSpecialRules"`
	IncludeFullCoreRulesText            bool `yaml:"include_full_core_rules_text" json:"includeFullCoreSpecialRulesText"`
	IncludeFullArmyRulesText            bool `yaml:"include_full_army_rules_text" json:"includeFullArmySpecialRulesText"`
	CompletelyReplaceNameWithCustomName bool `yaml:"replace_name_with_custom_name" json:"completelyReplaceNameWithCustomName"`
	SwapCustomNameBracketing            bool `yaml:"swap_custom_name_bracketing" json:"swapCustomNameBracketingForUnitsWithMultipleModels"`
	IncludeWeaponsListInName            bool `yaml:"include_weapons_in_name" json:"includeWeaponsListInName"`
	IncludeSpecialRulesListInName       bool `yaml:"include_rules_in_name" json:"includeSpecialRulesListInName"`
	IncludeToughRatingInName            bool `yaml:"include_tough_rating_in_name" json:"includeToughSpecialRuleRatingInName"`
	DisableSmallText                    bool `yaml:"disable_small_text" json:"disableSmallText"`
	IncludeCampaignXP                   bool `yaml:"include_campaign_xp" json:"includeCampaignXp"`
	IncludeCampaignTraits               bool `yaml:"include_campaign_traits" json:"includeCampaignTraits"`

	WeaponColour       string `yaml:"weapon_colour" json:"modelWeaponOutputColour"`
	SpecialRulesColour string `yaml:"special_rules_colour" json:"modelSpecialRulesOutputColour"`
	QualityColour      string `yaml:"quality_colour" json:"modelQuaOutputColour"`
	DefenseColour      string `yaml:"defense_colour" json:"modelDefOutputColour"`
	ToughColour        string `yaml:"tough_colour" json:"modelToughOutputColour"`
	CampaignColour     string `yaml:"campaign_colour" json:"modelCampaignStuffOutputColour"`
}

// DefaultOutputConfig returns the settings a fresh converter starts with
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		IncludeCoreSpecialRules:       true,
		IncludeArmySpecialRules:       true,
		UseShorterCoreRules:           true,
		IncludeFullCoreRulesText:      true,
		IncludeFullArmyRulesText:      true,
		IncludeWeaponsListInName:      true,
		IncludeSpecialRulesListInName: true,

		WeaponColour:       "#e74c3c",
		SpecialRulesColour: "#f1c40f",
		QualityColour:      "#2ecc71",
		DefenseColour:      "#3498db",
		ToughColour:        "#e67e22",
		CampaignColour:     "#9b59b6",
	}
}
