package models

type XPConfig struct {
	BaseCorrectXP       int     `mapstructure:"base_correct_xp" validate:"min=0"`
	SpeedBonusXP        int     `mapstructure:"speed_bonus_xp" validate:"min=0"`
	SpeedBonusThreshold float64 `mapstructure:"speed_bonus_threshold" validate:"min=0"`
	MaxComboMultiplier  int     `mapstructure:"max_combo_multiplier" validate:"min=1"`
}

type XPResult struct {
	BaseXP          int `json:"base_xp"`
	SpeedBonus      int `json:"speed_bonus"`
	ComboMultiplier int `json:"combo_multiplier"`
	TotalXP         int `json:"total_xp"`
}
