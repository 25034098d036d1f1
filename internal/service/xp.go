package service

import "github.com/alipala/mytacoai-mobile/internal/models"

// ComputeXP returns the reward for a single answer. Wrong answers earn nothing;
// correct ones earn the base reward, a speed bonus when answered within the
// threshold, multiplied by the combo capped at MaxComboMultiplier.
func ComputeXP(isCorrect bool, secondsElapsed float64, currentCombo int, cfg models.XPConfig) models.XPResult {
	if !isCorrect {
		return models.XPResult{}
	}

	speedBonus := 0
	if secondsElapsed <= cfg.SpeedBonusThreshold {
		speedBonus = cfg.SpeedBonusXP
	}

	multiplier := min(max(currentCombo, 1), max(cfg.MaxComboMultiplier, 1))

	return models.XPResult{
		BaseXP:          cfg.BaseCorrectXP,
		SpeedBonus:      speedBonus,
		ComboMultiplier: multiplier,
		TotalXP:         (cfg.BaseCorrectXP + speedBonus) * multiplier,
	}
}

// NextCombo is the combo after an answer: +1 on correct, back to 1 on wrong.
func NextCombo(isCorrect bool, combo int) int {
	if !isCorrect {
		return 1
	}
	return max(combo, 1) + 1
}
