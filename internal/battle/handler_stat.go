package battle

import (
	"fmt"

	"github.com/udisondev/monbattle/internal/data"
)

// StatChangeHandler changes stat stages.
type StatChangeHandler struct{ handlerBase }

var statDisplay = map[data.Stat]string{
	data.StatAtk: "Attack",
	data.StatDfe: "Defense",
	data.StatSpd: "Speed",
	data.StatAts: "Sp. Atk",
	data.StatDfs: "Sp. Def",
	data.StatAcc: "accuracy",
	data.StatEva: "evasiveness",
}

// rewritePower threads power through every OnStatChange hook (Simple, Contrary).
func (h *StatChangeHandler) rewritePower(stat data.Stat, power int, target, launcher *Battler, move *Move) int {
	h.logic.eachEffect(func(e Effect) bool {
		power = e.OnStatChange(h, stat, power, target, launcher, move)
		return true
	}, target, launcher)
	return power
}

// StatChangeAppliable reports whether stat of target can move by power stages.
func (h *StatChangeHandler) StatChangeAppliable(stat data.Stat, power int, target, launcher *Battler, move *Move) bool {
	if target == nil || target.IsDead() || power == 0 {
		return false
	}
	stage := target.stages[stat]
	name := statDisplay[stat]
	if power > 0 && stage >= MaxStage {
		h.PreventChange(fmt.Sprintf("%s's %s won't go any higher!", target.Name, name))
		return false
	}
	if power < 0 && stage <= -MaxStage {
		h.PreventChange(fmt.Sprintf("%s's %s won't go any lower!", target.Name, name))
		return false
	}
	result := h.logic.firstPrevention(func(e Effect) HookResult {
		if power > 0 {
			return e.OnStatIncreasePrevention(h, stat, target, launcher, move)
		}
		return e.OnStatDecreasePrevention(h, stat, target, launcher, move)
	}, target, launcher)
	return result == Continue
}

// StatChange applies power stages to stat of target and returns the applied delta.
func (h *StatChangeHandler) StatChange(stat data.Stat, power int, target, launcher *Battler, move *Move) int {
	if target == nil || target.IsDead() {
		return 0
	}
	power = h.rewritePower(stat, power, target, launcher, move)
	if !h.StatChangeAppliable(stat, power, target, launcher, move) {
		return 0
	}
	before := target.stages[stat]
	target.stages[stat] = min(MaxStage, max(-MaxStage, before+power))
	delta := target.stages[stat] - before

	h.logic.scene.ShowStatAnimation(target, stat, delta)
	h.logic.DisplayMessage("%s's %s %s", target.Name, statDisplay[stat], stageWording(delta))
	h.logic.notify(func(e Effect) {
		e.OnStatChangePost(h, stat, delta, target, launcher, move)
	}, target, launcher)
	return delta
}

func stageWording(delta int) string {
	switch {
	case delta >= 3:
		return "rose drastically!"
	case delta == 2:
		return "rose sharply!"
	case delta == 1:
		return "rose!"
	case delta == -1:
		return "fell!"
	case delta == -2:
		return "harshly fell!"
	default:
		return "severely fell!"
	}
}
