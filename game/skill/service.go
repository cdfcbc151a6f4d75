package skill

import (
	"fmt"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
)

// LearnCheck is the answer of CheckLearn.
type LearnCheck struct {
	CanLearn bool   `json:"can_learn"`
	Reason   string `json:"reason,omitempty"`
}

// CheckLearn reports whether the player may learn skillID, with the trainer's
// refusal reason when not.
func CheckLearn(p *character.Player, skillID string) LearnCheck {
	s, ok := ByID(p.Class, skillID)
	if !ok {
		return LearnCheck{Reason: "技能不存在"}
	}
	if p.Level < s.Level {
		return LearnCheck{Reason: fmt.Sprintf("等级不足，需要等级 %d", s.Level)}
	}
	if p.Gold < s.Price {
		return LearnCheck{Reason: "金币不足"}
	}
	if p.HasSkill(skillID) {
		return LearnCheck{Reason: "已经学习过该技能"}
	}
	return LearnCheck{CanLearn: true}
}

// Learn teaches skillID to the player, deducting its gold price. The player
// is only modified when every learn condition holds.
func Learn(p *character.Player, skillID string) (string, error) {
	check := CheckLearn(p, skillID)
	if !check.CanLearn {
		kind := errs.KindResource
		if check.Reason == "技能不存在" {
			kind = errs.KindNotFound
		}
		return "", errs.New(kind, check.Reason)
	}

	s, _ := ByID(p.Class, skillID)
	p.Skills = append(p.Skills, skillID)
	p.Gold -= s.Price
	return fmt.Sprintf("学会了 %s！", s.Name), nil
}

// CastCheck is the answer of CanCast.
type CastCheck struct {
	CanCast bool   `json:"can_cast"`
	Reason  string `json:"reason,omitempty"`
}

// CanCast reports whether the player can cast skillID right now: the skill
// must exist, its mp cost must be covered, and it must be off cooldown.
func CanCast(p *character.Player, skillID string, ledger Ledger) CastCheck {
	s, ok := ByID(p.Class, skillID)
	if !ok {
		return CastCheck{Reason: "技能不存在"}
	}
	if p.MP < s.MPCost {
		return CastCheck{Reason: "法力值不足"}
	}
	if ledger.Get(skillID) > 0 {
		return CastCheck{Reason: "技能冷却中"}
	}
	return CastCheck{CanCast: true}
}

// CastResult describes a successful cast. Damage effects report the amount
// for the battle to apply; healing has already been applied to the caster.
type CastResult struct {
	Type     EffectType `json:"type"`
	Damage   int        `json:"damage,omitempty"`
	Heal     int        `json:"heal,omitempty"`
	Stat     string     `json:"stat,omitempty"`
	Value    float64    `json:"value,omitempty"`
	Duration int        `json:"duration,omitempty"`
	Message  string     `json:"message"`
	MPLeft   int        `json:"mp_left"`
}

// Cast casts skillID: it verifies every cast condition, then atomically
// deducts mp, applies self-healing, and starts the cooldown. A failed check
// leaves the player and the ledger untouched.
func Cast(p *character.Player, skillID string, ledger Ledger) (*CastResult, error) {
	check := CanCast(p, skillID, ledger)
	if !check.CanCast {
		kind := errs.KindResource
		switch check.Reason {
		case "技能不存在":
			kind = errs.KindNotFound
		case "技能冷却中":
			kind = errs.KindState
		}
		return nil, errs.New(kind, check.Reason)
	}

	s, _ := ByID(p.Class, skillID)
	p.MP -= s.MPCost
	ledger.Set(skillID, s.Cooldown)

	result := &CastResult{Type: s.Effect.Type, MPLeft: p.MP}
	switch s.Effect.Type {
	case EffectDamage:
		result.Damage = int(s.Effect.Value)
		result.Message = fmt.Sprintf("%s 使用了 %s，造成 %d 点伤害！", p.Name, s.Name, result.Damage)
	case EffectAoEDamage:
		result.Damage = int(s.Effect.Value)
		result.Message = fmt.Sprintf("%s 使用了 %s，对全体敌人造成 %d 点伤害！", p.Name, s.Name, result.Damage)
	case EffectHeal:
		result.Heal = int(s.Effect.Value)
		p.ApplyHP(result.Heal)
		result.Message = fmt.Sprintf("%s 使用了 %s，恢复 %d 点生命！", p.Name, s.Name, result.Heal)
	case EffectAoEHeal:
		result.Heal = int(s.Effect.Value)
		p.ApplyHP(result.Heal)
		result.Message = fmt.Sprintf("%s 使用了 %s，恢复全体 %d 点生命！", p.Name, s.Name, result.Heal)
	case EffectBuff:
		result.Stat = s.Effect.Stat
		result.Value = s.Effect.Value
		result.Duration = s.Effect.Duration
		result.Message = fmt.Sprintf("%s 使用了 %s，%s 提升 %.0f%%！", p.Name, s.Name, s.Effect.Stat, s.Effect.Value*100)
	case EffectUltimate:
		result.Damage = int(s.Effect.Value)
		result.Message = fmt.Sprintf("%s 使用了终极技能 %s，造成 %d 点伤害！", p.Name, s.Name, result.Damage)
	}
	return result, nil
}

// AutoCast picks the skill the player would cast automatically: the highest
// level castable skill among the learned ones, catalog order breaking ties.
// It returns "" when nothing is castable.
func AutoCast(p *character.Player, ledger Ledger) string {
	best := Skill{Level: -1}
	for _, s := range ForClass(p.Class) {
		if !p.HasSkill(s.ID) {
			continue
		}
		if s.Level <= best.Level {
			continue
		}
		if CanCast(p, s.ID, ledger).CanCast {
			best = s
		}
	}
	return best.ID
}
