package character

import (
	"fmt"

	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// StatPointsPerLevel is granted on every level up.
const StatPointsPerLevel = 20

// LevelUpStats are the stat deltas applied on the next level up.
type LevelUpStats struct {
	Level     int
	Exp       int
	ExpToNext int
	MaxHP     int
	MaxMP     int
	Attack    int
	Defense   int
}

// CanLevelUp reports whether the player has enough exp to level up.
func (p *Player) CanLevelUp() bool {
	return p.Exp >= p.ExpToNext
}

// NextLevelStats computes the stats after the next level up. The per-level
// bonus grows with the current level.
func (p *Player) NextLevelStats() LevelUpStats {
	return LevelUpStats{
		Level:     p.Level + 1,
		Exp:       p.Exp - p.ExpToNext,
		ExpToNext: p.ExpToNext * 3 / 2,
		MaxHP:     p.MaxHP + 20 + p.Level*5,
		MaxMP:     p.MaxMP + 10 + p.Level*3,
		Attack:    p.Attack + 5 + p.Level*2,
		Defense:   p.Defense + 3 + p.Level,
	}
}

// LevelUp applies the next level up. HP and MP are refilled.
func (p *Player) LevelUp() (string, error) {
	if !p.CanLevelUp() {
		return "", errs.New(errs.KindResource, "经验值不足，无法升级")
	}
	next := p.NextLevelStats()
	p.Level = next.Level
	p.Exp = next.Exp
	p.ExpToNext = next.ExpToNext
	p.MaxHP = next.MaxHP
	p.HP = next.MaxHP
	p.MaxMP = next.MaxMP
	p.MP = next.MaxMP
	p.Attack = next.Attack
	p.Defense = next.Defense
	p.StatPoints += StatPointsPerLevel
	return fmt.Sprintf("恭喜！升级到 %d 级！获得 %d 属性点！", p.Level, StatPointsPerLevel), nil
}

// GainExp adds exp and levels up as long as the threshold is crossed.
func (p *Player) GainExp(exp int) string {
	p.Exp += exp
	msg := fmt.Sprintf("获得经验：%d", exp)
	for p.CanLevelUp() {
		levelMsg, err := p.LevelUp()
		if err != nil {
			break
		}
		msg = levelMsg
	}
	return msg
}

// GainGold adds gold, floored at 0.
func (p *Player) GainGold(gold int) string {
	p.Gold += gold
	if p.Gold < 0 {
		p.Gold = 0
	}
	return fmt.Sprintf("获得金币：%d", gold)
}

// StatAllocation distributes stat points across attack, defense, and HP.
type StatAllocation struct {
	AttackPoints  int `json:"attack_points"`
	DefensePoints int `json:"defense_points"`
	HPPoints      int `json:"hp_points"`
}

// DistributeStatPoints spends stat points: +2 attack per point, +2 defense
// per point, +10 max HP per point (current HP grows with it).
func (p *Player) DistributeStatPoints(alloc StatAllocation) (string, error) {
	if alloc.AttackPoints < 0 || alloc.DefensePoints < 0 || alloc.HPPoints < 0 {
		return "", errs.New(errs.KindValidation, "属性点不能为负数")
	}
	total := alloc.AttackPoints + alloc.DefensePoints + alloc.HPPoints
	if total > p.StatPoints {
		return "", errs.New(errs.KindResource, "属性点不足")
	}

	p.Attack += alloc.AttackPoints * 2
	p.Defense += alloc.DefensePoints * 2
	p.MaxHP += alloc.HPPoints * 10
	p.HP += alloc.HPPoints * 10
	p.StatPoints -= total
	p.AttackPoints += alloc.AttackPoints
	p.DefensePoints += alloc.DefensePoints
	p.HPPoints += alloc.HPPoints

	return fmt.Sprintf("属性分配成功！攻击 +%d，防御 +%d，生命 +%d",
		alloc.AttackPoints*2, alloc.DefensePoints*2, alloc.HPPoints*10), nil
}
