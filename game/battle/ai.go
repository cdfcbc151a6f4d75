package battle

import "fmt"

type monsterAction struct {
	damage int
	log    string
	effect *SpecialEffect
}

// monsterAction decides the monster's turn. Normal monsters use a plain
// attack except the bear, which roars 20% of the time. The boss walks a
// fixed priority chain: summon minions once below 30% HP, then dark curse,
// fire storm, plain attack.
func (s *Session) monsterAction() monsterAction {
	m := s.monster

	if m.Type == MonsterBoss {
		return s.bossAction()
	}

	if m.Type == MonsterBear && s.rng.Float64() < 0.2 {
		s.player.Attack = int(float64(s.player.Attack) * 0.9)
		return monsterAction{
			damage: 0,
			log:    fmt.Sprintf("%s 发出咆哮！%s 的攻击力降低了！", m.Name, s.player.Name),
			effect: &SpecialEffect{Type: "reduce_attack", Value: 0.1},
		}
	}

	dmg := Damage(m.Attack, s.player.Defense)
	return monsterAction{
		damage: dmg,
		log:    fmt.Sprintf("%s 对 %s 造成 %d 点伤害", m.Name, s.player.Name, dmg),
	}
}

// The boss's plain attack ignores defense; only ordinary monsters and
// minions go through the damage formula.
func (s *Session) bossAction() monsterAction {
	m := s.monster
	hpRatio := float64(m.HP) / float64(m.MaxHP)

	if hpRatio < 0.3 && !m.Summoned {
		m.Summoned = true
		minions := SummonMinions(s.rng)
		return monsterAction{
			damage: 0,
			log:    fmt.Sprintf("%s 召唤出了 %d 个手下！", m.Name, len(minions)),
			effect: &SpecialEffect{Type: "summon_minions", Minions: minions},
		}
	}

	if hpRatio < 0.5 && s.rng.Float64() < 0.3 {
		dmg := int(float64(m.Attack) * 0.8)
		s.player.Defense = int(float64(s.player.Defense) * 0.8)
		return monsterAction{
			damage: dmg,
			log:    fmt.Sprintf("%s 施放暗之诅咒！%s 受到 %d 点伤害，防御力下降了！", m.Name, s.player.Name, dmg),
			effect: &SpecialEffect{Type: "reduce_defense", Value: 0.2},
		}
	}

	if s.rng.Float64() < 0.2 {
		dmg := int(float64(m.Attack) * 1.5)
		return monsterAction{
			damage: dmg,
			log:    fmt.Sprintf("%s 施放烈焰风暴！%s 受到 %d 点伤害", m.Name, s.player.Name, dmg),
		}
	}

	dmg := m.Attack
	return monsterAction{
		damage: dmg,
		log:    fmt.Sprintf("%s 对 %s 造成 %d 点伤害", m.Name, s.player.Name, dmg),
	}
}
