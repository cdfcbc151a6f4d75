package battle

import (
	"github.com/google/uuid"
	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// Monster is a combatant spawned from the monster catalog. Templates keep
// MaxHP zero; Spawn fixes MaxHP to the template HP.
type Monster struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"max_hp"`
	Attack   int    `json:"attack"`
	Defense  int    `json:"defense"`
	Exp      int    `json:"exp"`
	Gold     int    `json:"gold"`
	Color    string `json:"color"`
	IsMinion bool   `json:"is_minion,omitempty"`
	Summoned bool   `json:"summoned,omitempty"` // boss only: one-shot summon latch
}

// Monster catalog ids.
const (
	MonsterSlime    = "slime"
	MonsterWolf     = "wolf"
	MonsterBear     = "bear"
	MonsterSkeleton = "skeleton"
	MonsterZombie   = "zombie"
	MonsterBoss     = "boss"
)

// Monsters is the monster template catalog.
var Monsters = map[string]*Monster{
	MonsterSlime:    {ID: MonsterSlime, Type: MonsterSlime, Name: "史莱姆", Level: 1, HP: 30, Attack: 5, Defense: 2, Exp: 10, Gold: 5, Color: "#68d391"},
	MonsterWolf:     {ID: MonsterWolf, Type: MonsterWolf, Name: "狼", Level: 1, HP: 50, Attack: 8, Defense: 3, Exp: 15, Gold: 10, Color: "#a0aec0"},
	MonsterBear:     {ID: MonsterBear, Type: MonsterBear, Name: "熊", Level: 2, HP: 80, Attack: 12, Defense: 5, Exp: 25, Gold: 15, Color: "#c05621"},
	MonsterSkeleton: {ID: MonsterSkeleton, Type: MonsterSkeleton, Name: "骷髅", Level: 3, HP: 60, Attack: 10, Defense: 4, Exp: 30, Gold: 20, Color: "#e2e8f0"},
	MonsterZombie:   {ID: MonsterZombie, Type: MonsterZombie, Name: "僵尸", Level: 4, HP: 100, Attack: 15, Defense: 6, Exp: 40, Gold: 30, Color: "#48bb78"},
	MonsterBoss:     {ID: MonsterBoss, Type: MonsterBoss, Name: "魔王", Level: 10, HP: 500, Attack: 30, Defense: 20, Exp: 500, Gold: 500, Color: "#e53e3e"},
}

// Spawn clones the template for monsterType with MaxHP fixed at its HP.
func Spawn(monsterType string) (*Monster, error) {
	tpl, ok := Monsters[monsterType]
	if !ok {
		return nil, errs.Newf(errs.KindNotFound, "怪物类型不存在：%s", monsterType)
	}
	m := *tpl
	m.MaxHP = tpl.HP
	return &m, nil
}

// minionTypes is the summon pool; the boss itself is excluded.
var minionTypes = []string{MonsterWolf, MonsterBear, MonsterSkeleton, MonsterZombie}

// SummonMinions returns exactly 3 weakened monsters drawn uniformly (with
// replacement) from the minion pool: 50% hp, 70% attack, defense unchanged.
func SummonMinions(rng Source) []*Monster {
	minions := make([]*Monster, 0, 3)
	for i := 0; i < 3; i++ {
		tpl := Monsters[minionTypes[rng.Intn(len(minionTypes))]]
		m := *tpl
		m.ID = "minion_" + uuid.NewString()
		m.HP = tpl.HP / 2
		m.MaxHP = m.HP
		m.Attack = tpl.Attack * 7 / 10
		m.IsMinion = true
		minions = append(minions, &m)
	}
	return minions
}
