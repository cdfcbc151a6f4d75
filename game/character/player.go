package character

import (
	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// Position is the player's pixel position on the current map.
type Position struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction,omitempty"` // up, down, left, right
}

// Equipment holds the equipped item id per slot. Empty string = nothing.
type Equipment struct {
	Weapon    string `json:"weapon"`
	Armor     string `json:"armor"`
	Accessory string `json:"accessory"`
}

// Player is the player character. Invariants: 0 ≤ HP ≤ MaxHP, 0 ≤ MP ≤ MaxMP.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	ClassName string `json:"class_name,omitempty"`
	Icon      string `json:"icon,omitempty"`

	Level     int `json:"level"`
	Exp       int `json:"exp"`
	ExpToNext int `json:"exp_to_next_level"`

	HP      int `json:"hp"`
	MaxHP   int `json:"max_hp"`
	MP      int `json:"mp"`
	MaxMP   int `json:"max_mp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Gold    int `json:"gold"`

	StatPoints    int `json:"stat_points"`
	AttackPoints  int `json:"attack_points"`
	DefensePoints int `json:"defense_points"`
	HPPoints      int `json:"hp_points"`

	Skills    []string  `json:"skills"`
	Equipment Equipment `json:"equipment"`
	Inventory []string  `json:"inventory"`
	Position  Position  `json:"position"`
}

// New creates a level-1 player of the given class.
func New(name, classID string) (*Player, error) {
	class := ClassByID(classID)
	if class == nil {
		return nil, errs.Newf(errs.KindNotFound, "职业不存在：%s", classID)
	}
	if name == "" {
		name = "主角"
	}
	return &Player{
		ID:        "player1",
		Name:      name,
		Class:     classID,
		ClassName: class.Name,
		Icon:      class.Icon,
		Level:     1,
		Exp:       0,
		ExpToNext: 100,
		HP:        class.BaseStats.HP,
		MaxHP:     class.BaseStats.HP,
		MP:        class.BaseStats.MP,
		MaxMP:     class.BaseStats.MP,
		Attack:    class.BaseStats.Attack,
		Defense:   class.BaseStats.Defense,
		Gold:      100,
		Skills:    []string{},
		Inventory: []string{},
	}, nil
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Inventory = append([]string(nil), p.Inventory...)
	return &cp
}

// HasSkill reports whether the player has learned the skill.
func (p *Player) HasSkill(skillID string) bool {
	for _, id := range p.Skills {
		if id == skillID {
			return true
		}
	}
	return false
}

// ApplyHP changes HP by delta, clamped to [0, MaxHP].
func (p *Player) ApplyHP(delta int) {
	hp := p.HP + delta
	if hp > p.MaxHP {
		hp = p.MaxHP
	}
	if hp < 0 {
		hp = 0
	}
	p.HP = hp
}

// ApplyMP changes MP by delta, clamped to [0, MaxMP].
func (p *Player) ApplyMP(delta int) {
	mp := p.MP + delta
	if mp > p.MaxMP {
		mp = p.MaxMP
	}
	if mp < 0 {
		mp = 0
	}
	p.MP = mp
}
