package skill

// EffectType classifies what a skill does when cast.
type EffectType string

const (
	EffectDamage    EffectType = "damage"
	EffectAoEDamage EffectType = "aoe_damage"
	EffectHeal      EffectType = "heal"
	EffectAoEHeal   EffectType = "aoe_heal"
	EffectBuff      EffectType = "buff"
	EffectUltimate  EffectType = "ultimate"
)

// Effect is a skill's combat effect. Value holds the damage or heal amount
// for offensive and healing effects, and the stat multiplier for buffs.
type Effect struct {
	Type     EffectType `json:"type"`
	Value    float64    `json:"value"`
	Stat     string     `json:"stat,omitempty"`     // buff only: attack, defense, all
	Duration int        `json:"duration,omitempty"` // buff only, in turns
}

// Skill is one entry of the skill catalog.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Class       string `json:"class"` // class id, or "all" for shared skills
	Level       int    `json:"level"`
	Cooldown    int    `json:"cooldown"` // turns
	MPCost      int    `json:"mp_cost"`
	Price       int    `json:"price"` // gold cost at the skill trainer
	Effect      Effect `json:"effect"`
}

// priceForLevel is the trainer's gold price per required level.
var priceForLevel = map[int]int{1: 100, 2: 200, 3: 300, 4: 500, 5: 800}

// ClassSkills holds the ten skills of each class, in learn order.
var ClassSkills = map[string][]Skill{
	"swordsman": {
		{ID: "s1", Name: "火剑术", Description: "发射火焰剑气，对敌人造成伤害", Class: "swordsman", Level: 1, Cooldown: 3, MPCost: 10, Effect: Effect{Type: EffectDamage, Value: 30}},
		{ID: "s2", Name: "剑刃风暴", Description: "快速斩击，对敌人造成多次伤害", Class: "swordsman", Level: 2, Cooldown: 5, MPCost: 20, Effect: Effect{Type: EffectDamage, Value: 50}},
		{ID: "s3", Name: "雷霆一击", Description: "召唤雷电，对敌人造成巨大伤害", Class: "swordsman", Level: 3, Cooldown: 8, MPCost: 30, Effect: Effect{Type: EffectDamage, Value: 80}},
		{ID: "s4", Name: "九天剑气", Description: "释放强大的剑气，对敌人造成毁灭性伤害", Class: "swordsman", Level: 4, Cooldown: 10, MPCost: 40, Effect: Effect{Type: EffectDamage, Value: 120}},
		{ID: "s5", Name: "神剑出鞘", Description: "传说中的神剑之术，对敌人造成致命伤害", Class: "swordsman", Level: 5, Cooldown: 15, MPCost: 50, Effect: Effect{Type: EffectDamage, Value: 200}},
		{ID: "s6", Name: "剑意护体", Description: "凝聚剑意，提升自身防御力", Class: "swordsman", Level: 1, Cooldown: 10, MPCost: 15, Effect: Effect{Type: EffectBuff, Stat: "defense", Value: 0.5, Duration: 3}},
		{ID: "s7", Name: "剑心通明", Description: "进入剑心状态，大幅提升攻击力", Class: "swordsman", Level: 2, Cooldown: 15, MPCost: 25, Effect: Effect{Type: EffectBuff, Stat: "attack", Value: 0.8, Duration: 3}},
		{ID: "s8", Name: "剑气纵横", Description: "释放剑气，攻击多个敌人", Class: "swordsman", Level: 3, Cooldown: 12, MPCost: 35, Effect: Effect{Type: EffectAoEDamage, Value: 70}},
		{ID: "s9", Name: "万剑归宗", Description: "召唤无数剑影，对敌人造成群体伤害", Class: "swordsman", Level: 4, Cooldown: 20, MPCost: 50, Effect: Effect{Type: EffectAoEDamage, Value: 150}},
		{ID: "s10", Name: "神剑合一", Description: "人剑合一，释放终极剑术", Class: "swordsman", Level: 5, Cooldown: 30, MPCost: 80, Effect: Effect{Type: EffectUltimate, Value: 300}},
	},
	"mage": {
		{ID: "m1", Name: "火球术", Description: "发射火球，对敌人造成伤害", Class: "mage", Level: 1, Cooldown: 3, MPCost: 10, Effect: Effect{Type: EffectDamage, Value: 30}},
		{ID: "m2", Name: "冰冻术", Description: "冻结敌人，降低敌人速度", Class: "mage", Level: 2, Cooldown: 5, MPCost: 20, Effect: Effect{Type: EffectDamage, Value: 50}},
		{ID: "m3", Name: "雷暴", Description: "召唤雷暴，对敌人造成巨大伤害", Class: "mage", Level: 3, Cooldown: 8, MPCost: 30, Effect: Effect{Type: EffectDamage, Value: 80}},
		{ID: "m4", Name: "冰天雪地", Description: "释放冰雪，对敌人造成毁灭性伤害", Class: "mage", Level: 4, Cooldown: 10, MPCost: 40, Effect: Effect{Type: EffectDamage, Value: 120}},
		{ID: "m5", Name: "元素爆发", Description: "融合火、冰、雷三元素，对敌人造成致命伤害", Class: "mage", Level: 5, Cooldown: 15, MPCost: 50, Effect: Effect{Type: EffectDamage, Value: 200}},
		{ID: "m6", Name: "护盾术", Description: "生成魔法护盾，吸收伤害", Class: "mage", Level: 1, Cooldown: 10, MPCost: 15, Effect: Effect{Type: EffectBuff, Stat: "defense", Value: 0.5, Duration: 3}},
		{ID: "m7", Name: "魔力灌注", Description: "提升法术攻击力", Class: "mage", Level: 2, Cooldown: 15, MPCost: 25, Effect: Effect{Type: EffectBuff, Stat: "attack", Value: 0.8, Duration: 3}},
		{ID: "m8", Name: "群体冰冻", Description: "冻结多个敌人", Class: "mage", Level: 3, Cooldown: 12, MPCost: 35, Effect: Effect{Type: EffectAoEDamage, Value: 70}},
		{ID: "m9", Name: "元素风暴", Description: "召唤元素风暴，对敌人造成群体伤害", Class: "mage", Level: 4, Cooldown: 20, MPCost: 50, Effect: Effect{Type: EffectAoEDamage, Value: 150}},
		{ID: "m10", Name: "元素主宰", Description: "成为元素主宰，释放终极魔法", Class: "mage", Level: 5, Cooldown: 30, MPCost: 80, Effect: Effect{Type: EffectUltimate, Value: 300}},
	},
	"warrior": {
		{ID: "w1", Name: "怒击", Description: "积蓄力量，发动强力一击", Class: "warrior", Level: 1, Cooldown: 3, MPCost: 10, Effect: Effect{Type: EffectDamage, Value: 30}},
		{ID: "w2", Name: "横扫", Description: "横扫千军，攻击多个敌人", Class: "warrior", Level: 2, Cooldown: 5, MPCost: 20, Effect: Effect{Type: EffectAoEDamage, Value: 50}},
		{ID: "w3", Name: "狂暴", Description: "进入狂暴状态，大幅提升攻击力", Class: "warrior", Level: 3, Cooldown: 8, MPCost: 30, Effect: Effect{Type: EffectBuff, Stat: "attack", Value: 1.0, Duration: 3}},
		{ID: "w4", Name: "战斗大师", Description: "战斗技巧精通，全面提升战斗能力", Class: "warrior", Level: 4, Cooldown: 10, MPCost: 40, Effect: Effect{Type: EffectBuff, Stat: "all", Value: 0.5, Duration: 3}},
		{ID: "w5", Name: "战神降临", Description: "战神附体，对敌人造成致命伤害", Class: "warrior", Level: 5, Cooldown: 15, MPCost: 50, Effect: Effect{Type: EffectDamage, Value: 200}},
		{ID: "w6", Name: "钢铁之躯", Description: "身体如钢铁般坚硬，提升防御力", Class: "warrior", Level: 1, Cooldown: 10, MPCost: 15, Effect: Effect{Type: EffectBuff, Stat: "defense", Value: 0.8, Duration: 3}},
		{ID: "w7", Name: "不屈意志", Description: "不屈的意志提升攻击力", Class: "warrior", Level: 2, Cooldown: 15, MPCost: 25, Effect: Effect{Type: EffectBuff, Stat: "attack", Value: 0.6, Duration: 3}},
		{ID: "w8", Name: "震地波", Description: "猛击地面，对周围敌人造成伤害", Class: "warrior", Level: 3, Cooldown: 12, MPCost: 35, Effect: Effect{Type: EffectAoEDamage, Value: 70}},
		{ID: "w9", Name: "战斗狂怒", Description: "狂怒状态，对敌人造成群体伤害", Class: "warrior", Level: 4, Cooldown: 20, MPCost: 50, Effect: Effect{Type: EffectAoEDamage, Value: 150}},
		{ID: "w10", Name: "战神之怒", Description: "战神的愤怒，释放终极战技", Class: "warrior", Level: 5, Cooldown: 30, MPCost: 80, Effect: Effect{Type: EffectUltimate, Value: 300}},
	},
}

// HealSkills are shared by all classes.
var HealSkills = []Skill{
	{ID: "h1", Name: "治愈术", Description: "恢复生命值", Class: "all", Level: 1, Cooldown: 10, MPCost: 20, Effect: Effect{Type: EffectHeal, Value: 50}},
	{ID: "h2", Name: "群体治愈", Description: "恢复所有友方单位生命值", Class: "all", Level: 3, Cooldown: 15, MPCost: 40, Effect: Effect{Type: EffectAoEHeal, Value: 100}},
	{ID: "h3", Name: "生命之泉", Description: "恢复大量生命值", Class: "all", Level: 5, Cooldown: 20, MPCost: 60, Effect: Effect{Type: EffectHeal, Value: 200}},
}

func init() {
	for class := range ClassSkills {
		for i := range ClassSkills[class] {
			ClassSkills[class][i].Price = priceForLevel[ClassSkills[class][i].Level]
		}
	}
	for i := range HealSkills {
		HealSkills[i].Price = priceForLevel[HealSkills[i].Level]
	}
}

// ForClass returns the learnable catalog for a class: its own skills followed
// by the shared healing skills. Unknown classes get the healing skills only.
func ForClass(classID string) []Skill {
	own := ClassSkills[classID]
	out := make([]Skill, 0, len(own)+len(HealSkills))
	out = append(out, own...)
	out = append(out, HealSkills...)
	return out
}

// ByID finds a skill in the class's catalog.
func ByID(classID, skillID string) (Skill, bool) {
	for _, s := range ForClass(classID) {
		if s.ID == skillID {
			return s, true
		}
	}
	return Skill{}, false
}
