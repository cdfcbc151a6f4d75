package character

// BaseStats are the level-1 stats of a class.
type BaseStats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	MP      int `json:"mp"`
}

// Class describes a playable character class.
type Class struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	BaseStats   BaseStats `json:"base_stats"`
}

// Classes is the playable class catalog, keyed by class id.
var Classes = map[string]*Class{
	"swordsman": {
		ID:          "swordsman",
		Name:        "剑修",
		Icon:        "⚔️",
		Description: "擅长使用剑术，攻击力强",
		BaseStats:   BaseStats{HP: 100, Attack: 12, Defense: 5, MP: 30},
	},
	"mage": {
		ID:          "mage",
		Name:        "法修",
		Icon:        "🔮",
		Description: "擅长使用法术，法力值高",
		BaseStats:   BaseStats{HP: 80, Attack: 8, Defense: 3, MP: 60},
	},
	"warrior": {
		ID:          "warrior",
		Name:        "体修",
		Icon:        "🛡️",
		Description: "擅长近战，防御力强",
		BaseStats:   BaseStats{HP: 120, Attack: 10, Defense: 8, MP: 20},
	},
}

// ClassByID returns the class with the given id, or nil.
func ClassByID(id string) *Class {
	return Classes[id]
}
