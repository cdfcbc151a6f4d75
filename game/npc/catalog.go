package npc

// NPC is a resident of the village.
type NPC struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
	Avatar      string `json:"avatar"`
}

// NPC ids.
const (
	VillageChief = "village_chief"
	Blacksmith   = "blacksmith"
	Herbalist    = "herbalist"
	Immortal     = "immortal"
)

// NPCs is the resident catalog.
var NPCs = map[string]NPC{
	VillageChief: {ID: VillageChief, Name: "村长", Role: "村长", Personality: "温和、智慧、热心、耐心", Background: "曾经是修仙者，后来成为村长", Avatar: "👴"},
	Blacksmith:   {ID: Blacksmith, Name: "铁匠", Role: "装备商人", Personality: "粗犷、直爽、热情", Background: "曾是军中工匠", Avatar: "🔨"},
	Herbalist:    {ID: Herbalist, Name: "药王", Role: "药水商人", Personality: "温和、神秘、智慧", Background: "曾是皇家御医", Avatar: "🧪"},
	Immortal:     {ID: Immortal, Name: "仙师", Role: "技能传授者", Personality: "高深莫测、神秘、智慧", Background: "曾是仙人下凡", Avatar: "🧙"},
}

// ItemEffect is what a consumable restores when used.
type ItemEffect struct {
	HP int `json:"hp,omitempty"`
	MP int `json:"mp,omitempty"`
}

// ShopItem is one entry of a shop's stock.
type ShopItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"` // weapon, armor, consumable
	Attack      int        `json:"attack,omitempty"`
	Defense     int        `json:"defense,omitempty"`
	Effect      ItemEffect `json:"effect,omitempty"`
	Price       int        `json:"price"`
	Description string     `json:"description"`
}

// Shop is an NPC's store.
type Shop struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []ShopItem `json:"items"`
}

// Shops maps the shopkeeper NPC id to their store.
var Shops = map[string]Shop{
	Blacksmith: {
		ID: "blacksmith_shop", Name: "铁匠铺",
		Items: []ShopItem{
			{ID: "wooden_sword", Name: "木剑", Type: "weapon", Attack: 5, Price: 50, Description: "一把普通的木剑。"},
			{ID: "iron_sword", Name: "铁剑", Type: "weapon", Attack: 10, Price: 100, Description: "一把坚固的铁剑。"},
			{ID: "steel_armor", Name: "钢甲", Type: "armor", Defense: 5, Price: 80, Description: "一件坚固的钢甲。"},
		},
	},
	Herbalist: {
		ID: "herbalist_shop", Name: "药铺",
		Items: []ShopItem{
			{ID: "health_potion", Name: "生命药水", Type: "consumable", Effect: ItemEffect{HP: 50}, Price: 20, Description: "恢复 50 点生命值。"},
			{ID: "magic_potion", Name: "魔法药水", Type: "consumable", Effect: ItemEffect{MP: 50}, Price: 30, Description: "恢复 50 点魔法值。"},
		},
	},
}
