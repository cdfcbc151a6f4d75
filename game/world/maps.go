package world

// Map geometry. Every map is a MapSize × MapSize pixel field; clicking
// within PortalRadius of a portal triggers it.
const (
	MapSize      = 600
	PortalRadius = 25

	// entry position after a map switch
	EntryX = 50
	EntryY = 300
)

// NPCSpawn places an NPC on a map.
type NPCSpawn struct {
	NPCID string `json:"npc_id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// MonsterSpawn places a monster on a map.
type MonsterSpawn struct {
	MonsterType string `json:"monster_type"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

// Portal links two maps.
type Portal struct {
	ID        string `json:"id"`
	TargetMap string `json:"target_map"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// Map is one area of the overworld.
type Map struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Color    string         `json:"color"`
	NPCs     []NPCSpawn     `json:"npcs"`
	Monsters []MonsterSpawn `json:"monsters"`
	Portals  []Portal       `json:"portals"`
	MinLevel int            `json:"min_level"`
	MaxLevel int            `json:"max_level"`
	Starter  bool           `json:"starter"` // unlocked from the beginning
}

// Map ids.
const (
	MapVillage     = "village"
	MapForest      = "forest"
	MapCave        = "cave"
	MapDesert      = "desert"
	MapSnow        = "snow"
	MapVolcano     = "volcano"
	MapDemonPalace = "demon_palace"
)

// MapList is the overworld in progression order.
var MapList = []string{MapVillage, MapForest, MapCave, MapDesert, MapSnow, MapVolcano, MapDemonPalace}

// Maps is the overworld catalog.
var Maps = map[string]Map{
	MapVillage: {
		ID: MapVillage, Name: "新手村", Color: "#2d3748", MinLevel: 1, MaxLevel: 5, Starter: true,
		NPCs: []NPCSpawn{
			{NPCID: "village_chief", X: 150, Y: 150},
			{NPCID: "blacksmith", X: 450, Y: 150},
			{NPCID: "herbalist", X: 150, Y: 450},
		},
		Monsters: []MonsterSpawn{{MonsterType: "slime", X: 300, Y: 300}},
		Portals:  []Portal{{ID: "p1", TargetMap: MapForest, X: 550, Y: 300}},
	},
	MapForest: {
		ID: MapForest, Name: "森林", Color: "#22543d", MinLevel: 3, MaxLevel: 10,
		NPCs: []NPCSpawn{{NPCID: "hunter", X: 150, Y: 150}},
		Monsters: []MonsterSpawn{
			{MonsterType: "wolf", X: 200, Y: 200},
			{MonsterType: "wolf", X: 400, Y: 400},
			{MonsterType: "bear", X: 300, Y: 300},
		},
		Portals: []Portal{
			{ID: "p2", TargetMap: MapVillage, X: 50, Y: 300},
			{ID: "p3", TargetMap: MapCave, X: 550, Y: 300},
		},
	},
	MapCave: {
		ID: MapCave, Name: "山洞", Color: "#1a202c", MinLevel: 5, MaxLevel: 15,
		NPCs: []NPCSpawn{{NPCID: "gravekeeper", X: 150, Y: 150}},
		Monsters: []MonsterSpawn{
			{MonsterType: "skeleton", X: 200, Y: 200},
			{MonsterType: "skeleton", X: 400, Y: 400},
			{MonsterType: "zombie", X: 300, Y: 300},
		},
		Portals: []Portal{
			{ID: "p4", TargetMap: MapForest, X: 50, Y: 300},
			{ID: "p5", TargetMap: MapDesert, X: 550, Y: 300},
		},
	},
	MapDesert: {
		ID: MapDesert, Name: "沙漠", Color: "#744210", MinLevel: 7, MaxLevel: 20,
		Monsters: []MonsterSpawn{
			{MonsterType: "zombie", X: 200, Y: 200},
			{MonsterType: "zombie", X: 400, Y: 400},
			{MonsterType: "skeleton", X: 300, Y: 300},
		},
		Portals: []Portal{
			{ID: "p6", TargetMap: MapCave, X: 50, Y: 300},
			{ID: "p7", TargetMap: MapSnow, X: 550, Y: 300},
		},
	},
	MapSnow: {
		ID: MapSnow, Name: "冰原", Color: "#e2e8f0", MinLevel: 8, MaxLevel: 25,
		Monsters: []MonsterSpawn{
			{MonsterType: "skeleton", X: 200, Y: 200},
			{MonsterType: "skeleton", X: 400, Y: 400},
			{MonsterType: "zombie", X: 300, Y: 300},
		},
		Portals: []Portal{
			{ID: "p8", TargetMap: MapDesert, X: 50, Y: 300},
			{ID: "p9", TargetMap: MapVolcano, X: 550, Y: 300},
		},
	},
	MapVolcano: {
		ID: MapVolcano, Name: "火山", Color: "#c53030", MinLevel: 9, MaxLevel: 30,
		Monsters: []MonsterSpawn{
			{MonsterType: "zombie", X: 200, Y: 200},
			{MonsterType: "skeleton", X: 400, Y: 400},
			{MonsterType: "boss", X: 300, Y: 300},
		},
		Portals: []Portal{
			{ID: "p10", TargetMap: MapSnow, X: 50, Y: 300},
			{ID: "p11", TargetMap: MapDemonPalace, X: 550, Y: 300},
		},
	},
	MapDemonPalace: {
		ID: MapDemonPalace, Name: "魔宫", Color: "#1a1a1a", MinLevel: 10, MaxLevel: 50,
		NPCs:     []NPCSpawn{{NPCID: "immortal", X: 150, Y: 150}},
		Monsters: []MonsterSpawn{{MonsterType: "boss", X: 300, Y: 300}},
		Portals:  []Portal{{ID: "p12", TargetMap: MapVolcano, X: 50, Y: 300}},
	},
}
