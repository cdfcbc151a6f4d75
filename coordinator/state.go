package coordinator

import (
	"time"

	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
	"github.com/junyi0906/immortal-cultivation-game/game/world"
)

// BattleStatus marks an encounter in progress.
type BattleStatus struct {
	InBattle    bool   `json:"in_battle"`
	MonsterID   string `json:"monster_id,omitempty"`
	MonsterType string `json:"monster_type,omitempty"`
}

// GameState is the whole game, held as one explicit value. Handlers never
// mutate a caller's state; they work on clones and hand the updated value
// back.
type GameState struct {
	Player *character.Player `json:"player"`
	World  *world.State      `json:"world"`
	Tasks  []quest.Task      `json:"tasks"`

	Battle         *BattleStatus `json:"battle_status,omitempty"`
	BossDefeated   bool          `json:"boss_defeated"`
	GameCompleted  bool          `json:"game_completed"`
	CompletionTime time.Time     `json:"completion_time,omitempty"`
	LastSaveTime   time.Time     `json:"last_save_time,omitempty"`
}

// NewGameState returns a fresh game with no character yet; the character is
// created when the player picks a class.
func NewGameState() *GameState {
	return &GameState{
		World: world.NewState(),
		Tasks: []quest.Task{},
	}
}

// Clone returns a deep copy of the state. Every nested structure is copied
// by value so the clone shares nothing with the original.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Player = g.Player.Clone()
	cp.World = g.World.Clone()
	cp.Tasks = make([]quest.Task, len(g.Tasks))
	copy(cp.Tasks, g.Tasks)
	if g.Battle != nil {
		b := *g.Battle
		cp.Battle = &b
	}
	return &cp
}
