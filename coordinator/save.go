package coordinator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
	"github.com/junyi0906/immortal-cultivation-game/game/world"
	"go.uber.org/zap"
)

// SaveKey is the single save slot.
const SaveKey = "immortalCultivationGame"

// SaveVersion is written into every envelope.
const SaveVersion = "1.0.0"

// savedState is the wire form of a save. Inventory, skills and equipment are
// mirrored to the top level so older readers find them there.
type savedState struct {
	Player         *character.Player   `json:"player"`
	CurrentMap     string              `json:"currentMap"`
	Inventory      []string            `json:"inventory"`
	Skills         []string            `json:"skills"`
	Tasks          []quest.Task        `json:"tasks"`
	Equipment      character.Equipment `json:"equipment"`
	UnlockedMaps   map[string]bool     `json:"unlockedMaps"`
	BossDefeated   bool                `json:"bossDefeated"`
	GameCompleted  bool                `json:"gameCompleted"`
	CompletionTime time.Time           `json:"completionTime,omitempty"`
}

// envelope wraps the state with save metadata.
type envelope struct {
	GameState json.RawMessage `json:"gameState"`
	SaveTime  time.Time       `json:"saveTime"`
	Version   string          `json:"version"`
}

// SaveGame writes the state into the save slot.
func (c *Coordinator) SaveGame(ctx context.Context, state *GameState) error {
	if state == nil || state.Player == nil {
		return errs.New(errs.KindState, "没有可保存的游戏状态")
	}

	saved := savedState{
		Player:         state.Player,
		CurrentMap:     state.World.Current,
		Inventory:      state.Player.Inventory,
		Skills:         state.Player.Skills,
		Tasks:          state.Tasks,
		Equipment:      state.Player.Equipment,
		UnlockedMaps:   state.World.Unlocked,
		BossDefeated:   state.BossDefeated,
		GameCompleted:  state.GameCompleted,
		CompletionTime: state.CompletionTime,
	}
	stateJSON, err := json.Marshal(saved)
	if err != nil {
		return errs.Wrap(errs.KindPersistence, "存档失败", err)
	}

	now := time.Now()
	data, err := json.Marshal(envelope{GameState: stateJSON, SaveTime: now, Version: SaveVersion})
	if err != nil {
		return errs.Wrap(errs.KindPersistence, "存档失败", err)
	}
	if err := c.store.Put(ctx, SaveKey, data, SaveVersion, now); err != nil {
		c.logger.Error("save failed", zap.Error(err))
		return err
	}

	state.LastSaveTime = now
	c.logger.Info("game saved", zap.Time("save_time", now))
	return nil
}

// LoadGame reads and validates the save slot.
func (c *Coordinator) LoadGame(ctx context.Context) (*GameState, error) {
	data, err := c.store.Get(ctx, SaveKey)
	if err != nil {
		if errs.Is(err, errs.KindNotFound) {
			return nil, err
		}
		c.logger.Error("load failed", zap.Error(err))
		return nil, errs.Wrap(errs.KindPersistence, "没有存档或存档损坏，请重新开始", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errs.Wrap(errs.KindPersistence, "没有存档或存档损坏，请重新开始", err)
	}
	if !ValidateSaveGame(env.GameState) {
		return nil, errs.New(errs.KindPersistence, "没有存档或存档损坏，请重新开始")
	}

	var saved savedState
	if err := json.Unmarshal(env.GameState, &saved); err != nil {
		return nil, errs.Wrap(errs.KindPersistence, "没有存档或存档损坏，请重新开始", err)
	}

	state := &GameState{
		Player:         saved.Player,
		World:          &world.State{Current: saved.CurrentMap, Unlocked: saved.UnlockedMaps},
		Tasks:          saved.Tasks,
		BossDefeated:   saved.BossDefeated,
		GameCompleted:  saved.GameCompleted,
		CompletionTime: saved.CompletionTime,
		LastSaveTime:   env.SaveTime,
	}
	if state.World.Unlocked == nil {
		state.World.Unlocked = map[string]bool{world.MapVillage: true}
	}
	if state.Tasks == nil {
		state.Tasks = []quest.Task{}
	}
	// the top-level mirrors are authoritative for older saves
	if state.Player != nil {
		if saved.Inventory != nil {
			state.Player.Inventory = saved.Inventory
		}
		if saved.Skills != nil {
			state.Player.Skills = saved.Skills
		}
	}

	c.logger.Info("game loaded", zap.Time("save_time", env.SaveTime))
	return state, nil
}

// HasSave reports whether a save slot exists.
func (c *Coordinator) HasSave(ctx context.Context) (bool, error) {
	return c.store.Exists(ctx, SaveKey)
}

// DeleteSave removes the save slot.
func (c *Coordinator) DeleteSave(ctx context.Context) error {
	if err := c.store.Delete(ctx, SaveKey); err != nil {
		c.logger.Error("delete save failed", zap.Error(err))
		return err
	}
	return nil
}

// Init restores the saved game, or starts fresh when there is no usable
// save. A corrupted save never blocks startup.
func (c *Coordinator) Init(ctx context.Context) (*GameState, bool) {
	state, err := c.LoadGame(ctx)
	if err != nil {
		if !errs.Is(err, errs.KindNotFound) {
			c.logger.Warn("falling back to a new game", zap.Error(err))
		}
		return NewGameState(), false
	}
	return state, true
}

// requiredFields must exist at the save's top level.
var requiredFields = []string{"player", "currentMap", "inventory", "skills", "tasks", "equipment"}

// requiredPlayerFields must exist inside the player object.
var requiredPlayerFields = []string{"id", "name", "class", "level", "exp", "hp", "attack", "defense", "gold"}

// ValidateSaveGame checks the structural shape of a raw save state: the
// required top-level keys and player keys must all be present. Null and
// non-object states are invalid.
func ValidateSaveGame(raw json.RawMessage) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return false
	}
	for _, f := range requiredFields {
		if _, ok := m[f]; !ok {
			return false
		}
	}

	var player map[string]json.RawMessage
	if err := json.Unmarshal(m["player"], &player); err != nil || player == nil {
		return false
	}
	for _, f := range requiredPlayerFields {
		if _, ok := player[f]; !ok {
			return false
		}
	}
	return true
}
