// Package engine is the mutex-guarded facade over the whole game: one
// Engine owns the game state, the battle session, and the skill cooldown
// ledger, and every operation a client can perform goes through it.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/junyi0906/immortal-cultivation-game/coordinator"
	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/battle"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/complete"
	"github.com/junyi0906/immortal-cultivation-game/game/npc"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
	"github.com/junyi0906/immortal-cultivation-game/game/skill"
	"github.com/junyi0906/immortal-cultivation-game/game/world"
	"github.com/junyi0906/immortal-cultivation-game/store"
)

// Config configures an Engine.
type Config struct {
	Store  store.Store
	Logger *zap.Logger   // nil = no-op
	RNG    battle.Source // nil = time-seeded source
}

// Engine serializes all game operations behind one mutex.
type Engine struct {
	mu        sync.Mutex
	state     *coordinator.GameState
	session   *battle.Session
	cooldowns skill.Ledger
	minions   []*battle.Monster

	coord  *coordinator.Coordinator
	store  store.Store
	logger *zap.Logger
	rng    battle.Source
}

// New builds an Engine. Call Init before any game operation.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		coord:  coordinator.New(cfg.Store, logger),
		store:  cfg.Store,
		logger: logger,
		rng:    cfg.RNG,
	}
}

// Init prepares the engine for play. With loadSave it restores the persisted
// game when one exists; a missing or corrupted save falls back to a fresh
// game. Returns whether a save was restored.
func (e *Engine) Init(ctx context.Context, loadSave bool) (loaded bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if loadSave {
		e.state, loaded = e.coord.Init(ctx)
	} else {
		e.state = coordinator.NewGameState()
	}
	e.session = battle.NewSession(battle.Config{RNG: e.rng, Logger: e.logger})
	e.cooldowns = skill.NewLedger()
	e.minions = nil

	e.logger.Info("engine initialized", zap.Bool("loaded", loaded))
	return loaded
}

// Reset wipes the save and starts a brand-new game.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkReady(); err != nil {
		return err
	}

	if err := e.coord.DeleteSave(ctx); err != nil {
		return err
	}
	e.state = coordinator.NewGameState()
	e.session.Reset()
	e.cooldowns.Reset()
	e.minions = nil
	return nil
}

// CreateCharacter makes the player character for the current game.
func (e *Engine) CreateCharacter(name, classID string) (*character.Player, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkReady(); err != nil {
		return nil, err
	}

	p, err := character.New(name, classID)
	if err != nil {
		return nil, err
	}
	e.state.Player = p
	e.logger.Info("character created",
		zap.String("name", name), zap.String("class", classID))
	return p.Clone(), nil
}

// Save persists the current game.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return err
	}
	return e.coord.SaveGame(ctx, e.state)
}

// HasSave reports whether a persisted game exists.
func (e *Engine) HasSave(ctx context.Context) (bool, error) {
	return e.coord.HasSave(ctx)
}

// HandleMessage parses a wire message and dispatches the event it carries.
// When the event opens a battle, the battle session is started as well.
func (e *Engine) HandleMessage(ctx context.Context, raw []byte) (*coordinator.Result, error) {
	ev, _, err := coordinator.ParseMessage(raw)
	if err != nil {
		return nil, err
	}
	return e.HandleEvent(ctx, ev)
}

// HandleEvent dispatches one game event and adopts the resulting state.
func (e *Engine) HandleEvent(ctx context.Context, ev coordinator.Event) (*coordinator.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkReady(); err != nil {
		return nil, err
	}

	res, err := e.coord.Dispatch(e.state, ev)
	if err != nil {
		return nil, err
	}
	if res.BattleStarted && res.State.Battle != nil {
		if err := e.startBattle(res.State, res.State.Battle.MonsterType); err != nil {
			return nil, err
		}
	}
	e.state = res.State
	return res, nil
}

// TalkToNPC opens a dialog with an NPC standing on the current map.
func (e *Engine) TalkToNPC(npcID string) (*npc.Dialog, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, err
	}

	m, ok := world.Maps[e.state.World.Current]
	if !ok {
		return nil, errs.Newf(errs.KindNotFound, "地图不存在：%s", e.state.World.Current)
	}
	found := false
	for _, spawn := range m.NPCs {
		if spawn.NPCID == npcID {
			found = true
			break
		}
	}
	if !found {
		return nil, errs.New(errs.KindValidation, "NPC 不在当前地图")
	}
	return npc.GenerateDialog(npcID, e.state.Player)
}

// AcceptTask adds a task to the player's task list.
func (e *Engine) AcceptTask(taskID string) (quest.Task, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return quest.Task{}, "", err
	}

	task, msg, err := npc.AssignTask(taskID, e.state.Tasks)
	if err != nil {
		return quest.Task{}, "", err
	}
	e.state.Tasks = append(e.state.Tasks, task)
	return task, msg, nil
}

// CompleteTask turns in a finished task and collects its rewards.
func (e *Engine) CompleteTask(ctx context.Context, taskID string) (*coordinator.Result, error) {
	return e.HandleEvent(ctx, coordinator.TaskComplete{TaskID: taskID})
}

// TaskProgress reports whether a task can be turned in.
func (e *Engine) TaskProgress(taskID string) (npc.TaskValidation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return npc.TaskValidation{}, err
	}
	return npc.ValidateTask(taskID, e.state.Tasks)
}

// BuyItem purchases an item from an NPC's shop.
func (e *Engine) BuyItem(npcID, itemID string) (*npc.Purchase, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, err
	}
	return npc.Buy(e.state.Player, npcID, itemID)
}

// UseItem consumes an inventory item.
func (e *Engine) UseItem(itemID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return "", err
	}
	msg, err := npc.UseItem(e.state.Player, itemID)
	if err != nil {
		return "", err
	}
	// Mid-battle the session fights on its own clone; mirror the restore so
	// the next hp sync does not undo the potion.
	if e.session.State() == battle.StateFighting {
		sp := e.session.Player()
		sp.HP = e.state.Player.HP
		sp.MP = e.state.Player.MP
	}
	return msg, nil
}

// LearnSkill teaches the player a skill from their class list.
func (e *Engine) LearnSkill(skillID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return "", err
	}
	return skill.Learn(e.state.Player, skillID)
}

// EquipItem equips an inventory item into the given slot.
func (e *Engine) EquipItem(slot, itemID string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return "", err
	}
	return e.state.Player.Equip(slot, itemID, equipCatalog())
}

// StartBattle begins a fight against a monster of the given type.
func (e *Engine) StartBattle(monsterType string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return err
	}
	return e.startBattle(e.state, monsterType)
}

// startBattle starts the session and marks the battle on state.
// Caller holds the mutex.
func (e *Engine) startBattle(state *coordinator.GameState, monsterType string) error {
	if err := e.session.Start(state.Player, monsterType); err != nil {
		return err
	}
	e.cooldowns.Reset()
	e.minions = nil
	state.Battle = &coordinator.BattleStatus{
		InBattle:    true,
		MonsterID:   e.session.Monster().ID,
		MonsterType: monsterType,
	}
	return nil
}

// PlayerAttack performs the player's basic attack. On victory the rewards
// are applied and any kill tasks advance; the returned notices carry the
// reward and level-up messages.
func (e *Engine) PlayerAttack() (*battle.AttackResult, []string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, nil, err
	}

	res, err := e.session.PlayerAttack()
	if err != nil {
		return nil, nil, err
	}
	notices := e.afterPlayerTurn(res)
	return res, notices, nil
}

// CastSkill casts a learned skill as the player's battle turn. Damage skills
// hit the monster directly; heals and buffs still consume the turn.
func (e *Engine) CastSkill(skillID string) (*skill.CastResult, *battle.AttackResult, []string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, nil, nil, err
	}
	if e.session.State() != battle.StateFighting {
		return nil, nil, nil, errs.New(errs.KindState, "不在战斗中")
	}
	if e.session.Turn() != battle.TurnPlayer {
		return nil, nil, nil, errs.New(errs.KindState, "不是玩家回合")
	}

	cast, err := skill.Cast(e.state.Player, skillID, e.cooldowns)
	if err != nil {
		return nil, nil, nil, err
	}

	// The session fights on a private clone; mirror the cast's mp cost and
	// healing onto it, and scope any stat buff to the battle.
	sp := e.session.Player()
	sp.MP = e.state.Player.MP
	sp.HP = e.state.Player.HP
	if cast.Type == skill.EffectBuff {
		applyBuff(sp, cast)
	}

	res, err := e.session.PlayerSkill(cast.Damage, cast.Message)
	if err != nil {
		return nil, nil, nil, err
	}
	notices := e.afterPlayerTurn(res)
	return cast, res, notices, nil
}

// AutoSkill picks the strongest castable learned skill, or "" when none.
func (e *Engine) AutoSkill() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil || e.state.Player == nil {
		return ""
	}
	return skill.AutoCast(e.state.Player, e.cooldowns)
}

// afterPlayerTurn finishes victory bookkeeping for a player turn result.
// Caller holds the mutex.
func (e *Engine) afterPlayerTurn(res *battle.AttackResult) []string {
	if res.State != battle.StateVictory {
		return nil
	}

	m := e.session.Monster()
	p := e.state.Player
	p.HP = res.PlayerHP

	var notices []string
	if res.Reward != nil {
		notices = append(notices, p.GainExp(res.Reward.Exp), p.GainGold(res.Reward.Gold))
	}
	e.state.Tasks = quest.RecordKill(e.state.Tasks, m.Type)
	if m.Type == battle.MonsterBoss && !m.IsMinion {
		e.state.BossDefeated = true
		notices = append(notices, "魔王被击败了！")
	}
	e.state.Battle = nil
	e.minions = nil

	e.logger.Info("battle won",
		zap.String("monster", m.Type),
		zap.Int("level", p.Level),
		zap.Int("gold", p.Gold))
	return notices
}

// MonsterAttack performs the monster's turn and ends the round: the player's
// hp is synced back to the game state and skill cooldowns tick down once.
func (e *Engine) MonsterAttack() (*battle.AttackResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, err
	}

	res, err := e.session.MonsterAttack()
	if err != nil {
		return nil, err
	}
	e.state.Player.HP = res.PlayerHP
	if res.Effect != nil && res.Effect.Type == "summon_minions" {
		e.minions = res.Effect.Minions
	}
	if res.State == battle.StateDefeat {
		e.state.Battle = nil
		e.minions = nil
		e.logger.Info("battle lost", zap.String("monster", e.session.Monster().Type))
	}
	e.cooldowns.Tick()
	return res, nil
}

// SwitchMap moves the player to another map's entry point.
func (e *Engine) SwitchMap(mapID string) (*world.Map, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, err
	}
	return e.state.World.Switch(e.state.Player, mapID)
}

// UnlockMap unlocks a map for travel.
func (e *Engine) UnlockMap(mapID string) (string, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkReady(); err != nil {
		return "", false, err
	}
	return e.state.World.Unlock(mapID)
}

// UpdatePosition moves the player within the current map's bounds.
func (e *Engine) UpdatePosition(x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return err
	}
	return world.UpdatePosition(e.state.Player, x, y)
}

// PortalClick checks a click against the current map's portals and, when one
// is hit, travels through it. Returns nil when no portal was hit.
func (e *Engine) PortalClick(x, y int) (*world.Map, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, err
	}

	portal, ok := world.PortalAt(e.state.World.Current, x, y)
	if !ok {
		return nil, nil
	}
	return e.state.World.Switch(e.state.Player, portal.TargetMap)
}

// LevelUp spends accumulated experience on the next level.
func (e *Engine) LevelUp() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return "", err
	}
	return e.state.Player.LevelUp()
}

// DistributeStats spends the player's free stat points.
func (e *Engine) DistributeStats(alloc character.StatAllocation) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return "", err
	}
	return e.state.Player.DistributeStatPoints(alloc)
}

// CheckComplete reports whether the game can be completed.
func (e *Engine) CheckComplete() (complete.Check, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return complete.Check{}, err
	}
	return complete.CheckCondition(e.state.Player, e.state.BossDefeated, e.state.GameCompleted), nil
}

// CompleteGame finishes the game once every condition holds and grants the
// completion rewards.
func (e *Engine) CompleteGame() (*complete.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return nil, err
	}

	res, err := complete.Trigger(e.state.Player, e.state.BossDefeated, e.state.GameCompleted)
	if err != nil {
		return nil, err
	}
	e.state.GameCompleted = true
	e.state.CompletionTime = res.CompletedAt
	e.state.Player.GainExp(res.Rewards.BonusExp)
	e.state.Player.GainGold(res.Rewards.BonusGold)
	e.logger.Info("game completed", zap.String("player", e.state.Player.Name))
	return res, nil
}

// Ending builds the ending screen for a completed game.
func (e *Engine) Ending() (complete.EndingStats, []complete.Scene, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkPlayer(); err != nil {
		return complete.EndingStats{}, nil, err
	}
	if !e.state.GameCompleted {
		return complete.EndingStats{}, nil, errs.New(errs.KindState, "尚未通关")
	}
	return complete.Ending(e.state.Player, e.state.CompletionTime), complete.EndingScenes, nil
}

// GameState returns a deep copy of the current state.
func (e *Engine) GameState() *coordinator.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return e.state.Clone()
}

// BattleState reports the battle session's current phase.
func (e *Engine) BattleState() battle.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return battle.StateIdle
	}
	return e.session.State()
}

// BattleTurn reports whose turn it is.
func (e *Engine) BattleTurn() battle.Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return battle.TurnPlayer
	}
	return e.session.Turn()
}

// BattleMonster returns a copy of the monster being fought, or nil.
func (e *Engine) BattleMonster() *battle.Monster {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil || e.session.Monster() == nil {
		return nil
	}
	m := *e.session.Monster()
	return &m
}

// Minions returns the boss minions summoned in the current battle.
func (e *Engine) Minions() []*battle.Monster {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*battle.Monster, 0, len(e.minions))
	for _, m := range e.minions {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

// BattleLog returns the battle log of the current session.
func (e *Engine) BattleLog() []battle.LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	return e.session.Log()
}

// Cooldowns returns a copy of the skill cooldown ledger.
func (e *Engine) Cooldowns() skill.Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cooldowns == nil {
		return skill.NewLedger()
	}
	return e.cooldowns.Clone()
}

func (e *Engine) checkReady() error {
	if e.state == nil {
		return errs.New(errs.KindState, "游戏未初始化")
	}
	return nil
}

func (e *Engine) checkPlayer() error {
	if err := e.checkReady(); err != nil {
		return err
	}
	if e.state.Player == nil {
		return errs.New(errs.KindState, "角色尚未创建")
	}
	return nil
}

// applyBuff applies a stat buff to the battle copy of the player. The buff
// lives as long as the battle does; the session clone is discarded after it.
func applyBuff(p *character.Player, cast *skill.CastResult) {
	switch cast.Stat {
	case "attack":
		p.Attack = int(float64(p.Attack) * (1 + cast.Value))
	case "defense":
		p.Defense = int(float64(p.Defense) * (1 + cast.Value))
	}
}

var equipItems map[string]character.ItemStats
var equipOnce sync.Once

// equipCatalog maps every equippable shop item to its combat bonus.
func equipCatalog() map[string]character.ItemStats {
	equipOnce.Do(func() {
		equipItems = make(map[string]character.ItemStats)
		for _, shop := range npc.Shops {
			for _, item := range shop.Items {
				if item.Type == "consumable" {
					continue
				}
				equipItems[item.ID] = character.ItemStats{
					Attack:  item.Attack,
					Defense: item.Defense,
				}
			}
		}
	})
	return equipItems
}

// SaveDue reports whether the autosave interval has elapsed since the last
// save for a game that has a character to save.
func (e *Engine) SaveDue(interval time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil || e.state.Player == nil {
		return false
	}
	return time.Since(e.state.LastSaveTime) >= interval
}
