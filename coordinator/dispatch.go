package coordinator

import (
	"fmt"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/npc"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
	"github.com/junyi0906/immortal-cultivation-game/store"
	"go.uber.org/zap"
)

// MoveBound is the coordinate limit of the move protocol.
const MoveBound = 512

// battleMonsters are the types an encounter may start with. The slime is a
// scripted tutorial fight and never comes through this event.
var battleMonsters = map[string]bool{
	"wolf":     true,
	"bear":     true,
	"skeleton": true,
	"zombie":   true,
	"boss":     true,
}

// Coordinator validates events and applies them to game state. Handlers are
// copy-on-write: the input state is never touched, the result carries an
// updated clone.
type Coordinator struct {
	store  store.Store
	logger *zap.Logger
}

// New creates a coordinator over the given save store.
func New(st store.Store, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{store: st, logger: logger}
}

// Result is the outcome of a dispatched event. State always holds the state
// to continue with, even when the event changed nothing.
type Result struct {
	State         *GameState `json:"state"`
	Message       string     `json:"message"`
	BattleStarted bool       `json:"battle_started,omitempty"`
	NPCID         string     `json:"npc_id,omitempty"`
	TargetID      string     `json:"target_id,omitempty"`
	Damage        int        `json:"damage,omitempty"`
}

// Dispatch routes an event to its handler. The switch covers the whole event
// union; an unknown implementation cannot arrive through ParseMessage.
func (c *Coordinator) Dispatch(state *GameState, ev Event) (*Result, error) {
	if state == nil {
		return nil, errs.New(errs.KindState, "游戏状态未初始化")
	}

	switch e := ev.(type) {
	case PlayerMove:
		return c.handlePlayerMove(state, e)
	case BattleStart:
		return c.handleBattleStart(state, e)
	case TaskComplete:
		return c.handleTaskComplete(state, e)
	case PlayerClickNPC:
		return c.handlePlayerClickNPC(state, e)
	case PlayerAttack:
		return c.handlePlayerAttack(state, e)
	default:
		c.logger.Error("unhandled event", zap.String("type", string(ev.Type())))
		return nil, errs.Newf(errs.KindValidation, "未知的事件类型：%s", ev.Type())
	}
}

func (c *Coordinator) handlePlayerMove(state *GameState, e PlayerMove) (*Result, error) {
	if e.X < 0 || e.X > MoveBound || e.Y < 0 || e.Y > MoveBound {
		c.logger.Warn("move out of bounds", zap.Int("x", e.X), zap.Int("y", e.Y))
		return nil, errs.New(errs.KindValidation, "位置超出地图范围")
	}
	if state.Player == nil {
		return nil, errs.New(errs.KindState, "角色尚未创建")
	}

	next := state.Clone()
	next.Player.Position = character.Position{X: e.X, Y: e.Y, Direction: e.Direction}
	return &Result{
		State:   next,
		Message: fmt.Sprintf("玩家移动到 (%d, %d)", e.X, e.Y),
	}, nil
}

func (c *Coordinator) handleBattleStart(state *GameState, e BattleStart) (*Result, error) {
	if !battleMonsters[e.MonsterType] {
		c.logger.Warn("invalid battle monster", zap.String("monster_type", e.MonsterType))
		return nil, errs.Newf(errs.KindValidation, "无效的怪物类型：%s", e.MonsterType)
	}
	if state.Player == nil {
		return nil, errs.New(errs.KindState, "角色尚未创建")
	}

	next := state.Clone()
	next.Battle = &BattleStatus{InBattle: true, MonsterID: e.MonsterID, MonsterType: e.MonsterType}
	return &Result{
		State:         next,
		BattleStarted: true,
		Message:       fmt.Sprintf("战斗开始！遭遇了 %s！", e.MonsterType),
	}, nil
}

func (c *Coordinator) handleTaskComplete(state *GameState, e TaskComplete) (*Result, error) {
	i, ok := quest.Find(state.Tasks, e.TaskID)
	if !ok {
		c.logger.Warn("task not found", zap.String("task_id", e.TaskID))
		return nil, errs.Newf(errs.KindNotFound, "任务不存在：%s", e.TaskID)
	}

	// completing twice is a no-op, rewards are granted once
	if state.Tasks[i].Completed {
		return &Result{State: state, Message: "任务已经完成了"}, nil
	}
	if state.Player == nil {
		return nil, errs.New(errs.KindState, "角色尚未创建")
	}

	next := state.Clone()
	task := &next.Tasks[i]
	task.Completed = true
	next.Player.GainGold(task.Rewards.Gold)
	next.Player.GainExp(task.Rewards.Exp)

	c.logger.Info("task completed",
		zap.String("task_id", e.TaskID),
		zap.Int("gold", task.Rewards.Gold),
		zap.Int("exp", task.Rewards.Exp))
	return &Result{
		State:   next,
		Message: fmt.Sprintf("任务完成！获得金币 %d，经验 %d", task.Rewards.Gold, task.Rewards.Exp),
	}, nil
}

func (c *Coordinator) handlePlayerClickNPC(state *GameState, e PlayerClickNPC) (*Result, error) {
	if _, ok := npc.NPCs[e.NPCID]; !ok {
		c.logger.Warn("invalid npc", zap.String("npc_id", e.NPCID))
		return nil, errs.Newf(errs.KindValidation, "无效的 NPC：%s", e.NPCID)
	}
	return &Result{
		State:   state,
		NPCID:   e.NPCID,
		Message: fmt.Sprintf("点击了 NPC: %s", e.NPCID),
	}, nil
}

func (c *Coordinator) handlePlayerAttack(state *GameState, e PlayerAttack) (*Result, error) {
	if e.Damage <= 0 {
		c.logger.Warn("invalid damage", zap.Int("damage", e.Damage))
		return nil, errs.New(errs.KindValidation, "无效的伤害值")
	}
	return &Result{
		State:    state,
		TargetID: e.TargetID,
		Damage:   e.Damage,
		Message:  fmt.Sprintf("玩家对 %s 造成了 %d 点伤害", e.TargetID, e.Damage),
	}, nil
}
