package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junyi0906/immortal-cultivation-game/coordinator"
	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/battle"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/store"
)

// fixedSource makes every random roll deterministic.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return 0 }

func newEngine(t *testing.T) *Engine {
	t.Helper()
	st, err := store.New(store.Config{Backend: store.BackendCache})
	require.NoError(t, err)
	return New(Config{Store: st, RNG: fixedSource{f: 0.9}})
}

func newGame(t *testing.T) *Engine {
	t.Helper()
	e := newEngine(t)
	e.Init(context.Background(), false)
	_, err := e.CreateCharacter("测试侠客", "swordsman")
	require.NoError(t, err)
	return e
}

func TestOperationsBeforeInit(t *testing.T) {
	e := newEngine(t)

	_, err := e.CreateCharacter("x", "swordsman")
	assert.True(t, errs.Is(err, errs.KindState))
	_, _, err = e.PlayerAttack()
	assert.True(t, errs.Is(err, errs.KindState))
	assert.Nil(t, e.GameState())
}

func TestOperationsBeforeCharacter(t *testing.T) {
	e := newEngine(t)
	e.Init(context.Background(), false)

	err := e.StartBattle("slime")
	assert.True(t, errs.Is(err, errs.KindState))
	err = e.Save(context.Background())
	assert.True(t, errs.Is(err, errs.KindState))
	_, err = e.TalkToNPC("village_chief")
	assert.True(t, errs.Is(err, errs.KindState))

	// a well-formed battle event fails the same way instead of opening a session
	_, err = e.HandleEvent(context.Background(), coordinator.BattleStart{MonsterID: "m1", MonsterType: "wolf"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindState))
	assert.Equal(t, battle.StateIdle, e.BattleState())
}

func TestCreateCharacter(t *testing.T) {
	e := newEngine(t)
	e.Init(context.Background(), false)

	p, err := e.CreateCharacter("张三", "mage")
	require.NoError(t, err)
	assert.Equal(t, "张三", p.Name)
	assert.Equal(t, "法修", p.ClassName)

	state := e.GameState()
	require.NotNil(t, state.Player)
	assert.Equal(t, "mage", state.Player.Class)
}

func TestBattleVictoryAppliesRewards(t *testing.T) {
	e := newGame(t)

	require.NoError(t, e.StartBattle("slime"))
	assert.Equal(t, battle.StateFighting, e.BattleState())
	assert.True(t, e.GameState().Battle.InBattle)

	// Swordsman attack 12 vs slime defense 2: three hits of 10.
	for i := 0; i < 2; i++ {
		res, _, err := e.PlayerAttack()
		require.NoError(t, err)
		assert.Equal(t, battle.StateFighting, res.State)
		_, err = e.MonsterAttack()
		require.NoError(t, err)
	}
	res, notices, err := e.PlayerAttack()
	require.NoError(t, err)
	assert.Equal(t, battle.StateVictory, res.State)
	assert.NotEmpty(t, notices)

	state := e.GameState()
	assert.Equal(t, 10, state.Player.Exp)
	assert.Equal(t, 105, state.Player.Gold)
	assert.Nil(t, state.Battle)
}

func TestBattleSyncsPlayerHP(t *testing.T) {
	e := newGame(t)
	require.NoError(t, e.StartBattle("wolf"))

	_, _, err := e.PlayerAttack()
	require.NoError(t, err)
	res, err := e.MonsterAttack()
	require.NoError(t, err)

	// Wolf attack 8 vs swordsman defense 5.
	assert.Equal(t, 97, res.PlayerHP)
	assert.Equal(t, 97, e.GameState().Player.HP)
}

func TestKillTaskProgress(t *testing.T) {
	e := newGame(t)

	task, msg, err := e.AcceptTask("kill_wolf")
	require.NoError(t, err)
	assert.Equal(t, 0, task.Progress)
	assert.Contains(t, msg, task.Title)

	require.NoError(t, e.StartBattle("wolf"))
	for e.BattleState() == battle.StateFighting {
		if res, _, err := e.PlayerAttack(); err == nil && res.State == battle.StateVictory {
			break
		}
		_, err := e.MonsterAttack()
		require.NoError(t, err)
	}

	state := e.GameState()
	require.Len(t, state.Tasks, 1)
	assert.Equal(t, 1, state.Tasks[0].Progress)
}

func TestAcceptTaskTwice(t *testing.T) {
	e := newGame(t)
	_, _, err := e.AcceptTask("kill_wolf")
	require.NoError(t, err)
	_, _, err = e.AcceptTask("kill_wolf")
	assert.True(t, errs.Is(err, errs.KindState))
}

func TestCastSkillInBattle(t *testing.T) {
	e := newGame(t)

	msg, err := e.LearnSkill("s1")
	require.NoError(t, err)
	assert.Equal(t, "学会了 火剑术！", msg)

	require.NoError(t, e.StartBattle("slime"))
	cast, res, _, err := e.CastSkill("s1")
	require.NoError(t, err)
	assert.Equal(t, 30, cast.Damage)
	assert.Equal(t, battle.StateVictory, res.State)

	state := e.GameState()
	assert.Equal(t, 20, state.Player.MP)
	assert.Equal(t, 3, e.Cooldowns().Get("s1"))
	// Learning cost all the starting gold; the slime drops 5.
	assert.Equal(t, 5, state.Player.Gold)
}

func TestCastSkillOutsideBattle(t *testing.T) {
	e := newGame(t)
	_, err := e.LearnSkill("s1")
	require.NoError(t, err)
	_, _, _, err = e.CastSkill("s1")
	assert.True(t, errs.Is(err, errs.KindState))
}

func TestCooldownTicksPerRound(t *testing.T) {
	e := newGame(t)
	_, err := e.LearnSkill("s1")
	require.NoError(t, err)

	require.NoError(t, e.StartBattle("wolf"))
	_, _, _, err = e.CastSkill("s1")
	require.NoError(t, err)
	assert.Equal(t, 3, e.Cooldowns().Get("s1"))

	_, err = e.MonsterAttack()
	require.NoError(t, err)
	assert.Equal(t, 2, e.Cooldowns().Get("s1"))
}

func TestTalkToNPC(t *testing.T) {
	e := newGame(t)

	dialog, err := e.TalkToNPC("village_chief")
	require.NoError(t, err)
	assert.NotEmpty(t, dialog.Text)

	// The immortal lives in the demon palace, not the village.
	_, err = e.TalkToNPC("immortal")
	assert.True(t, errs.Is(err, errs.KindValidation))
}

func TestBuyAndEquip(t *testing.T) {
	e := newGame(t)

	purchase, err := e.BuyItem("blacksmith", "wooden_sword")
	require.NoError(t, err)
	assert.Equal(t, 50, purchase.Cost)

	before := e.GameState().Player.Attack
	_, err = e.EquipItem(character.SlotWeapon, "wooden_sword")
	require.NoError(t, err)

	state := e.GameState()
	assert.Equal(t, before+5, state.Player.Attack)
	assert.Equal(t, "wooden_sword", state.Player.Equipment.Weapon)
	assert.NotContains(t, state.Player.Inventory, "wooden_sword")
}

func TestUseItem(t *testing.T) {
	e := newGame(t)

	_, err := e.BuyItem("herbalist", "health_potion")
	require.NoError(t, err)

	require.NoError(t, e.StartBattle("wolf"))
	_, _, err = e.PlayerAttack()
	require.NoError(t, err)
	_, err = e.MonsterAttack()
	require.NoError(t, err)

	msg, err := e.UseItem("health_potion")
	require.NoError(t, err)
	assert.Equal(t, "使用了 生命药水", msg)
	assert.Equal(t, 100, e.GameState().Player.HP)
}

func TestHandleMessageMove(t *testing.T) {
	e := newGame(t)

	raw, err := coordinator.NewMessage(coordinator.PlayerMove{X: 100, Y: 200, Direction: "right"})
	require.NoError(t, err)

	res, err := e.HandleMessage(context.Background(), raw)
	require.NoError(t, err)
	assert.Contains(t, res.Message, "100")

	pos := e.GameState().Player.Position
	assert.Equal(t, 100, pos.X)
	assert.Equal(t, 200, pos.Y)
}

func TestHandleMessageBattleStartOpensSession(t *testing.T) {
	e := newGame(t)

	raw, err := coordinator.NewMessage(coordinator.BattleStart{MonsterID: "m1", MonsterType: "wolf"})
	require.NoError(t, err)

	res, err := e.HandleMessage(context.Background(), raw)
	require.NoError(t, err)
	assert.True(t, res.BattleStarted)
	assert.Equal(t, battle.StateFighting, e.BattleState())
	assert.Equal(t, "wolf", e.BattleMonster().Type)
}

func TestSaveAndReset(t *testing.T) {
	e := newGame(t)
	ctx := context.Background()

	require.NoError(t, e.Save(ctx))
	has, err := e.HasSave(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, e.Reset(ctx))
	has, err = e.HasSave(ctx)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, e.GameState().Player)
}

func TestInitRestoresSave(t *testing.T) {
	st, err := store.New(store.Config{Backend: store.BackendCache})
	require.NoError(t, err)

	e := New(Config{Store: st})
	e.Init(context.Background(), false)
	_, err = e.CreateCharacter("老玩家", "warrior")
	require.NoError(t, err)
	require.NoError(t, e.Save(context.Background()))

	e2 := New(Config{Store: st})
	loaded := e2.Init(context.Background(), true)
	assert.True(t, loaded)
	assert.Equal(t, "老玩家", e2.GameState().Player.Name)
}

func TestPortalClick(t *testing.T) {
	e := newGame(t)

	// Nowhere near the village portal at (550, 300).
	m, err := e.PortalClick(100, 100)
	require.NoError(t, err)
	assert.Nil(t, m)

	// The portal leads to the forest, which is still locked.
	_, err = e.PortalClick(550, 300)
	assert.True(t, errs.Is(err, errs.KindState))
}

func TestCompleteGameRequiresConditions(t *testing.T) {
	e := newGame(t)
	_, err := e.CompleteGame()
	assert.True(t, errs.Is(err, errs.KindState))

	check, err := e.CheckComplete()
	require.NoError(t, err)
	assert.False(t, check.CanComplete)

	_, _, err = e.Ending()
	assert.True(t, errs.Is(err, errs.KindState))
}

func TestSaveDue(t *testing.T) {
	e := newGame(t)
	assert.True(t, e.SaveDue(time.Minute))
	require.NoError(t, e.Save(context.Background()))
	assert.False(t, e.SaveDue(time.Minute))
}
