package coordinator

import (
	"testing"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
	"github.com/junyi0906/immortal-cultivation-game/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	st, err := store.New(store.Config{Backend: store.BackendCache})
	require.NoError(t, err)
	return New(st, nil)
}

func newState(t *testing.T) *GameState {
	t.Helper()
	state := NewGameState()
	p, err := character.New("侠客", "swordsman")
	require.NoError(t, err)
	state.Player = p
	return state
}

func TestPlayerMove(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)

	res, err := c.Dispatch(state, PlayerMove{X: 100, Y: 200, Direction: "up"})
	require.NoError(t, err)
	assert.Equal(t, "玩家移动到 (100, 200)", res.Message)
	assert.Equal(t, 100, res.State.Player.Position.X)
	assert.Equal(t, "up", res.State.Player.Position.Direction)
}

func TestPlayerMoveBounds(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {513, 0}, {0, 513}} {
		_, err := c.Dispatch(state, PlayerMove{X: pos[0], Y: pos[1]})
		require.Error(t, err, "(%d,%d)", pos[0], pos[1])
		assert.True(t, errs.Is(err, errs.KindValidation))
	}

	// the boundary itself is inside
	_, err := c.Dispatch(state, PlayerMove{X: MoveBound, Y: MoveBound})
	require.NoError(t, err)
}

func TestPlayerMoveDoesNotMutateInput(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)
	state.Player.Position = character.Position{X: 5, Y: 5}

	res, err := c.Dispatch(state, PlayerMove{X: 400, Y: 400})
	require.NoError(t, err)
	assert.Equal(t, 5, state.Player.Position.X, "input state untouched")
	assert.Equal(t, 400, res.State.Player.Position.X)
}

func TestBattleStartAllowlist(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)

	res, err := c.Dispatch(state, BattleStart{MonsterID: "m1", MonsterType: "wolf"})
	require.NoError(t, err)
	assert.True(t, res.BattleStarted)
	require.NotNil(t, res.State.Battle)
	assert.True(t, res.State.Battle.InBattle)
	assert.Equal(t, "wolf", res.State.Battle.MonsterType)
	assert.Nil(t, state.Battle, "input state untouched")

	// the slime tutorial fight never arrives through this event
	_, err = c.Dispatch(state, BattleStart{MonsterType: "slime"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindValidation))

	_, err = c.Dispatch(state, BattleStart{MonsterType: "dragon"})
	require.Error(t, err)
}

func TestBattleStartRequiresCharacter(t *testing.T) {
	c := newCoordinator(t)
	state := NewGameState()

	_, err := c.Dispatch(state, BattleStart{MonsterID: "m1", MonsterType: "wolf"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindState))
	assert.Contains(t, err.Error(), "角色尚未创建")
}

func TestTaskCompleteGrantsRewardsOnce(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)
	task := quest.Tasks[quest.TaskKillBear]
	task.Progress = 1
	state.Tasks = []quest.Task{task}
	goldBefore := state.Player.Gold

	res, err := c.Dispatch(state, TaskComplete{TaskID: quest.TaskKillBear})
	require.NoError(t, err)
	assert.Equal(t, "任务完成！获得金币 200，经验 100", res.Message)
	assert.True(t, res.State.Tasks[0].Completed)
	assert.Equal(t, goldBefore+200, res.State.Player.Gold)
	assert.False(t, state.Tasks[0].Completed, "input state untouched")

	// completing again changes nothing
	res2, err := c.Dispatch(res.State, TaskComplete{TaskID: quest.TaskKillBear})
	require.NoError(t, err)
	assert.Equal(t, "任务已经完成了", res2.Message)
	assert.Equal(t, res.State.Player.Gold, res2.State.Player.Gold)
}

func TestTaskCompleteUnknownTask(t *testing.T) {
	c := newCoordinator(t)
	_, err := c.Dispatch(newState(t), TaskComplete{TaskID: "slay_dragon"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestPlayerClickNPC(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)

	for _, id := range []string{"village_chief", "blacksmith", "herbalist", "immortal"} {
		res, err := c.Dispatch(state, PlayerClickNPC{NPCID: id})
		require.NoError(t, err, id)
		assert.Equal(t, id, res.NPCID)
	}

	_, err := c.Dispatch(state, PlayerClickNPC{NPCID: "hunter"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindValidation))
}

func TestPlayerAttack(t *testing.T) {
	c := newCoordinator(t)
	state := newState(t)

	res, err := c.Dispatch(state, PlayerAttack{TargetID: "wolf_1", Damage: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, res.Damage)
	assert.Equal(t, "玩家对 wolf_1 造成了 12 点伤害", res.Message)

	for _, dmg := range []int{0, -5} {
		_, err := c.Dispatch(state, PlayerAttack{TargetID: "wolf_1", Damage: dmg})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.KindValidation))
	}
}

func TestDispatchNilState(t *testing.T) {
	c := newCoordinator(t)
	_, err := c.Dispatch(nil, PlayerMove{X: 1, Y: 1})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindState))
}

func TestCloneIsDeep(t *testing.T) {
	state := newState(t)
	state.Tasks = []quest.Task{quest.Tasks[quest.TaskKillWolf]}
	state.Player.Skills = []string{"s1"}

	cp := state.Clone()
	cp.Player.Gold = 9999
	cp.Player.Skills[0] = "s2"
	cp.Tasks[0].Progress = 4
	cp.World.Unlocked["forest"] = true

	assert.Equal(t, 100, state.Player.Gold)
	assert.Equal(t, "s1", state.Player.Skills[0])
	assert.Equal(t, 0, state.Tasks[0].Progress)
	assert.False(t, state.World.Unlocked["forest"])
}
