package complete

import (
	"testing"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxedPlayer(t *testing.T) *character.Player {
	t.Helper()
	p, err := character.New("大师", "swordsman")
	require.NoError(t, err)
	p.Level = MaxLevel
	return p
}

func TestCheckCondition(t *testing.T) {
	p := maxedPlayer(t)
	p.Level = 9

	c := CheckCondition(p, true, false)
	assert.False(t, c.CanComplete)
	assert.Equal(t, "等级不足，需要达到 10 级", c.Reason)
	assert.Equal(t, "当前等级：9/10", c.Progress)

	p.Level = MaxLevel
	c = CheckCondition(p, false, false)
	assert.False(t, c.CanComplete)
	assert.Equal(t, "魔王未被击败", c.Reason)

	c = CheckCondition(p, true, true)
	assert.False(t, c.CanComplete)
	assert.Equal(t, "已经通关", c.Reason)

	c = CheckCondition(p, true, false)
	assert.True(t, c.CanComplete)
}

func TestTrigger(t *testing.T) {
	p := maxedPlayer(t)

	res, err := Trigger(p, true, false)
	require.NoError(t, err)
	assert.Equal(t, "恭喜！你已经完成了修仙之路！", res.Message)
	assert.Equal(t, CompletionRewards, res.Rewards)
	assert.False(t, res.CompletedAt.IsZero())

	_, err = Trigger(p, true, true)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindState))

	_, err = Trigger(p, false, false)
	require.Error(t, err)
}

func TestEnding(t *testing.T) {
	p := maxedPlayer(t)
	p.Gold = 3000
	p.Skills = []string{"s1", "s5", "h1"}
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stats := Ending(p, at)
	assert.Equal(t, "大师", stats.PlayerName)
	assert.Equal(t, p.ClassName, stats.PlayerClass)
	assert.Equal(t, 3, stats.TotalSkills)
	assert.Equal(t, 3000, stats.TotalGold)
	assert.Equal(t, at, stats.CompletedAt)

	stats = Ending(p, time.Time{})
	assert.False(t, stats.CompletedAt.IsZero())
}
