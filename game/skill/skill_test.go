package skill

import (
	"testing"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwordsman(t *testing.T) *character.Player {
	t.Helper()
	p, err := character.New("剑客", "swordsman")
	require.NoError(t, err)
	return p
}

func TestCatalogShape(t *testing.T) {
	for _, class := range []string{"swordsman", "mage", "warrior"} {
		assert.Len(t, ClassSkills[class], 10, class)
	}
	assert.Len(t, HealSkills, 3)

	for _, s := range ForClass("mage") {
		assert.Positive(t, s.Price, s.ID)
		assert.Positive(t, s.Cooldown, s.ID)
		assert.Positive(t, s.MPCost, s.ID)
	}
}

func TestByIDCrossClass(t *testing.T) {
	// healing skills belong to every class
	s, ok := ByID("warrior", "h1")
	require.True(t, ok)
	assert.Equal(t, "治愈术", s.Name)

	// a mage cannot see swordsman skills
	_, ok = ByID("mage", "s1")
	assert.False(t, ok)

	_, ok = ByID("swordsman", "nope")
	assert.False(t, ok)
}

func TestLedgerTickFloorsAtZero(t *testing.T) {
	l := NewLedger()
	l.Set("s1", 2)
	l.Set("s2", 0)

	l.Tick()
	assert.Equal(t, 1, l.Get("s1"))
	assert.Equal(t, 0, l.Get("s2"))

	l.Tick()
	l.Tick()
	assert.Equal(t, 0, l.Get("s1"), "cooldown never goes negative")
}

func TestLedgerReset(t *testing.T) {
	l := NewLedger()
	l.Set("s1", 5)
	l.Set("h1", 3)
	l.Reset()
	assert.Equal(t, 0, l.Get("s1"))
	assert.Equal(t, 0, l.Get("h1"))
}

func TestCheckLearn(t *testing.T) {
	p := newSwordsman(t)

	assert.Equal(t, "技能不存在", CheckLearn(p, "zzz").Reason)
	assert.Equal(t, "等级不足，需要等级 3", CheckLearn(p, "s3").Reason)

	p.Gold = 10
	assert.Equal(t, "金币不足", CheckLearn(p, "s1").Reason)

	p.Gold = 100
	require.True(t, CheckLearn(p, "s1").CanLearn)

	p.Skills = append(p.Skills, "s1")
	assert.Equal(t, "已经学习过该技能", CheckLearn(p, "s1").Reason)
}

func TestLearnDeductsGold(t *testing.T) {
	p := newSwordsman(t)
	p.Gold = 150

	msg, err := Learn(p, "s1")
	require.NoError(t, err)
	assert.Equal(t, "学会了 火剑术！", msg)
	assert.Equal(t, 50, p.Gold)
	assert.True(t, p.HasSkill("s1"))
}

func TestLearnFailureLeavesPlayerUntouched(t *testing.T) {
	p := newSwordsman(t)
	p.Gold = 50

	_, err := Learn(p, "s1")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindResource))
	assert.Equal(t, 50, p.Gold)
	assert.Empty(t, p.Skills)
}

func TestCanCastUsesSkillMPCost(t *testing.T) {
	p := newSwordsman(t)
	p.Skills = []string{"s1", "s6"}
	l := NewLedger()

	p.MP = 15
	assert.True(t, CanCast(p, "s6", l).CanCast, "15 mp covers the 15 cost")

	p.MP = 14
	assert.Equal(t, "法力值不足", CanCast(p, "s6", l).Reason)
	assert.True(t, CanCast(p, "s1", l).CanCast, "cheaper skill still castable")
}

func TestCanCastBlockedByCooldown(t *testing.T) {
	p := newSwordsman(t)
	l := NewLedger()
	l.Set("s1", 2)
	assert.Equal(t, "技能冷却中", CanCast(p, "s1", l).Reason)

	l.Tick()
	l.Tick()
	assert.True(t, CanCast(p, "s1", l).CanCast)
}

func TestCastDamageSkill(t *testing.T) {
	p := newSwordsman(t)
	l := NewLedger()

	res, err := Cast(p, "s1", l)
	require.NoError(t, err)
	assert.Equal(t, EffectDamage, res.Type)
	assert.Equal(t, 30, res.Damage)
	assert.Equal(t, 20, res.MPLeft)
	assert.Equal(t, 20, p.MP)
	assert.Equal(t, 3, l.Get("s1"))
	assert.Equal(t, "剑客 使用了 火剑术，造成 30 点伤害！", res.Message)
}

func TestCastHealClampsAtMaxHP(t *testing.T) {
	p := newSwordsman(t)
	p.HP = 80
	l := NewLedger()

	res, err := Cast(p, "h1", l)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Heal)
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestCastFailureIsAtomic(t *testing.T) {
	p := newSwordsman(t)
	l := NewLedger()
	l.Set("s1", 1)

	_, err := Cast(p, "s1", l)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindState))
	assert.Equal(t, 30, p.MP, "mp untouched on failure")
	assert.Equal(t, 1, l.Get("s1"), "cooldown untouched on failure")

	p.MP = 5
	l.Reset()
	_, err = Cast(p, "s1", l)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindResource))
	assert.Equal(t, 5, p.MP)
	assert.Equal(t, 0, l.Get("s1"), "no cooldown started on failure")
}

func TestCastBuffSkill(t *testing.T) {
	p := newSwordsman(t)
	l := NewLedger()

	res, err := Cast(p, "s6", l)
	require.NoError(t, err)
	assert.Equal(t, EffectBuff, res.Type)
	assert.Equal(t, "defense", res.Stat)
	assert.Equal(t, 0.5, res.Value)
	assert.Equal(t, 3, res.Duration)
}

func TestAutoCastPrefersHighestLevel(t *testing.T) {
	p := newSwordsman(t)
	p.Level = 5
	p.MP = 200
	p.Skills = []string{"s1", "s3", "s5"}
	l := NewLedger()

	assert.Equal(t, "s5", AutoCast(p, l))

	l.Set("s5", 10)
	assert.Equal(t, "s3", AutoCast(p, l))

	l.Set("s3", 10)
	assert.Equal(t, "s1", AutoCast(p, l))

	l.Set("s1", 10)
	assert.Equal(t, "", AutoCast(p, l))
}

func TestAutoCastCatalogOrderTiebreak(t *testing.T) {
	p := newSwordsman(t)
	p.MP = 200
	p.Skills = []string{"s6", "s1"} // both level 1; s1 comes first in the catalog
	l := NewLedger()
	assert.Equal(t, "s1", AutoCast(p, l))
}

func TestAutoCastSkipsUnaffordable(t *testing.T) {
	p := newSwordsman(t)
	p.MP = 12
	p.Skills = []string{"s1", "s6"}
	l := NewLedger()
	assert.Equal(t, "s1", AutoCast(p, l), "only the 10 mp skill fits 12 mp")
}
