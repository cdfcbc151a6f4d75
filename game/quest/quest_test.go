package quest

import (
	"testing"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	task, err := ByID(TaskKillWolf)
	require.NoError(t, err)
	assert.Equal(t, "击败狼", task.Title)
	assert.Equal(t, 5, task.Count)
	assert.Equal(t, Rewards{Gold: 100, Exp: 50}, task.Rewards)

	_, err = ByID("slay_dragon")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestRecordKillAdvancesMatchingTasks(t *testing.T) {
	tasks := []Task{Tasks[TaskKillWolf], Tasks[TaskKillBear]}

	tasks = RecordKill(tasks, "wolf")
	assert.Equal(t, 1, tasks[0].Progress)
	assert.Equal(t, 0, tasks[1].Progress, "bear task untouched by a wolf kill")

	tasks = RecordKill(tasks, "bear")
	assert.Equal(t, 1, tasks[1].Progress)
	assert.True(t, tasks[1].Fulfilled())
}

func TestRecordKillCapsAtCount(t *testing.T) {
	tasks := []Task{Tasks[TaskKillBear]}
	for i := 0; i < 3; i++ {
		tasks = RecordKill(tasks, "bear")
	}
	assert.Equal(t, 1, tasks[0].Progress)
}

func TestRecordKillSkipsCompleted(t *testing.T) {
	task := Tasks[TaskKillWolf]
	task.Progress = 5
	task.Completed = true

	tasks := RecordKill([]Task{task}, "wolf")
	assert.Equal(t, 5, tasks[0].Progress)
}

func TestRecordKillDoesNotMutateInput(t *testing.T) {
	in := []Task{Tasks[TaskKillWolf]}
	RecordKill(in, "wolf")
	assert.Equal(t, 0, in[0].Progress)
}

func TestRecordCollect(t *testing.T) {
	tasks := []Task{Tasks[TaskCollectHerbs]}
	tasks = RecordCollect(tasks, "herb", 4)
	assert.Equal(t, 4, tasks[0].Progress)
	assert.False(t, tasks[0].Fulfilled())

	tasks = RecordCollect(tasks, "herb", 10)
	assert.Equal(t, 10, tasks[0].Progress)
	assert.True(t, tasks[0].Fulfilled())
}
