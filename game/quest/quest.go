package quest

import "github.com/junyi0906/immortal-cultivation-game/errs"

// Rewards granted when a task is turned in.
type Rewards struct {
	Gold int `json:"gold"`
	Exp  int `json:"exp"`
}

// Task types.
const (
	TypeKill    = "kill"
	TypeCollect = "collect"
)

// Task is a quest in the player's task list.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Target      string  `json:"target"`
	Count       int     `json:"count"`
	Progress    int     `json:"progress"`
	Completed   bool    `json:"completed"`
	Rewards     Rewards `json:"rewards"`
}

// Task ids.
const (
	TaskKillWolf     = "kill_wolf"
	TaskKillBear     = "kill_bear"
	TaskCollectHerbs = "collect_herbs"
)

// Tasks is the quest catalog.
var Tasks = map[string]Task{
	TaskKillWolf: {
		ID: TaskKillWolf, Title: "击败狼", Description: "村庄附近有狼出没，去击败 5 只狼来证明你的实力。",
		Type: TypeKill, Target: "wolf", Count: 5, Rewards: Rewards{Gold: 100, Exp: 50},
	},
	TaskKillBear: {
		ID: TaskKillBear, Title: "击败熊", Description: "森林深处有一只凶猛的熊，击败它来获得奖励。",
		Type: TypeKill, Target: "bear", Count: 1, Rewards: Rewards{Gold: 200, Exp: 100},
	},
	TaskCollectHerbs: {
		ID: TaskCollectHerbs, Title: "采集草药", Description: "药王需要一些草药，去采集 10 株草药。",
		Type: TypeCollect, Target: "herb", Count: 10, Rewards: Rewards{Gold: 150, Exp: 75},
	},
}

// ByID returns the catalog template for a task id.
func ByID(taskID string) (Task, error) {
	t, ok := Tasks[taskID]
	if !ok {
		return Task{}, errs.Newf(errs.KindNotFound, "任务不存在：%s", taskID)
	}
	return t, nil
}

// Find locates a task in the player's list.
func Find(tasks []Task, taskID string) (int, bool) {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i, true
		}
	}
	return -1, false
}

// RecordKill advances every active kill task targeting monsterType. Progress
// caps at the task count; completed tasks are left alone.
func RecordKill(tasks []Task, monsterType string) []Task {
	return record(tasks, TypeKill, monsterType, 1)
}

// RecordCollect advances every active collect task targeting item by n.
func RecordCollect(tasks []Task, item string, n int) []Task {
	return record(tasks, TypeCollect, item, n)
}

func record(tasks []Task, taskType, target string, n int) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		t := &out[i]
		if t.Completed || t.Type != taskType || t.Target != target {
			continue
		}
		t.Progress += n
		if t.Progress > t.Count {
			t.Progress = t.Count
		}
	}
	return out
}

// Fulfilled reports whether the task's progress reached its count.
func (t Task) Fulfilled() bool { return t.Progress >= t.Count }
