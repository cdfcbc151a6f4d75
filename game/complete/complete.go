package complete

import (
	"fmt"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
)

// MaxLevel is the level required to finish the game.
const MaxLevel = 10

// Check is the answer of CheckCondition.
type Check struct {
	CanComplete bool   `json:"can_complete"`
	Reason      string `json:"reason"`
	Progress    string `json:"progress"`
}

// CheckCondition reports whether the player may finish the game: max level
// reached, the demon king defeated, and not finished already.
func CheckCondition(p *character.Player, bossDefeated, completed bool) Check {
	if p.Level < MaxLevel {
		return Check{
			Reason:   fmt.Sprintf("等级不足，需要达到 %d 级", MaxLevel),
			Progress: fmt.Sprintf("当前等级：%d/%d", p.Level, MaxLevel),
		}
	}
	if !bossDefeated {
		return Check{Reason: "魔王未被击败", Progress: "请先击败魔王"}
	}
	if completed {
		return Check{Reason: "已经通关", Progress: "游戏已完成"}
	}
	return Check{CanComplete: true, Reason: "恭喜！你已经满足通关条件", Progress: "准备迎接最终挑战"}
}

// Rewards granted on completion.
type Rewards struct {
	Title     string `json:"title"`
	BonusExp  int    `json:"bonus_exp"`
	BonusGold int    `json:"bonus_gold"`
}

// CompletionRewards is fixed for every playthrough.
var CompletionRewards = Rewards{Title: "修仙大师", BonusExp: 10000, BonusGold: 10000}

// Result of a successful completion trigger.
type Result struct {
	Message     string    `json:"message"`
	CompletedAt time.Time `json:"completed_at"`
	Rewards     Rewards   `json:"rewards"`
}

// Trigger finishes the game once every condition holds.
func Trigger(p *character.Player, bossDefeated, completed bool) (*Result, error) {
	check := CheckCondition(p, bossDefeated, completed)
	if !check.CanComplete {
		return nil, errs.New(errs.KindState, check.Reason)
	}
	return &Result{
		Message:     "恭喜！你已经完成了修仙之路！",
		CompletedAt: time.Now(),
		Rewards:     CompletionRewards,
	}, nil
}

// Scene is one frame of the ending roll.
type Scene struct {
	Text     string        `json:"text"`
	Duration time.Duration `json:"duration"`
}

// EndingScenes play in order after completion.
var EndingScenes = []Scene{
	{Text: "在漫长的修仙之路后...", Duration: 3 * time.Second},
	{Text: "你终于达到了修仙的巅峰！", Duration: 3 * time.Second},
	{Text: "你击败了魔王，拯救了世界！", Duration: 3 * time.Second},
	{Text: "成为了传说中的修仙大师！", Duration: 3 * time.Second},
	{Text: "恭喜通关！", Duration: 4 * time.Second},
}

// EndingStats summarize the playthrough on the ending screen.
type EndingStats struct {
	PlayerName   string    `json:"player_name"`
	PlayerClass  string    `json:"player_class"`
	FinalLevel   int       `json:"final_level"`
	FinalHP      int       `json:"final_hp"`
	FinalAttack  int       `json:"final_attack"`
	FinalDefense int       `json:"final_defense"`
	TotalGold    int       `json:"total_gold"`
	TotalSkills  int       `json:"total_skills"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Ending builds the ending screen stats.
func Ending(p *character.Player, completedAt time.Time) EndingStats {
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	return EndingStats{
		PlayerName:   p.Name,
		PlayerClass:  p.ClassName,
		FinalLevel:   p.Level,
		FinalHP:      p.MaxHP,
		FinalAttack:  p.Attack,
		FinalDefense: p.Defense,
		TotalGold:    p.Gold,
		TotalSkills:  len(p.Skills),
		CompletedAt:  completedAt,
	}
}
