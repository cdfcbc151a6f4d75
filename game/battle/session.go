package battle

import (
	"fmt"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"go.uber.org/zap"
)

// State is the battle session state.
type State string

const (
	StateIdle     State = "idle"
	StateFighting State = "fighting"
	StateVictory  State = "victory"
	StateDefeat   State = "defeat"
)

// Turn marks whose attack is accepted next.
type Turn string

const (
	TurnPlayer  Turn = "player"
	TurnMonster Turn = "monster"
)

// LogEntry is one line of the battle log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Reward is granted on victory.
type Reward struct {
	Gold  int      `json:"gold"`
	Exp   int      `json:"exp"`
	Items []string `json:"items"`
}

// SpecialEffect describes a non-damage side effect of a monster action.
type SpecialEffect struct {
	Type    string     `json:"type"` // reduce_attack, reduce_defense, summon_minions
	Value   float64    `json:"value,omitempty"`
	Minions []*Monster `json:"minions,omitempty"`
}

// AttackResult is the outcome of one attack.
type AttackResult struct {
	Damage    int            `json:"damage"`
	PlayerHP  int            `json:"player_hp"`
	MonsterHP int            `json:"monster_hp"`
	State     State          `json:"state"`
	Reward    *Reward        `json:"reward,omitempty"`
	Effect    *SpecialEffect `json:"effect,omitempty"`
}

// Config configures a Session.
type Config struct {
	RNG    Source      // nil = time-seeded source
	Logger *zap.Logger // nil = no-op
}

// Session is the turn-based battle state machine. It owns private clones of
// the player and the spawned monster; callers read results back through
// AttackResult and the accessors. Only Start exits a terminal state.
type Session struct {
	state   State
	player  *character.Player
	monster *Monster
	turn    Turn
	log     []LogEntry

	rng    Source
	logger *zap.Logger
}

// NewSession creates an idle battle session.
func NewSession(cfg Config) *Session {
	if cfg.RNG == nil {
		cfg.RNG = defaultSource()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Session{
		state:  StateIdle,
		turn:   TurnPlayer,
		rng:    cfg.RNG,
		logger: cfg.Logger,
	}
}

// Start begins a battle against monsterType, unconditionally discarding any
// prior session. An unknown monster type fails before any session mutation.
func (s *Session) Start(player *character.Player, monsterType string) error {
	monster, err := Spawn(monsterType)
	if err != nil {
		return err
	}

	s.state = StateFighting
	s.player = player.Clone()
	s.monster = monster
	s.turn = TurnPlayer
	s.log = nil
	s.addLog(fmt.Sprintf("战斗开始！%s VS %s", player.Name, monster.Name))

	s.logger.Debug("battle started",
		zap.String("player", player.Name),
		zap.String("monster", monsterType))
	return nil
}

// Reset returns the session to idle, dropping any battle in progress.
func (s *Session) Reset() {
	s.state = StateIdle
	s.player = nil
	s.monster = nil
	s.turn = TurnPlayer
	s.log = nil
}

// PlayerAttack performs the player's basic attack.
func (s *Session) PlayerAttack() (*AttackResult, error) {
	if err := s.checkTurn(TurnPlayer); err != nil {
		return nil, err
	}

	dmg := Damage(s.player.Attack, s.monster.Defense)
	s.monster.HP -= dmg
	if s.monster.HP < 0 {
		s.monster.HP = 0
	}
	s.addLog(fmt.Sprintf("%s 对 %s 造成 %d 点伤害", s.player.Name, s.monster.Name, dmg))

	result := &AttackResult{
		Damage:    dmg,
		PlayerHP:  s.player.HP,
		MonsterHP: s.monster.HP,
	}

	if s.monster.HP == 0 {
		s.state = StateVictory
		s.turn = TurnPlayer
		s.addLog("战斗胜利！")
		result.Reward = &Reward{Gold: s.monster.Gold, Exp: s.monster.Exp, Items: []string{}}
	} else {
		s.turn = TurnMonster
	}
	result.State = s.state
	return result, nil
}

// PlayerSkill spends the player's turn on a skill that was already cast.
// Skill damage ignores the monster's defense; a zero damage skill (heal or
// buff) still consumes the turn.
func (s *Session) PlayerSkill(damage int, message string) (*AttackResult, error) {
	if err := s.checkTurn(TurnPlayer); err != nil {
		return nil, err
	}
	if damage < 0 {
		return nil, errs.New(errs.KindValidation, "无效的伤害值")
	}

	s.monster.HP -= damage
	if s.monster.HP < 0 {
		s.monster.HP = 0
	}
	if message != "" {
		s.addLog(message)
	}

	result := &AttackResult{
		Damage:    damage,
		PlayerHP:  s.player.HP,
		MonsterHP: s.monster.HP,
	}
	if s.monster.HP == 0 {
		s.state = StateVictory
		s.turn = TurnPlayer
		s.addLog("战斗胜利！")
		result.Reward = &Reward{Gold: s.monster.Gold, Exp: s.monster.Exp, Items: []string{}}
	} else {
		s.turn = TurnMonster
	}
	result.State = s.state
	return result, nil
}

// MonsterAttack performs the monster's turn via its AI policy.
func (s *Session) MonsterAttack() (*AttackResult, error) {
	if err := s.checkTurn(TurnMonster); err != nil {
		return nil, err
	}

	action := s.monsterAction()
	s.player.HP -= action.damage
	if s.player.HP < 0 {
		s.player.HP = 0
	}
	s.addLog(action.log)

	result := &AttackResult{
		Damage:    action.damage,
		PlayerHP:  s.player.HP,
		MonsterHP: s.monster.HP,
		Effect:    action.effect,
	}

	if s.player.HP == 0 {
		s.state = StateDefeat
		s.addLog("战斗失败...")
	} else {
		s.turn = TurnPlayer
	}
	result.State = s.state
	return result, nil
}

func (s *Session) checkTurn(turn Turn) error {
	if s.state != StateFighting {
		return errs.New(errs.KindState, "不在战斗中")
	}
	if s.turn != turn {
		if turn == TurnPlayer {
			return errs.New(errs.KindState, "不是玩家回合")
		}
		return errs.New(errs.KindState, "不是怪物回合")
	}
	return nil
}

func (s *Session) addLog(msg string) {
	s.log = append(s.log, LogEntry{Timestamp: time.Now(), Message: msg})
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Turn returns whose attack is accepted next.
func (s *Session) Turn() Turn { return s.turn }

// Player returns the session's clone of the player, or nil when idle.
func (s *Session) Player() *character.Player { return s.player }

// Monster returns the monster being fought, or nil when idle.
func (s *Session) Monster() *Monster { return s.monster }

// Log returns a copy of the battle log.
func (s *Session) Log() []LogEntry {
	out := make([]LogEntry, len(s.log))
	copy(out, s.log)
	return out
}
