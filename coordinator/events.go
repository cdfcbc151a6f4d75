package coordinator

import (
	"encoding/json"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// EventType enumerates every event the coordinator understands. The set is
// closed: Dispatch switches over it exhaustively and anything else is
// rejected at parse time.
type EventType string

const (
	EventPlayerMove     EventType = "PLAYER_MOVE"
	EventBattleStart    EventType = "BATTLE_START"
	EventTaskComplete   EventType = "TASK_COMPLETE"
	EventPlayerClickNPC EventType = "PLAYER_CLICK_NPC"
	EventPlayerAttack   EventType = "PLAYER_ATTACK"
)

// Event is the closed union of coordinator events. Only the payload types in
// this package implement it.
type Event interface {
	Type() EventType
}

// PlayerMove repositions the player on the coordinator's 512×512 grid.
type PlayerMove struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction,omitempty"`
}

func (PlayerMove) Type() EventType { return EventPlayerMove }

// BattleStart opens an encounter with a field monster.
type BattleStart struct {
	MonsterID   string `json:"monsterId"`
	MonsterType string `json:"monsterType"`
}

func (BattleStart) Type() EventType { return EventBattleStart }

// TaskComplete turns in a task.
type TaskComplete struct {
	TaskID string `json:"taskId"`
}

func (TaskComplete) Type() EventType { return EventTaskComplete }

// PlayerClickNPC opens an NPC interaction.
type PlayerClickNPC struct {
	NPCID string `json:"npcId"`
}

func (PlayerClickNPC) Type() EventType { return EventPlayerClickNPC }

// PlayerAttack reports a resolved attack.
type PlayerAttack struct {
	TargetID string `json:"targetId"`
	Damage   int    `json:"damage"`
}

func (PlayerAttack) Type() EventType { return EventPlayerAttack }

// Message is the wire form of an event.
type Message struct {
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp,omitempty"`
}

// NewMessage serializes an event into its wire form.
func NewMessage(ev Event) ([]byte, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, errs.Wrap(errs.KindValidation, "无法编码事件", err)
	}
	return json.Marshal(Message{Type: ev.Type(), Payload: payload, Timestamp: time.Now()})
}

// ParseMessage decodes a wire message into a typed event. The timestamp
// defaults to now when the sender omitted it.
func ParseMessage(raw []byte) (Event, time.Time, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, time.Time{}, errs.Wrap(errs.KindValidation, "无法解析消息", err)
	}
	if msg.Type == "" {
		return nil, time.Time{}, errs.New(errs.KindValidation, "消息缺少事件类型")
	}
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	var ev Event
	switch msg.Type {
	case EventPlayerMove:
		var p PlayerMove
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, time.Time{}, err
		}
		ev = p
	case EventBattleStart:
		var p BattleStart
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, time.Time{}, err
		}
		ev = p
	case EventTaskComplete:
		var p TaskComplete
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, time.Time{}, err
		}
		ev = p
	case EventPlayerClickNPC:
		var p PlayerClickNPC
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, time.Time{}, err
		}
		ev = p
	case EventPlayerAttack:
		var p PlayerAttack
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, time.Time{}, err
		}
		ev = p
	default:
		return nil, time.Time{}, errs.Newf(errs.KindValidation, "未知的事件类型：%s", msg.Type)
	}
	return ev, ts, nil
}

func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return errs.New(errs.KindValidation, "消息缺少载荷")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.Wrap(errs.KindValidation, "无法解析事件载荷", err)
	}
	return nil
}
