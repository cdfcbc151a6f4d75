package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/junyi0906/immortal-cultivation-game/model"
	"github.com/junyi0906/immortal-cultivation-game/testutil"
)

func nop() *zap.Logger { l, _ := zap.NewDevelopment(); return l }

func TestNew_StartsWorker(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, nop())
	require.NotNil(t, svc)
	svc.Stop(context.Background())
}

func TestLog_EnqueuedAndFlushed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, nop())

	svc.Log(Entry{
		TraceID:    "trace-123",
		EventType:  "PLAYER_MOVE",
		Payload:    map[string]int{"x": 100, "y": 200},
		Message:    "玩家移动到 (100, 200)",
		DurationMs: 3,
	})

	// Stop flushes remaining entries
	svc.Stop(context.Background())

	var logs []model.EventLog
	db.Find(&logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "trace-123", logs[0].TraceID)
	assert.Equal(t, "PLAYER_MOVE", logs[0].EventType)
	assert.Equal(t, 3, logs[0].DurationMs)
}

func TestLog_MultipleLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, nop())

	for i := 0; i < 10; i++ {
		svc.Log(Entry{EventType: "BATTLE_START", Message: "战斗开始"})
	}
	svc.Stop(context.Background())

	var logs []model.EventLog
	db.Find(&logs)
	assert.Len(t, logs, 10)
}

func TestLog_FailedEventKeepsError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, nop())

	svc.Log(Entry{
		EventType: "BATTLE_START",
		Error:     "无效的怪物类型：slime",
	})
	svc.Stop(context.Background())

	var logs []model.EventLog
	db.Find(&logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "无效的怪物类型：slime", logs[0].Error)
}
