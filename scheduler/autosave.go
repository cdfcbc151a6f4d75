package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/junyi0906/immortal-cultivation-game/engine"
)

// AutosaveTask is the ticker name of the periodic save.
const AutosaveTask = "autosave"

// Autosave registers the periodic save for the game engine. A tick is a
// no-op until a character exists and while a manual save is fresh enough.
func (s *Scheduler) Autosave(e *engine.Engine, interval time.Duration) {
	s.AddTicker(AutosaveTask, interval, func() {
		if !e.SaveDue(interval) {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Save(ctx); err != nil {
			s.logger.Warn("autosave failed", zap.Error(err))
			return
		}
		s.logger.Debug("autosave done")
	})
}
