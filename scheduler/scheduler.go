package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// TaskFn is a unit of scheduled work.
type TaskFn func()

type job struct {
	cancel func()
}

// Scheduler runs named periodic tickers and one-shot delays. Registering
// a name twice replaces the previous job; tasks are panic-isolated.
type Scheduler struct {
	mu     sync.Mutex
	jobs   map[string]*job
	logger *zap.Logger
	done   chan struct{}
	stop   sync.Once
}

func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		jobs:   make(map[string]*job),
		logger: logger,
		done:   make(chan struct{}),
	}
}

func (s *Scheduler) runSafe(name string, fn TaskFn) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked",
				zap.String("task", name), zap.Any("panic", r))
		}
	}()
	fn()
}

// register replaces any job under name. Caller-supplied cancel must be
// idempotent-safe to call exactly once.
func (s *Scheduler) register(name string, cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.jobs[name]; ok {
		old.cancel()
	}
	s.jobs[name] = &job{cancel: cancel}
}

// AddTicker runs fn every interval until removed or the scheduler stops.
func (s *Scheduler) AddTicker(name string, interval time.Duration, fn TaskFn) {
	quit := make(chan struct{})
	s.register(name, func() { close(quit) })

	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				s.runSafe(name, fn)
			case <-quit:
				return
			case <-s.done:
				return
			}
		}
	}()
	s.logger.Info("scheduled", zap.String("task", name), zap.Duration("interval", interval))
}

// AddDelay runs fn once after delay unless removed first.
func (s *Scheduler) AddDelay(name string, delay time.Duration, fn TaskFn) {
	timer := time.AfterFunc(delay, func() {
		s.runSafe(name, fn)
		s.mu.Lock()
		delete(s.jobs, name)
		s.mu.Unlock()
	})
	s.register(name, func() { timer.Stop() })
}

// Remove cancels the named job. Unknown names are a no-op.
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[name]; ok {
		j.cancel()
		delete(s.jobs, name)
	}
}

// Stop cancels every job. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stop.Do(func() { close(s.done) })
}

// ListTickers reports the names of live jobs.
func (s *Scheduler) ListTickers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}
