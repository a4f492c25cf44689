package flow

import (
	"sync"

	"go.uber.org/zap"
)

// StaleSet is an in-process Invalidator consumers poll and clear. It also
// logs every invalidation so operators can follow cache churn.
type StaleSet struct {
	logs *zap.SugaredLogger

	mu    sync.Mutex
	stale map[string]struct{}
}

func NewStaleSet(logger *zap.SugaredLogger) *StaleSet {
	return &StaleSet{
		logs:  logger,
		stale: make(map[string]struct{}),
	}
}

func (s *StaleSet) Invalidate(collections ...string) {
	s.mu.Lock()
	for _, c := range collections {
		s.stale[c] = struct{}{}
	}
	s.mu.Unlock()

	s.logs.Infow("collections invalidated", "collections", collections)
}

// Drain returns the collections marked stale since the last call and resets
// the set.
func (s *StaleSet) Drain() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	collections := make([]string, 0, len(s.stale))
	for c := range s.stale {
		collections = append(collections, c)
	}
	s.stale = make(map[string]struct{})

	return collections
}
