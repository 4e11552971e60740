// Package scheduler runs periodic maintenance tasks.
package scheduler

import (
	"context"
	"sync"
	"time"

	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/shared/logger"
)

// EventArchiveScheduler deactivates ended events on a fixed interval so the
// public calendar stays clean even when nobody opens the events page.
type EventArchiveScheduler struct {
	events   event.Repository
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
}

func NewEventArchiveScheduler(events event.Repository, log logger.Interface) *EventArchiveScheduler {
	return &EventArchiveScheduler{
		events:   events,
		logger:   log,
		stopChan: make(chan struct{}),
		interval: time.Hour,
	}
}

func (s *EventArchiveScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting event archive scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *EventArchiveScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("event archive scheduler stopped")
	})
}

func (s *EventArchiveScheduler) runLoop(ctx context.Context) {
	// Sweep once at startup to catch events that ended while we were down.
	s.archivePast(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.archivePast(ctx)
		}
	}
}

func (s *EventArchiveScheduler) archivePast(ctx context.Context) {
	if err := s.events.ArchivePast(ctx, time.Now()); err != nil {
		s.logger.Errorw("failed to archive past events", "error", err)
	}
}
